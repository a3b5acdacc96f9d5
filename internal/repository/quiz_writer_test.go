package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"quizgen/internal/domain"
	"quizgen/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleQuiz(id string) *domain.Quiz {
	return &domain.Quiz{
		TranscriptID: id,
		Title:        "A Short Course on Testing",
		Questions: []*domain.Question{
			{
				ID:                 "Q1",
				Text:               "What does the writer produce?",
				Options:            []string{"YAML", "JSON", "CSV", "XML"},
				CorrectAnswerIndex: 1,
				Explanation:        "One JSON document per transcript.",
			},
		},
	}
}

func TestFileQuizWriter_WriteQuiz(t *testing.T) {
	// output dir does not exist yet; the writer creates it
	dir := filepath.Join(t.TempDir(), "quiz")
	writer := NewFileQuizWriter(dir, zap.NewNop())

	quiz := sampleQuiz("LECTURE_01")
	require.NoError(t, writer.WriteQuiz(context.Background(), quiz))

	data, err := os.ReadFile(filepath.Join(dir, "LECTURE_01.json"))
	require.NoError(t, err)

	var file dto.QuizFile
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, "LECTURE_01", file.TranscriptID)
	assert.Equal(t, quiz.Title, file.Title)
	require.Len(t, file.Quizzes, 1)
	assert.Equal(t, "Q1", file.Quizzes[0].QuestionID)
	assert.Equal(t, 1, file.Quizzes[0].CorrectAnswerIndex)
}

func TestFileQuizWriter_Overwrites(t *testing.T) {
	dir := t.TempDir()
	writer := NewFileQuizWriter(dir, zap.NewNop())
	ctx := context.Background()

	first := sampleQuiz("LECTURE_01")
	require.NoError(t, writer.WriteQuiz(ctx, first))

	second := sampleQuiz("LECTURE_01")
	second.Title = "Revised Title"
	require.NoError(t, writer.WriteQuiz(ctx, second))

	data, err := os.ReadFile(writer.OutputPath("LECTURE_01"))
	require.NoError(t, err)

	var file dto.QuizFile
	require.NoError(t, json.Unmarshal(data, &file))
	assert.Equal(t, "Revised Title", file.Title)
}

func TestFileQuizWriter_WriteError(t *testing.T) {
	// a file where the output directory should be
	base := t.TempDir()
	blocked := filepath.Join(base, "occupied")
	require.NoError(t, os.WriteFile(blocked, []byte("file, not a dir"), 0644))

	writer := NewFileQuizWriter(blocked, zap.NewNop())
	err := writer.WriteQuiz(context.Background(), sampleQuiz("LECTURE_01"))
	require.Error(t, err)
	assert.Equal(t, domain.ErrWrite, domain.CodeOf(err))
}
