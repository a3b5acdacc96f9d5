package repository

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"quizgen/internal/domain"
	"quizgen/internal/dto"

	"go.uber.org/zap"
)

// FileQuizWriter serializes quizzes to <TRANSCRIPT_ID>.json files in the
// output directory, overwriting existing files.
type FileQuizWriter struct {
	dir    string
	logger *zap.Logger
}

// NewFileQuizWriter creates a writer for the given output directory. The
// directory is created on first write.
func NewFileQuizWriter(dir string, logger *zap.Logger) *FileQuizWriter {
	return &FileQuizWriter{
		dir:    dir,
		logger: logger,
	}
}

// WriteQuiz implements domain.QuizWriter.
func (w *FileQuizWriter) WriteQuiz(ctx context.Context, quiz *domain.Quiz) error {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return domain.NewWriteError(quiz.TranscriptID, err)
	}

	data, err := json.MarshalIndent(dto.FromDomain(quiz), "", "  ")
	if err != nil {
		return domain.NewWriteError(quiz.TranscriptID, err)
	}

	path := w.OutputPath(quiz.TranscriptID)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return domain.NewWriteError(quiz.TranscriptID, err)
	}

	w.logger.Info("Wrote quiz file",
		zap.String("transcript_id", quiz.TranscriptID),
		zap.String("path", path),
		zap.Int("questions", len(quiz.Questions)))
	return nil
}

// OutputPath returns the file path a transcript's quiz is written to.
func (w *FileQuizWriter) OutputPath(transcriptID string) string {
	return filepath.Join(w.dir, transcriptID+".json")
}

var _ domain.QuizWriter = (*FileQuizWriter)(nil)
