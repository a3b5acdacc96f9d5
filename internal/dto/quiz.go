package dto

import "quizgen/internal/domain"

// QuizFile is the JSON document written for one transcript. It is also
// the exact schema the model is instructed to produce, so the generation
// adapter unmarshals model output into it.
type QuizFile struct {
	TranscriptID string          `json:"transcript_id"`
	Title        string          `json:"title"`
	Quizzes      []QuestionEntry `json:"quizzes"`
}

// QuestionEntry represents one multiple-choice question in the output file
type QuestionEntry struct {
	QuestionID         string   `json:"question_id"`
	Question           string   `json:"question"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	Explanation        string   `json:"explanation"`
}

// FromDomain maps a domain quiz to its output-file representation.
func FromDomain(quiz *domain.Quiz) *QuizFile {
	file := &QuizFile{
		TranscriptID: quiz.TranscriptID,
		Title:        quiz.Title,
		Quizzes:      make([]QuestionEntry, 0, len(quiz.Questions)),
	}
	for _, q := range quiz.Questions {
		file.Quizzes = append(file.Quizzes, QuestionEntry{
			QuestionID:         q.ID,
			Question:           q.Text,
			Options:            q.Options,
			CorrectAnswerIndex: q.CorrectAnswerIndex,
			Explanation:        q.Explanation,
		})
	}
	return file
}

// ToDomain maps a parsed model response to the domain quiz.
func (f *QuizFile) ToDomain() *domain.Quiz {
	quiz := &domain.Quiz{
		TranscriptID: f.TranscriptID,
		Title:        f.Title,
		Questions:    make([]*domain.Question, 0, len(f.Quizzes)),
	}
	for _, entry := range f.Quizzes {
		quiz.Questions = append(quiz.Questions, &domain.Question{
			ID:                 entry.QuestionID,
			Text:               entry.Question,
			Options:            entry.Options,
			CorrectAnswerIndex: entry.CorrectAnswerIndex,
			Explanation:        entry.Explanation,
		})
	}
	return quiz
}
