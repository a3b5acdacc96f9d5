package domain

import "fmt"

// MinQuestions is the smallest number of questions a generated quiz must
// contain to be accepted.
const MinQuestions = 3

// OptionsPerQuestion is the required number of answer options per question
// (one correct answer plus three distractors).
const OptionsPerQuestion = 4

// ValidationError represents a validation error
type ValidationError struct {
	message string
}

func (e *ValidationError) Error() string {
	return e.message
}

func NewValidationError(message string) error {
	return &ValidationError{message: message}
}

// Question is a single multiple-choice question within a quiz.
type Question struct {
	ID                 string
	Text               string
	Options            []string
	CorrectAnswerIndex int
	Explanation        string
}

// Validate validates one question against the output schema.
func (q *Question) Validate() error {
	if q.Text == "" {
		return NewValidationError(fmt.Sprintf("question %s: text is required", q.ID))
	}
	if len(q.Options) != OptionsPerQuestion {
		return NewValidationError(fmt.Sprintf("question %s: expected %d options, got %d", q.ID, OptionsPerQuestion, len(q.Options)))
	}
	for i, opt := range q.Options {
		if opt == "" {
			return NewValidationError(fmt.Sprintf("question %s: option %d is empty", q.ID, i))
		}
	}
	if q.CorrectAnswerIndex < 0 || q.CorrectAnswerIndex >= len(q.Options) {
		return NewValidationError(fmt.Sprintf("question %s: correct answer index %d out of range", q.ID, q.CorrectAnswerIndex))
	}
	return nil
}

// Quiz is the full set of questions generated for one transcript.
type Quiz struct {
	TranscriptID string
	Title        string
	Questions    []*Question
}

// Validate validates the quiz at the generation boundary, before it is
// handed to the writer.
func (q *Quiz) Validate() error {
	if q.TranscriptID == "" {
		return NewValidationError("transcript ID is required")
	}
	if q.Title == "" {
		return NewValidationError("title is required")
	}
	if len(q.Questions) < MinQuestions {
		return NewValidationError(fmt.Sprintf("quiz for %s has %d questions, need at least %d", q.TranscriptID, len(q.Questions), MinQuestions))
	}
	for _, question := range q.Questions {
		if question == nil {
			return NewValidationError(fmt.Sprintf("quiz for %s contains a nil question", q.TranscriptID))
		}
		if err := question.Validate(); err != nil {
			return err
		}
	}
	return nil
}
