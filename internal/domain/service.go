package domain

import "context"

// TranscriptRepository enumerates the transcripts to process.
type TranscriptRepository interface {
	// ListTranscripts returns all transcripts in the input location,
	// sorted by filename. An unreadable input location is a
	// configuration error.
	ListTranscripts(ctx context.Context) ([]*WorkItem, error)
}

// QuizGenerationService turns one transcript into a validated quiz.
type QuizGenerationService interface {
	// GenerateQuiz invokes the language model for one transcript.
	// Failures (API errors, malformed output, oversized transcripts)
	// are returned as generation-class DomainErrors.
	GenerateQuiz(ctx context.Context, item *WorkItem) (*Quiz, error)
}

// QuizWriter persists one generated quiz, overwriting any previous output
// for the same transcript.
type QuizWriter interface {
	WriteQuiz(ctx context.Context, quiz *Quiz) error
}

// BatchService runs quiz generation over all transcripts with a bounded
// worker pool and returns the aggregated summary once every item has
// been processed.
type BatchService interface {
	Run(ctx context.Context) (*BatchSummary, error)
}
