package domain

import "sync"

// WorkItem is one transcript queued for quiz generation. Immutable once
// created by the transcript repository.
type WorkItem struct {
	ID         string
	SourcePath string
	Text       string
}

// WorkResult is the outcome of processing one WorkItem. Err is nil on
// success; on failure Quiz is nil and Err names the cause.
type WorkResult struct {
	ItemID string
	Quiz   *Quiz
	Err    error
}

// Succeeded reports whether the item was generated and written.
func (r WorkResult) Succeeded() bool {
	return r.Err == nil
}

// ItemFailure names one failed item in the batch summary.
type ItemFailure struct {
	ItemID string `json:"transcript_id"`
	Reason string `json:"error"`
}

// BatchSummary aggregates the results of one batch run. Record is safe to
// call from multiple workers; the counters satisfy
// Succeeded+Failed == number of results recorded.
type BatchSummary struct {
	RunID     string
	Total     int
	Succeeded int
	Failed    int
	Failures  []ItemFailure

	mu sync.Mutex
}

// NewBatchSummary creates a summary for a run over total items.
func NewBatchSummary(runID string, total int) *BatchSummary {
	return &BatchSummary{
		RunID: runID,
		Total: total,
	}
}

// Record adds one result to the summary.
func (s *BatchSummary) Record(res WorkResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if res.Succeeded() {
		s.Succeeded++
		return
	}
	s.Failed++
	s.Failures = append(s.Failures, ItemFailure{
		ItemID: res.ItemID,
		Reason: res.Err.Error(),
	})
}

// Processed returns how many results have been recorded so far.
func (s *BatchSummary) Processed() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.Succeeded + s.Failed
}
