package service

import (
	"context"
	"fmt"
	"time"

	"quizgen/internal/domain"
	"quizgen/internal/util"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// batchService implements domain.BatchService: it fans transcript work
// out over a bounded pool of workers and aggregates per-item outcomes.
type batchService struct {
	transcripts domain.TranscriptRepository
	generator   domain.QuizGenerationService
	writer      domain.QuizWriter
	workers     int
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(
	transcripts domain.TranscriptRepository,
	generator domain.QuizGenerationService,
	writer domain.QuizWriter,
	workers int,
	logger *zap.Logger,
) domain.BatchService {
	return &batchService{
		transcripts: transcripts,
		generator:   generator,
		writer:      writer,
		workers:     workers,
		logger:      logger,
	}
}

// Run processes every transcript and returns the summary once the pool
// has drained. Per-item failures are recorded, never propagated; only
// configuration problems abort the run.
func (s *batchService) Run(ctx context.Context) (*domain.BatchSummary, error) {
	if s.workers < 1 {
		return nil, domain.NewConfigurationError(fmt.Sprintf("worker count must be at least 1, got %d", s.workers), nil)
	}

	items, err := s.transcripts.ListTranscripts(ctx)
	if err != nil {
		return nil, err
	}

	runID := util.NewULID()
	summary := domain.NewBatchSummary(runID, len(items))

	if len(items) == 0 {
		s.logger.Info("No transcripts found, nothing to do", zap.String("run_id", runID))
		return summary, nil
	}

	s.logger.Info("Starting batch quiz generation",
		zap.String("run_id", runID),
		zap.Int("transcripts", len(items)),
		zap.Int("workers", s.workers))
	start := time.Now()

	// Workers always return nil so one bad transcript can neither cancel
	// the group context nor abort the batch.
	g := new(errgroup.Group)
	g.SetLimit(s.workers)
	for _, item := range items {
		g.Go(func() error {
			summary.Record(s.processItem(ctx, item))
			return nil
		})
	}
	_ = g.Wait()

	s.report(summary, time.Since(start))
	return summary, nil
}

// processItem runs the generate-then-write lifecycle for one transcript.
// The returned result is the item's single, final outcome.
func (s *batchService) processItem(ctx context.Context, item *domain.WorkItem) domain.WorkResult {
	quiz, err := s.generator.GenerateQuiz(ctx, item)
	if err != nil {
		s.logger.Error("Quiz generation failed",
			zap.String("transcript_id", item.ID),
			zap.Error(err))
		return domain.WorkResult{ItemID: item.ID, Err: err}
	}

	if err := s.writer.WriteQuiz(ctx, quiz); err != nil {
		s.logger.Error("Quiz write failed",
			zap.String("transcript_id", item.ID),
			zap.Error(err))
		return domain.WorkResult{ItemID: item.ID, Err: err}
	}

	return domain.WorkResult{ItemID: item.ID, Quiz: quiz}
}

func (s *batchService) report(summary *domain.BatchSummary, elapsed time.Duration) {
	s.logger.Info("Batch quiz generation completed",
		zap.String("run_id", summary.RunID),
		zap.Int("total", summary.Total),
		zap.Int("succeeded", summary.Succeeded),
		zap.Int("failed", summary.Failed),
		zap.Duration("elapsed", elapsed))
	for _, failure := range summary.Failures {
		s.logger.Warn("Transcript failed",
			zap.String("run_id", summary.RunID),
			zap.String("transcript_id", failure.ItemID),
			zap.String("reason", failure.Reason))
	}
}
