package main

import (
	"fmt"
	"os"

	"quizgen/internal/adapter/quizgen"
	"quizgen/internal/config"
	"quizgen/internal/logger"
	"quizgen/internal/repository"
	"quizgen/internal/service"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	inputDirFlag  string
	outputDirFlag string
	workersFlag   int
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quizgen",
		Short: "Generate multiple-choice quizzes from transcript text files",
		Long: `quizgen reads transcript .txt files from an input directory, asks an
OpenAI chat model to produce multiple-choice quiz questions for each one,
and writes one JSON quiz file per transcript to the output directory.

Transcripts are processed concurrently by a fixed-size worker pool. A
failure on one transcript is reported at the end of the run and does not
stop the others.`,
		Args:         cobra.NoArgs,
		RunE:         run,
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&inputDirFlag, "input-dir", "i", "texts", "Directory containing transcript .txt files")
	cmd.Flags().StringVarP(&outputDirFlag, "output-dir", "o", "quiz", "Directory to write output JSON quizzes")
	cmd.Flags().IntVarP(&workersFlag, "workers", "w", 4, "Number of workers for parallel processing")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	// .env is optional; deployments usually export OPENAI_API_KEY directly
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Flags win over config file and environment when given explicitly
	if cmd.Flags().Changed("input-dir") {
		cfg.Batch.InputDir = inputDirFlag
	}
	if cmd.Flags().Changed("output-dir") {
		cfg.Batch.OutputDir = outputDirFlag
	}
	if cmd.Flags().Changed("workers") {
		cfg.Batch.Workers = workersFlag
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()
	log := logger.Get()

	generator, err := quizgen.NewOpenAIQuizGenerator(cfg, log)
	if err != nil {
		return err
	}
	transcripts := repository.NewFileTranscriptRepository(cfg.Batch.InputDir, log)
	writer := repository.NewFileQuizWriter(cfg.Batch.OutputDir, log)
	batch := service.NewBatchService(transcripts, generator, writer, cfg.Batch.Workers, log)

	// Per-item failures are reported inside the summary; the run itself
	// completing keeps the exit code at zero.
	if _, err := batch.Run(cmd.Context()); err != nil {
		log.Error("Batch aborted", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
