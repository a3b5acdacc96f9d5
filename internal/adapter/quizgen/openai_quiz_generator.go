package quizgen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"quizgen/internal/config"
	"quizgen/internal/domain"
	"quizgen/internal/dto"

	"github.com/tmc/langchaingo/llms"
	openaiLLM "github.com/tmc/langchaingo/llms/openai"
	"go.uber.org/zap"
)

const promptTemplate = `
You are an AI expert that generates quiz questions based on a transcript.
Your task is to create multiple-choice questions that test the reader's understanding of the content (In Coursera Style).
The questions should be clear, concise, and relevant to the material in the transcript.
Generate a **single** JSON object with this exact schema:

{
  "transcript_id": "<must equal the given transcript_id>",
  "title": "<a concise (5-8 word) summary of the transcript>",
  "quizzes": [
    {
      "question_id": "Q1",
      "question": "<question stem>",
      "options": ["opt A", "opt B", "opt C", "opt D"],
      "correct_answer_index": <0-3>,
      "explanation": "<provide a brief explanation of the correct answer, must be inferrable from the transcript>"
    }
    ... at least %d such entries ...
  ]
}

Requirements:
- Questions to support factual recall among diverse set of general learners.
- 'transcript_id' field **must** equal "%s".
- At least **%d** questions.
- Exactly **4** options per question (1 correct, 3 plausible distractors that are relevant, challenging, and non-random).
- Zero-based indexing for 'correct_answer_index'.
- **Respond with JSON only** - no extra text.

Transcript text:
%s
`

// OpenAIQuizGenerator implements domain.QuizGenerationService against the
// OpenAI chat API via langchaingo.
type OpenAIQuizGenerator struct {
	llm              *openaiLLM.LLM
	model            string
	temperature      float64
	minQuestions     int
	maxContextTokens int
	logger           *zap.Logger

	// countTokens is swapped in tests to avoid loading tokenizer data.
	countTokens func(model, text string) int
}

// NewOpenAIQuizGenerator creates the generator from configuration. It
// fails with a configuration error when the API key is missing.
func NewOpenAIQuizGenerator(cfg *config.Config, logger *zap.Logger) (*OpenAIQuizGenerator, error) {
	if cfg.OpenAI.APIKey == "" {
		return nil, domain.NewConfigurationError("OpenAI API key cannot be empty", nil)
	}
	if cfg.Generation.Model == "" {
		return nil, domain.NewConfigurationError("generation model name cannot be empty", nil)
	}

	llm, err := openaiLLM.New(
		openaiLLM.WithToken(cfg.OpenAI.APIKey),
		openaiLLM.WithModel(cfg.Generation.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create OpenAI LLM client: %w", err)
	}

	minQuestions := cfg.Generation.MinQuestions
	if minQuestions < domain.MinQuestions {
		minQuestions = domain.MinQuestions
	}

	logger.Info("Initialized OpenAI quiz generator",
		zap.String("model", cfg.Generation.Model),
		zap.Float64("temperature", cfg.Generation.Temperature))

	return &OpenAIQuizGenerator{
		llm:              llm,
		model:            cfg.Generation.Model,
		temperature:      cfg.Generation.Temperature,
		minQuestions:     minQuestions,
		maxContextTokens: cfg.Generation.MaxContextTokens,
		logger:           logger,
		countTokens:      llms.CountTokens,
	}, nil
}

// GenerateQuiz implements domain.QuizGenerationService.
func (g *OpenAIQuizGenerator) GenerateQuiz(ctx context.Context, item *domain.WorkItem) (*domain.Quiz, error) {
	prompt := buildPrompt(item.ID, item.Text, g.minQuestions)

	if tokens := g.countTokens(g.model, prompt); tokens > g.maxContextTokens {
		return nil, domain.NewTranscriptTooLargeError(item.ID, tokens, g.maxContextTokens)
	}

	response, err := g.llm.Call(ctx, prompt, llms.WithTemperature(g.temperature))
	if err != nil {
		return nil, domain.NewGenerationError(item.ID, err)
	}

	quiz, err := parseQuiz(item.ID, response)
	if err != nil {
		return nil, err
	}

	if quiz.TranscriptID != item.ID {
		g.logger.Warn("Model echoed a different transcript ID, correcting",
			zap.String("expected", item.ID),
			zap.String("got", quiz.TranscriptID))
		quiz.TranscriptID = item.ID
	}

	if err := quiz.Validate(); err != nil {
		return nil, domain.NewMalformedOutputError(item.ID, err)
	}

	return quiz, nil
}

func buildPrompt(transcriptID, text string, minQuestions int) string {
	return fmt.Sprintf(promptTemplate, minQuestions, transcriptID, minQuestions, text)
}

// parseQuiz strips markdown code fences the model tends to wrap JSON in,
// then unmarshals the response into the output document schema.
func parseQuiz(transcriptID, response string) (*domain.Quiz, error) {
	cleaned := strings.TrimSpace(response)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var file dto.QuizFile
	if err := json.Unmarshal([]byte(cleaned), &file); err != nil {
		return nil, domain.NewMalformedOutputError(transcriptID, err)
	}
	return file.ToDomain(), nil
}

var _ domain.QuizGenerationService = (*OpenAIQuizGenerator)(nil)
