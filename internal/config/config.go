package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"quizgen/internal/domain"

	"github.com/spf13/viper"
)

type Config struct {
	OpenAI     OpenAIConfig
	Generation GenerationConfig
	Batch      BatchConfig
	Logger     LoggerConfig
}

type OpenAIConfig struct {
	APIKey string `yaml:"api_key"`
}

type GenerationConfig struct {
	Model            string  `yaml:"model"`
	Temperature      float64 `yaml:"temperature"`
	MinQuestions     int     `yaml:"min_questions"`
	MaxContextTokens int     `yaml:"max_context_tokens"`
}

type BatchConfig struct {
	InputDir  string `yaml:"input_dir"`
	OutputDir string `yaml:"output_dir"`
	Workers   int    `yaml:"workers"`
}

type LoggerConfig struct {
	Level string `yaml:"level"`
	Env   string `yaml:"env"`
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./configs")

	viper.SetDefault("generation.model", "gpt-4o")
	viper.SetDefault("generation.temperature", 0.2)
	viper.SetDefault("generation.min_questions", domain.MinQuestions)
	viper.SetDefault("generation.max_context_tokens", 120000)
	viper.SetDefault("batch.input_dir", "texts")
	viper.SetDefault("batch.output_dir", "quiz")
	viper.SetDefault("batch.workers", 4)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.env", "development")

	viper.AutomaticEnv()

	// The config file is optional; env vars and defaults cover everything.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config := &Config{
		OpenAI: OpenAIConfig{
			APIKey: viper.GetString("openai.api_key"),
		},
		Generation: GenerationConfig{
			Model:            viper.GetString("generation.model"),
			Temperature:      viper.GetFloat64("generation.temperature"),
			MinQuestions:     viper.GetInt("generation.min_questions"),
			MaxContextTokens: viper.GetInt("generation.max_context_tokens"),
		},
		Batch: BatchConfig{
			InputDir:  viper.GetString("batch.input_dir"),
			OutputDir: viper.GetString("batch.output_dir"),
			Workers:   viper.GetInt("batch.workers"),
		},
		Logger: LoggerConfig{
			Level: viper.GetString("logger.level"),
			Env:   viper.GetString("logger.env"),
		},
	}

	// Override with environment variables if set
	if apiKey := os.Getenv("OPENAI_API_KEY"); apiKey != "" {
		config.OpenAI.APIKey = apiKey
	}
	if model := os.Getenv("QUIZGEN_MODEL"); model != "" {
		config.Generation.Model = model
	}
	if inputDir := os.Getenv("QUIZGEN_INPUT_DIR"); inputDir != "" {
		config.Batch.InputDir = inputDir
	}
	if outputDir := os.Getenv("QUIZGEN_OUTPUT_DIR"); outputDir != "" {
		config.Batch.OutputDir = outputDir
	}
	if workers := os.Getenv("QUIZGEN_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return nil, domain.NewConfigurationError(fmt.Sprintf("QUIZGEN_WORKERS is not an integer: %q", workers), err)
		}
		config.Batch.Workers = n
	}
	if level := os.Getenv("QUIZGEN_LOG_LEVEL"); level != "" {
		config.Logger.Level = level
	}

	return config, nil
}

// Validate checks the configuration before any work starts. All failures
// are fatal configuration errors.
func (c *Config) Validate() error {
	if c.OpenAI.APIKey == "" {
		return domain.NewConfigurationError("openai.api_key is required (set OPENAI_API_KEY)", nil)
	}
	if c.Generation.Model == "" {
		return domain.NewConfigurationError("generation.model is required", nil)
	}
	if c.Generation.MaxContextTokens < 1 {
		return domain.NewConfigurationError(fmt.Sprintf("generation.max_context_tokens must be positive, got %d", c.Generation.MaxContextTokens), nil)
	}
	if c.Batch.InputDir == "" {
		return domain.NewConfigurationError("batch.input_dir is required", nil)
	}
	if c.Batch.OutputDir == "" {
		return domain.NewConfigurationError("batch.output_dir is required", nil)
	}
	if c.Batch.Workers < 1 {
		return domain.NewConfigurationError(fmt.Sprintf("batch.workers must be at least 1, got %d", c.Batch.Workers), nil)
	}
	return nil
}
