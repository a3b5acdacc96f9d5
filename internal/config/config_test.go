package config

import (
	"testing"

	"quizgen/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("QUIZGEN_MODEL", "")
	t.Setenv("QUIZGEN_WORKERS", "")
	t.Setenv("QUIZGEN_INPUT_DIR", "")
	t.Setenv("QUIZGEN_OUTPUT_DIR", "")
	t.Setenv("QUIZGEN_LOG_LEVEL", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "test-key", cfg.OpenAI.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Generation.Model)
	assert.InDelta(t, 0.2, cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, domain.MinQuestions, cfg.Generation.MinQuestions)
	assert.Equal(t, 120000, cfg.Generation.MaxContextTokens)
	assert.Equal(t, "texts", cfg.Batch.InputDir)
	assert.Equal(t, "quiz", cfg.Batch.OutputDir)
	assert.Equal(t, 4, cfg.Batch.Workers)
	assert.Equal(t, "info", cfg.Logger.Level)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("QUIZGEN_MODEL", "gpt-4o-mini")
	t.Setenv("QUIZGEN_WORKERS", "8")
	t.Setenv("QUIZGEN_INPUT_DIR", "/data/in")
	t.Setenv("QUIZGEN_OUTPUT_DIR", "/data/out")
	t.Setenv("QUIZGEN_LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "gpt-4o-mini", cfg.Generation.Model)
	assert.Equal(t, 8, cfg.Batch.Workers)
	assert.Equal(t, "/data/in", cfg.Batch.InputDir)
	assert.Equal(t, "/data/out", cfg.Batch.OutputDir)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadConfig_BadWorkersEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "test-key")
	t.Setenv("QUIZGEN_WORKERS", "many")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			OpenAI:     OpenAIConfig{APIKey: "k"},
			Generation: GenerationConfig{Model: "gpt-4o", Temperature: 0.2, MinQuestions: 3, MaxContextTokens: 120000},
			Batch:      BatchConfig{InputDir: "texts", OutputDir: "quiz", Workers: 4},
			Logger:     LoggerConfig{Level: "info", Env: "development"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"missing api key", func(c *Config) { c.OpenAI.APIKey = "" }, true},
		{"missing model", func(c *Config) { c.Generation.Model = "" }, true},
		{"zero context limit", func(c *Config) { c.Generation.MaxContextTokens = 0 }, true},
		{"missing input dir", func(c *Config) { c.Batch.InputDir = "" }, true},
		{"missing output dir", func(c *Config) { c.Batch.OutputDir = "" }, true},
		{"zero workers", func(c *Config) { c.Batch.Workers = 0 }, true},
		{"negative workers", func(c *Config) { c.Batch.Workers = -2 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsConfigurationError(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
