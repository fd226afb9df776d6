package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotConfig_Configured(t *testing.T) {
	assert.False(t, SlotConfig{Provider: "googleai"}.Configured())
	assert.True(t, SlotConfig{Provider: "googleai", APIKey: "k"}.Configured())
	assert.False(t, SlotConfig{Provider: "ollama", APIKey: "k"}.Configured())
	assert.True(t, SlotConfig{Provider: "ollama", ServerURL: "http://localhost:11434"}.Configured())
}

func TestGenerationConfig_Slot(t *testing.T) {
	g := GenerationConfig{Slots: map[string]SlotConfig{
		SlotDefault: {Provider: "googleai", Model: "gemini-2.0-flash", APIKey: "default-key"},
		SlotQuiz:    {APIKey: "quiz-key"},
		SlotSummary: {Provider: "openai", Model: "gpt-4o-mini"},
	}}

	tests := []struct {
		name     string
		slot     string
		expected SlotConfig
	}{
		{"own credentials inherit provider and model", SlotQuiz, SlotConfig{Provider: "googleai", Model: "gemini-2.0-flash", APIKey: "quiz-key"}},
		{"no credentials falls back to default", SlotSummary, SlotConfig{Provider: "googleai", Model: "gemini-2.0-flash", APIKey: "default-key"}},
		{"unknown slot falls back to default", "nope", SlotConfig{Provider: "googleai", Model: "gemini-2.0-flash", APIKey: "default-key"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := g.Slot(tt.slot)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}

	empty := GenerationConfig{Slots: map[string]SlotConfig{SlotDefault: {Provider: "googleai"}}}
	_, ok := empty.Slot(SlotQuiz)
	assert.False(t, ok)
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9999")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("REDIS_ADDRESS", "redis:6379")
	t.Setenv("APIFY_TOKEN", "apify")
	t.Setenv("NATS_URL", "nats://nats:4222")
	t.Setenv("GEMINI_API_KEY", "gemini")
	t.Setenv("VIDLEARN_SLOT_QUIZ_API_KEY", "quiz")

	cfg := &Config{Generation: GenerationConfig{Slots: map[string]SlotConfig{
		SlotDefault: {Provider: "googleai"},
	}}}
	applyEnvOverrides(cfg)

	assert.Equal(t, 9999, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "redis:6379", cfg.Redis.Address)
	assert.Equal(t, "apify", cfg.Transcript.Token)
	assert.Equal(t, "nats://nats:4222", cfg.Events.NATSURL)
	assert.Equal(t, "gemini", cfg.Generation.Slots[SlotDefault].APIKey)
	assert.Equal(t, "googleai", cfg.Generation.Slots[SlotDefault].Provider)
	assert.Equal(t, "quiz", cfg.Generation.Slots[SlotQuiz].APIKey)
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("ENV", "test")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Second, cfg.Generation.ShortTimeout)
	assert.Equal(t, 30*time.Second, cfg.Generation.LongTimeout)
	assert.Equal(t, 3, cfg.Generation.MaxAttempts)
	assert.Equal(t, 2*time.Second, cfg.Generation.Backoff)
	assert.Equal(t, 24*time.Hour, cfg.Transcript.CacheTTL)
	assert.Equal(t, "vidlearn.generation.completed", cfg.Events.Subject)
	assert.Equal(t, "googleai", cfg.Generation.Slots[SlotDefault].Provider)
	assert.Len(t, cfg.Generation.Slots, len(slotNames))
}
