package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "REQUEST_TIMEOUT", "AI_PROVIDER", "AI_MODEL", "AI_TIMEOUT",
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENROUTER_API_KEY", "OPENROUTER_BASE_URL", "LOG_LEVEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ProviderOpenAI, cfg.AI.Provider)
	assert.Equal(t, "gpt-4.1-nano", cfg.AI.Model)
	assert.Equal(t, 60*time.Second, cfg.AI.Timeout)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, 120*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int64(1<<20), cfg.Server.MaxBodyBytes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "sk-test-1234567890", cfg.APIKey())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")
	t.Setenv("PORT", "8081")
	t.Setenv("AI_MODEL", "gpt-4o-mini")
	t.Setenv("AI_TIMEOUT", "5s")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.Server.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model)
	assert.Equal(t, 5*time.Second, cfg.AI.Timeout)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_MissingCredential(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "OPENAI_API_KEY is required")
}

func TestLoadConfig_OpenRouter(t *testing.T) {
	t.Run("requires its own key", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_PROVIDER", "OpenRouter")
		t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "OPENROUTER_API_KEY is required")
	})

	t.Run("valid", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("AI_PROVIDER", "openrouter")
		t.Setenv("OPENROUTER_API_KEY", "or-key-abcdefgh")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, ProviderOpenRouter, cfg.AI.Provider)
		assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouter.BaseURL)
		assert.Equal(t, "or-key-abcdefgh", cfg.APIKey())
	})
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("AI_PROVIDER", "gemini")
	t.Setenv("OPENAI_API_KEY", "sk-test-1234567890")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported ai provider")
}

func TestMaskAPIKey(t *testing.T) {
	assert.Equal(t, "****", MaskAPIKey(""))
	assert.Equal(t, "****", MaskAPIKey("short"))
	assert.Equal(t, "sk-a...wxyz", MaskAPIKey("sk-abcdefghijklmnopqrstuvwxyz"))
}
