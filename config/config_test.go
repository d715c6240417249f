package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai_site_builder/internal/llm"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
	assert.Equal(t, llm.ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "gemini-1.5-flash", cfg.GeminiModel)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, time.Duration(0), cfg.GenerationTimeout)
	assert.True(t, cfg.EnhanceSanitize)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Empty(t, cfg.ConfigFile)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9090")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("GENERATION_TIMEOUT", "45s")
	t.Setenv("ENHANCE_SANITIZE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000,https://builder.example.com")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.ServerAddress)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, 45*time.Second, cfg.GenerationTimeout)
	assert.False(t, cfg.EnhanceSanitize)
	assert.Equal(t, []string{"http://localhost:3000", "https://builder.example.com"}, cfg.CORSAllowedOrigins)

	assert.Equal(t, llm.ProviderConfig{APIKey: "sk-test", Model: "gpt-4o"}, cfg.ProviderSettings())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	yaml := "GEMINI_API_KEY: file-key\nGEMINI_MODEL: gemini-1.5-pro\nLOG_LEVEL: debug\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.ConfigFile)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, llm.ProviderConfig{APIKey: "file-key", Model: "gemini-1.5-pro"}, cfg.ProviderSettings())
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Run("bad yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("SERVER_ADDRESS: [unclosed"), 0o600))

		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("GENERATION_TIMEOUT", "-1s")

		_, err := LoadConfig(t.TempDir())
		assert.Error(t, err)
	})
}
