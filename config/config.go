package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"

	"ai_site_builder/internal/llm"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
type Config struct {
	// Server
	ServerAddress      string   `mapstructure:"SERVER_ADDRESS"`
	AppEnv             string   `mapstructure:"APP_ENV"` // "production" switches gin to release mode
	CORSAllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"` // "console" or "json"

	// AI
	LLMProvider   string `mapstructure:"LLM_PROVIDER"` // "gemini" or "openai"
	GeminiAPIKey  string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`
	GeminiBaseURL string `mapstructure:"GEMINI_BASE_URL"`
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`

	// Generation
	GenerationTimeout time.Duration `mapstructure:"GENERATION_TIMEOUT"` // 0 leaves model calls unbounded
	EnhanceSanitize   bool          `mapstructure:"ENHANCE_SANITIZE"`

	// ConfigFile is the file that was read, empty when only the environment was used.
	ConfigFile string `mapstructure:"-"`
}

var defaults = map[string]interface{}{
	"SERVER_ADDRESS":       ":8080",
	"APP_ENV":              "development",
	"CORS_ALLOWED_ORIGINS": []string{"*"},
	"LOG_LEVEL":            "info",
	"LOG_FORMAT":           "console",
	"LLM_PROVIDER":         llm.ProviderGemini,
	"GEMINI_API_KEY":       "",
	"GEMINI_MODEL":         "gemini-1.5-flash",
	"GEMINI_BASE_URL":      "",
	"OPENAI_API_KEY":       "",
	"OPENAI_MODEL":         "gpt-4o",
	"OPENAI_BASE_URL":      "",
	"GENERATION_TIMEOUT":   "0s",
	"ENHANCE_SANITIZE":     true,
}

// LoadConfig reads config.yaml from path (if present) and the environment.
// Environment variables win over the file.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// AutomaticEnv only resolves keys viper already knows about.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}
	config.ConfigFile = v.ConfigFileUsed()

	if config.GenerationTimeout < 0 {
		return Config{}, fmt.Errorf("GENERATION_TIMEOUT must not be negative, got %s", config.GenerationTimeout)
	}

	return config, nil
}

// ProviderSettings returns the credentials for the selected LLM provider.
func (c Config) ProviderSettings() llm.ProviderConfig {
	if c.LLMProvider == llm.ProviderOpenAI {
		return llm.ProviderConfig{
			APIKey:  c.OpenAIKey,
			Model:   c.OpenAIModel,
			BaseURL: c.OpenAIBaseURL,
		}
	}
	return llm.ProviderConfig{
		APIKey:  c.GeminiAPIKey,
		Model:   c.GeminiModel,
		BaseURL: c.GeminiBaseURL,
	}
}
