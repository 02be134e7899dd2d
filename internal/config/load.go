package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Default values applied when neither environment nor config file provides a
// setting. The model, token ceiling, and temperature defaults match the
// provider defaults the service has always used.
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultProvider        = "anthropic"
	DefaultModelName       = "claude-3-5-sonnet-20241022"
	DefaultMaxOutputTokens = 2048
	DefaultTemperature     = 0.7
)

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("server.debug", false)
	v.SetDefault("llm.provider", DefaultProvider)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.max_output_tokens", DefaultMaxOutputTokens)
	v.SetDefault("llm.temperature", DefaultTemperature)
	v.SetDefault("llm.system_prompt_override", "")
	v.SetDefault("llm.base_url", "")

	// Optional config file in the working directory
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		// A missing config file is fine; anything else is a real error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables with PROMPTGEN_ prefix, e.g. PROMPTGEN_SERVER_PORT
	v.SetEnvPrefix("PROMPTGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Provider credentials are also read from their conventional variable
	// names so existing .env files keep working.
	if err := v.BindEnv("llm.anthropic_api_key", "PROMPTGEN_LLM_ANTHROPIC_API_KEY", "ANTHROPIC_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind anthropic API key: %w", err)
	}
	if err := v.BindEnv("llm.gemini_api_key", "PROMPTGEN_LLM_GEMINI_API_KEY", "GEMINI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind gemini API key: %w", err)
	}
	// PORT is honored for compatibility with common hosting environments.
	if err := v.BindEnv("server.port", "PROMPTGEN_SERVER_PORT", "PORT"); err != nil {
		return nil, fmt.Errorf("failed to bind server port: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
