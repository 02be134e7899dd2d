package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
// Config is immutable after Load returns; concurrent reads are safe.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Debug    bool   `mapstructure:"debug"`
}

// LLMConfig contains all LLM integration related settings.
// Provider credentials are intentionally not validated here: a missing key
// surfaces as a generator initialization failure, which the HTTP front end
// reports through its health endpoint and the CLI reports as a fatal error.
type LLMConfig struct {
	Provider             string  `mapstructure:"provider"               validate:"required,oneof=anthropic gemini"`
	AnthropicAPIKey      string  `mapstructure:"anthropic_api_key"`
	GeminiAPIKey         string  `mapstructure:"gemini_api_key"`
	ModelName            string  `mapstructure:"model_name"             validate:"required"`
	MaxOutputTokens      int     `mapstructure:"max_output_tokens"      validate:"required,gt=0"`
	Temperature          float64 `mapstructure:"temperature"            validate:"gte=0,lte=1"`
	SystemPromptOverride string  `mapstructure:"system_prompt_override"`
	BaseURL              string  `mapstructure:"base_url"`
}
