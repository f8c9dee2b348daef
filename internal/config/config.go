package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
	LLM    LLMConfig    `mapstructure:"llm"    validate:"required"`
	Render RenderConfig `mapstructure:"render"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// LLMConfig contains all completion-provider related settings.
type LLMConfig struct {
	// GroqAPIKey is the bearer credential for the completion endpoint. It may
	// be empty at startup; requests then fail before any network call.
	GroqAPIKey string `mapstructure:"groq_api_key"`

	// ModelName is the provider-side model identifier.
	ModelName string `mapstructure:"model_name" validate:"required"`

	// Endpoint is the chat-completions URL.
	Endpoint string `mapstructure:"endpoint" validate:"required,url"`

	// RequestTimeoutSeconds bounds each completion call. There is no
	// cancellation path once a request is in flight.
	RequestTimeoutSeconds int `mapstructure:"request_timeout_seconds" validate:"required,gt=0"`
}

// RenderConfig contains PDF rendering settings.
type RenderConfig struct {
	// LogoPath is the relative path to the logo image asset. Its absence
	// silently degrades title and header rendering but never fails a request.
	LogoPath string `mapstructure:"logo_path"`
}
