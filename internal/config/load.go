package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Defaults applied when neither environment nor config file provides a value.
const (
	DefaultPort           = 8080
	DefaultLogLevel       = "info"
	DefaultModelName      = "llama-3.1-8b-instant"
	DefaultEndpoint       = "https://api.groq.com/openai/v1/chat/completions"
	DefaultTimeoutSeconds = 90
	DefaultLogoPath       = "assets/logo.png"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from config files; keys
// use the SPRINTSLIDES_ prefix with underscores, e.g. SPRINTSLIDES_SERVER_PORT.
// The provider credential is additionally read from the plain GROQ_API_KEY
// variable. Returns a populated Config struct or an error if loading or
// validation fails.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", DefaultPort)
	v.SetDefault("server.log_level", DefaultLogLevel)
	v.SetDefault("llm.model_name", DefaultModelName)
	v.SetDefault("llm.endpoint", DefaultEndpoint)
	v.SetDefault("llm.request_timeout_seconds", DefaultTimeoutSeconds)
	v.SetDefault("render.logo_path", DefaultLogoPath)

	v.SetEnvPrefix("SPRINTSLIDES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// The credential keeps its provider-native name for deploy environments
	// that already export it.
	if err := v.BindEnv("llm.groq_api_key", "SPRINTSLIDES_LLM_GROQ_API_KEY", "GROQ_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind credential env var: %w", err)
	}

	// Optional config file in the working directory.
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}
