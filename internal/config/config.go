package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server settings
	Port string `json:"port"`
	Host string `json:"host"`
	Env  string `json:"env"`

	// OpenAI API settings
	OpenAIAPIKey   string `json:"-"` // Don't expose in JSON
	EmbeddingModel string `json:"embedding_model"`
	ChatModel      string `json:"chat_model"`

	// Wikipedia settings
	WikipediaAPIURL string `json:"wikipedia_api_url"`

	// CORS settings
	CORSOrigins []string `json:"cors_origins"`

	// Embedding cache settings
	CacheTTLHours int `json:"cache_ttl_hours"`
}

// Load reads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	_ = godotenv.Load()

	config := &Config{
		Port:            getEnvOrDefault("PORT", "8080"),
		Host:            getEnvOrDefault("HOST", "0.0.0.0"),
		Env:             getEnvOrDefault("ENV", "development"),
		OpenAIAPIKey:    getEnvOrDefault("OPENAI_API_KEY", ""),
		EmbeddingModel:  getEnvOrDefault("EMBEDDING_MODEL", "text-embedding-3-small"),
		ChatModel:       getEnvOrDefault("CHAT_MODEL", "gpt-3.5-turbo"),
		WikipediaAPIURL: getEnvOrDefault("WIKIPEDIA_API_URL", "https://en.wikipedia.org/w/api.php"),
		CacheTTLHours:   getEnvIntOrDefault("CACHE_TTL_HOURS", 24),
	}

	// In production only the configured origins may call the API; in
	// development any origin is allowed.
	if config.Env == "production" {
		for _, origin := range strings.Split(getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000"), ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				config.CORSOrigins = append(config.CORSOrigins, origin)
			}
		}
	} else {
		config.CORSOrigins = []string{"*"}
	}

	return config, config.validate()
}

// validate checks if required configuration values are present
func (c *Config) validate() error {
	if c.OpenAIAPIKey == "" {
		return &ConfigError{Field: "OPENAI_API_KEY", Message: "OpenAI API key is required"}
	}
	if c.CacheTTLHours <= 0 {
		return &ConfigError{Field: "CACHE_TTL_HOURS", Message: "must be a positive number of hours"}
	}
	return nil
}

// getEnvOrDefault returns environment variable value or default if not set
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// ConfigError represents a configuration error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
