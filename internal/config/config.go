package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

type Config struct {
	HTTPPort    string
	DatabaseURL string
	LogLevel    string
	AppEnv      string
	JWTSecret   string

	LLMProvider   string
	GeminiAPIKey  string
	OpenAIAPIKey  string
	OpenAIBaseURL string
	ChatModel     string

	GenerationMaxTokens int
	GenerationTimeout   time.Duration

	KnowledgeBasePath string
	Location          *time.Location

	// EnvFileLoaded reports whether a .env file was found.
	EnvFileLoaded bool
}

// Load reads a .env file if present, then builds the Config from the
// environment. Required values missing for the chosen provider are reported
// as an error instead of terminating the process.
func Load() (*Config, error) {
	loaded := godotenv.Load() == nil

	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		DatabaseURL: getEnv("DATABASE_URL", "wellness.db"),
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		AppEnv:      getEnv("APP_ENV", "development"),
		JWTSecret:   getEnv("JWT_SECRET", ""),

		LLMProvider:   strings.ToLower(getEnv("LLM_PROVIDER", ProviderGemini)),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", ""),
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL: getEnv("OPENAI_BASE_URL", ""),
		ChatModel:     getEnv("CHAT_MODEL", ""),

		GenerationMaxTokens: getEnvAsInt("GENERATION_MAX_TOKENS", 250),
		GenerationTimeout:   getEnvAsDuration("GENERATION_TIMEOUT", 30*time.Second),

		KnowledgeBasePath: getEnv("KNOWLEDGE_BASE_PATH", ""),
		EnvFileLoaded:     loaded,
	}

	loc, err := loadLocation(getEnv("TIMEZONE", ""))
	if err != nil {
		return nil, err
	}
	cfg.Location = loc

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET environment variable is required")
	}
	switch c.LLMProvider {
	case ProviderGemini:
		if c.GeminiAPIKey == "" {
			return fmt.Errorf("GEMINI_API_KEY environment variable is required")
		}
	case ProviderOpenAI:
		if c.OpenAIAPIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable is required")
		}
	default:
		return fmt.Errorf("unsupported LLM_PROVIDER: %q", c.LLMProvider)
	}
	if c.GenerationMaxTokens <= 0 {
		return fmt.Errorf("GENERATION_MAX_TOKENS must be positive, got %d", c.GenerationMaxTokens)
	}
	if c.GenerationTimeout <= 0 {
		return fmt.Errorf("GENERATION_TIMEOUT must be positive, got %s", c.GenerationTimeout)
	}
	return nil
}

// loadLocation resolves the timezone used for every calendar-date
// computation. Empty or "Local" means the host's local zone.
func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", name, err)
	}
	return loc, nil
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}
