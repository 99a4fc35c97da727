package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StorageMongo    = "mongo"
	StoragePostgres = "postgres"
)

type Config struct {
	Port     string
	Env      string
	LogLevel string

	StorageBackend string
	MongoURL       string
	DBName         string
	PostgresDSN    string

	CORSOrigins []string

	OAuthSessionURL string
	SessionTTL      time.Duration

	AIProvider    string
	LLMAPIKey     string
	LLMBaseURL    string
	LLMModel      string
	GeminiApiKey  string
	OllamaBaseURL string
	OllamaModel   string

	KafkaBrokers     []string
	KafkaTopicPrefix string
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	sessionTTL := 7 * 24 * time.Hour
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		if parsed, err := time.ParseDuration(ttl); err == nil {
			sessionTTL = parsed
		}
	}

	llmKey := getEnv("LLM_API_KEY", "")
	if llmKey == "" {
		llmKey = getEnv("EMERGENT_LLM_KEY", "")
	}

	return &Config{
		Port:             getEnv("PORT", "8001"),
		Env:              getEnv("APP_ENV", "development"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		StorageBackend:   getEnv("STORAGE_BACKEND", StorageMongo),
		MongoURL:         getEnv("MONGO_URL", "mongodb://localhost:27017"),
		DBName:           getEnv("DB_NAME", "fitness_tracker"),
		PostgresDSN:      getEnv("POSTGRES_DSN", ""),
		CORSOrigins:      splitAndTrim(getEnv("CORS_ORIGINS", "*")),
		OAuthSessionURL:  getEnv("OAUTH_SESSION_URL", ""),
		SessionTTL:       sessionTTL,
		AIProvider:       getEnv("AI_PROVIDER", "openai"),
		LLMAPIKey:        llmKey,
		LLMBaseURL:       getEnv("LLM_BASE_URL", ""),
		LLMModel:         getEnv("LLM_MODEL", "gpt-4o"),
		GeminiApiKey:     getEnv("GEMINI_API_KEY", ""),
		OllamaBaseURL:    getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
		OllamaModel:      getEnv("OLLAMA_MODEL", "llama3"),
		KafkaBrokers:     splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		KafkaTopicPrefix: getEnv("KAFKA_TOPIC_PREFIX", "fitness"),
	}
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case StorageMongo:
		if c.MongoURL == "" || c.DBName == "" {
			return errors.New("MONGO_URL and DB_NAME are required when STORAGE_BACKEND=mongo")
		}
	case StoragePostgres:
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: mongo, postgres")
	}
	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
