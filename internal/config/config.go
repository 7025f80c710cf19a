package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string
	Seed      bool

	// Fitbit configuration
	FitbitBaseURL     string
	FitbitAccessToken string
	FitbitTimeout     time.Duration
	// CredentialsPath overrides the token file location; empty means the default.
	CredentialsPath string

	// OpenAI configuration
	OpenAIAPIKey             string
	OpenAISleepInsightsModel string

	// Langfuse configuration
	LangfuseBaseURL   string
	LangfusePublicKey string
	LangfuseSecretKey string
	LangfuseEnv       string
	// LangfusePromptName selects a managed system prompt; empty keeps the built-in one.
	LangfusePromptName  string
	LangfusePromptLabel string

	// TraceSampleRatio is the fraction of root spans exported, in [0, 1].
	TraceSampleRatio float64
}

func Load() *Config {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	return &Config{
		Port:      getEnv("PORT", "8080"),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
		Seed:      getEnv("SEED", "false") == "true",

		FitbitBaseURL:     getEnv("FITBIT_API_BASE_URL", "https://api.fitbit.com"),
		FitbitAccessToken: getEnv("FITBIT_ACCESS_TOKEN", ""),
		FitbitTimeout:     getDuration("FITBIT_TIMEOUT", 30*time.Second),
		CredentialsPath:   getEnv("CREDENTIALS_PATH", ""),

		OpenAIAPIKey:             getEnv("OPENAI_API_KEY", ""),
		OpenAISleepInsightsModel: getEnv("OPENAI_SLEEP_INSIGHTS_MODEL", "gpt-4o-mini"),

		LangfuseBaseURL:   getEnv("LANGFUSE_BASE_URL", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseEnv:       getEnv("LANGFUSE_ENV", "development"),

		LangfusePromptName:  getEnv("LANGFUSE_PROMPT_NAME", ""),
		LangfusePromptLabel: getEnv("LANGFUSE_PROMPT_LABEL", "production"),

		TraceSampleRatio: getRatio("TRACE_SAMPLE_RATIO", 1),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDuration parses values like "45s" or "2m"; invalid values fall back to the default.
func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}

func getRatio(key string, defaultValue float64) float64 {
	r, err := strconv.ParseFloat(os.Getenv(key), 64)
	if err != nil || r < 0 || r > 1 {
		return defaultValue
	}
	return r
}
