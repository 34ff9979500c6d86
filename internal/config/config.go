package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string
	LogLevel       string

	DatabaseURL string
	RedisURL    string

	JWTSecret string

	MeiliSearchHost string
	MeiliMasterKey  string

	CloudinaryCloudName    string
	CloudinaryAPIKey       string
	CloudinaryAPISecret    string
	CloudinaryUploadFolder string

	RapidAPIKey  string
	RapidAPIHost string

	MoralisAPIKey  string
	MoralisBaseURL string

	VeridaAPIBaseURL string

	FetchTimeout   time.Duration
	RateLimitScore time.Duration
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		JWTSecret: os.Getenv("JWT_SECRET"),

		MeiliSearchHost: getEnv("MEILISEARCH_HOST", "http://localhost:7700"),
		MeiliMasterKey:  os.Getenv("MEILI_MASTER_KEY"),

		CloudinaryCloudName:    os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:       os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret:    os.Getenv("CLOUDINARY_API_SECRET"),
		CloudinaryUploadFolder: getEnv("CLOUDINARY_UPLOAD_FOLDER", "fomoscore_badges"),

		RapidAPIKey:  os.Getenv("RAPIDAPI_KEY"),
		RapidAPIHost: getEnv("RAPIDAPI_HOST", "twitter241.p.rapidapi.com"),

		MoralisAPIKey:  os.Getenv("MORALIS_API_KEY"),
		MoralisBaseURL: getEnv("MORALIS_BASE_URL", "https://deep-index.moralis.io/api/v2.2"),

		VeridaAPIBaseURL: getEnv("VERIDA_API_ENDPOINT", "https://api.verida.ai/api/rest/v1"),
	}

	// Parsing durations
	var err error
	cfg.FetchTimeout, err = parseDuration(getEnv("FETCH_TIMEOUT", "12s"))
	if err != nil {
		return nil, fmt.Errorf("invalid FETCH_TIMEOUT: %w", err)
	}
	cfg.RateLimitScore, err = parseDuration(getEnv("RATE_LIMIT_SCORE", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid RATE_LIMIT_SCORE: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}
