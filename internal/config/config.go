package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env                string
	HTTPAddr           string
	DataFile           string
	JWTSecret          string
	JWTExpiry          time.Duration
	AllowedOrigins     []string
	RateLimitPerMinute int
	RequestTimeout     time.Duration
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:                getEnv("ENV", "dev"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8080"),
		DataFile:           getEnv("DATA_FILE", "data.json"),
		JWTSecret:          getEnv("JWT_SECRET", "change-me"),
		JWTExpiry:          getDurationEnv("JWT_EXPIRES_IN", 72*time.Hour),
		AllowedOrigins:     splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173")),
		RateLimitPerMinute: getIntEnv("RATE_LIMIT_PER_MIN", 30),
		RequestTimeout:     getDurationEnv("REQUEST_TIMEOUT", 5*time.Second),
	}

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func getIntEnv(key string, fallback int) int {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	val := strings.TrimSpace(os.Getenv(key))
	if val == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(input string) []string {
	if strings.TrimSpace(input) == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	var out []string
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
