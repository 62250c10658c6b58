package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Resend (transactional email) configuration
	ResendAPIKey      string
	FromAddress       string
	NotificationEmail string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds         int
	RateLimitConsultationThreshold int
	RateLimitGlobalThreshold       int
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when the file is absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Resend configuration
		ResendAPIKey:      getEnv("RESEND_API_KEY", ""),
		FromAddress:       getEnv("FROM_ADDRESS", "LMK Tree Services <kyle@lmktreeservices.com>"),
		NotificationEmail: getEnv("NOTIFICATION_EMAIL", "kyle@lmktreeservices.com"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:         getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),        // 1 minute window
		RateLimitConsultationThreshold: getEnvInt("RATE_LIMIT_CONSULTATION_THRESHOLD", 5), // 5 submissions per window
		RateLimitGlobalThreshold:       getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),     // 100 requests per window
	}

	if cfg.ResendAPIKey == "" {
		log.Println("WARNING: RESEND_API_KEY is missing. Consultation emails cannot be sent.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
