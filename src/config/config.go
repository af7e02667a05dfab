package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port                 string
	LogLevel             string
	MaxUploadSizeBytes   int64
	DatasetCacheExpiry   time.Duration
	CacheCleanupInterval time.Duration
	AllowedOrigins       []string
}

var Cfg *AppConfig

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found or error loading .env file. Relying on OS environment variables and defaults. Error (if any):", err)
	} else {
		log.Println(".env file loaded successfully.")
	}

	log.Println("Loading application configuration...")

	maxUploadSizeBytesStr := getEnv("MAX_UPLOAD_SIZE_BYTES", "10485760")
	maxUploadSizeBytes, err := strconv.ParseInt(maxUploadSizeBytesStr, 10, 64)
	if err != nil {
		log.Printf("WARNING: Invalid MAX_UPLOAD_SIZE_BYTES format '%s'. Using default 10MB. Error: %v", maxUploadSizeBytesStr, err)
		maxUploadSizeBytes = 10 * 1024 * 1024
	}

	allowedOriginsStr := getEnv("ALLOWED_ORIGINS", "http://localhost:3000")
	var allowedOrigins []string
	for _, origin := range strings.Split(allowedOriginsStr, ",") {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			allowedOrigins = append(allowedOrigins, trimmed)
		}
	}

	Cfg = &AppConfig{
		Port:                 getEnv("PORT", "8080"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		MaxUploadSizeBytes:   maxUploadSizeBytes,
		DatasetCacheExpiry:   getEnvAsDuration("DATASET_CACHE_EXPIRY", 2*time.Hour),
		CacheCleanupInterval: getEnvAsDuration("CACHE_CLEANUP_INTERVAL", 30*time.Minute),
		AllowedOrigins:       allowedOrigins,
	}

	log.Printf("Configuration loaded: Port=%s, LogLevel=%s, MaxUploadSizeBytes=%d, DatasetCacheExpiry=%s",
		Cfg.Port, Cfg.LogLevel, Cfg.MaxUploadSizeBytes, Cfg.DatasetCacheExpiry)
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	log.Printf("Environment variable %s not set, using default: %s", key, fallback)
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		log.Printf("Duration value for %s not set or empty, using default: %s", key, fallback.String())
		return fallback
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	log.Printf("Invalid duration value for %s ('%s'), using default: %s", key, valueStr, fallback.String())
	return fallback
}
