package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  string
	DBPath      string
	Environment string
	// Tribunal service identity
	ServiceCode string
	ExUIBaseURL string
	// External scheduling service
	HmcAPIBaseURL string
	// Feature flags
	AdjournmentFlagEnabled bool
}

func Load() *Config {
	// Load .env file (ignore error if not present - use system env vars)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:             getEnv("SERVER_PORT", "8080"),
		DBPath:                 getEnv("DB_PATH", "db/app.db"),
		Environment:            getEnv("ENVIRONMENT", "development"),
		ServiceCode:            getEnv("SERVICE_CODE", "BBA3"),
		ExUIBaseURL:            getEnv("EXUI_BASE_URL", "http://localhost:3455"),
		HmcAPIBaseURL:          getEnv("HMC_API_BASE_URL", "http://localhost:8083"),
		AdjournmentFlagEnabled: getEnvBool("ADJOURNMENT_FLAG_ENABLED", true),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Printf("Using default value for %s: %s", key, defaultValue)
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	// Accept common boolean representations
	switch strings.ToLower(value) {
	case "true", "1", "yes", "on":
		return true
	case "false", "0", "no", "off":
		return false
	default:
		return defaultValue
	}
}
