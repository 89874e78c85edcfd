package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// OpenAIAPIKey is optional. When absent or shorter than the minimum
	// credential length the service answers from the canned offline
	// responses instead of calling the hosted API.
	OpenAIAPIKey   string
	OpenAIModel    string
	OpenAIEndpoint string
	OpenAITimeout  time.Duration
	Temperature    float64

	DataDir     string
	DatabaseURL string
	HTTPPort    string
	LogLevel    string
	LogFormat   string
	JWTSecret   string
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	AppConfig = Config{
		OpenAIAPIKey:   getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:    getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAIEndpoint: getEnv("OPENAI_ENDPOINT", ""),
		OpenAITimeout:  time.Duration(getEnvAsInt("OPENAI_TIMEOUT_SECONDS", 60)) * time.Second,
		Temperature:    getEnvAsFloat("OPENAI_TEMPERATURE", 0.7),
		DataDir:        getEnv("DATA_DIR", "output"),
		DatabaseURL:    getEnv("DATABASE_URL", "einvoice_assistant.db"),
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "json"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
	}

	if AppConfig.JWTSecret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}
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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
