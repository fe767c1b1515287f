package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is loaded once in main and passed down explicitly.
type Config struct {
	Port          string
	GinMode       string
	MongoURI      string
	MongoDatabase string
	RabbitMQURI   string
	EventExchange string
	JWTSecret     string
	AIBaseURL     string
	AIAPIKey      string
	AIModel       string
	CORSOrigins   string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	return &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		GinMode:       getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:      getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase: getEnvOrDefault("MONGO_DATABASE", "exam_service"),
		RabbitMQURI:   getEnvOrDefault("RABBITMQ_URI", ""),
		EventExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", ""),
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		AIBaseURL:     getEnvOrDefault("AI_BASE_URL", ""),
		AIAPIKey:      getEnvOrDefault("AI_API_KEY", ""),
		AIModel:       getEnvOrDefault("AI_MODEL", "gpt-4o-mini"),
		CORSOrigins:   getEnvOrDefault("CORS_ORIGINS", "http://localhost:3000"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
