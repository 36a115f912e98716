package config

import (
	"errors"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	SecretKey string

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig reads the configuration from environment variables, loading a
// local .env file first when one exists.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("no .env file found", "err", err)
	}

	cfg := &Config{
		// Database Configuration
		MongoURI: getEnvOrDefault("MONGODB_URI", "mongodb://localhost:27017"),
		DBName:   getEnvOrDefault("DB_NAME", "movies"),

		// Security Configuration
		SecretKey: os.Getenv("SECRET_KEY"),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  getEnvOrDefault("GO_ENV", "development"),
	}

	if cfg.SecretKey == "" {
		return nil, errors.New("SECRET_KEY must be set, it signs the session cookie")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
