package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"classwindow/utils"
)

// Config holds the application configuration
type Config struct {
	Port              string
	AdminPort         string
	DataDir           string
	JWTSecret         string
	AdminPasswordHash string
}

// ConfigInstance is the global configuration instance
var ConfigInstance *Config

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	config := &Config{
		Port:      os.Getenv("PORT"),
		AdminPort: os.Getenv("ADMIN_PORT"),
		DataDir:   os.Getenv("DATA_DIR"),
		JWTSecret: os.Getenv("JWT_SECRET"),
	}

	if config.Port == "" {
		config.Port = "8080"
	}
	if config.AdminPort == "" {
		config.AdminPort = "8081"
	}
	if config.DataDir == "" {
		config.DataDir = "data"
	}

	if config.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}

	// The admin dashboard credential is hashed at startup; class passwords
	// stay plaintext inside the document, that is part of the wire contract.
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required")
	}
	hash, err := utils.HashPassword(adminPassword)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}
	config.AdminPasswordHash = hash

	return config, nil
}
