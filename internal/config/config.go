package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver          string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	RedisHost         string
	RedisPort         string
	SessionSecret     string
	ManagerAccessCode string
	GinMode           string
	HTTPAddr          string
}

func Load() *Config {
	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	return &Config{
		DBDriver:          getEnv("DB_DRIVER", "mysql"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "3306"),
		DBUser:            getEnv("DB_USER", "clientdesk"),
		DBPassword:        getEnv("DB_PASSWORD", "clientdesk"),
		DBName:            getEnv("DB_NAME", "clientdesk"),
		RedisHost:         getEnv("REDIS_HOST", ""),
		RedisPort:         getEnv("REDIS_PORT", "6379"),
		SessionSecret:     getEnv("SESSION_SECRET", "default-secret-key-change-me"),
		ManagerAccessCode: getEnv("MANAGER_ACCESS_CODE", "test"),
		GinMode:           getEnv("GIN_MODE", "debug"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":8080"),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
