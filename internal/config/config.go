package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      *AppConfig
	Database *DatabaseConfig
	Storage  *StorageConfig
	CORS     *CORSConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
	Port        int
	LogLevel    string
}

type CORSConfig struct {
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Real environment variables win over .env entries
	_ = godotenv.Load(".env")

	config := &Config{
		App:      loadAppConfig(),
		Database: loadDatabaseConfig(),
		Storage:  loadStorageConfig(),
		CORS:     loadCORSConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:        envString("APP_NAME", "RentWheels"),
		Version:     envString("APP_VERSION", "1.0.0"),
		Environment: Environment(),
		Port:        envInt("PORT", 5000),
		LogLevel:    envString("LOG_LEVEL", "info"),
	}
}

func loadCORSConfig() *CORSConfig {
	return &CORSConfig{
		AllowedOrigins: envList("CORS_ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"https://rentwheels-web.vercel.app",
		}),
	}
}

// Environment returns the APP_ENV value, defaulting to development.
func Environment() string {
	return envString("APP_ENV", "development")
}

func IsProduction() bool {
	return Environment() == "production"
}

func IsDevelopment() bool {
	return Environment() == "development"
}

// envString treats an empty variable the same as an unset one.
func envString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// envInt falls back on malformed values rather than failing startup.
func envInt(key string, fallback int) int {
	v, err := strconv.Atoi(envString(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(envString(key, ""))
	if err != nil {
		return fallback
	}
	return v
}

func envList(key string, fallback []string) []string {
	v := envString(key, "")
	if v == "" {
		return fallback
	}
	return strings.Split(v, ",")
}
