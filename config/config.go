package config

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	AppName     string
	Env         string
	LogLevel    string
	APIKey      string
	DatabaseURL string
}

var (
	cfg     *Config
	cfgOnce sync.Once
)

// Load returns the application configuration, reading environment variables
// on first call and returning the same instance afterwards.
func Load() *Config {
	cfgOnce.Do(func() {
		// A missing .env file is fine; real environment variables win.
		_ = godotenv.Load()

		cfg = &Config{
			AppName:     getEnv("APP_NAME", "payments-service"),
			Env:         getEnv("ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "INFO"),
			APIKey:      getEnv("API_KEY", "dev-secret"),
			DatabaseURL: getEnv("DATABASE_URL", "payments.db"),
		}
	})
	return cfg
}

// Reset clears the cached configuration so the next Load call re-reads the
// environment. Intended for tests only.
func Reset() {
	cfg = nil
	cfgOnce = sync.Once{}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
