package config

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
)

// Load reads configuration from the environment, falling back to a .env
// file when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug("No .env file found, relying on environment variables")
	}

	dbName, err := getEnv("DB_NAME")
	if err != nil {
		return nil, err
	}
	port, err := getEnv("PORT")
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		DBName:        dbName,
		MigrationsDir: getEnvOrDefault("MIGRATIONS_DIR", "./migrations"),
		Port:          port,
		Slack: SlackConfig{
			Token:     getEnvOrDefault("SLACK_TOKEN", ""),
			ChannelID: getEnvOrDefault("SLACK_CHANNEL_ID", ""),
		},
		Turso: TursoConfig{
			PrimaryURL: getEnvOrDefault("TURSO_PRIMARY_URL", ""),
			AuthToken:  getEnvOrDefault("TURSO_AUTH_TOKEN", ""),
		},
		Gemini: GeminiConfig{
			APIKey: getEnvOrDefault("GEMINI_API_KEY", ""),
			Model:  getEnvOrDefault("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		ProjectID: getEnvOrDefault("GCP_PROJECT", ""),
	}
	return cfg, nil
}

func getEnv(key string) (string, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnvOrDefault(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
