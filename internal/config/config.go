// Package config loads runtime settings from the environment and
// conversion options from YAML files.
package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// Config holds settings read from the environment.
type Config struct {
	// LogLevel is the zerolog level name.
	LogLevel string
	// LogFile is an optional file receiving a copy of the logs.
	LogFile string
	// Token is an OAuth access token for the Sheets API.
	Token string
	// TokenType is the type of Token.
	TokenType string
	// Credentials is a service account key in JSON form.
	Credentials string
	// CredentialsFile is the path of a service account key file.
	CredentialsFile string
	// Addr is the listen address of the HTTP server.
	Addr string
}

// Load reads a .env file when present and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return &Config{
		LogLevel:        getEnvString("GSJSON_LOG_LEVEL", "info"),
		LogFile:         getEnvString("GSJSON_LOG_FILE", ""),
		Token:           getEnvString("GSJSON_TOKEN", ""),
		TokenType:       getEnvString("GSJSON_TOKEN_TYPE", "Bearer"),
		Credentials:     getEnvString("GOOGLE_SERVICE_ACCOUNT_SECURE_CREDENTIALS", ""),
		CredentialsFile: getEnvString("GSJSON_CREDENTIALS_FILE", ""),
		Addr:            getEnvString("GSJSON_ADDR", ":8080"),
	}, nil
}

func getEnvString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
