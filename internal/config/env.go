package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Env holds process-level settings read from the environment.
// Command-line flags take precedence over these values.
type Env struct {
	DBPath   string
	FPS      int
	LogLevel string
	SSHAddr  string
}

// LoadEnv reads an optional .env file from the working directory and then
// the PACMAZE_* variables. A missing .env file is not an error.
func LoadEnv() Env {
	_ = godotenv.Load()

	return Env{
		DBPath:   getEnv("PACMAZE_DB", ""),
		FPS:      getEnvInt("PACMAZE_FPS", 30),
		LogLevel: getEnv("PACMAZE_LOG_LEVEL", "info"),
		SSHAddr:  getEnv("PACMAZE_SSH_ADDR", ":23234"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
