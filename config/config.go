package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config reads a key from .env, falling back to the process environment.
func Config(key string) string {
	godotenv.Load(".env")
	return os.Getenv(key)
}
