package config

import (
	"log/slog"

	"github.com/joho/godotenv"
)

// envFiles are tried in order; the first one that loads wins.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads KEY=VALUE pairs from the first readable env file.
// Existing process environment variables are not overwritten.
func loadEnvFile() {
	for _, p := range envFiles {
		if err := godotenv.Load(p); err == nil {
			slog.Debug("Loaded environment variables", "file", p)
			return
		}
	}
}
