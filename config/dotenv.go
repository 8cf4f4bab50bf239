package config

import (
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// DefaultDotEnvPaths are tried in order when no explicit path is given.
var DefaultDotEnvPaths = []string{
	".env",                      // Current directory
	filepath.Join("..", ".env"), // Parent directory
	filepath.Join("backend", ".env"),
}

// LoadDotEnv loads the first readable .env file. Variables already present in
// the environment are never overwritten. It returns the path that was loaded.
func LoadDotEnv(paths ...string) (string, bool) {
	if len(paths) == 0 {
		paths = DefaultDotEnvPaths
	}
	for _, envPath := range paths {
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded .env file")
			return envPath, true
		}
	}
	log.Warn().Msg("Failed to load .env file from any expected location, using existing environment variables")
	return "", false
}
