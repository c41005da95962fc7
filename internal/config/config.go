package config

import (
	"os"
	"strconv"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port        string
	DatabaseDSN string
	Env         string
	AppName     string

	SessionSecret      string
	AdminSessionSecret string

	// Optional Redis backend for the advisory counts cache; empty means
	// the in-process memory backend.
	RedisAddr string
}

// Load loads configuration from environment with sensible defaults.
// Precedence: explicit env var > .env file (if loaded by caller) > default.
func Load() Config {
	cfg := Config{}
	cfg.Port = getEnv("PORT", "8080")
	cfg.DatabaseDSN = getEnv("DATABASE_DSN", "file:archive.db?cache=shared")
	cfg.Env = getEnv("APP_ENV", "development")
	cfg.AppName = getEnv("APP_NAME", "Quill Archive")
	cfg.SessionSecret = getEnv("SESSION_SECRET", "devsessionsecret")
	cfg.AdminSessionSecret = getEnv("ADMIN_SESSION_SECRET", "devadminsecret")
	cfg.RedisAddr = os.Getenv("REDIS_ADDR")
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ParseBool reads an env var as bool with default.
func ParseBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			log.Warn().Str("key", key).Str("value", v).Msg("invalid boolean env var")
			return def
		}
		return b
	}
	return def
}
