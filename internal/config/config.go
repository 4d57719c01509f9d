package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"pobsd/internal/parser"
)

type Config struct {
	DatabasePath   string
	ParseMode      parser.Mode
	LogLevel       string
	LogFile        string
	LogMaxSizeMB   int
	LogMaxBackups  int
	LogCompression bool
}

// Load reads .env (when present) and the environment. Invalid values fall back to defaults.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	mode, err := parser.ParseMode(getEnv("POBSD_PARSE_MODE", "relaxed"))
	if err != nil {
		log.Warn().Err(err).Msg("Invalid POBSD_PARSE_MODE, using relaxed")
	}

	return &Config{
		DatabasePath:   getEnv("POBSD_DB_PATH", "openbsd-games.db"),
		ParseMode:      mode,
		LogLevel:       getEnv("POBSD_LOG_LEVEL", "info"),
		LogFile:        getEnv("POBSD_LOG_FILE", ""),
		LogMaxSizeMB:   getEnvInt("POBSD_LOG_MAX_SIZE_MB", 10),
		LogMaxBackups:  getEnvInt("POBSD_LOG_MAX_BACKUPS", 3),
		LogCompression: getEnvBool("POBSD_LOG_COMPRESS", false),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid integer, using default")
		return fallback
	}
	return n
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		log.Warn().Str("key", key).Str("value", v).Msg("Invalid boolean, using default")
		return fallback
	}
	return b
}
