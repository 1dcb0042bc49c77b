package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the environment-driven settings for the service.
type Config struct {
	Port             string
	DBPath           string
	GinMode          string
	LogLevel         string
	LogEncoding      string
	StatsCacheTTL    time.Duration
	ReminderEnabled  bool
	ReminderInterval time.Duration
}

// Load reads configuration from the environment, after loading a .env
// file when one is present. Every setting has a working default.
func Load() *Config {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8008"),
		DBPath:           getEnv("DB_PATH", "task-tracker.db"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogEncoding:      getEnv("LOG_ENCODING", "json"),
		StatsCacheTTL:    getDuration("STATS_CACHE_TTL", 30*time.Second),
		ReminderEnabled:  getBool("REMINDER_ENABLED", true),
		ReminderInterval: getDuration("REMINDER_INTERVAL", time.Hour),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
