// Package config loads process configuration once at startup.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds all configuration values for the API server.
type Config struct {
	Port string

	// DatabaseURL is the MongoDB connection string.
	DatabaseURL  string
	DatabaseName string

	// StoreDisabled forces the inert document store.
	StoreDisabled    bool
	StorePingTimeout time.Duration

	LogLevel    string
	LogFormat   string
	CORSOrigins []string

	// RateLimitRequests per client IP in RateLimitWindow; 0 disables limiting.
	RateLimitRequests int
	RateLimitWindow   time.Duration
}

// Load reads an optional .env file and then the environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.WithError(err).Warn("Failed to read .env file")
	}

	uri := getEnv("DATABASE_URL", os.Getenv("MONGO_URI"))
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	return Config{
		Port:             getEnv("PORT", "8080"),
		DatabaseURL:      uri,
		DatabaseName:     getEnv("DATABASE_NAME", "appdb"),
		StoreDisabled:    getBool("STORE_DISABLED", false),
		StorePingTimeout: getDuration("STORE_PING_TIMEOUT", 10*time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "text"),
		CORSOrigins:      splitCSV(getEnv("CORS_ORIGINS", "*")),

		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", 120),
		RateLimitWindow:   getDuration("RATE_LIMIT_WINDOW", time.Minute),
	}
}

// ConfigureLogger applies the level and formatter to the standard logrus logger.
func (c Config) ConfigureLogger() {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if strings.EqualFold(c.LogFormat, "json") {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
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
		log.WithFields(log.Fields{"key": key, "value": v}).Warn("Ignoring invalid boolean")
		return fallback
	}
	return b
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		log.WithFields(log.Fields{"key": key, "value": v}).Warn("Ignoring invalid integer")
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.WithFields(log.Fields{"key": key, "value": v}).Warn("Ignoring invalid duration")
		return fallback
	}
	return d
}

func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if t := strings.TrimSpace(part); t != "" {
			out = append(out, t)
		}
	}
	return out
}
