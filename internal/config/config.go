// Package config reads runtime settings from the environment, after loading
// an optional .env file.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/shuv1824/islandmap/internal/pagination"
)

type Config struct {
	Addr          string
	IslandsPath   string
	PortsPath     string
	PageSize      int
	SessionTTL    time.Duration
	LayerCacheTTL time.Duration
	CORSOrigins   []string
	LogLevel      string
	LogFormat     string
}

// Load reads .env (if present) and the environment.
func Load() Config {
	_ = godotenv.Load(".env")

	return Config{
		Addr:          getString("ADDR", ":8080"),
		IslandsPath:   getString("ISLANDS_PATH", "data/data00.json"),
		PortsPath:     getString("PORTS_PATH", "data/port.json"),
		PageSize:      getInt("PAGE_SIZE", pagination.DefaultPageSize),
		SessionTTL:    getDuration("SESSION_TTL", 30*time.Minute),
		LayerCacheTTL: getDuration("LAYER_CACHE_TTL", 10*time.Minute),
		CORSOrigins:   getList("CORS_ORIGINS", []string{"*"}),
		LogLevel:      getString("LOG_LEVEL", "info"),
		LogFormat:     getString("LOG_FORMAT", "text"),
	}
}

func getString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		slog.Warn("ignoring invalid config value", "key", key, "value", s)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		slog.Warn("ignoring invalid config value", "key", key, "value", s)
		return def
	}
	return d
}

func getList(key string, def []string) []string {
	s := os.Getenv(key)
	if s == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
