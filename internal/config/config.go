package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"
)

type Config struct {
	WeatherAPIKey  string
	WeatherBaseURL string
	// HistoricalAPIKey is reserved for a historical-weather lookup that does not exist yet.
	HistoricalAPIKey string
	ForecastPoints   int

	HistoryBackend string
	HistoryDBPath  string
	RedisURL       string
	DatabaseURL    string

	KafkaBrokers []string
	KafkaTopic   string

	Port string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf(".env not loaded: %v", err)
	}

	cfg := &Config{
		WeatherAPIKey:    os.Getenv("OPENWEATHERMAP_API_KEY"),
		WeatherBaseURL:   os.Getenv("OPENWEATHERMAP_BASE_URL"),
		HistoricalAPIKey: getEnv("HISTORICAL_WEATHER_API_KEY", "YOUR_HISTORICAL_WEATHER_API_KEY"),
		ForecastPoints:   getEnvInt("FORECAST_POINTS", 10),
		HistoryDBPath:    getEnv("HISTORY_DB_PATH", defaultDBPath()),
		RedisURL:         os.Getenv("REDIS_URL"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		KafkaBrokers:     splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:       getEnv("KAFKA_TOPIC", "weather-queries"),
		Port:             getEnv("PORT", "8080"),
	}
	cfg.HistoryBackend = getEnv("HISTORY_BACKEND", cfg.defaultBackend())
	return cfg
}

// defaultBackend prefers whatever remote store is configured, then the local file.
func (c *Config) defaultBackend() string {
	switch {
	case c.RedisURL != "":
		return BackendRedis
	case c.DatabaseURL != "":
		return BackendPostgres
	default:
		return BackendSQLite
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "weather-history.db"
	}
	return filepath.Join(home, ".weather", "history.db")
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
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
