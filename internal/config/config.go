package config

import (
	"log/slog"
	"os"
	"strings"
	"time"
)

type Config struct {
	PrayerDataURL   string
	AudioGatewayURL string
	Port            string
	LogLevel        slog.Level
	Location        *time.Location
	Gateway         GatewayConfig
	Redis           *RedisConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	loc, err := loadLocation(os.Getenv("PRAYER_TIMEZONE"))
	if err != nil {
		return nil, err
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		PrayerDataURL:   os.Getenv("PRAYER_DATA_URL"),
		AudioGatewayURL: os.Getenv("AUDIO_GATEWAY_URL"),
		Port:            port,
		LogLevel:        parseLogLevel(os.Getenv("LOG_LEVEL")),
		Location:        loc,
		Gateway:         LoadGatewayConfig(),
		Redis:           redisConfig,
	}, nil
}

// loadLocation resolves the timezone the device's wall-clock prayer times are
// expressed in. Empty means the process-local zone.
func loadLocation(name string) (*time.Location, error) {
	if name == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, ErrInvalidTimezone
	}
	return loc, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
