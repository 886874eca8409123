package config

import "errors"

func ValidateForRun(cfg *Config) error {
	if cfg.PrayerDataURL == "" {
		return errors.New("PRAYER_DATA_URL environment variable is required")
	}
	return cfg.Redis.Validate()
}
