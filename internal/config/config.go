// Package config loads the environment-driven settings of the backfill CLI.
package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds the settings read from the environment. Command-line flags
// override these at the command layer.
type Config struct {
	DatabasePath      string        `mapstructure:"MACDIVE_DB"`
	NominatimURL      string        `mapstructure:"NOMINATIM_URL"`
	UserAgent         string        `mapstructure:"NOMINATIM_USER_AGENT"`
	GeocodeRPS        float64       `mapstructure:"GEOCODE_RPS"`
	CacheTTL          time.Duration `mapstructure:"GEOCODE_CACHE_TTL"`
	BackupCompression string        `mapstructure:"BACKUP_COMPRESSION"`
}

// Load reads the configuration from the environment, falling back to
// defaults suitable for a stock MacDive install. Every key needs a default
// so viper registers it; AutomaticEnv alone does not surface unknown keys
// through Unmarshal.
func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("MACDIVE_DB", "")
	viper.SetDefault("NOMINATIM_URL", "https://nominatim.openstreetmap.org")
	viper.SetDefault("NOMINATIM_USER_AGENT", "swiftgps-backfill/1.0")
	viper.SetDefault("GEOCODE_RPS", 1.0)
	viper.SetDefault("GEOCODE_CACHE_TTL", "24h")
	viper.SetDefault("BACKUP_COMPRESSION", "none")

	var cfg Config
	_ = viper.Unmarshal(&cfg)

	return cfg
}
