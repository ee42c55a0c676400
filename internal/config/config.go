package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config holds all application settings, loaded from configs/app.env and
// overridable through environment variables.
type Config struct {
	ServerAddress string `mapstructure:"SERVER_ADDRESS"`
	GinMode       string `mapstructure:"GIN_MODE"`

	// ListerBackend selects the authoritative listing source: "memory" or
	// "remote". The in-memory seed set always remains the fallback.
	ListerBackend string        `mapstructure:"LISTER_BACKEND"`
	RemoteBaseURL string        `mapstructure:"REMOTE_BASE_URL"`
	RemoteTimeout time.Duration `mapstructure:"REMOTE_TIMEOUT"`

	// CacheBackend selects the response cache: "memory" or "redis".
	CacheBackend string        `mapstructure:"CACHE_BACKEND"`
	CacheTTL     time.Duration `mapstructure:"CACHE_TTL"`
	RedisAddr    string        `mapstructure:"REDIS_ADDR"`

	// Geolocation settings for the server-side fixed provider.
	GeoTimeout time.Duration `mapstructure:"GEO_TIMEOUT"`
	FixedLat   float64       `mapstructure:"FIXED_LAT"`
	FixedLng   float64       `mapstructure:"FIXED_LNG"`
}

// LoadConfig reads configuration from the given directory, with environment
// variables taking precedence over file values.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.SetDefault("SERVER_ADDRESS", "0.0.0.0:8080")
	viper.SetDefault("GIN_MODE", "release")
	viper.SetDefault("LISTER_BACKEND", "memory")
	viper.SetDefault("REMOTE_BASE_URL", "http://localhost:5000/api")
	viper.SetDefault("REMOTE_TIMEOUT", "10s")
	viper.SetDefault("CACHE_BACKEND", "memory")
	viper.SetDefault("CACHE_TTL", "5m")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("GEO_TIMEOUT", "10s")
	viper.SetDefault("FIXED_LAT", 40.7128)
	viper.SetDefault("FIXED_LNG", -74.0060)

	viper.AutomaticEnv()

	if err = viper.ReadInConfig(); err != nil {
		// A missing config file is fine: defaults plus env cover everything.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return
		}
		err = nil
	}

	err = viper.Unmarshal(&config)
	return
}
