package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL     string
	RedisAddr       string
	ListenAddr      string
	JWTSecret       string
	RefreshTokenTTL time.Duration
}

// Load reads configuration from an optional config.yaml in the working
// directory and from the environment. Environment variables win.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("redis_addr", "inventory-redis:6379")
	v.SetDefault("jwt_secret", "super-secret-key")
	v.SetDefault("refresh_token_ttl", "720h")

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := Config{
		DatabaseURL:     v.GetString("database_url"),
		RedisAddr:       v.GetString("redis_addr"),
		ListenAddr:      v.GetString("listen_addr"),
		JWTSecret:       v.GetString("jwt_secret"),
		RefreshTokenTTL: v.GetDuration("refresh_token_ttl"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("database_url (or DATABASE_URL) is required")
	}

	return cfg, nil
}
