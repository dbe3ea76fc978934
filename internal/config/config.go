package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	DatabaseURL      string
	HTTPAddress      string
	JWTSecret        string
	AccessTokenTTL   time.Duration
	PasswordPepper   string
	LogLevel         string
	AllowedOrigins   []string
	AllowCredentials bool
}

func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("json")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()
	for _, key := range []string{
		"DATABASE_URL", "HTTP_ADDRESS", "JWT_SECRET", "ACCESS_TOKEN_TTL",
		"PASSWORD_PEPPER", "LOG_LEVEL", "ALLOWED_ORIGINS", "ALLOW_CREDENTIALS",
	} {
		if err := viper.BindEnv(key); err != nil {
			return nil, err
		}
	}

	viper.SetDefault("HTTP_ADDRESS", ":8080")
	viper.SetDefault("ACCESS_TOKEN_TTL", "30m")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		DatabaseURL:      viper.GetString("DATABASE_URL"),
		HTTPAddress:      viper.GetString("HTTP_ADDRESS"),
		JWTSecret:        viper.GetString("JWT_SECRET"),
		AccessTokenTTL:   viper.GetDuration("ACCESS_TOKEN_TTL"),
		PasswordPepper:   viper.GetString("PASSWORD_PEPPER"),
		LogLevel:         viper.GetString("LOG_LEVEL"),
		AllowedOrigins:   viper.GetStringSlice("ALLOWED_ORIGINS"),
		AllowCredentials: viper.GetBool("ALLOW_CREDENTIALS"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.AccessTokenTTL <= 0 {
		return nil, fmt.Errorf("ACCESS_TOKEN_TTL must be positive")
	}

	return cfg, nil
}
