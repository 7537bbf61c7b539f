package config

import (
	"errors"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Port              string `mapstructure:"PORT"`
	GinMode           string `mapstructure:"GIN_MODE"`
	MongoURI          string `mapstructure:"MONGO_URI"`
	MongoDatabase     string `mapstructure:"MONGO_DATABASE"`
	AccessTokenSecret string `mapstructure:"ACCESS_TOKEN_SECRET"`
	StripeSecretKey   string `mapstructure:"STRIPE_SECRET_KEY"`
	ClientURL         string `mapstructure:"CLIENT_URL"`
}

// LoadConfig loads configuration from environment variables using Viper.
func LoadConfig() (*Config, error) {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("PORT", "8888")
	viper.SetDefault("GIN_MODE", "debug")
	viper.SetDefault("MONGO_DATABASE", "ProductPulseDB")

	viper.BindEnv("PORT")
	viper.BindEnv("GIN_MODE")
	viper.BindEnv("MONGO_URI")
	viper.BindEnv("MONGO_DATABASE")
	viper.BindEnv("ACCESS_TOKEN_SECRET")
	viper.BindEnv("STRIPE_SECRET_KEY")
	viper.BindEnv("CLIENT_URL")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.New("failed to unmarshal config: " + err.Error())
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.AccessTokenSecret == "" {
		return nil, errors.New("ACCESS_TOKEN_SECRET is required")
	}
	if cfg.StripeSecretKey == "" {
		return nil, errors.New("STRIPE_SECRET_KEY is required")
	}

	return &cfg, nil
}
