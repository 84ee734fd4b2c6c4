package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Store   StoreConfig   `mapstructure:"store"`
	Pricing PricingConfig `mapstructure:"pricing"`
	Latency LatencyConfig `mapstructure:"latency"`
	Auth    AuthConfig    `mapstructure:"auth"`
}

type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

type StoreConfig struct {
	// Path is the sqlite file backing the persistent store.
	Path string `mapstructure:"path"`
}

type PricingConfig struct {
	// FreeShippingThreshold and ShippingFee are decimal strings, e.g. "50.00".
	FreeShippingThreshold string `mapstructure:"free_shipping_threshold"`
	ShippingFee           string `mapstructure:"shipping_fee"`
}

type LatencyConfig struct {
	// Auth and Checkout are the simulated network round-trip delays for
	// login/registration and order placement.
	Auth     time.Duration `mapstructure:"auth"`
	Checkout time.Duration `mapstructure:"checkout"`
}

type AuthConfig struct {
	// Users are extra demo accounts seeded next to the built-in one.
	Users []DemoUserConfig `mapstructure:"users"`
}

type DemoUserConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// LoadConfig loads configuration from config.yaml and environment variables.
// A missing config file is fine: the defaults produce a runnable setup.
func LoadConfig() (*Config, error) {
	v := viper.New()

	// Set config file locations
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./deploy/")
	v.AddConfigPath("./")
	v.AddConfigPath("$HOME/.storefront/")
	v.AddConfigPath("/etc/storefront/")

	// Enable environment variable override with STOREFRONT_ prefix
	v.SetEnvPrefix("STOREFRONT")
	v.AutomaticEnv()

	v.SetDefault("server.addr", ":8080")
	v.SetDefault("store.path", "storefront.db")
	v.SetDefault("pricing.free_shipping_threshold", "50.00")
	v.SetDefault("pricing.shipping_fee", "10.00")
	v.SetDefault("latency.auth", 500*time.Millisecond)
	v.SetDefault("latency.checkout", 1500*time.Millisecond)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}
