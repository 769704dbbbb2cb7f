package auth

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// AuthConfig holds all authentication configuration for the application
type AuthConfig struct {
	JWTSecret       string   `mapstructure:"jwt_secret" yaml:"jwt_secret"`
	TokenTTLMinutes int      `mapstructure:"token_ttl_minutes" yaml:"token_ttl_minutes"`
	PublicPaths     []string `mapstructure:"public_paths" yaml:"public_paths"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	setAuthDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("token_ttl_minutes", 60)
	v.SetDefault("public_paths", []string{
		"/api/auth/login",
		"/api/auth/register",
		"/api/auth/password/reset",
		"/api/auth/password/update",
	})
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

// IsPublicPath reports whether a request path is served without a session
func (c *AuthConfig) IsPublicPath(path string) bool {
	for _, p := range c.PublicPaths {
		if p == path {
			return true
		}
	}
	return false
}
