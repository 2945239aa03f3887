package auth

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

// AdminUser is one set of credentials allowed to log in
type AdminUser struct {
	Username     string `yaml:"username" json:"username" mapstructure:"username"`
	PasswordHash string `yaml:"password_hash" json:"-" mapstructure:"password_hash"`
}

// AuthConfig holds the authentication configuration of the application
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" json:"-" mapstructure:"jwt_secret"`
	TokenTTL  time.Duration `yaml:"token_ttl" json:"token_ttl" mapstructure:"token_ttl"`
	Issuer    string        `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	Users     []AdminUser   `yaml:"users" json:"users" mapstructure:"users"`
}

// LoadAuthConfig loads and validates authentication configuration from a YAML
// file, falling back to defaults and environment variables when absent
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetDefault("token_ttl", "12h")
	v.SetDefault("issuer", "maintenance-registry-backend")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate checks the configuration for the fields the service cannot run without
func (c *AuthConfig) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("auth config: jwt_secret is required (set JWT_SECRET)")
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("auth config: token_ttl must be positive")
	}
	if len(c.Users) == 0 {
		return fmt.Errorf("auth config: at least one user is required")
	}
	for i, user := range c.Users {
		if user.Username == "" || user.PasswordHash == "" {
			return fmt.Errorf("auth config: user %d is missing username or password_hash", i)
		}
	}
	return nil
}
