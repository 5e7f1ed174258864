package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Configuration validation constants
const (
	// MaxAPITimeout caps the usage details request timeout in seconds
	MaxAPITimeout = 300

	// Default values
	DefaultRedirectURL = "http://localhost:8400"
	DefaultAPITimeout  = 30 // seconds
	DefaultAuthTimeout = 0  // 0 = wait until the user completes or abandons sign-in
	DefaultLogLevel    = "info"
)

// Config represents the application configuration
type Config struct {
	ClientID       string `yaml:"client_id"`       // App registration identifier
	TenantID       string `yaml:"tenant_id"`       // Directory (tenant) identifier
	SubscriptionID string `yaml:"subscription_id"` // Target billing subscription
	RedirectURL    string `yaml:"redirect_url"`    // Loopback redirect target for the browser flow
	APITimeout     int    `yaml:"api_timeout"`     // Usage details request timeout in seconds
	AuthTimeout    int    `yaml:"auth_timeout"`    // Interactive sign-in timeout in seconds, 0 = no limit
	LogLevel       string `yaml:"log_level"`
}

// Load loads configuration from a YAML file and applies environment variable
// overrides. A missing file is not an error: the environment alone may supply
// the required identifiers.
func Load(path string) (*Config, error) {
	var cfg Config

	// #nosec G304 -- Config file path is provided by the operator via CLI flag, not user input
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	case os.IsNotExist(err):
		// Fall through to env-only configuration
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Apply defaults
	applyDefaults(&cfg)

	// Override with environment variables
	if err := applyEnvOverrides(&cfg); err != nil {
		return nil, fmt.Errorf("environment variable error: %w", err)
	}

	// Validate
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for configuration
func applyDefaults(cfg *Config) {
	if cfg.RedirectURL == "" {
		cfg.RedirectURL = DefaultRedirectURL
	}
	if cfg.APITimeout == 0 {
		cfg.APITimeout = DefaultAPITimeout
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
}

// applyEnvOverrides applies environment variable overrides to configuration
func applyEnvOverrides(cfg *Config) error {
	if val := os.Getenv("AZURE_USAGE_CLIENT_ID"); val != "" {
		cfg.ClientID = val
	}

	if val := os.Getenv("AZURE_USAGE_TENANT_ID"); val != "" {
		cfg.TenantID = val
	}

	if val := os.Getenv("AZURE_USAGE_SUBSCRIPTION_ID"); val != "" {
		cfg.SubscriptionID = val
	}

	if val := os.Getenv("AZURE_USAGE_REDIRECT_URL"); val != "" {
		cfg.RedirectURL = val
	}

	if val := os.Getenv("AZURE_USAGE_API_TIMEOUT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid AZURE_USAGE_API_TIMEOUT: must be an integer, got %q", val)
		}
		cfg.APITimeout = i
	}

	if val := os.Getenv("AZURE_USAGE_AUTH_TIMEOUT"); val != "" {
		i, err := strconv.Atoi(val)
		if err != nil {
			return fmt.Errorf("invalid AZURE_USAGE_AUTH_TIMEOUT: must be an integer, got %q", val)
		}
		cfg.AuthTimeout = i
	}

	if val := os.Getenv("AZURE_USAGE_LOG_LEVEL"); val != "" {
		cfg.LogLevel = val
	}

	return nil
}

// validate validates the configuration
func validate(cfg *Config) error {
	if cfg.ClientID == "" {
		return fmt.Errorf("client_id is required (set client_id or AZURE_USAGE_CLIENT_ID)")
	}

	if cfg.TenantID == "" {
		return fmt.Errorf("tenant_id is required (set tenant_id or AZURE_USAGE_TENANT_ID)")
	}

	if cfg.SubscriptionID == "" {
		return fmt.Errorf("subscription_id is required (set subscription_id or AZURE_USAGE_SUBSCRIPTION_ID)")
	}

	if cfg.APITimeout <= 0 {
		return fmt.Errorf("api_timeout must be positive, got %d", cfg.APITimeout)
	}

	if cfg.APITimeout > MaxAPITimeout {
		return fmt.Errorf("api_timeout should not exceed %d seconds, got %d", MaxAPITimeout, cfg.APITimeout)
	}

	// Interactive sign-in may legitimately wait on a human, so 0 (no limit)
	// is allowed. Negative values are not.
	if cfg.AuthTimeout < 0 {
		return fmt.Errorf("auth_timeout cannot be negative, got %d", cfg.AuthTimeout)
	}

	return nil
}
