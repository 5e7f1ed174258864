// Package config provides configuration management for the Azure usage CLI.
//
// This package handles loading configuration from a YAML file, applying
// environment variable overrides, setting defaults, and validating the
// result. The loaded Config is immutable by convention: it is built once at
// startup and passed into the authenticator and the usage details client,
// never read from global state.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (highest priority)
//  2. YAML configuration file
//  3. Default values (lowest priority)
//
// The configuration file may be absent entirely when the environment
// supplies the three required identifiers.
//
// Supported environment variables:
//   - AZURE_USAGE_CLIENT_ID: App registration (client) identifier
//   - AZURE_USAGE_TENANT_ID: Directory (tenant) identifier
//   - AZURE_USAGE_SUBSCRIPTION_ID: Target billing subscription
//   - AZURE_USAGE_REDIRECT_URL: Loopback redirect target for the browser flow
//   - AZURE_USAGE_API_TIMEOUT: Usage details request timeout in seconds (1-300)
//   - AZURE_USAGE_AUTH_TIMEOUT: Interactive sign-in timeout in seconds, 0 waits indefinitely
//   - AZURE_USAGE_LOG_LEVEL: Log level (debug, info, warn, error)
//
// Example configuration file (config.yaml):
//
//	client_id: "00000000-0000-0000-0000-000000000000"
//	tenant_id: "11111111-1111-1111-1111-111111111111"
//	subscription_id: "22222222-2222-2222-2222-222222222222"
//
//	redirect_url: "http://localhost:8400"
//	api_timeout: 30    # seconds
//	auth_timeout: 0    # wait for the user
//	log_level: "info"
//
// Example usage:
//
//	cfg, err := config.Load("config.yaml")
//	if err != nil {
//		log.Fatalf("Failed to load config: %v", err)
//	}
//
//	fmt.Printf("Reporting on subscription %s\n", cfg.SubscriptionID)
package config
