package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/zgpcy/azure-usage-cli/internal/auth"
	"github.com/zgpcy/azure-usage-cli/internal/config"
	"github.com/zgpcy/azure-usage-cli/internal/consumption"
	"github.com/zgpcy/azure-usage-cli/internal/logger"
	"github.com/zgpcy/azure-usage-cli/internal/report"
	"github.com/zgpcy/azure-usage-cli/internal/version"
)

var (
	configPath  = flag.String("config", "config.yaml", "Path to configuration file")
	showVersion = flag.Bool("version", false, "Print version information and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		info := version.Info()
		fmt.Printf("azure-usage-cli %s (commit %s, built %s, %s)\n",
			info["version"], info["git_commit"], info["build_date"], info["go_version"])
		return
	}

	// Load configuration first (need log level from config)
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize structured logger
	logger := logger.New(cfg.LogLevel)
	logger.Info("Azure usage report starting",
		"version", version.Version,
		"config_path", *configPath,
		"tenant_id", cfg.TenantID,
		"subscription_id", cfg.SubscriptionID,
		"api_timeout_seconds", cfg.APITimeout,
		"auth_timeout_seconds", cfg.AuthTimeout)

	ctx := context.Background()

	// Interactive sign-in. Blocks until the browser flow finishes or the
	// configured auth timeout expires.
	authenticator, err := auth.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to create authenticator", "error", err)
		os.Exit(1)
	}

	logger.Info("Waiting for interactive sign-in", "redirect_url", cfg.RedirectURL)
	token, err := authenticator.Token(ctx)
	if err != nil {
		logger.Error("Interactive sign-in failed", "error", err)
		os.Exit(1)
	}
	logger.Info("Sign-in complete")

	// Single fetch against the usage details endpoint
	client := consumption.NewClient(cfg, logger)
	doc, err := client.FetchUsage(ctx, token)
	if err != nil {
		var reqErr *consumption.RequestError
		var parseErr *consumption.ParseError
		switch {
		case errors.As(err, &reqErr):
			logger.Error("Usage details request rejected",
				"status_code", reqErr.StatusCode,
				"body", reqErr.Body)
		case errors.As(err, &parseErr):
			logger.Error("Usage details response was not valid JSON", "error", parseErr)
		default:
			logger.Error("Failed to fetch usage details", "error", err)
		}
		os.Exit(1)
	}

	if err := report.NewWriter(os.Stdout).Render(doc); err != nil {
		logger.Error("Failed to write report", "error", err)
		os.Exit(1)
	}
}
