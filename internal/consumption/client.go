package consumption

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/zgpcy/azure-usage-cli/internal/config"
	"github.com/zgpcy/azure-usage-cli/internal/logger"
)

// APIVersion is the Microsoft.Consumption REST API version used for the
// usage details request.
const APIVersion = "2021-10-01"

const endpointFormat = "https://management.azure.com/subscriptions/%s/providers/Microsoft.Consumption/usageDetails?api-version=%s"

// RequestError indicates the usage details endpoint answered with a
// non-success HTTP status. Body carries the raw response text undecoded.
type RequestError struct {
	StatusCode int
	Body       string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("usage details request failed with status %d: %s", e.StatusCode, e.Body)
}

// ParseError indicates the endpoint answered with a success status but the
// body was not valid JSON. Kept distinct from RequestError so callers can
// tell a rejected request from a corrupt response.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to decode usage details response: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Fetcher is the interface for retrieving usage details (useful for testing)
type Fetcher interface {
	FetchUsage(ctx context.Context, token string) (*UsageDetails, error)
}

// Client issues authenticated requests against the Consumption usage
// details endpoint. It holds no response state between calls.
type Client struct {
	httpClient *http.Client
	cfg        *config.Config
	logger     *logger.Logger
	endpoint   string
	now        func() time.Time // Time provider for testing
}

// Verify that Client implements Fetcher
var _ Fetcher = (*Client)(nil)

// NewClient creates a new usage details client
func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.APITimeout) * time.Second,
		},
		cfg:      cfg,
		logger:   log,
		endpoint: fmt.Sprintf(endpointFormat, cfg.SubscriptionID, APIVersion),
		now:      time.Now,
	}
}

// FetchUsage issues one GET against the usage details endpoint and returns
// the decoded document. The request carries a single Authorization header
// and is attempted exactly once: no retry, no pagination follow. A nextLink
// in the response is decoded and logged but never followed.
func (c *Client) FetchUsage(ctx context.Context, token string) (*UsageDetails, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build usage details request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	c.logger.Debug("Querying usage details",
		"subscription_id", c.cfg.SubscriptionID,
		"api_version", APIVersion)
	start := c.now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("usage details request failed: %w", err)
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.logger.Warn("Failed to close response body", "error", cerr)
		}
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read usage details response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RequestError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	var doc UsageDetails
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	c.logger.Debug("Usage details fetched",
		"record_count", len(doc.Value),
		"duration_seconds", c.now().Sub(start).Seconds())

	if doc.NextLink != nil && *doc.NextLink != "" {
		// Known limitation: the result set may continue on further pages.
		c.logger.Debug("Response carries a continuation link, not following it",
			"next_link", *doc.NextLink)
	}

	return &doc, nil
}
