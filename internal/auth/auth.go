package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/zgpcy/azure-usage-cli/internal/config"
	"github.com/zgpcy/azure-usage-cli/internal/logger"
)

// Scope requested for the bearer token. Grants delegated access to the
// Azure Resource Manager APIs on behalf of the signed-in user.
const Scope = "https://management.azure.com/user_impersonation"

// AuthError indicates the interactive sign-in was cancelled, denied, or
// rejected by the identity provider.
type AuthError struct {
	Err error
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("interactive sign-in failed: %v", e.Err)
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// Authenticator acquires bearer tokens through a browser-based sign-in.
// Tokens are never cached or refreshed; each Token call starts a fresh flow.
type Authenticator struct {
	cred   azcore.TokenCredential
	cfg    *config.Config
	logger *logger.Logger
}

// New creates an Authenticator backed by an interactive browser credential.
// The authority is pinned to the Azure public cloud; the tenant-qualified
// authority URL is derived from the configured tenant ID.
func New(cfg *config.Config, log *logger.Logger) (*Authenticator, error) {
	cred, err := azidentity.NewInteractiveBrowserCredential(&azidentity.InteractiveBrowserCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: cloud.AzurePublic,
		},
		ClientID:    cfg.ClientID,
		TenantID:    cfg.TenantID,
		RedirectURL: cfg.RedirectURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser credential: %w", err)
	}

	return &Authenticator{
		cred:   cred,
		cfg:    cfg,
		logger: log,
	}, nil
}

// Token runs the interactive sign-in and returns the bearer token string.
// The call blocks until the user completes or abandons the browser flow;
// when auth_timeout is set the wait is bounded by a context deadline.
func (a *Authenticator) Token(ctx context.Context) (string, error) {
	if a.cfg.AuthTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(a.cfg.AuthTimeout)*time.Second)
		defer cancel()
	}

	a.logger.Debug("Requesting token",
		"scope", Scope,
		"tenant_id", a.cfg.TenantID,
		"auth_timeout_seconds", a.cfg.AuthTimeout)

	tok, err := a.cred.GetToken(ctx, policy.TokenRequestOptions{
		Scopes: []string{Scope},
	})
	if err != nil {
		return "", &AuthError{Err: err}
	}

	a.logger.Debug("Token acquired", "expires_on", tok.ExpiresOn.Format(time.RFC3339))
	return tok.Token, nil
}
