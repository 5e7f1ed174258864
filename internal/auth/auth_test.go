package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/zgpcy/azure-usage-cli/internal/config"
	"github.com/zgpcy/azure-usage-cli/internal/logger"
)

// stubCredential records the token request it receives and answers with a
// canned token or error, standing in for the browser flow
type stubCredential struct {
	token string
	err   error

	gotScopes   []string
	hadDeadline bool
}

func (s *stubCredential) GetToken(ctx context.Context, opts policy.TokenRequestOptions) (azcore.AccessToken, error) {
	s.gotScopes = opts.Scopes
	_, s.hadDeadline = ctx.Deadline()

	if s.err != nil {
		return azcore.AccessToken{}, s.err
	}
	return azcore.AccessToken{
		Token:     s.token,
		ExpiresOn: time.Now().Add(time.Hour),
	}, nil
}

func TestNew_ValidConfig_Success(t *testing.T) {
	cfg := testConfig(0)

	authenticator, err := New(cfg, logger.New("error"))
	if err != nil {
		t.Fatalf("New() error = %v, want nil", err)
	}
	if authenticator == nil {
		t.Fatal("New() returned nil authenticator")
	}
}

func TestToken_ReturnsBearerToken(t *testing.T) {
	stub := &stubCredential{token: "test-bearer-token"}
	authenticator := newTestAuthenticator(t, stub, 0)

	token, err := authenticator.Token(context.Background())
	if err != nil {
		t.Fatalf("Token() error = %v, want nil", err)
	}

	if token != "test-bearer-token" {
		t.Errorf("Token() = %q, want test-bearer-token", token)
	}
}

func TestToken_RequestsManagementScope(t *testing.T) {
	stub := &stubCredential{token: "tok"}
	authenticator := newTestAuthenticator(t, stub, 0)

	if _, err := authenticator.Token(context.Background()); err != nil {
		t.Fatalf("Token() error = %v, want nil", err)
	}

	if len(stub.gotScopes) != 1 || stub.gotScopes[0] != Scope {
		t.Errorf("requested scopes = %v, want [%s]", stub.gotScopes, Scope)
	}
}

func TestToken_FailureWrappedAsAuthError(t *testing.T) {
	denied := errors.New("authorization failed: access_denied")
	stub := &stubCredential{err: denied}
	authenticator := newTestAuthenticator(t, stub, 0)

	_, err := authenticator.Token(context.Background())
	if err == nil {
		t.Fatal("Token() error = nil, want *AuthError")
	}

	var authErr *AuthError
	if !errors.As(err, &authErr) {
		t.Fatalf("Token() error = %T, want *AuthError", err)
	}
	if !errors.Is(err, denied) {
		t.Error("AuthError does not wrap the underlying credential error")
	}
}

func TestToken_TimeoutAppliesDeadline(t *testing.T) {
	tests := []struct {
		name         string
		authTimeout  int
		wantDeadline bool
	}{
		{"no timeout blocks indefinitely", 0, false},
		{"positive timeout bounds the wait", 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubCredential{token: "tok"}
			authenticator := newTestAuthenticator(t, stub, tt.authTimeout)

			if _, err := authenticator.Token(context.Background()); err != nil {
				t.Fatalf("Token() error = %v, want nil", err)
			}

			if stub.hadDeadline != tt.wantDeadline {
				t.Errorf("context deadline present = %v, want %v", stub.hadDeadline, tt.wantDeadline)
			}
		})
	}
}

// Helper functions

func testConfig(authTimeout int) *config.Config {
	return &config.Config{
		ClientID:       "00000000-0000-0000-0000-000000000000",
		TenantID:       "11111111-1111-1111-1111-111111111111",
		SubscriptionID: "22222222-2222-2222-2222-222222222222",
		RedirectURL:    "http://localhost:8400",
		APITimeout:     30,
		AuthTimeout:    authTimeout,
		LogLevel:       "error",
	}
}

func newTestAuthenticator(t *testing.T, cred azcore.TokenCredential, authTimeout int) *Authenticator {
	t.Helper()

	return &Authenticator{
		cred:   cred,
		cfg:    testConfig(authTimeout),
		logger: logger.New("error"),
	}
}
