// Package auth acquires bearer tokens for the Azure Resource Manager APIs
// through an interactive, browser-based sign-in.
//
// The flow is OAuth2 authorization code with a browser redirect: the SDK
// opens the system browser against the tenant authority under
// https://login.microsoftonline.com/ and listens on the configured loopback
// redirect URL until the user completes or abandons sign-in. The acquired
// token is returned as a plain string and is never persisted, cached, or
// silently refreshed.
//
// By default Token blocks for as long as the user takes; setting
// auth_timeout in the configuration bounds the wait with a context
// deadline.
//
// Example usage:
//
//	authenticator, err := auth.New(cfg, log)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	token, err := authenticator.Token(ctx)
//	var authErr *auth.AuthError
//	if errors.As(err, &authErr) {
//		// sign-in was cancelled, denied, or rejected
//	}
package auth
