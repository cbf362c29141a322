// Package google provides an identity provider adapter that runs the
// Google sign-in flow through the system browser and a loopback
// callback server.
package google

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/oauth2"

	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/inspecta-cli/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.IdentityProvider = (*Provider)(nil)

// Default configuration values.
const (
	DefaultSignInTimeout = 3 * time.Minute

	authURL  = "https://accounts.google.com/o/oauth2/v2/auth"
	tokenURL = "https://oauth2.googleapis.com/token"
)

// Config holds configuration for the Google identity provider.
type Config struct {
	// ClientID is the OAuth client id (required).
	ClientID string

	// CallbackPort is the loopback port for the redirect. 0 picks a
	// random available port.
	CallbackPort int

	// Timeout bounds the whole sign-in flow, browser round-trip
	// included (default: 3m).
	Timeout time.Duration
}

// Provider signs the user in with Google and returns the raw ID token.
type Provider struct {
	clientID     string
	callbackPort int
	timeout      time.Duration
	endpoint     oauth2.Endpoint

	mu sync.Mutex
	// forcePrompt makes the next sign-in show the account chooser
	// instead of silently reusing the previous Google session.
	forcePrompt bool

	// openURL is swapped in tests.
	openURL func(string) error
}

// NewProvider creates a new Google identity provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.ClientID == "" {
		return nil, fmt.Errorf("google: client id is required")
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultSignInTimeout
	}

	return &Provider{
		clientID:     cfg.ClientID,
		callbackPort: cfg.CallbackPort,
		timeout:      cfg.Timeout,
		endpoint: oauth2.Endpoint{
			AuthURL:  authURL,
			TokenURL: tokenURL,
		},
		openURL: openBrowser,
	}, nil
}

// SignIn runs the browser sign-in flow and returns the ID token string.
func (p *Provider) SignIn(ctx context.Context) (string, error) {
	state := generateState()
	verifier := generateCodeVerifier()

	server := newCallbackServer(p.callbackPort, state)
	if err := server.Start(); err != nil {
		return "", fmt.Errorf("start callback server: %w", err)
	}
	defer func() { _ = server.Stop() }()

	conf := &oauth2.Config{
		ClientID:    p.clientID,
		RedirectURL: server.RedirectURI(),
		Scopes:      []string{"openid", "email", "profile"},
		Endpoint:    p.endpoint,
	}

	opts := []oauth2.AuthCodeOption{
		oauth2.SetAuthURLParam("code_challenge", generateCodeChallenge(verifier)),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	}
	if p.promptForAccount() {
		opts = append(opts, oauth2.SetAuthURLParam("prompt", "select_account"))
	}

	url := conf.AuthCodeURL(state, opts...)
	logger.Debug("opening browser for sign-in on port %d", server.Port())
	if err := p.openURL(url); err != nil {
		return "", fmt.Errorf("open browser: %w", err)
	}

	code, err := server.WaitForCode(ctx, p.timeout)
	if err != nil {
		return "", err
	}

	token, err := conf.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return "", fmt.Errorf("exchange code: %w", err)
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return "", fmt.Errorf("token response contains no id_token")
	}

	p.mu.Lock()
	p.forcePrompt = false
	p.mu.Unlock()

	return idToken, nil
}

// SignOut marks the local session as ended. The next sign-in will show
// the account chooser rather than re-authenticating silently.
func (p *Provider) SignOut() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forcePrompt = true
	return nil
}

func (p *Provider) promptForAccount() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.forcePrompt
}
