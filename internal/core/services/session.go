package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/inspecta-cli/internal/logger"
)

// Ensure SessionService implements the interface.
var _ driving.SessionService = (*SessionService)(nil)

// SessionService holds the authenticated principal, if any. It is the
// only writer of the session; the submission pipeline reads it.
type SessionService struct {
	mu       sync.RWMutex
	provider driven.IdentityProvider
	current  *domain.Session
}

// NewSessionService creates a session service. The provider may be nil
// for tests that feed credentials through HandleCredential directly.
func NewSessionService(provider driven.IdentityProvider) *SessionService {
	return &SessionService{provider: provider}
}

// SignIn runs the provider's sign-in flow and consumes the issued
// credential.
func (s *SessionService) SignIn(ctx context.Context) (*domain.Session, error) {
	if s.provider == nil {
		return nil, domain.ErrNotImplemented
	}

	idToken, err := s.provider.SignIn(ctx)
	if err != nil {
		return nil, fmt.Errorf("sign in: %w", err)
	}
	return s.HandleCredential(idToken), nil
}

// HandleCredential consumes an issued ID token and enters SignedIn,
// overwriting any prior session. Claim extraction is tolerant: an
// undecodable token still signs in, with empty name and email.
func (s *SessionService) HandleCredential(idToken string) *domain.Session {
	session := domain.NewSession(idToken)

	s.mu.Lock()
	s.current = session
	s.mu.Unlock()

	logger.Debug("signed in as %s (%s)", session.Name, session.Email)
	return session
}

// SignOut clears the session and disables auto-reauthentication at
// the provider. The local session is cleared even if the provider
// call fails.
func (s *SessionService) SignOut() error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	logger.Debug("signed out")
	if s.provider == nil {
		return nil
	}
	return s.provider.SignOut()
}

// Current returns the active session, or nil when signed out.
func (s *SessionService) Current() *domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}
