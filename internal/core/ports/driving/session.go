package driving

import (
	"context"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

// SessionService manages the identity session state machine:
// SignedOut (initial) -> SignedIn on a credential-issuance event,
// SignedIn -> SignedOut on explicit sign-out. No other transitions.
type SessionService interface {
	// SignIn runs the identity provider's flow and, on issuance,
	// enters SignedIn. Returns the new session.
	SignIn(ctx context.Context) (*domain.Session, error)

	// HandleCredential consumes an issued ID token and enters SignedIn.
	// Claim extraction is tolerant; a session with empty name/email is
	// still signed in. Overwrites any prior session.
	HandleCredential(idToken string) *domain.Session

	// SignOut clears the session and disables auto-reauthentication at
	// the identity provider.
	SignOut() error

	// Current returns the active session, or nil when signed out.
	Current() *domain.Session
}
