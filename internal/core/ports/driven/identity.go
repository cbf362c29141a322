package driven

import "context"

// IdentityProvider is the external sign-in collaborator. The core only
// consumes the issued credential; widget rendering, token issuance and
// signature verification are the provider's and the record store's
// concern.
type IdentityProvider interface {
	// SignIn runs the provider's sign-in flow and returns the issued
	// ID token, or an error if the user did not complete sign-in.
	SignIn(ctx context.Context) (string, error)

	// SignOut disables auto-reauthentication so the next SignIn
	// prompts for an account again.
	SignOut() error
}
