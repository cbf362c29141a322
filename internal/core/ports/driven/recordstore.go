package driven

import (
	"context"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

// RecordStore is the remote endpoint that persists submitted
// inspections. One call is one network exchange; the core never
// retries automatically.
type RecordStore interface {
	// Submit posts the envelope and interprets the response.
	//
	// A reachable endpoint that reports failure returns an error
	// wrapping domain.ErrServerRejected, carrying the server-supplied
	// reason when present. Transport failures (connection, DNS,
	// timeout) are returned as-is.
	Submit(ctx context.Context, env domain.Envelope) error
}
