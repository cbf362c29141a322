package driving

import (
	"context"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

// SubmissionService runs the validate -> serialize -> send -> interpret
// pipeline that persists an inspection to the remote record store.
type SubmissionService interface {
	// Submit performs at most one submission exchange.
	//
	// Fails fast with domain.ErrNotAuthenticated when no session is
	// active (no network call) and domain.ErrSubmissionInFlight when a
	// submission is already running. On endpoint success the checklist
	// and metadata are reset; on any failure the form is preserved.
	Submit(ctx context.Context) error

	// Status returns the transient pipeline status. Success and Error
	// statuses self-clear after domain.StatusTTL.
	Status() domain.SubmissionStatus
}
