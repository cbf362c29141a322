package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/inspecta-cli/internal/logger"
)

// Ensure SubmissionService implements the interface.
var _ driving.SubmissionService = (*SubmissionService)(nil)

// User-visible pipeline messages.
const (
	msgSignInFirst  = "Please sign in with Google before submitting."
	msgSaved        = "Submission saved."
	msgGenericError = "Submission failed"
)

// SubmissionService runs the submission pipeline. At most one
// submission is in flight at a time; overlapping calls are rejected,
// never queued, so the success-reset can never race a second attempt.
type SubmissionService struct {
	mu        sync.Mutex
	checklist driving.ChecklistService
	session   driving.SessionService
	store     driven.RecordStore

	status    domain.SubmissionStatus
	statusGen int
	statusTTL time.Duration
	expiry    *time.Timer

	// newID generates submission ids; injectable for tests.
	newID func() string
}

// NewSubmissionService creates a submission service.
func NewSubmissionService(
	checklist driving.ChecklistService,
	session driving.SessionService,
	store driven.RecordStore,
) *SubmissionService {
	return &SubmissionService{
		checklist: checklist,
		session:   session,
		store:     store,
		statusTTL: domain.StatusTTL,
		newID:     uuid.NewString,
	}
}

// Submit performs at most one submission exchange.
func (s *SubmissionService) Submit(ctx context.Context) error {
	if s.store == nil {
		return domain.ErrNotImplemented
	}

	s.mu.Lock()
	if s.status.InFlight() {
		s.mu.Unlock()
		return domain.ErrSubmissionInFlight
	}

	session := s.session.Current()
	if !session.IsAuthenticated() {
		s.setStatusLocked(domain.StatusError, msgSignInFirst)
		s.mu.Unlock()
		return domain.ErrNotAuthenticated
	}

	s.setStatusLocked(domain.StatusSubmitting, "")

	// Snapshot form state while holding the status lock so the guard
	// and the serialized payload belong to the same submit.
	env := domain.Envelope{
		IDToken: session.IDToken,
		Data: domain.SubmissionData{
			SubmissionID: s.newID(),
			Meta:         s.checklist.Metadata(),
			Answers:      domain.BuildAnswerRows(s.checklist.Schema(), s.checklist.Sheet()),
			UserName:     session.Name,
			UserEmail:    session.Email,
		},
	}
	s.mu.Unlock()

	logger.Debug("submitting inspection %s (%d answers)", env.Data.SubmissionID, len(env.Data.Answers))
	err := s.store.Submit(ctx, env)

	// Terminal transition: the in-flight state ends exactly once per
	// call, whatever the outcome.
	s.mu.Lock()
	defer s.mu.Unlock()

	switch {
	case err == nil:
		s.setStatusLocked(domain.StatusSuccess, msgSaved)
		// Success consumes the form; it is ready for the next inspection.
		s.checklist.Reset()
		return nil

	case errors.Is(err, domain.ErrServerRejected):
		s.setStatusLocked(domain.StatusError, rejectionReason(err))
		return err

	default:
		// Transport failure: surfaced best-effort, input preserved.
		s.setStatusLocked(domain.StatusError, err.Error())
		return err
	}
}

// Status returns the transient pipeline status.
func (s *SubmissionService) Status() domain.SubmissionStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// setStatusLocked replaces the status, cancelling any pending expiry
// first, and schedules self-clearing for terminal statuses. Caller
// must hold s.mu.
func (s *SubmissionService) setStatusLocked(kind domain.StatusKind, message string) {
	if s.expiry != nil {
		s.expiry.Stop()
		s.expiry = nil
	}

	s.status = domain.SubmissionStatus{Kind: kind, Message: message}
	s.statusGen++

	if kind != domain.StatusSuccess && kind != domain.StatusError {
		return
	}

	gen := s.statusGen
	s.expiry = time.AfterFunc(s.statusTTL, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		// Only clear if no newer status superseded this one.
		if s.statusGen == gen {
			s.status = domain.SubmissionStatus{Kind: domain.StatusNone}
		}
	})
}

// rejectionReason extracts the server-supplied reason, falling back to
// a generic message.
func rejectionReason(err error) string {
	var rej *domain.RejectionError
	if errors.As(err, &rej) && rej.Reason != "" {
		return rej.Reason
	}
	return msgGenericError
}
