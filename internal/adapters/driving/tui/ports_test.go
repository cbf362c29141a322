package tui

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
)

// MockSessionService implements driving.SessionService for testing.
type MockSessionService struct {
	SignInFunc  func(ctx context.Context) (*domain.Session, error)
	SignOutFunc func() error
	CurrentFunc func() *domain.Session
}

func (m *MockSessionService) SignIn(ctx context.Context) (*domain.Session, error) {
	if m.SignInFunc != nil {
		return m.SignInFunc(ctx)
	}
	return nil, nil
}

func (m *MockSessionService) HandleCredential(idToken string) *domain.Session {
	return domain.NewSession(idToken)
}

func (m *MockSessionService) SignOut() error {
	if m.SignOutFunc != nil {
		return m.SignOutFunc()
	}
	return nil
}

func (m *MockSessionService) Current() *domain.Session {
	if m.CurrentFunc != nil {
		return m.CurrentFunc()
	}
	return nil
}

// MockSubmissionService implements driving.SubmissionService for testing.
type MockSubmissionService struct {
	SubmitFunc func(ctx context.Context) error
	StatusFunc func() domain.SubmissionStatus

	SubmitCalls int
}

func (m *MockSubmissionService) Submit(ctx context.Context) error {
	m.SubmitCalls++
	if m.SubmitFunc != nil {
		return m.SubmitFunc(ctx)
	}
	return nil
}

func (m *MockSubmissionService) Status() domain.SubmissionStatus {
	if m.StatusFunc != nil {
		return m.StatusFunc()
	}
	return domain.SubmissionStatus{}
}

var (
	_ driving.SessionService    = (*MockSessionService)(nil)
	_ driving.SubmissionService = (*MockSubmissionService)(nil)
)

func TestNewPorts(t *testing.T) {
	checklist := newTestChecklist()
	session := &MockSessionService{}
	submission := &MockSubmissionService{}

	ports := NewPorts(checklist, session, submission)

	require.NotNil(t, ports)
	assert.Equal(t, driving.ChecklistService(checklist), ports.Checklist)
	assert.Equal(t, driving.SessionService(session), ports.Session)
	assert.Equal(t, driving.SubmissionService(submission), ports.Submission)
	assert.Nil(t, ports.Settings)
}

func TestPorts_Validate(t *testing.T) {
	ports := NewPorts(newTestChecklist(), &MockSessionService{}, &MockSubmissionService{})

	require.NoError(t, ports.Validate())
}

func TestPorts_Validate_MissingChecklist(t *testing.T) {
	ports := NewPorts(nil, &MockSessionService{}, &MockSubmissionService{})

	err := ports.Validate()
	require.ErrorIs(t, err, ErrMissingChecklistService)
}

func TestPorts_Validate_MissingSession(t *testing.T) {
	ports := NewPorts(newTestChecklist(), nil, &MockSubmissionService{})

	err := ports.Validate()
	require.ErrorIs(t, err, ErrMissingSessionService)
}

func TestPorts_Validate_MissingSubmission(t *testing.T) {
	ports := NewPorts(newTestChecklist(), &MockSessionService{}, nil)

	err := ports.Validate()
	require.ErrorIs(t, err, ErrMissingSubmissionService)
}
