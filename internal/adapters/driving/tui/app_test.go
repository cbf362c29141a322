package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/services"
)

func newTestChecklist() *services.ChecklistService {
	return services.NewChecklistService(domain.Schema{
		{
			Name: "GENERAL",
			Questions: []domain.Question{
				{ID: "q1", Text: "Is lighting adequate?"},
				{ID: "q2", Text: "Is the area free of leaks?"},
			},
		},
	})
}

func newTestApp(t *testing.T) (*App, *MockSessionService, *MockSubmissionService) {
	t.Helper()

	session := &MockSessionService{}
	submission := &MockSubmissionService{}
	app, err := NewApp(NewPorts(newTestChecklist(), session, submission))
	require.NoError(t, err)
	return app, session, submission
}

func keyMsg(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestNewApp(t *testing.T) {
	app, _, _ := newTestApp(t)

	require.NotNil(t, app)
	assert.Equal(t, messages.ViewForm, app.CurrentView())
	assert.False(t, app.Ready())
}

func TestNewApp_InvalidPorts(t *testing.T) {
	_, err := NewApp(NewPorts(nil, &MockSessionService{}, &MockSubmissionService{}))

	require.ErrorIs(t, err, ErrMissingChecklistService)
}

func TestApp_Init(t *testing.T) {
	app, _, _ := newTestApp(t)

	cmd := app.Init()

	require.NotNil(t, cmd)
}

func TestApp_WindowSizeMakesReady(t *testing.T) {
	app, _, _ := newTestApp(t)

	model, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	app = model.(*App)
	assert.True(t, app.Ready())
	assert.NotEmpty(t, app.View())
}

func TestApp_ViewBeforeReady(t *testing.T) {
	app, _, _ := newTestApp(t)

	assert.Contains(t, app.View(), "Initialising")
}

func TestApp_TabTogglesSummary(t *testing.T) {
	app, _, _ := newTestApp(t)

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, messages.ViewSummary, app.CurrentView())

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)
	assert.Equal(t, messages.ViewForm, app.CurrentView())
}

func TestApp_HelpToggle(t *testing.T) {
	app, _, _ := newTestApp(t)

	model, _ := app.Update(keyMsg("?"))
	app = model.(*App)
	assert.Equal(t, messages.ViewHelp, app.CurrentView())

	model, _ = app.Update(keyMsg("?"))
	app = model.(*App)
	assert.Equal(t, messages.ViewForm, app.CurrentView())
}

func TestApp_EscLeavesSummary(t *testing.T) {
	app, _, _ := newTestApp(t)
	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyTab})
	app = model.(*App)

	model, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = model.(*App)

	assert.Equal(t, messages.ViewForm, app.CurrentView())
}

func TestApp_CtrlCQuits(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_QuitMessage(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, cmd := app.Update(messages.Quit{})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestApp_SubmitKeyRunsSubmission(t *testing.T) {
	app, _, submission := newTestApp(t)

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	msg := cmd()
	completed, ok := msg.(messages.SubmitCompleted)
	require.True(t, ok)
	assert.NoError(t, completed.Err)
	assert.Equal(t, 1, submission.SubmitCalls)
}

func TestApp_SubmitCarriesError(t *testing.T) {
	app, _, submission := newTestApp(t)
	wantErr := errors.New("endpoint unreachable")
	submission.SubmitFunc = func(_ context.Context) error { return wantErr }

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	require.NotNil(t, cmd)

	completed, ok := cmd().(messages.SubmitCompleted)
	require.True(t, ok)
	assert.ErrorIs(t, completed.Err, wantErr)
}

func TestApp_SubmitCompletedSuccessResetsFormPosition(t *testing.T) {
	app, _, _ := newTestApp(t)
	model, _ := app.Update(keyMsg("l"))
	app = model.(*App)
	require.Equal(t, 1, app.formView.Page())

	model, _ = app.Update(messages.SubmitCompleted{})
	app = model.(*App)

	assert.Equal(t, 0, app.formView.Page())
	assert.NoError(t, app.Err())
}

func TestApp_SubmitCompletedFailurePreservesFormPosition(t *testing.T) {
	app, _, _ := newTestApp(t)
	model, _ := app.Update(keyMsg("l"))
	app = model.(*App)
	require.Equal(t, 1, app.formView.Page())

	wantErr := errors.New("sheet is locked")
	model, _ = app.Update(messages.SubmitCompleted{Err: wantErr})
	app = model.(*App)

	assert.Equal(t, 1, app.formView.Page())
	assert.ErrorIs(t, app.Err(), wantErr)
}

func TestApp_SignInKeyRunsFlow(t *testing.T) {
	app, session, _ := newTestApp(t)
	want := &domain.Session{Name: "Ana", Email: "ana@example.com", IDToken: "token"}
	session.SignInFunc = func(_ context.Context) (*domain.Session, error) { return want, nil }

	_, cmd := app.Update(keyMsg("i"))
	require.NotNil(t, cmd)

	completed, ok := cmd().(messages.SignInCompleted)
	require.True(t, ok)
	assert.Equal(t, want, completed.Session)
	assert.NoError(t, completed.Err)
}

func TestApp_SignInGuardedWhileInFlight(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, first := app.Update(keyMsg("i"))
	require.NotNil(t, first)

	_, second := app.Update(keyMsg("i"))
	assert.Nil(t, second)
}

func TestApp_SignInCompletedUpdatesIdentity(t *testing.T) {
	app, session, _ := newTestApp(t)
	session.CurrentFunc = func() *domain.Session {
		return &domain.Session{Name: "Ana Reyes", Email: "ana@example.com", IDToken: "token"}
	}

	model, _ := app.Update(messages.SignInCompleted{Session: session.Current()})
	app = model.(*App)

	assert.Equal(t, "Ana Reyes", app.statusBar.Identity())
}

func TestApp_SignInCompletedFallsBackToEmail(t *testing.T) {
	app, session, _ := newTestApp(t)
	session.CurrentFunc = func() *domain.Session {
		return &domain.Session{Email: "ana@example.com", IDToken: "token"}
	}

	model, _ := app.Update(messages.SignInCompleted{})
	app = model.(*App)

	assert.Equal(t, "ana@example.com", app.statusBar.Identity())
}

func TestApp_SignOutKeyRunsFlow(t *testing.T) {
	app, session, _ := newTestApp(t)
	signedOut := false
	session.SignOutFunc = func() error {
		signedOut = true
		return nil
	}

	_, cmd := app.Update(keyMsg("o"))
	require.NotNil(t, cmd)

	_, ok := cmd().(messages.SignedOut)
	require.True(t, ok)
	assert.True(t, signedOut)
}

func TestApp_SignedOutClearsIdentity(t *testing.T) {
	app, session, _ := newTestApp(t)
	session.CurrentFunc = func() *domain.Session {
		return &domain.Session{Name: "Ana Reyes", IDToken: "token"}
	}
	model, _ := app.Update(messages.StatusTick{})
	app = model.(*App)
	require.Equal(t, "Ana Reyes", app.statusBar.Identity())

	session.CurrentFunc = nil
	model, _ = app.Update(messages.SignedOut{})
	app = model.(*App)

	assert.Empty(t, app.statusBar.Identity())
}

func TestApp_StatusTickRefreshesAndReschedules(t *testing.T) {
	app, _, submission := newTestApp(t)
	submission.StatusFunc = func() domain.SubmissionStatus {
		return domain.SubmissionStatus{Kind: domain.StatusSuccess, Message: "Saved."}
	}

	model, cmd := app.Update(messages.StatusTick{})
	app = model.(*App)

	assert.Equal(t, domain.StatusSuccess, app.statusBar.Status().Kind)
	require.NotNil(t, cmd)
}

func TestApp_ResetKeyClearsChecklist(t *testing.T) {
	app, _, _ := newTestApp(t)
	require.NoError(t, app.ports.Checklist.SetAnswer("q1", domain.AnswerYes))

	model, _ := app.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	app = model.(*App)

	answer, err := app.ports.Checklist.Answer("q1")
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerNA, answer.State)
}

func TestApp_ViewChanged(t *testing.T) {
	app, _, _ := newTestApp(t)

	model, _ := app.Update(messages.ViewChanged{View: messages.ViewSummary})
	app = model.(*App)

	assert.Equal(t, messages.ViewSummary, app.CurrentView())
}

func TestApp_ErrorOccurred(t *testing.T) {
	app, _, _ := newTestApp(t)
	wantErr := errors.New("boom")

	model, _ := app.Update(messages.ErrorOccurred{Err: wantErr})
	app = model.(*App)

	assert.ErrorIs(t, app.Err(), wantErr)
}

func TestApp_EditingKeepsShortcutsOutOfInput(t *testing.T) {
	app, _, _ := newTestApp(t)
	model, _ := app.Update(keyMsg("l"))
	app = model.(*App)
	model, _ = app.Update(keyMsg("r"))
	app = model.(*App)
	require.True(t, app.formView.Editing())

	// "i" must type into the remark, not start a sign-in.
	model, cmd := app.Update(keyMsg("i"))
	app = model.(*App)

	if cmd != nil {
		_, isSignIn := cmd().(messages.SignInCompleted)
		assert.False(t, isSignIn)
	}
	assert.True(t, app.formView.Editing())
}

func TestApp_HelpViewListsBindings(t *testing.T) {
	app, _, _ := newTestApp(t)
	app.SetDimensions(100, 30)

	model, _ := app.Update(keyMsg("?"))
	app = model.(*App)

	view := app.View()
	assert.Contains(t, view, "ctrl+s")
	assert.Contains(t, view, "Sign in with Google")
}
