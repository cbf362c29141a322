// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the checklist form view.
	ViewForm ViewType = iota
	// ViewSummary is the per-category tally view.
	ViewSummary
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewSummary:
		return "summary"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// SubmitRequested is a command to submit the checklist.
type SubmitRequested struct{}

// SubmitCompleted signals the submission exchange finished.
type SubmitCompleted struct {
	Err error
}

// SignInRequested is a command to start the browser sign-in flow.
type SignInRequested struct{}

// SignInCompleted carries the result of a sign-in flow.
type SignInCompleted struct {
	Session *domain.Session
	Err     error
}

// SignedOut signals the session was ended.
type SignedOut struct {
	Err error
}

// StatusTick drives periodic re-reads of the submission status, so the
// transient Saved/Error banner disappears when its window lapses.
type StatusTick struct{}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
