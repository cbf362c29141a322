// Package tui provides the interactive terminal user interface for Inspecta.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Checklist manages the answer sheet, metadata and summaries.
	Checklist driving.ChecklistService

	// Session manages the sign-in session.
	Session driving.SessionService

	// Submission submits the filled checklist to the record store.
	Submission driving.SubmissionService

	// Settings manages application settings. Optional; the form works
	// without it but cannot surface configuration warnings.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	checklist driving.ChecklistService,
	session driving.SessionService,
	submission driving.SubmissionService,
) *Ports {
	return &Ports{
		Checklist:  checklist,
		Session:    session,
		Submission: submission,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Checklist == nil {
		return ErrMissingChecklistService
	}
	if p.Session == nil {
		return ErrMissingSessionService
	}
	if p.Submission == nil {
		return ErrMissingSubmissionService
	}
	return nil
}
