// Package status provides the status bar component for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
)

// Bar displays the submission status, the signed-in identity and
// keybinding hints.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	status   domain.SubmissionStatus
	identity string
	width    int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		width:  80,
	}
}

// Init initialises the status bar.
func (s *Bar) Init() tea.Cmd {
	return nil
}

// Update handles status bar messages.
func (s *Bar) Update(_ tea.Msg) (*Bar, tea.Cmd) {
	// Bar is passive, updated via Set methods
	return s, nil
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	leftLen := lipgloss.Width(left)
	rightLen := lipgloss.Width(right)
	padding := s.width - leftLen - rightLen
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

// renderLeft renders the submission status and identity.
func (s *Bar) renderLeft() string {
	var parts []string

	switch s.status.Kind {
	case domain.StatusSubmitting:
		parts = append(parts, s.styles.Warning.Render("Submitting..."))
	case domain.StatusSuccess:
		parts = append(parts, s.styles.Success.Render(s.status.Message))
	case domain.StatusError:
		parts = append(parts, s.styles.Error.Render(s.status.Message))
	case domain.StatusNone:
	}

	if s.identity != "" {
		parts = append(parts, s.styles.Normal.Render(s.identity))
	} else {
		parts = append(parts, s.styles.Muted.Render("not signed in"))
	}

	return strings.Join(parts, s.styles.Muted.Render(" | "))
}

// renderRight renders keybinding hints.
func (s *Bar) renderRight() string {
	var bindings []key.Binding
	if s.status.InFlight() {
		bindings = []key.Binding{s.keymap.Quit}
	} else {
		bindings = s.keymap.ShortHelp()
	}

	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetStatus sets the submission status to display.
func (s *Bar) SetStatus(status domain.SubmissionStatus) {
	s.status = status
}

// Status returns the displayed submission status.
func (s *Bar) Status() domain.SubmissionStatus {
	return s.status
}

// SetIdentity sets the signed-in identity line. Empty means signed out.
func (s *Bar) SetIdentity(identity string) {
	s.identity = identity
}

// Identity returns the displayed identity.
func (s *Bar) Identity() string {
	return s.identity
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}

// Clear resets the status bar to default state.
func (s *Bar) Clear() {
	s.status = domain.SubmissionStatus{}
	s.identity = ""
}
