// Package summary provides the tally view for the TUI. It shows the
// Yes/No/N/A counts per category and the overall totals, recomputed
// from the live answer sheet on every render.
package summary

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
)

// View is the per-category tally view.
type View struct {
	styles    *styles.Styles
	checklist driving.ChecklistService

	width  int
	height int
	ready  bool
}

// NewView creates a new summary view.
func NewView(s *styles.Styles, checklist driving.ChecklistService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		checklist: checklist,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		v.width = size.Width
		v.height = size.Height
		v.ready = true
	}
	return v, nil
}

// View renders the summary view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Summary"))
	b.WriteString("\n\n")

	nameWidth := 0
	schema := v.checklist.Schema()
	for _, category := range schema {
		if len(category.Name) > nameWidth {
			nameWidth = len(category.Name)
		}
	}

	header := fmt.Sprintf("  %-*s  %4s  %4s  %4s  %5s", nameWidth, "Category", "Yes", "No", "N/A", "Total")
	b.WriteString(v.styles.Subtitle.Render(header))
	b.WriteString("\n")

	summaries := v.checklist.Summaries()
	for _, category := range schema {
		s := summaries[category.Name]
		line := fmt.Sprintf("  %-*s  %4d  %4d  %4d  %5d", nameWidth, category.Name, s.Yes, s.No, s.NA, s.Total)
		b.WriteString(v.styles.Normal.Render(line))
		b.WriteString("\n")
	}

	overall := v.checklist.Overall()
	b.WriteString("\n")
	total := fmt.Sprintf("  %-*s  %4d  %4d  %4d  %5d", nameWidth, "Overall", overall.Yes, overall.No, overall.NA, overall.Total)
	b.WriteString(v.styles.Subtitle.Render(total))
	b.WriteString("\n\n")
	b.WriteString(v.styles.Help.Render("[tab] back to form"))

	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}
