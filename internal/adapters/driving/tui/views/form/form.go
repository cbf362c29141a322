// Package form provides the checklist form view for the TUI.
//
// The form is paged: page zero holds the inspection metadata fields,
// and each following page holds one category of questions. Answers are
// applied immediately; text edits go through a single shared input.
package form

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
)

// metaField binds a metadata label to its accessor pair.
type metaField struct {
	label string
	value func(domain.Metadata) string
	set   func(string)
}

// View is the checklist form view.
type View struct {
	styles    *styles.Styles
	checklist driving.ChecklistService
	keys      *keymap.KeyMap

	// page 0 is metadata; pages 1..N are categories.
	page   int
	cursor int

	editing bool
	editor  *input.FieldInput

	err error

	width  int
	height int
	ready  bool
}

// NewView creates a new form view.
func NewView(s *styles.Styles, checklist driving.ChecklistService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &View{
		styles:    s,
		checklist: checklist,
		keys:      keymap.DefaultKeyMap(),
		editor:    input.NewFieldInput(s, "", ""),
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Editing reports whether a text edit is in progress. The app uses it
// to keep single-letter shortcuts out of text input.
func (v *View) Editing() bool {
	return v.editing
}

// Err returns the last error surfaced by a form action.
func (v *View) Err() error {
	return v.err
}

// Page returns the current page index (0 = metadata).
func (v *View) Page() int {
	return v.page
}

// Cursor returns the cursor position within the page.
func (v *View) Cursor() int {
	return v.cursor
}

// Update handles messages for the form view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.ready = true
		v.editor.SetWidth(msg.Width)
		return v, nil

	case tea.KeyMsg:
		if v.editing {
			return v.handleEditKeys(msg)
		}
		return v.handleNavKeys(msg)
	}

	return v, nil
}

func (v *View) handleEditKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "enter":
		v.commitEdit()
		return v, nil
	case "esc":
		v.cancelEdit()
		return v, nil
	default:
		var cmd tea.Cmd
		v.editor, cmd = v.editor.Update(msg)
		return v, cmd
	}
}

//nolint:gocyclo // single dispatch point for all form navigation keys
func (v *View) handleNavKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, v.keys.Up):
		v.moveCursor(-1)
	case keymap.Matches(keyStr, v.keys.Down):
		v.moveCursor(1)
	case keymap.Matches(keyStr, v.keys.PrevCategory):
		v.movePage(-1)
	case keymap.Matches(keyStr, v.keys.NextCategory):
		v.movePage(1)
	case keymap.Matches(keyStr, v.keys.Yes):
		v.setAnswer(domain.AnswerYes)
	case keymap.Matches(keyStr, v.keys.No):
		v.setAnswer(domain.AnswerNo)
	case keymap.Matches(keyStr, v.keys.NotApplicable):
		v.setAnswer(domain.AnswerNA)
	case keymap.Matches(keyStr, v.keys.Edit):
		return v, v.startEdit()
	}

	return v, nil
}

// rowCount returns the number of selectable rows on the current page.
func (v *View) rowCount() int {
	if v.page == 0 {
		return len(v.metaFields())
	}
	schema := v.checklist.Schema()
	idx := v.page - 1
	if idx < 0 || idx >= len(schema) {
		return 0
	}
	return len(schema[idx].Questions)
}

func (v *View) pageCount() int {
	return len(v.checklist.Schema()) + 1
}

func (v *View) moveCursor(delta int) {
	next := v.cursor + delta
	if next < 0 {
		// Wrap to the previous page's last row.
		if v.page > 0 {
			v.page--
			v.cursor = v.rowCount() - 1
		}
		return
	}
	if next >= v.rowCount() {
		if v.page < v.pageCount()-1 {
			v.page++
			v.cursor = 0
		}
		return
	}
	v.cursor = next
}

func (v *View) movePage(delta int) {
	next := v.page + delta
	if next < 0 || next >= v.pageCount() {
		return
	}
	v.page = next
	v.cursor = 0
}

// currentQuestion returns the question under the cursor, if any.
func (v *View) currentQuestion() (domain.Question, bool) {
	if v.page == 0 {
		return domain.Question{}, false
	}
	schema := v.checklist.Schema()
	idx := v.page - 1
	if idx >= len(schema) || v.cursor >= len(schema[idx].Questions) {
		return domain.Question{}, false
	}
	return schema[idx].Questions[v.cursor], true
}

func (v *View) setAnswer(state domain.AnswerState) {
	question, ok := v.currentQuestion()
	if !ok {
		return
	}
	v.err = v.checklist.SetAnswer(question.ID, state)
}

// startEdit opens the shared input on the current row.
func (v *View) startEdit() tea.Cmd {
	if v.page == 0 {
		fields := v.metaFields()
		if v.cursor >= len(fields) {
			return nil
		}
		field := fields[v.cursor]
		v.editor.SetLabel(field.label)
		v.editor.SetValue(field.value(v.checklist.Metadata()))
	} else {
		question, ok := v.currentQuestion()
		if !ok {
			return nil
		}
		answer, err := v.checklist.Answer(question.ID)
		if err != nil {
			v.err = err
			return nil
		}
		v.editor.SetLabel("Remark")
		v.editor.SetValue(answer.Remark)
	}

	v.editing = true
	return v.editor.Focus()
}

func (v *View) commitEdit() {
	value := v.editor.Value()
	if v.page == 0 {
		fields := v.metaFields()
		if v.cursor < len(fields) {
			fields[v.cursor].set(value)
		}
	} else if question, ok := v.currentQuestion(); ok {
		v.err = v.checklist.SetRemark(question.ID, value)
	}
	v.cancelEdit()
}

func (v *View) cancelEdit() {
	v.editing = false
	v.editor.Blur()
	v.editor.Reset()
}

func (v *View) metaFields() []metaField {
	return []metaField{
		{"Building", func(m domain.Metadata) string { return m.BuildingName }, v.checklist.SetBuildingName},
		{"Room", func(m domain.Metadata) string { return m.RoomName }, v.checklist.SetRoomName},
		{"Division", func(m domain.Metadata) string { return m.Division }, v.checklist.SetDivision},
		{"Date", func(m domain.Metadata) string { return m.Date }, v.checklist.SetDate},
		{"Inspector", func(m domain.Metadata) string { return m.Inspector }, v.checklist.SetInspector},
		{"Other remarks", func(m domain.Metadata) string { return m.OtherRemarks }, v.checklist.SetOtherRemarks},
	}
}

// View renders the form view.
func (v *View) View() string {
	var b strings.Builder

	if v.page == 0 {
		b.WriteString(v.renderMetaPage())
	} else {
		b.WriteString(v.renderCategoryPage())
	}

	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n")
	}

	if v.editing {
		b.WriteString("\n")
		b.WriteString(v.editor.View())
		b.WriteString("\n")
		b.WriteString(v.styles.Help.Render("[enter] done  [esc] cancel"))
	} else {
		b.WriteString("\n")
		b.WriteString(v.renderHelp())
	}

	return b.String()
}

func (v *View) renderMetaPage() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Inspection Details"))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("page 1/%d", v.pageCount())))
	b.WriteString("\n\n")

	meta := v.checklist.Metadata()
	for i, field := range v.metaFields() {
		indicator := "  "
		if i == v.cursor {
			indicator = "> "
		}

		value := field.value(meta)
		if value == "" {
			value = v.styles.Muted.Render("(empty)")
		}

		line := fmt.Sprintf("%s%s: %s", indicator, field.label, value)
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render(fmt.Sprintf("%s%s:", indicator, field.label)) + " " + value)
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderCategoryPage() string {
	var b strings.Builder

	schema := v.checklist.Schema()
	idx := v.page - 1
	if idx >= len(schema) {
		return ""
	}
	category := schema[idx]

	b.WriteString(v.styles.Title.Render(category.Name))
	b.WriteString("  ")
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("page %d/%d", v.page+1, v.pageCount())))
	b.WriteString("\n\n")

	for i, question := range category.Questions {
		indicator := "  "
		if i == v.cursor {
			indicator = "> "
		}

		answer, err := v.checklist.Answer(question.ID)
		if err != nil {
			continue
		}

		badge := v.styles.AnswerStyle(string(answer.State)).Render(fmt.Sprintf("[%3s]", answer.State))
		line := fmt.Sprintf("%s%s %s", indicator, badge, question.Text)
		if i == v.cursor {
			b.WriteString(v.styles.Selected.Render(indicator) + badge + " " + v.styles.Normal.Render(question.Text))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")

		if answer.Remark != "" {
			b.WriteString(v.styles.Muted.Render("        remark: " + answer.Remark))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func (v *View) renderHelp() string {
	if v.page == 0 {
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [l] questions  [tab] summary")
	}
	return v.styles.Help.Render("[y/n/a] answer  [r] remark  [j/k] navigate  [h/l] category  [tab] summary")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.editor.SetWidth(width)
}

// Reset returns the form view to its initial position.
func (v *View) Reset() {
	v.page = 0
	v.cursor = 0
	v.err = nil
	v.cancelEdit()
}
