package form

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/inspecta-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/services"
)

func testSchema() domain.Schema {
	return domain.Schema{
		{
			Name: "FIRE PROTECTION",
			Questions: []domain.Question{
				{ID: "q1", Text: "Are extinguishers charged?"},
				{ID: "q2", Text: "Are exits marked?"},
			},
		},
		{
			Name: "HOUSEKEEPING",
			Questions: []domain.Question{
				{ID: "q3", Text: "Is the work area organized?"},
			},
		},
	}
}

func newFormFixture() (*View, *services.ChecklistService) {
	checklist := services.NewChecklistService(testSchema())
	return NewView(styles.DefaultStyles(), checklist), checklist
}

func keyRune(r string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(r)}
}

func TestNewView(t *testing.T) {
	v, _ := newFormFixture()

	require.NotNil(t, v)
	assert.Equal(t, 0, v.Page())
	assert.Equal(t, 0, v.Cursor())
	assert.False(t, v.Editing())
}

func TestView_StartsOnMetadataPage(t *testing.T) {
	v, _ := newFormFixture()

	view := v.View()
	assert.Contains(t, view, "Inspection Details")
	assert.Contains(t, view, "Building")
	assert.Contains(t, view, "Inspector")
}

func TestView_CursorMovesDown(t *testing.T) {
	v, _ := newFormFixture()

	v, _ = v.Update(keyRune("j"))

	assert.Equal(t, 1, v.Cursor())
}

func TestView_CursorWrapsToNextPage(t *testing.T) {
	v, _ := newFormFixture()

	// Six metadata rows, then the first category.
	for range [6]struct{}{} {
		v, _ = v.Update(keyRune("j"))
	}

	assert.Equal(t, 1, v.Page())
	assert.Equal(t, 0, v.Cursor())
}

func TestView_CursorWrapsToPreviousPage(t *testing.T) {
	v, _ := newFormFixture()
	v, _ = v.Update(keyRune("l"))
	require.Equal(t, 1, v.Page())

	v, _ = v.Update(keyRune("k"))

	assert.Equal(t, 0, v.Page())
	assert.Equal(t, 5, v.Cursor())
}

func TestView_PageNavigation(t *testing.T) {
	v, _ := newFormFixture()

	v, _ = v.Update(keyRune("l"))
	assert.Equal(t, 1, v.Page())

	v, _ = v.Update(keyRune("l"))
	assert.Equal(t, 2, v.Page())

	// Last page, no further.
	v, _ = v.Update(keyRune("l"))
	assert.Equal(t, 2, v.Page())

	v, _ = v.Update(keyRune("h"))
	assert.Equal(t, 1, v.Page())
}

func TestView_AnswerKeysSetState(t *testing.T) {
	v, checklist := newFormFixture()
	v, _ = v.Update(keyRune("l"))

	v, _ = v.Update(keyRune("y"))
	answer, err := checklist.Answer("q1")
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerYes, answer.State)

	v, _ = v.Update(keyRune("j"))
	v, _ = v.Update(keyRune("n"))
	answer, err = checklist.Answer("q2")
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerNo, answer.State)

	_, _ = v.Update(keyRune("a"))
	answer, err = checklist.Answer("q2")
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerNA, answer.State)
}

func TestView_AnswerKeysIgnoredOnMetadataPage(t *testing.T) {
	v, checklist := newFormFixture()

	_, _ = v.Update(keyRune("y"))

	answer, err := checklist.Answer("q1")
	require.NoError(t, err)
	assert.Equal(t, domain.AnswerNA, answer.State)
}

func TestView_EditMetadataField(t *testing.T) {
	v, checklist := newFormFixture()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.Editing())

	v, _ = v.Update(keyRune("HQ"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.False(t, v.Editing())
	assert.Equal(t, "HQ", checklist.Metadata().BuildingName)
}

func TestView_EditLoadsExistingValue(t *testing.T) {
	v, checklist := newFormFixture()
	checklist.SetBuildingName("Main Building")

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, v.Editing())

	v, _ = v.Update(keyRune("!"))
	_, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "Main Building!", checklist.Metadata().BuildingName)
}

func TestView_EscCancelsEdit(t *testing.T) {
	v, checklist := newFormFixture()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	v, _ = v.Update(keyRune("discarded"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, v.Editing())
	assert.Empty(t, checklist.Metadata().BuildingName)
}

func TestView_EditRemark(t *testing.T) {
	v, checklist := newFormFixture()
	v, _ = v.Update(keyRune("l"))

	v, _ = v.Update(keyRune("r"))
	require.True(t, v.Editing())

	v, _ = v.Update(keyRune("valve rusted"))
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyEnter})

	answer, err := checklist.Answer("q1")
	require.NoError(t, err)
	assert.Equal(t, "valve rusted", answer.Remark)
}

func TestView_CategoryPageShowsAnswers(t *testing.T) {
	v, checklist := newFormFixture()
	require.NoError(t, checklist.SetAnswer("q1", domain.AnswerYes))
	require.NoError(t, checklist.SetRemark("q1", "tag expired"))
	v, _ = v.Update(keyRune("l"))

	view := v.View()
	assert.Contains(t, view, "FIRE PROTECTION")
	assert.Contains(t, view, "Yes")
	assert.Contains(t, view, "Are extinguishers charged?")
	assert.Contains(t, view, "remark: tag expired")
}

func TestView_Reset(t *testing.T) {
	v, _ := newFormFixture()
	v, _ = v.Update(keyRune("l"))
	v, _ = v.Update(keyRune("r"))
	require.True(t, v.Editing())

	v.Reset()

	assert.Equal(t, 0, v.Page())
	assert.Equal(t, 0, v.Cursor())
	assert.False(t, v.Editing())
}

func TestView_SetDimensions(t *testing.T) {
	v, _ := newFormFixture()

	v.SetDimensions(120, 40)

	assert.NotEmpty(t, v.View())
}
