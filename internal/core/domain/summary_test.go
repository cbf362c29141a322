package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize_AllDefaults(t *testing.T) {
	schema := testSchema()
	sheet := NewAnswerSheet(schema)

	summaries := Summarize(schema, sheet)

	require.Len(t, summaries, 2)
	assert.Equal(t, CategorySummary{Yes: 0, No: 0, NA: 2, Total: 2}, summaries["A"])
	assert.Equal(t, CategorySummary{Yes: 0, No: 0, NA: 1, Total: 1}, summaries["B"])
}

func TestSummarize_CountsPerCategory(t *testing.T) {
	schema := testSchema()
	sheet := NewAnswerSheet(schema)
	require.NoError(t, sheet.SetState("q1", AnswerYes))
	require.NoError(t, sheet.SetState("q2", AnswerNo))

	summaries := Summarize(schema, sheet)

	assert.Equal(t, CategorySummary{Yes: 1, No: 1, NA: 0, Total: 2}, summaries["A"])
	assert.Equal(t, CategorySummary{Yes: 0, No: 0, NA: 1, Total: 1}, summaries["B"])
}

func TestSummarize_InvariantHoldsUnderMutation(t *testing.T) {
	schema := DefaultSchema()
	sheet := NewAnswerSheet(schema)

	// Apply an arbitrary mutation sequence.
	require.NoError(t, sheet.SetState("q5", AnswerYes))
	require.NoError(t, sheet.SetState("q5", AnswerNo))
	require.NoError(t, sheet.SetState("q17", AnswerYes))
	require.NoError(t, sheet.SetState("q55", AnswerNo))
	require.NoError(t, sheet.SetRemark("q17", "spotless"))

	summaries := Summarize(schema, sheet)

	for _, c := range schema {
		s := summaries[c.Name]
		assert.Equal(t, len(c.Questions), s.Total, "category %s", c.Name)
		assert.Equal(t, s.Total, s.Yes+s.No+s.NA, "category %s", c.Name)
	}
}

func TestOverall_SumsAllCategories(t *testing.T) {
	schema := testSchema()
	sheet := NewAnswerSheet(schema)
	require.NoError(t, sheet.SetState("q1", AnswerYes))
	require.NoError(t, sheet.SetState("q3", AnswerNo))

	overall := Overall(Summarize(schema, sheet))

	assert.Equal(t, CategorySummary{Yes: 1, No: 1, NA: 1, Total: 3}, overall)
	assert.Equal(t, schema.QuestionCount(), overall.Total)
}

func TestSummarize_ExampleEndToEnd(t *testing.T) {
	// Schema: one category "A" with q1, q2. q1=Yes, q2=No.
	schema := Schema{{Name: "A", Questions: []Question{{ID: "q1"}, {ID: "q2"}}}}
	sheet := NewAnswerSheet(schema)
	require.NoError(t, sheet.SetState("q1", AnswerYes))
	require.NoError(t, sheet.SetState("q2", AnswerNo))

	summaries := Summarize(schema, sheet)
	overall := Overall(summaries)

	assert.Equal(t, CategorySummary{Yes: 1, No: 1, NA: 0, Total: 2}, summaries["A"])
	assert.Equal(t, CategorySummary{Yes: 1, No: 1, NA: 0, Total: 2}, overall)
}
