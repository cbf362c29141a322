package driving

import "github.com/custodia-labs/inspecta-cli/internal/core/domain"

// ChecklistService owns the inspection form state: the answer sheet,
// the metadata header, and the derived summaries. Summaries are
// recomputed after every successful mutation and are never observably
// stale relative to the sheet.
type ChecklistService interface {
	// Schema returns the fixed checklist schema.
	Schema() domain.Schema

	// SetAnswer sets a question's tri-state answer.
	// Returns domain.ErrUnknownQuestion or domain.ErrInvalidAnswerState.
	SetAnswer(id string, state domain.AnswerState) error

	// SetRemark sets a question's free-text remark.
	// Returns domain.ErrUnknownQuestion for ids outside the schema.
	SetRemark(id, remark string) error

	// Answer returns the current answer for a question.
	Answer(id string) (domain.Answer, error)

	// Sheet returns a snapshot copy of the full answer sheet.
	Sheet() domain.AnswerSheet

	// Metadata returns the current inspection header.
	Metadata() domain.Metadata

	// Metadata field setters. Free text, no validation.

	SetBuildingName(v string)
	SetRoomName(v string)
	SetDivision(v string)
	SetDate(v string)
	SetInspector(v string)
	SetOtherRemarks(v string)

	// Summaries returns the per-category tallies.
	Summaries() map[string]domain.CategorySummary

	// Overall returns the tally across all categories.
	Overall() domain.CategorySummary

	// Reset restores the sheet and metadata to their defaults.
	// Idempotent.
	Reset()
}
