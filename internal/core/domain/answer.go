package domain

// AnswerState is the tri-state response to a checklist question.
type AnswerState string

// Available answer states. These are also the wire values.
const (
	AnswerYes AnswerState = "Yes"
	AnswerNo  AnswerState = "No"
	AnswerNA  AnswerState = "N/A"
)

// IsValid returns true if the state is one of Yes, No, N/A.
func (s AnswerState) IsValid() bool {
	switch s {
	case AnswerYes, AnswerNo, AnswerNA:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s AnswerState) String() string {
	return string(s)
}

// AllAnswerStates returns the states in display order.
func AllAnswerStates() []AnswerState {
	return []AnswerState{AnswerYes, AnswerNo, AnswerNA}
}

// Answer is a question's current state plus free-text remark.
type Answer struct {
	State  AnswerState
	Remark string
}

// AnswerSheet maps question id to its Answer. The key set is fixed at
// construction to exactly the schema's question ids; mutations replace
// values in place and never add or remove keys.
type AnswerSheet map[string]Answer

// NewAnswerSheet builds a sheet with one defaulted answer per question.
func NewAnswerSheet(schema Schema) AnswerSheet {
	sheet := make(AnswerSheet, schema.QuestionCount())
	for _, c := range schema {
		for _, q := range c.Questions {
			sheet[q.ID] = Answer{State: AnswerNA}
		}
	}
	return sheet
}

// SetState replaces the state of the given question, preserving its remark.
// Unknown ids and states outside {Yes, No, N/A} are rejected so the
// summary invariant Yes+No+NA == total can never be violated at the source.
func (a AnswerSheet) SetState(id string, state AnswerState) error {
	answer, ok := a[id]
	if !ok {
		return ErrUnknownQuestion
	}
	if !state.IsValid() {
		return ErrInvalidAnswerState
	}
	answer.State = state
	a[id] = answer
	return nil
}

// SetRemark replaces the remark of the given question, preserving its state.
func (a AnswerSheet) SetRemark(id, remark string) error {
	answer, ok := a[id]
	if !ok {
		return ErrUnknownQuestion
	}
	answer.Remark = remark
	a[id] = answer
	return nil
}

// Get returns the answer for the given question id.
func (a AnswerSheet) Get(id string) (Answer, bool) {
	answer, ok := a[id]
	return answer, ok
}

// Clone returns an independent copy of the sheet.
func (a AnswerSheet) Clone() AnswerSheet {
	out := make(AnswerSheet, len(a))
	for id, answer := range a {
		out[id] = answer
	}
	return out
}
