package services

import (
	"sync"
	"time"

	"github.com/custodia-labs/inspecta-cli/internal/core/domain"
	"github.com/custodia-labs/inspecta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/inspecta-cli/internal/logger"
)

// Ensure ChecklistService implements the interface.
var _ driving.ChecklistService = (*ChecklistService)(nil)

// ChecklistService owns the inspection form state for one session.
// Summaries are recomputed in full after every successful mutation;
// reads can never observe a sheet/summary mismatch.
type ChecklistService struct {
	mu        sync.RWMutex
	schema    domain.Schema
	sheet     domain.AnswerSheet
	meta      domain.Metadata
	summaries map[string]domain.CategorySummary

	// now supplies the default inspection date; injectable for tests.
	now func() time.Time
}

// NewChecklistService creates a checklist service with defaulted
// answers and a blank header dated today.
func NewChecklistService(schema domain.Schema) *ChecklistService {
	s := &ChecklistService{
		schema: schema,
		now:    time.Now,
	}
	s.reset()
	return s
}

// WithClock overrides the time source. Returns the service for chaining.
func (s *ChecklistService) WithClock(now func() time.Time) *ChecklistService {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
	s.meta.Date = now().Format(domain.DateLayout)
	return s
}

// Schema returns the fixed checklist schema.
func (s *ChecklistService) Schema() domain.Schema {
	return s.schema
}

// SetAnswer sets a question's tri-state answer.
func (s *ChecklistService) SetAnswer(id string, state domain.AnswerState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sheet.SetState(id, state); err != nil {
		return err
	}
	s.summaries = domain.Summarize(s.schema, s.sheet)
	logger.Debug("answer %s = %s", id, state)
	return nil
}

// SetRemark sets a question's free-text remark.
func (s *ChecklistService) SetRemark(id, remark string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sheet.SetRemark(id, remark); err != nil {
		return err
	}
	// Remarks don't affect tallies, but recompute anyway: one code
	// path, no chance of drift.
	s.summaries = domain.Summarize(s.schema, s.sheet)
	return nil
}

// Answer returns the current answer for a question.
func (s *ChecklistService) Answer(id string) (domain.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	answer, ok := s.sheet.Get(id)
	if !ok {
		return domain.Answer{}, domain.ErrUnknownQuestion
	}
	return answer, nil
}

// Sheet returns a snapshot copy of the answer sheet.
func (s *ChecklistService) Sheet() domain.AnswerSheet {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sheet.Clone()
}

// Metadata returns the current inspection header.
func (s *ChecklistService) Metadata() domain.Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// SetBuildingName sets the building name header field.
func (s *ChecklistService) SetBuildingName(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.BuildingName = v
}

// SetRoomName sets the room name header field.
func (s *ChecklistService) SetRoomName(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.RoomName = v
}

// SetDivision sets the division/section/unit header field.
func (s *ChecklistService) SetDivision(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Division = v
}

// SetDate sets the inspection date header field.
func (s *ChecklistService) SetDate(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Date = v
}

// SetInspector sets the inspector header field.
func (s *ChecklistService) SetInspector(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.Inspector = v
}

// SetOtherRemarks sets the general remarks header field.
func (s *ChecklistService) SetOtherRemarks(v string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta.OtherRemarks = v
}

// Summaries returns a copy of the per-category tallies.
func (s *ChecklistService) Summaries() map[string]domain.CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]domain.CategorySummary, len(s.summaries))
	for name, summary := range s.summaries {
		out[name] = summary
	}
	return out
}

// Overall returns the tally across all categories.
func (s *ChecklistService) Overall() domain.CategorySummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.Overall(s.summaries)
}

// Reset restores the sheet and metadata to their defaults.
func (s *ChecklistService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset()
	logger.Debug("checklist reset")
}

// reset reinitialises all form state (caller must hold lock, except
// from the constructor).
func (s *ChecklistService) reset() {
	s.sheet = domain.NewAnswerSheet(s.schema)
	s.meta = domain.DefaultMetadata(s.now())
	s.summaries = domain.Summarize(s.schema, s.sheet)
}
