package domain

// CategorySummary tallies answer states within one category.
// Invariant: Yes+No+NA == Total == number of questions in the category.
type CategorySummary struct {
	Yes   int
	No    int
	NA    int
	Total int
}

// Add folds another summary into this one.
func (s *CategorySummary) Add(other CategorySummary) {
	s.Yes += other.Yes
	s.No += other.No
	s.NA += other.NA
	s.Total += other.Total
}

// Summarize derives per-category tallies from the sheet. It is a pure
// function recomputed in full on every call; summaries are never
// patched incrementally, so they cannot drift from the sheet.
func Summarize(schema Schema, sheet AnswerSheet) map[string]CategorySummary {
	out := make(map[string]CategorySummary, len(schema))
	for _, c := range schema {
		var s CategorySummary
		s.Total = len(c.Questions)
		for _, q := range c.Questions {
			answer, ok := sheet[q.ID]
			if !ok {
				answer = Answer{State: AnswerNA}
			}
			switch answer.State {
			case AnswerYes:
				s.Yes++
			case AnswerNo:
				s.No++
			case AnswerNA:
				s.NA++
			}
		}
		out[c.Name] = s
	}
	return out
}

// Overall folds all category summaries into a single tally.
// Invariant: Overall().Total == schema.QuestionCount().
func Overall(summaries map[string]CategorySummary) CategorySummary {
	var total CategorySummary
	for _, s := range summaries {
		total.Add(s)
	}
	return total
}
