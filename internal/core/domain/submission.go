package domain

// Wire types for the record store exchange. Field names and the order
// of AnswerRows are part of the endpoint contract.

// AnswerRow is one serialized answer in the submission payload.
type AnswerRow struct {
	QID    string `json:"qid"`
	Answer string `json:"answer"`
	Remark string `json:"remark"`
}

// SubmissionData is the inner payload of a submission.
type SubmissionData struct {
	// SubmissionID is a client-generated unique id, letting the record
	// store deduplicate a manually re-sent inspection.
	SubmissionID string `json:"submissionId,omitempty"`
	// Meta is the inspection header.
	Meta Metadata `json:"meta"`
	// Answers holds one row per question, in schema order.
	Answers []AnswerRow `json:"answers"`
	// UserName and UserEmail identify the submitter.
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

// Envelope wraps the payload with the bearer credential used for
// transport-level authentication at the record store.
type Envelope struct {
	IDToken string         `json:"id_token"`
	Data    SubmissionData `json:"data"`
}

// BuildAnswerRows serializes the sheet by walking the schema's
// categories and questions in declaration order. The sheet's own
// iteration order is unordered by contract and must never leak into
// the payload.
func BuildAnswerRows(schema Schema, sheet AnswerSheet) []AnswerRow {
	rows := make([]AnswerRow, 0, schema.QuestionCount())
	for _, c := range schema {
		for _, q := range c.Questions {
			answer, ok := sheet[q.ID]
			if !ok {
				answer = Answer{State: AnswerNA}
			}
			state := answer.State
			if !state.IsValid() {
				state = AnswerNA
			}
			rows = append(rows, AnswerRow{
				QID:    q.ID,
				Answer: state.String(),
				Remark: answer.Remark,
			})
		}
	}
	return rows
}
