package domain

import "time"

// StatusKind identifies the submission pipeline's transient UI state.
type StatusKind int

const (
	// StatusNone means no submission activity to report.
	StatusNone StatusKind = iota
	// StatusSubmitting means a submission is in flight.
	StatusSubmitting
	// StatusSuccess means the last submission was accepted.
	StatusSuccess
	// StatusError means the last submission failed.
	StatusError
)

// String returns the string representation of the status kind.
func (k StatusKind) String() string {
	switch k {
	case StatusNone:
		return "none"
	case StatusSubmitting:
		return "submitting"
	case StatusSuccess:
		return "success"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// StatusTTL is how long Success and Error statuses remain visible
// before self-clearing back to StatusNone.
const StatusTTL = 3 * time.Second

// SubmissionStatus is the transient, user-visible state of the
// submission pipeline. Success and Error expire after StatusTTL unless
// superseded by a newer status first.
type SubmissionStatus struct {
	Kind    StatusKind
	Message string
}

// InFlight returns true while a submission is being performed.
func (s SubmissionStatus) InFlight() bool {
	return s.Kind == StatusSubmitting
}
