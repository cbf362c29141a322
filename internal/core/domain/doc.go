// Package domain defines the core business entities for Inspecta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Schema: The fixed, ordered checklist of categories and questions
//   - AnswerSheet: Per-question tri-state answers plus remarks
//   - CategorySummary: Derived per-category and overall tallies
//   - Metadata: The free-form inspection header
//   - Session: The authenticated principal, if any
//   - SubmissionStatus: Transient state of the submission pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
