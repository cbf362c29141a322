package tui

import "errors"

// ErrMissingChecklistService is returned when the checklist service is not provided.
var ErrMissingChecklistService = errors.New("tui: checklist service is required")

// ErrMissingSessionService is returned when the session service is not provided.
var ErrMissingSessionService = errors.New("tui: session service is required")

// ErrMissingSubmissionService is returned when the submission service is not provided.
var ErrMissingSubmissionService = errors.New("tui: submission service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
