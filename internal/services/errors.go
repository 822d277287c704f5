package services

import "errors"

// Error taxonomy surfaced to handlers. Wrap with context, e.g.
// fmt.Errorf("lead %w", ErrNotFound), and match with errors.Is.
var (
	ErrNotFound         = errors.New("not found")
	ErrAlreadyConverted = errors.New("already converted")
	ErrConflict         = errors.New("conflict")
	ErrValidation       = errors.New("validation failed")
)
