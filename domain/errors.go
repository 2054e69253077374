package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation      = errors.New("validation error")
	ErrAnalysisFailed  = errors.New("face analysis failed")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrNotFound        = errors.New("not found")
	ErrInvalidOption   = errors.New("invalid option")
	ErrConflict        = errors.New("conflict")
)

// ValidationError reports the profile fields that were missing or malformed.
type ValidationError struct {
	Fields []string
	Reason string
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation error: " + e.Reason
	}
	return "validation error: " + e.Reason + " (" + strings.Join(e.Fields, ", ") + ")"
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
