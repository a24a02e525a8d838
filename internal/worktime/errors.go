package worktime

import (
	"errors"
	"fmt"
)

var (
	// ErrFormat matches every *FormatError via errors.Is
	ErrFormat = errors.New("incorrect date format")

	// ErrValidation matches every *ValidationError via errors.Is
	ErrValidation = errors.New("date not supported")
)

// FormatError reports input that is empty or does not match the expected layout
type FormatError struct {
	Input string
	Err   error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %q", ErrFormat, e.Input)
	}
	return fmt.Sprintf("%s: %q: %v", ErrFormat, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

func (e *FormatError) Is(target error) bool { return target == ErrFormat }

// ValidationError reports a well-formed date outside the supported month and year.
// Field is "month" or "year".
type ValidationError struct {
	Input string
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s not supported: %q", e.Field, e.Input)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
