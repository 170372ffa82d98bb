package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidInput indicates a body that is not JSON or has the wrong shape.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedFormat indicates a format selector other than docx or pdf.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// FieldError describes one structural problem in the request body.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError collects the structural problems found in a request body.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		parts = append(parts, fmt.Sprintf("%s: %s", fe.Field, fe.Message))
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}
