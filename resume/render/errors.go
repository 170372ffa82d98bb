package render

import (
	"errors"
	"fmt"

	"resume-renderer/resume/model"
)

// ErrRenderFailure matches every *RenderError.
var ErrRenderFailure = errors.New("render failure")

// RenderError reports a failure while assembling or writing a document.
type RenderError struct {
	Format  model.Format
	Message string
	Cause   error
}

func (e *RenderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("render %s: %s: %v", e.Format, e.Message, e.Cause)
	}
	return fmt.Sprintf("render %s: %s", e.Format, e.Message)
}

func (e *RenderError) Unwrap() error {
	return e.Cause
}

func (e *RenderError) Is(target error) bool {
	return target == ErrRenderFailure
}
