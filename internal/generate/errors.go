package generate

import (
	"errors"
	"net/http"

	"resume-renderer/internal/shared/server/respond"
	"resume-renderer/resume/model"
)

// statusFor maps a Generate error to a status, a log code and the message
// the client sees. Anything unrecognized is a 500 with the generic message.
func statusFor(err error) (int, string, string) {
	switch {
	case errors.Is(err, model.ErrUnsupportedFormat):
		return http.StatusBadRequest, "unsupported_format", err.Error()
	case errors.Is(err, model.ErrInvalidInput):
		return http.StatusBadRequest, "invalid_input", err.Error()
	default:
		return http.StatusInternalServerError, "render_failed", respond.InternalErrorMessage
	}
}
