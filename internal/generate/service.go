package generate

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"resume-renderer/internal/shared/metrics"
	"resume-renderer/internal/shared/storage/staging"
	"resume-renderer/resume/layout"
	"resume-renderer/resume/model"
	"resume-renderer/resume/render"
)

// Service turns request bodies into rendered documents.
type Service struct {
	Stager staging.Stager
}

// NewService constructs a Service. A nil stager stages in memory.
func NewService(stager staging.Stager) *Service {
	if stager == nil {
		stager = staging.Memory{}
	}
	return &Service{Stager: stager}
}

// Generate parses body and renders the document it describes. An empty body
// is treated as {}.
func (s *Service) Generate(ctx context.Context, body []byte) (render.Document, error) {
	req, err := model.ParseRequest(body)
	if err != nil {
		metrics.ObserveRender("", metrics.OutcomeRejected, 0, 0)
		return render.Document{}, err
	}
	return s.Render(ctx, req)
}

// Render assembles and writes a parsed request. Panics and staging failures
// come back as *render.RenderError.
func (s *Service) Render(ctx context.Context, req model.Request) (doc render.Document, err error) {
	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			err = &render.RenderError{Format: req.Format, Message: "render panicked", Cause: fmt.Errorf("%v", rec)}
		}
		metrics.ObserveRender(string(req.Format), outcome(err), time.Since(start), len(doc.Bytes))
	}()

	if err := ctx.Err(); err != nil {
		return render.Document{}, err
	}

	blocks := layout.Assemble(req.Resume)
	opts := render.Options{AccentColor: req.Resume.AccentColor}

	data, err := s.Stager.Stage(ctx, func(w io.Writer) error {
		return render.Write(w, req.Format, blocks, opts)
	})
	if err != nil {
		if errors.Is(err, render.ErrRenderFailure) || errors.Is(err, model.ErrUnsupportedFormat) || ctx.Err() != nil {
			return render.Document{}, err
		}
		return render.Document{}, &render.RenderError{Format: req.Format, Message: "stage document", Cause: err}
	}

	return render.NewDocument(req.Format, req.Resume.Name, data), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return metrics.OutcomeOK
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrUnsupportedFormat):
		return metrics.OutcomeRejected
	default:
		return metrics.OutcomeFailed
	}
}
