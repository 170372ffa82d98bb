package health

import "resume-renderer/resume/model"

// Status is the health payload.
type Status struct {
	OK      bool     `json:"ok"`
	Formats []string `json:"formats"`
}

// Service encapsulates health-related checks.
type Service struct{}

// NewService constructs a new health service.
func NewService() *Service {
	return &Service{}
}

// Status reports liveness and the formats the renderer can produce.
func (s *Service) Status() Status {
	formats := model.Formats()
	out := make([]string, 0, len(formats))
	for _, f := range formats {
		out = append(out, string(f))
	}
	return Status{OK: true, Formats: out}
}
