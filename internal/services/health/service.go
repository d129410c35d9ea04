package health

import (
	"context"

	"cgi-wizard/internal/wizard"
)

// Service encapsulates health-related checks.
type Service struct {
	wizard *wizard.Service
}

// NewService constructs a health service that probes the wizard.
func NewService(svc *wizard.Service) *Service {
	return &Service{wizard: svc}
}

// Status renders the first page once to prove the wizard is usable.
func (s *Service) Status(ctx context.Context) map[string]any {
	if s == nil || s.wizard == nil {
		return map[string]any{"ok": false}
	}
	page, err := s.wizard.Handle(ctx, wizard.Request{Method: "GET"})
	if err != nil {
		return map[string]any{"ok": false, "error": err.Error()}
	}
	return map[string]any{"ok": true, "step": page.Step}
}
