package health

import (
	"context"
	"testing"

	"cgi-wizard/internal/wizard"
)

func TestStatusRendersFirstStep(t *testing.T) {
	svc := NewService(wizard.NewService(wizard.Options{}))
	status := svc.Status(context.Background())
	if status["ok"] != true {
		t.Fatalf("expected ok status, got %v", status)
	}
	if status["step"] != 1 {
		t.Fatalf("expected step 1, got %v", status["step"])
	}
}

func TestStatusWithoutWizard(t *testing.T) {
	var svc *Service
	if svc.Status(context.Background())["ok"] != false {
		t.Fatalf("expected not ok for nil service")
	}
}
