package telemetry

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func TestWriteUsesConfiguredOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stdout)

	Warn("wizard.rejected", map[string]any{"step": 1, "level": "ignored"})

	line := strings.TrimSpace(buf.String())
	var payload map[string]any
	if err := json.Unmarshal([]byte(line), &payload); err != nil {
		t.Fatalf("decode log json: %v", err)
	}
	if payload["level"] != "warn" {
		t.Fatalf("expected reserved level to win, got %v", payload["level"])
	}
	if payload["msg"] != "wizard.rejected" {
		t.Fatalf("unexpected msg: %v", payload["msg"])
	}
	if payload["step"] != float64(1) {
		t.Fatalf("unexpected step field: %v", payload["step"])
	}
	if _, ok := payload["ts"]; !ok {
		t.Fatalf("missing ts")
	}
}
