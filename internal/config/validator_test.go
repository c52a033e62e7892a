package config

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateCollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.UI.Theme = "neon"
	cfg.UI.WheelStep = 0
	cfg.Display.IdleTimeoutMs = 10
	cfg.Display.CycleIntervalMs = -1
	cfg.Logging.Level = "verbose"

	errs := cfg.Validate()
	if len(errs) != 5 {
		t.Fatalf("Validate() returned %d errors, want 5:\n%v", len(errs), ValidationErrors(errs))
	}

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{
		"ui.theme", "ui.wheel_step",
		"display.idle_timeout_ms", "display.cycle_interval_ms",
		"logging.level",
	} {
		if !fields[want] {
			t.Errorf("missing validation error for %s", want)
		}
	}
}

func TestValidateProjectsPath(t *testing.T) {
	cfg := Default()
	cfg.Projects.Path = filepath.Join(t.TempDir(), "missing.yaml")

	errs := cfg.Validate()
	if len(errs) != 1 || errs[0].Field != "projects.path" {
		t.Errorf("Validate() = %v, want single projects.path error", ValidationErrors(errs))
	}
}

func TestValidateWheelStepBounds(t *testing.T) {
	tests := []struct {
		step float64
		ok   bool
	}{
		{0.5, true},
		{2, true},
		{50, true},
		{0, false},
		{-2, false},
		{51, false},
	}

	for _, tt := range tests {
		cfg := Default()
		cfg.UI.WheelStep = tt.step
		errs := cfg.Validate()
		if tt.ok && len(errs) != 0 {
			t.Errorf("step %v: unexpected errors %v", tt.step, ValidationErrors(errs))
		}
		if !tt.ok && len(errs) == 0 {
			t.Errorf("step %v: expected a validation error", tt.step)
		}
	}
}

func TestValidationErrorsMessage(t *testing.T) {
	errs := ValidationErrors{
		{Field: "ui.theme", Value: "neon", Message: "must be one of: default, contrast"},
		{Field: "ui.wheel_step", Value: 0.0, Message: "must be in (0, 50]"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("message missing count: %q", msg)
	}
	if !strings.Contains(msg, "ui.theme") || !strings.Contains(msg, "ui.wheel_step") {
		t.Errorf("message missing fields: %q", msg)
	}

	single := ValidationErrors{errs[0]}
	if single.Error() != errs[0].Error() {
		t.Error("single error should render without the count header")
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty collection should render as empty string")
	}
}
