package util

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestTruncateString(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string untouched", "Casa", 10, "Casa"},
		{"exact length untouched", "Casa", 4, "Casa"},
		{"long string clipped", "Casa Mezquite", 8, "Casa ..."},
		{"tiny budget", "Casa", 3, "..."},
		{"multibyte runes", "Tonalá Pavilion", 9, "Tonalá..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
				t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTruncateANSIPreservesShortStyledText(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("Casa")
	if got := TruncateANSI(styled, 10); got != styled {
		t.Errorf("short styled string should pass through, got %q", got)
	}
}

func TestTruncateANSIClipsByColumns(t *testing.T) {
	got := TruncateANSI("Casa Mezquite", 8)
	if lipgloss.Width(got) > 8 {
		t.Errorf("clipped width = %d, want at most 8", lipgloss.Width(got))
	}
}
