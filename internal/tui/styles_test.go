package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRenderProgressBar(t *testing.T) {
	tests := []struct {
		name      string
		percent   float64
		width     int
		wantFull  int
		wantEmpty int
	}{
		{"half", 0.5, 10, 5, 5},
		{"zero", 0, 10, 0, 10},
		{"complete", 1.0, 10, 10, 0},
		{"over 100 percent clamps", 1.5, 10, 10, 0},
		{"negative clamps", -0.2, 10, 0, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := RenderProgressBar(tt.percent, tt.width)
			if got := strings.Count(bar, "▰"); got != tt.wantFull {
				t.Errorf("full cells = %d, want %d", got, tt.wantFull)
			}
			if got := strings.Count(bar, "▱"); got != tt.wantEmpty {
				t.Errorf("empty cells = %d, want %d", got, tt.wantEmpty)
			}
		})
	}
}

func TestRenderMetric(t *testing.T) {
	out := RenderMetric("Max HR", "185 bpm")
	if !strings.Contains(out, "Max HR") || !strings.Contains(out, "185 bpm") {
		t.Errorf("RenderMetric() = %q, want label and value present", out)
	}
}

func TestZoneStyleRange(t *testing.T) {
	// each zone has a distinct ramp color; out-of-range falls back to dim
	seen := map[lipgloss.TerminalColor]bool{}
	for n := 1; n <= 5; n++ {
		fg := ZoneStyle(n).GetForeground()
		if seen[fg] {
			t.Errorf("zone %d reuses color %v", n, fg)
		}
		seen[fg] = true
	}

	dim := dimStyle.GetForeground()
	for _, n := range []int{0, 6, -1} {
		if ZoneStyle(n).GetForeground() != dim {
			t.Errorf("ZoneStyle(%d) foreground = %v, want dim fallback", n, ZoneStyle(n).GetForeground())
		}
	}
}
