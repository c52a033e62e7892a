package layout

import (
	"math"
	"testing"
)

func TestColumnsSumToHundred(t *testing.T) {
	tests := []struct {
		name    string
		a, p, s float64
	}{
		{"equal", 33.33, 33.33, 33.33},
		{"skewed", 90, 5, 5},
		{"one dominant", 100, 0, 0},
		{"arbitrary", 12.5, 61.2, 3.3},
		{"tiny values", 0.01, 0.02, 0.03},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := Columns(tt.a, tt.p, tt.s)
			sum := w.Architecture + w.ProductDesign + w.Software
			if math.Abs(sum-100) > 1e-6 {
				t.Errorf("widths sum to %v, want 100", sum)
			}
		})
	}
}

func TestColumnsProportions(t *testing.T) {
	w := Columns(50, 25, 25)

	if math.Abs(w.Architecture-50) > 1e-9 {
		t.Errorf("Architecture = %v, want 50", w.Architecture)
	}
	if math.Abs(w.ProductDesign-25) > 1e-9 {
		t.Errorf("ProductDesign = %v, want 25", w.ProductDesign)
	}
	if math.Abs(w.Software-25) > 1e-9 {
		t.Errorf("Software = %v, want 25", w.Software)
	}
}

func TestColumnsZeroSumFallsBackToThirds(t *testing.T) {
	w := Columns(0, 0, 0)

	third := 100.0 / 3
	for _, got := range []float64{w.Architecture, w.ProductDesign, w.Software} {
		if math.Abs(got-third) > 1e-9 {
			t.Errorf("width = %v, want %v", got, third)
		}
	}
}

func TestOpacity(t *testing.T) {
	tests := []struct {
		value float64
		want  float64
	}{
		{0, 0.4},
		{50, 0.7},
		{100, 1.0},
		{-10, 0.4},
		{200, 1.0},
	}

	for _, tt := range tests {
		if got := Opacity(tt.value); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Opacity(%v) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestVisibilityAt(t *testing.T) {
	tests := []struct {
		depth float64
		want  Visibility
	}{
		{0, Visibility{}},
		{19.9, Visibility{}},
		{20, Visibility{Overview: true}},
		{39, Visibility{Overview: true}},
		{40, Visibility{Overview: true, Columns: true}},
		{60, Visibility{Overview: true, Columns: true, Process: true}},
		{80, Visibility{Overview: true, Columns: true, Process: true, Specs: true}},
		{100, Visibility{Overview: true, Columns: true, Process: true, Specs: true}},
	}

	for _, tt := range tests {
		if got := VisibilityAt(tt.depth); got != tt.want {
			t.Errorf("VisibilityAt(%v) = %+v, want %+v", tt.depth, got, tt.want)
		}
	}
}

func TestVisibilityGatesAreMonotonic(t *testing.T) {
	prev := VisibilityAt(0)
	for depth := 1.0; depth <= 100; depth++ {
		cur := VisibilityAt(depth)
		if (prev.Overview && !cur.Overview) ||
			(prev.Columns && !cur.Columns) ||
			(prev.Process && !cur.Process) ||
			(prev.Specs && !cur.Specs) {
			t.Fatalf("a tier hid while depth rose to %v", depth)
		}
		prev = cur
	}
}

func TestStageAt(t *testing.T) {
	tests := []struct {
		progress float64
		want     Stage
	}{
		{0, StageConcept},
		{19, StageConcept},
		{20, StageDevelopment},
		{39.9, StageDevelopment},
		{40, StageRefinement},
		{50, StageRefinement},
		{60, StageBuild},
		{79.9, StageBuild},
		{80, StageFinal},
		{100, StageFinal},
	}

	for _, tt := range tests {
		if got := StageAt(tt.progress); got != tt.want {
			t.Errorf("StageAt(%v) = %s, want %s", tt.progress, got, tt.want)
		}
	}
}

func TestStageString(t *testing.T) {
	want := []string{"CONCEPT", "DEVELOPMENT", "REFINEMENT", "BUILD", "FINAL"}
	for i, stage := range Stages {
		if stage.String() != want[i] {
			t.Errorf("Stages[%d].String() = %q, want %q", i, stage.String(), want[i])
		}
	}
}

func TestDetailTier(t *testing.T) {
	tests := []struct {
		depth float64
		want  int
	}{
		{0, 1},
		{1, 1},
		{20, 1},
		{20.1, 2},
		{40, 2},
		{60, 3},
		{61, 4},
		{80, 4},
		{99, 5},
		{100, 5},
	}

	for _, tt := range tests {
		if got := DetailTier(tt.depth); got != tt.want {
			t.Errorf("DetailTier(%v) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}
