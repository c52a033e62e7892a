package nav

import (
	"math"
	"testing"
)

func TestForwardWraps(t *testing.T) {
	s := NewSelector(4)

	want := []int{1, 2, 3, 0, 1}
	for i, w := range want {
		if got := s.Forward(); got != w {
			t.Fatalf("Forward() call %d = %d, want %d", i+1, got, w)
		}
	}
}

func TestBackwardClampsAtZero(t *testing.T) {
	s := NewSelector(4)

	// Backward from index 0 is a no-op, never a wrap.
	if got := s.Backward(); got != 0 {
		t.Fatalf("Backward() from 0 = %d, want 0", got)
	}

	s.Select(2)
	if got := s.Backward(); got != 1 {
		t.Errorf("Backward() from 2 = %d, want 1", got)
	}
	if got := s.Backward(); got != 0 {
		t.Errorf("Backward() from 1 = %d, want 0", got)
	}
	if got := s.Backward(); got != 0 {
		t.Errorf("Backward() from 0 = %d, want 0", got)
	}
}

func TestForwardFromLastWrapsToFirst(t *testing.T) {
	s := NewSelector(3)
	s.Select(2)

	if got := s.Forward(); got != 0 {
		t.Errorf("Forward() from last = %d, want 0", got)
	}
}

func TestSelectClamps(t *testing.T) {
	tests := []struct {
		name string
		idx  int
		want int
	}{
		{"in range", 2, 2},
		{"negative", -5, 0},
		{"past end", 10, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSelector(4)
			if got := s.Select(tt.idx); got != tt.want {
				t.Errorf("Select(%d) = %d, want %d", tt.idx, got, tt.want)
			}
		})
	}
}

func TestEmptySelector(t *testing.T) {
	s := NewSelector(0)

	if got := s.Forward(); got != 0 {
		t.Errorf("Forward() on empty = %d, want 0", got)
	}
	if got := s.Backward(); got != 0 {
		t.Errorf("Backward() on empty = %d, want 0", got)
	}
	if got := s.Select(3); got != 0 {
		t.Errorf("Select() on empty = %d, want 0", got)
	}
}

func TestResizeClampsIndex(t *testing.T) {
	s := NewSelector(5)
	s.Select(4)

	s.Resize(3)
	if got := s.Index(); got != 2 {
		t.Errorf("Index() after shrink = %d, want 2", got)
	}

	s.Resize(0)
	if got := s.Index(); got != 0 {
		t.Errorf("Index() after resize to empty = %d, want 0", got)
	}

	s.Resize(10)
	if got := s.Index(); got != 0 {
		t.Errorf("Index() after grow = %d, want 0", got)
	}
}

func TestDialStep(t *testing.T) {
	tests := []struct {
		total int
		want  float64
	}{
		{0, 0},
		{1, 0},
		{2, 180},
		{3, 90},
		{5, 45},
		{7, 30},
	}

	for _, tt := range tests {
		if got := DialStep(tt.total); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("DialStep(%d) = %v, want %v", tt.total, got, tt.want)
		}
	}
}

func TestDialRotation(t *testing.T) {
	tests := []struct {
		name   string
		total  int
		active int
		want   float64
	}{
		{"first item", 5, 0, -90},
		{"second item", 5, 1, -45},
		{"middle item", 5, 2, 0},
		{"last item", 5, 4, 90},
		{"two items first", 2, 0, -90},
		{"two items last", 2, 1, 90},
		{"single item no rotation", 1, 0, 0},
		{"empty dial no rotation", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DialRotation(tt.total, tt.active); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("DialRotation(%d, %d) = %v, want %v", tt.total, tt.active, got, tt.want)
			}
		})
	}
}

func TestActiveItemLandsAtNeedle(t *testing.T) {
	// Whatever the selection, the active item's on-screen angle is 0.
	for total := 2; total <= 8; total++ {
		for active := 0; active < total; active++ {
			if got := ItemAngle(total, active, active); math.Abs(got) > 1e-9 {
				t.Fatalf("ItemAngle(total=%d, active=%d) = %v, want 0", total, active, got)
			}
		}
	}
}

func TestItemAngleSpacing(t *testing.T) {
	// Neighbors sit one step apart, earlier items above the needle.
	const total, active = 5, 2
	step := DialStep(total)

	if got := ItemAngle(total, active, active-1); math.Abs(got-step) > 1e-9 {
		t.Errorf("previous item angle = %v, want %v", got, step)
	}
	if got := ItemAngle(total, active, active+1); math.Abs(got+step) > 1e-9 {
		t.Errorf("next item angle = %v, want %v", got, -step)
	}
}
