package control

import (
	"math"
	"testing"
)

const tolerance = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func TestValueToAngle(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  float64
	}{
		{"zero", 0, 0},
		{"quarter", 25, 90},
		{"half", 50, 180},
		{"three quarters", 75, 270},
		{"full clamps short of wrap", 100, 360},
		{"negative clamps to zero", -10, 0},
		{"overshoot clamps to full", 150, 360},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ValueToAngle(tt.value); !almostEqual(got, tt.want) {
				t.Errorf("ValueToAngle(%v) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}

func TestAngleToValue(t *testing.T) {
	tests := []struct {
		name    string
		degrees float64
		want    float64
	}{
		{"zero", 0, 0},
		{"north quarter", 90, 25},
		{"half turn", 180, 50},
		{"wraps at full turn", 360, 0},
		{"negative wraps up", -90, 75},
		{"large negative", -450, 75},
		{"multiple turns", 720 + 36, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AngleToValue(tt.degrees); !almostEqual(got, tt.want) {
				t.Errorf("AngleToValue(%v) = %v, want %v", tt.degrees, got, tt.want)
			}
		})
	}
}

func TestAngleValueRoundTrip(t *testing.T) {
	// AngleToValue(ValueToAngle(v)) == v across the whole travel, except at
	// exactly 100 where the angle wraps back to 0.
	for v := 0.0; v < 100.0; v += 0.25 {
		got := AngleToValue(ValueToAngle(v))
		if !almostEqual(got, v) {
			t.Fatalf("round trip of %v = %v", v, got)
		}
	}
}

func TestAngleToValueRange(t *testing.T) {
	for d := -720.0; d < 720.0; d += 7.3 {
		got := AngleToValue(d)
		if got < 0 || got >= 100 {
			t.Fatalf("AngleToValue(%v) = %v, out of [0,100)", d, got)
		}
	}
}

func TestPointerToAngle(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy float64
		want   float64
	}{
		{"straight up is zero", 0, -1, 0},
		{"right is quarter turn", 1, 0, 90},
		{"down is half turn", 0, 1, 180},
		{"left is three quarters", -1, 0, 270},
		{"upper right diagonal", 1, -1, 45},
		{"lower left diagonal", -1, 1, 225},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PointerToAngle(tt.dx, tt.dy); !almostEqual(got, tt.want) {
				t.Errorf("PointerToAngle(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
			}
		})
	}
}

func TestPointerToAngleAlwaysInRange(t *testing.T) {
	for i := 0; i < 360; i += 5 {
		rad := float64(i) * math.Pi / 180
		got := PointerToAngle(math.Cos(rad), math.Sin(rad))
		if got < 0 || got >= 360 {
			t.Fatalf("PointerToAngle at %d° = %v, out of [0,360)", i, got)
		}
	}
}

func TestAdjustByWheel(t *testing.T) {
	tests := []struct {
		name    string
		value   float64
		forward bool
		step    float64
		want    float64
	}{
		{"forward from middle", 50, true, 2, 52},
		{"backward from middle", 50, false, 2, 48},
		{"clamps at top", 99, true, 2, 100},
		{"clamps at bottom", 1, false, 2, 0},
		{"no-op at ceiling", 100, true, 2, 100},
		{"no-op at floor", 0, false, 2, 0},
		{"zero step uses default", 50, true, 0, 52},
		{"negative step uses default", 50, false, -5, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AdjustByWheel(tt.value, tt.forward, tt.step); !almostEqual(got, tt.want) {
				t.Errorf("AdjustByWheel(%v, %v, %v) = %v, want %v",
					tt.value, tt.forward, tt.step, got, tt.want)
			}
		})
	}
}

func TestAdjustByWheelClampAsymmetry(t *testing.T) {
	// From 99, +2 then -2 lands on 98: the clamp at 100 is not symmetric.
	up := AdjustByWheel(99, true, 2)
	down := AdjustByWheel(up, false, 2)
	if !almostEqual(down, 98) {
		t.Errorf("99 +2 -2 = %v, want 98", down)
	}

	// From 1, -2 then +2 lands on 2 for the same reason at the floor.
	down = AdjustByWheel(1, false, 2)
	up = AdjustByWheel(down, true, 2)
	if !almostEqual(up, 2) {
		t.Errorf("1 -2 +2 = %v, want 2", up)
	}

	// Away from the boundaries the adjustment is reversible.
	for _, v := range []float64{5, 33.33, 50, 97.9} {
		back := AdjustByWheel(AdjustByWheel(v, true, 2), false, 2)
		if !almostEqual(back, v) {
			t.Errorf("round trip from %v = %v", v, back)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{-1, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{100.001, 100},
	}

	for _, tt := range tests {
		if got := Clamp(tt.in); !almostEqual(got, tt.want) {
			t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
