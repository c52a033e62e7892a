package control

import "math"

const (
	// MinValue and MaxValue bound every normalized control value.
	MinValue = 0.0
	MaxValue = 100.0

	fullTurn = 360.0

	// DefaultWheelStep is the value change applied per wheel tick.
	DefaultWheelStep = 2.0
)

// Clamp forces v into [MinValue, MaxValue].
func Clamp(v float64) float64 {
	if v < MinValue {
		return MinValue
	}
	if v > MaxValue {
		return MaxValue
	}
	return v
}

// ValueToAngle maps a normalized value in [0,100] to a knob rotation in
// degrees, [0,360). 0 is visual north and the angle grows clockwise.
func ValueToAngle(v float64) float64 {
	return Clamp(v) / MaxValue * fullTurn
}

// AngleToValue maps a rotation in degrees (any magnitude, either sign) back
// to a normalized value. The angle is wrapped into [0,360) first, so the
// result always lies in [0,100).
func AngleToValue(degrees float64) float64 {
	wrapped := math.Mod(degrees, fullTurn)
	if wrapped < 0 {
		wrapped += fullTurn
	}
	return wrapped / fullTurn * MaxValue
}

// PointerToAngle converts a pointer offset from a knob's center into a
// rotation in degrees. atan2 measures from east counter-clockwise; the +90°
// shift moves the zero reference to visual north (12 o'clock) with clockwise
// increase, matching ValueToAngle's convention.
func PointerToAngle(dx, dy float64) float64 {
	degrees := math.Atan2(dy, dx)*180/math.Pi + 90
	if degrees < 0 {
		degrees += fullTurn
	}
	return degrees
}

// AdjustByWheel nudges v by one wheel tick and clamps the result. Forward
// ticks increase the value. A non-positive step falls back to
// DefaultWheelStep.
func AdjustByWheel(v float64, forward bool, step float64) float64 {
	if step <= 0 {
		step = DefaultWheelStep
	}
	if forward {
		return Clamp(v + step)
	}
	return Clamp(v - step)
}
