package nav

// The dial lays its items over a half circle: item 0 sits at +90°, the last
// item at -90°, evenly spaced. Rotating the whole dial by -(90 - idx*step)
// brings the active item to the fixed reference angle 0°.

const dialArc = 180.0

// DialStep returns the angular spacing between adjacent dial items. With
// fewer than two items the spacing is undefined; 0 is returned.
func DialStep(total int) float64 {
	if total < 2 {
		return 0
	}
	return dialArc / float64(total-1)
}

// DialRotation returns the dial's overall rotation in degrees for a given
// active index. A single-item (or empty) dial does not rotate.
func DialRotation(total, activeIdx int) float64 {
	step := DialStep(total)
	if step == 0 {
		return 0
	}
	return -(90 - float64(activeIdx)*step)
}

// ItemAngle returns the on-screen angle of item idx under the rotation for
// activeIdx. The active item always lands at 0; positive angles are above
// the needle.
func ItemAngle(total, activeIdx, idx int) float64 {
	step := DialStep(total)
	if step == 0 {
		return 0
	}
	return 90 - float64(idx)*step + DialRotation(total, activeIdx)
}
