package control

// PositionToValue maps a pointer's Y coordinate within a vertical track to a
// normalized value. The track uses the inverted-Y convention: the bottom edge
// maps to 0 and the top edge to 100, so dragging up increases the value.
//
// ok is false for a degenerate track (trackBottom <= trackTop); the caller
// must treat that as a no-op rather than an error.
func PositionToValue(pointerY, trackTop, trackBottom float64) (v float64, ok bool) {
	height := trackBottom - trackTop
	if height <= 0 {
		return 0, false
	}
	return Clamp((trackBottom - pointerY) / height * MaxValue), true
}
