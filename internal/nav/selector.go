// Package nav owns project navigation: the scroll-driven index transitions
// and the dial geometry that places the active project at the needle.
package nav

// Selector tracks the active project index over a fixed-size ordered list.
//
// The transition rule is deliberately asymmetric: forward navigation wraps
// from the last project back to the first, while backward navigation stops
// at index 0.
type Selector struct {
	index int
	count int
}

// NewSelector creates a selector over count items, starting at index 0.
func NewSelector(count int) *Selector {
	if count < 0 {
		count = 0
	}
	return &Selector{count: count}
}

// Index returns the active index.
func (s *Selector) Index() int { return s.index }

// Count returns the number of items.
func (s *Selector) Count() int { return s.count }

// Forward advances to the next item, wrapping from the last back to the
// first. Returns the new index.
func (s *Selector) Forward() int {
	if s.count < 1 {
		return s.index
	}
	s.index = (s.index + 1) % s.count
	return s.index
}

// Backward steps to the previous item. Index 0 is a floor: backward from the
// first item is a no-op, never a wrap. Returns the new index.
func (s *Selector) Backward() int {
	if s.index > 0 {
		s.index--
	}
	return s.index
}

// Select jumps directly to idx, clamped into the valid range. Returns the
// new index.
func (s *Selector) Select(idx int) int {
	if s.count < 1 {
		s.index = 0
		return 0
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= s.count {
		idx = s.count - 1
	}
	s.index = idx
	return s.index
}

// Resize updates the item count after a catalog reload, clamping the active
// index into the new range.
func (s *Selector) Resize(count int) {
	if count < 0 {
		count = 0
	}
	s.count = count
	if count == 0 {
		s.index = 0
		return
	}
	if s.index >= count {
		s.index = count - 1
	}
}
