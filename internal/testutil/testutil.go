// Package testutil provides testing utilities for deckfolio tests.
package testutil

import (
	"math"
	"testing"
	"time"
)

// Epsilon is the default tolerance for float comparisons in geometry
// and layout tests.
const Epsilon = 1e-6

// AssertFloat fails the test if got and want differ by more than Epsilon.
func AssertFloat(t *testing.T, name string, got, want float64) {
	t.Helper()

	if math.Abs(got-want) > Epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// AssertFloatNear fails the test if got and want differ by more than tol.
func AssertFloatNear(t *testing.T, name string, got, want, tol float64) {
	t.Helper()

	if math.Abs(got-want) > tol {
		t.Errorf("%s = %v, want %v (tolerance %v)", name, got, want, tol)
	}
}

// Clock is a manually advanced clock for tests that exercise
// deadline-driven behavior without sleeping.
type Clock struct {
	now time.Time
}

// NewClock returns a clock fixed at a stable reference instant.
func NewClock() *Clock {
	return &Clock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

// Now returns the current instant of the clock.
func (c *Clock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d and returns the new instant.
func (c *Clock) Advance(d time.Duration) time.Time {
	c.now = c.now.Add(d)
	return c.now
}

// Set moves the clock to an exact instant.
func (c *Clock) Set(t time.Time) {
	c.now = t
}
