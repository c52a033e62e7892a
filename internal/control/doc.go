// Package control contains the pure input math for the board widgets:
// conversion between normalized control values and rotation angles for the
// knobs, conversion from pointer positions to values for the sliders, and
// wheel-tick adjustment. All functions are total over their domains; outputs
// are clamped into [0,100] and no path can divide by zero.
package control
