// Package view renders the individual widgets of the control board:
// rotary knobs, vertical sliders, toggle switches, the LCD readout, the
// project dial and the content panel. Renderers are pure string
// producers; interaction and state live in the parent model.
package view
