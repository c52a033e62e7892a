// Package board holds the control board's single mutable record: the value
// of each of the seven controls plus the active project index. The store is
// the only writer path for that record; every mutation goes through a
// single-field set, and interactions are announced on the event bus so the
// rest of the application can derive presentation state without direct
// knowledge of the widgets.
package board
