// Package input describes one poll of the input devices. The types carry no device
// state of their own; a Source fills a State once per loop iteration.
package input

import "rect-editor/internal/vector"

// Button is a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// ButtonSet is the set of pointer buttons held down during one poll.
type ButtonSet uint8

// Set returns b with button added.
func (b ButtonSet) Set(button Button) ButtonSet {
	return b | 1<<button
}

// Has reports whether button is in the set.
func (b ButtonSet) Has(button Button) bool {
	return b&(1<<button) != 0
}

// Edges returns the buttons that are down now but were not down in prev.
func (b ButtonSet) Edges(prev ButtonSet) ButtonSet {
	return b &^ prev
}

// Empty reports whether no button is held.
func (b ButtonSet) Empty() bool {
	return b == 0
}

// Pan holds the active camera pan directions.
type Pan struct {
	Left, Right, Up, Down bool
}

// Delta returns the camera offset change for one tick: one unit per active direction.
func (p Pan) Delta() (dx, dy int32) {
	if p.Left {
		dx--
	}
	if p.Right {
		dx++
	}
	if p.Up {
		dy--
	}
	if p.Down {
		dy++
	}
	return dx, dy
}

// State is everything the core reads from the input devices in one poll.
// Pointer is in view-local (screen) coordinates.
type State struct {
	Quit    bool
	Run     bool
	Pan     Pan
	Pointer vector.Vec2[int32]
	Buttons ButtonSet
}

// Source polls the input devices.
type Source interface {
	Poll() State
}
