package grid

import (
	"fmt"
	"strings"
)

type Strategy int

const (
	// Eager moves the viewport with the cursor whenever it can.
	Eager Strategy = iota
	// Deferred moves the viewport only once the cursor steps past its edge.
	Deferred
)

func (s Strategy) String() string {
	switch s {
	case Eager:
		return "eager"
	case Deferred:
		return "deferred"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "eager", "a":
		return Eager, nil
	case "deferred", "b":
		return Deferred, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	if a == AxisX {
		return "x"
	}
	return "y"
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// Step returns the axis a direction moves along and its sign.
func (d Direction) Step() (Axis, int, error) {
	switch d {
	case Up:
		return AxisY, -1, nil
	case Down:
		return AxisY, 1, nil
	case Left:
		return AxisX, -1, nil
	case Right:
		return AxisX, 1, nil
	}
	return 0, 0, fmt.Errorf("%w: %d", ErrUnknownDirection, int(d))
}

// axisState is one axis of the manager after the cursor has advanced.
type axisState struct {
	cursor   int
	view     int
	viewport int
	items    int
}

func (a axisState) canShift(step int) bool {
	if step < 0 {
		return a.view > 0
	}
	return a.view+a.viewport < a.items
}

type scrollPolicy func(a axisState, step int) bool

func eagerScroll(a axisState, step int) bool {
	return a.canShift(step)
}

func deferredScroll(a axisState, step int) bool {
	if !a.canShift(step) {
		return false
	}
	if step < 0 {
		return a.cursor == a.view-1
	}
	return a.cursor == a.view+a.viewport
}

var scrollPolicies = [...]scrollPolicy{
	Eager:    eagerScroll,
	Deferred: deferredScroll,
}

func policyFor(s Strategy) (scrollPolicy, error) {
	if s < 0 || int(s) >= len(scrollPolicies) {
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, s)
	}
	return scrollPolicies[s], nil
}
