package main

// Key identifies a keyboard key. Letter keys use their lowercase ASCII code.
type Key int

const (
	KeyUnknown Key = -1
	KeyEscape  Key = 27
	KeyA       Key = 'a'
	KeyD       Key = 'd'
	KeyE       Key = 'e'
	KeyQ       Key = 'q'
	KeyS       Key = 's'
	KeyW       Key = 'w'
)

type EventKind uint8

const (
	EventQuit EventKind = iota
	EventKeyDown
)

type Event struct {
	Kind EventKind
	Key  Key
}

type rotationBinding struct {
	axis int
	sign float64
}

var rotationKeys = map[Key]rotationBinding{
	KeyW: {axis: 0, sign: +1},
	KeyS: {axis: 0, sign: -1},
	KeyQ: {axis: 1, sign: +1},
	KeyE: {axis: 1, sign: -1},
	KeyA: {axis: 2, sign: +1},
	KeyD: {axis: 2, sign: -1},
}

// Apply updates the rotation for ev, moving one angle by step degrees for a
// bound key. It reports false when ev asks the program to stop.
func (r *Rotation) Apply(ev Event, step float64) bool {
	switch ev.Kind {
	case EventQuit:
		return false
	case EventKeyDown:
		if ev.Key == KeyEscape {
			return false
		}
		if b, ok := rotationKeys[ev.Key]; ok {
			r.Angles[b.axis] += b.sign * step
		}
	}
	return true
}
