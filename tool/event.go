package tool

import "pcbdraw/core"

// EventKind tags the input events the drawing tool reacts to.
type EventKind int

const (
	EventMotion EventKind = iota
	EventClick
	EventDoubleClick
	EventRightClick
	EventCancel
	EventCommand
	EventActivate
)

func (k EventKind) String() string {
	switch k {
	case EventMotion:
		return "motion"
	case EventClick:
		return "click"
	case EventDoubleClick:
		return "double-click"
	case EventRightClick:
		return "right-click"
	case EventCancel:
		return "cancel"
	case EventCommand:
		return "command"
	case EventActivate:
		return "activate"
	}
	return "unknown"
}

// Modifier is a set of held modifier keys.
type Modifier int

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether every key of m is held.
func (mod Modifier) Has(m Modifier) bool {
	return mod&m == m
}

// Event is one input step. Pointer events carry the cursor position in
// board coordinates.
type Event struct {
	Kind    EventKind
	Pos     core.Point
	Mod     Modifier
	Command Command    // EventCommand
	Layer   core.Layer // CmdLayerChanged
	Action  Action     // EventActivate
}

// IsPointer reports whether the event carries a cursor position.
func (e Event) IsPointer() bool {
	switch e.Kind {
	case EventMotion, EventClick, EventDoubleClick, EventRightClick:
		return true
	}
	return false
}

// Motion builds a pointer motion event.
func Motion(p core.Point) Event { return Event{Kind: EventMotion, Pos: p} }

// Click builds a left click event.
func Click(p core.Point) Event { return Event{Kind: EventClick, Pos: p} }

// DoubleClick builds a left double click event.
func DoubleClick(p core.Point) Event { return Event{Kind: EventDoubleClick, Pos: p} }

// RightClick builds a right click event.
func RightClick(p core.Point) Event { return Event{Kind: EventRightClick, Pos: p} }

// Cancel builds a cancel event.
func Cancel() Event { return Event{Kind: EventCancel} }

// Cmd builds a command event.
func Cmd(c Command) Event { return Event{Kind: EventCommand, Command: c} }

// LayerChanged builds the command event sent after the active layer changed.
func LayerChanged(l core.Layer) Event {
	return Event{Kind: EventCommand, Command: CmdLayerChanged, Layer: l}
}

// Activate builds a tool activation event.
func Activate(a Action) Event { return Event{Kind: EventActivate, Action: a} }

// WithMod returns the event with modifier keys held.
func (e Event) WithMod(m Modifier) Event {
	e.Mod |= m
	return e
}

// EventSource delivers input events. The second result is false once the
// tool is deactivated.
type EventSource interface {
	WaitNextEvent() (Event, bool)
}
