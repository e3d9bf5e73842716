package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"pcbdraw/canvas"
	"pcbdraw/core"
	"pcbdraw/tool"
)

// DoubleClickTime is the longest gap between the clicks of a double click.
const DoubleClickTime = 400 * time.Millisecond

// Input is what one terminal event translates to: drawing tool events, an
// application command, or both.
type Input struct {
	Events []tool.Event
	App    AppCommand
}

// Translator turns tcell mouse and key events into drawing tool events.
// The keyboard moves a cell cursor so every gesture also works without a
// mouse.
type Translator struct {
	view    *canvas.Viewport
	cursor  canvas.Cell
	buttons tcell.ButtonMask

	lastClick     time.Time
	lastClickCell canvas.Cell
	now           func() time.Time
}

// NewTranslator creates a translator reading cell sizes from v.
func NewTranslator(v *canvas.Viewport) *Translator {
	return &Translator{view: v, now: time.Now}
}

// Cursor returns the cursor cell.
func (tr *Translator) Cursor() canvas.Cell {
	return tr.cursor
}

// SetCursor moves the cursor cell without emitting an event.
func (tr *Translator) SetCursor(c canvas.Cell) {
	tr.cursor = c
}

// Translate converts one terminal event.
func (tr *Translator) Translate(ev tcell.Event) Input {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return tr.mouse(ev)
	case *tcell.EventKey:
		return tr.key(ev)
	}
	return Input{}
}

func (tr *Translator) mouse(ev *tcell.EventMouse) Input {
	buttons := ev.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0:
		return Input{App: AppPanUp}
	case buttons&tcell.WheelDown != 0:
		return Input{App: AppPanDown}
	case buttons&tcell.WheelLeft != 0:
		return Input{App: AppPanLeft}
	case buttons&tcell.WheelRight != 0:
		return Input{App: AppPanRight}
	}

	x, y := ev.Position()
	cell := canvas.Cell{X: x, Y: y}
	mod := modifiers(ev.Modifiers())
	pressed := buttons &^ tr.buttons
	tr.buttons = buttons

	var in Input
	if cell != tr.cursor {
		tr.cursor = cell
		in.Events = append(in.Events, tool.Motion(tr.position()).WithMod(mod))
	}
	switch {
	case pressed&tcell.ButtonPrimary != 0:
		in.Events = append(in.Events, tr.click(mod)...)
	case pressed&tcell.ButtonSecondary != 0:
		in.Events = append(in.Events, tool.RightClick(tr.position()).WithMod(mod))
	}
	return in
}

// click emits a click, followed by a double click when it repeats the
// previous click in time and place.
func (tr *Translator) click(mod tool.Modifier) []tool.Event {
	now := tr.now()
	pos := tr.position()
	events := []tool.Event{tool.Click(pos).WithMod(mod)}
	if !tr.lastClick.IsZero() && tr.cursor == tr.lastClickCell && now.Sub(tr.lastClick) <= DoubleClickTime {
		events = append(events, tool.DoubleClick(pos).WithMod(mod))
		tr.lastClick = time.Time{}
		return events
	}
	tr.lastClick = now
	tr.lastClickCell = tr.cursor
	return events
}

func (tr *Translator) key(ev *tcell.EventKey) Input {
	mod := modifiers(ev.Modifiers())
	switch ev.Key() {
	case tcell.KeyEscape:
		return Input{Events: []tool.Event{tool.Cancel()}}
	case tcell.KeyCtrlC:
		return Input{App: AppQuit}
	case tcell.KeyCtrlR:
		return Input{App: AppRedo}
	case tcell.KeyEnter:
		return Input{Events: tr.click(mod)}
	case tcell.KeyUp:
		return tr.step(0, -1, mod)
	case tcell.KeyDown:
		return tr.step(0, 1, mod)
	case tcell.KeyLeft:
		return tr.step(-1, 0, mod)
	case tcell.KeyRight:
		return tr.step(1, 0, mod)
	case tcell.KeyRune:
	default:
		return Input{}
	}

	r := ev.Rune()
	if r == ' ' {
		return Input{Events: tr.click(mod)}
	}
	if a, ok := actionKeys[r]; ok {
		return Input{Events: []tool.Event{tool.Activate(a)}}
	}
	if c, ok := commandKeys[r]; ok {
		return Input{Events: []tool.Event{tool.Cmd(c)}}
	}
	if c, ok := appKeys[r]; ok {
		return Input{App: c}
	}
	return Input{}
}

// step moves the keyboard cursor one cell. Shift moves it five.
func (tr *Translator) step(dx, dy int, mod tool.Modifier) Input {
	n := 1
	if mod.Has(tool.ModShift) {
		n = 5
	}
	tr.cursor.X += dx * n
	tr.cursor.Y += dy * n
	return Input{Events: []tool.Event{tool.Motion(tr.position()).WithMod(mod)}}
}

func (tr *Translator) position() core.Point {
	return tr.view.ToBoard(tr.cursor)
}

func modifiers(m tcell.ModMask) tool.Modifier {
	var mod tool.Modifier
	if m&tcell.ModShift != 0 {
		mod |= tool.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mod |= tool.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		mod |= tool.ModAlt
	}
	return mod
}
