package tool

import (
	"testing"

	"pcbdraw/board"
	"pcbdraw/core"
	"pcbdraw/view"
)

func pt(x, y int) core.Point {
	return core.Point{X: x, Y: y}
}

// mm scales a point given in millimetres to board units.
func mm(x, y int) core.Point {
	return core.Point{X: x * 1000000, Y: y * 1000000}
}

type stubTextEditor struct {
	value string
	ok    bool
	calls int
}

func (e *stubTextEditor) EditText(s *core.Shape) bool {
	e.calls++
	if e.ok {
		s.Text.Value = e.value
	}
	return e.ok
}

type stubZoneEditor struct {
	ok    bool
	kinds []ZoneDialogKind
	edit  func(*core.ZoneSettings)
}

func (e *stubZoneEditor) EditZoneSettings(kind ZoneDialogKind, zs *core.ZoneSettings) bool {
	e.kinds = append(e.kinds, kind)
	if e.ok && e.edit != nil {
		e.edit(zs)
	}
	return e.ok
}

type stubImporter struct {
	items []*core.Shape
	ok    bool
}

func (i *stubImporter) ImportDXF() ([]*core.Shape, bool) {
	return i.items, i.ok
}

type stubSelection struct {
	ids     []core.ItemID
	cleared int
}

func (s *stubSelection) Selected() []core.ItemID { return s.ids }

func (s *stubSelection) Clear() {
	s.ids = nil
	s.cleared++
}

type stubMenu struct {
	shown []core.Point
}

func (m *stubMenu) ShowContextMenu(pos core.Point) {
	m.shown = append(m.shown, pos)
}

// script is an EventSource replaying a fixed event list.
type script []Event

func (s *script) WaitNextEvent() (Event, bool) {
	if len(*s) == 0 {
		return Event{}, false
	}
	ev := (*s)[0]
	*s = (*s)[1:]
	return ev, true
}

type fixture struct {
	board *board.Board
	rec   *view.Recorder
	tool  *DrawingTool
}

func newFixture(settings Settings, collab Collaborators) *fixture {
	b := board.New(board.DefaultDesignSettings())
	rec := view.NewRecorder()
	return &fixture{
		board: b,
		rec:   rec,
		tool:  New(b, rec, rec, collab, settings),
	}
}

// send feeds events to the tool and returns whether it is still active.
func (f *fixture) send(events ...Event) bool {
	active := f.tool.Active()
	for _, ev := range events {
		active = f.tool.HandleEvent(ev)
	}
	return active
}

// add commits shapes directly to the fixture board.
func (f *fixture) add(t *testing.T, shapes ...*core.Shape) {
	t.Helper()
	c := f.board.NewCommit()
	for _, s := range shapes {
		c.Add(s)
	}
	if err := c.Push("setup"); err != nil {
		t.Fatalf("setup commit failed: %v", err)
	}
}

// committed returns the journal entries after the setup commits.
func (f *fixture) committed() []board.JournalEntry {
	var out []board.JournalEntry
	for _, e := range f.board.Journal() {
		if e.Label != "setup" {
			out = append(out, e)
		}
	}
	return out
}

// previewOf returns the first preview shape of a kind.
func (f *fixture) previewOf(kind core.ShapeKind) *core.Shape {
	for _, s := range f.tool.Preview().Items() {
		if s.Kind == kind {
			return s
		}
	}
	return nil
}

func squareZone(settings core.ZoneSettings, side int) *core.Shape {
	z := core.NewZoneShape(settings)
	for _, p := range []core.Point{mm(0, 0), mm(side, 0), mm(side, side), mm(0, side)} {
		z.Zone.Outline.Append(p)
	}
	z.Zone.Outline.CloseLastContour()
	return z
}
