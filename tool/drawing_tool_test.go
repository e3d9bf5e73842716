package tool

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"pcbdraw/board"
	"pcbdraw/core"
	"pcbdraw/view"
)

// drawFixture prepares a board every action can run on: a zone selected
// for cutouts and a footprint with one child text.
func drawFixture(t *testing.T) *fixture {
	t.Helper()
	sel := &stubSelection{}
	collab := Collaborators{
		TextEditor: &stubTextEditor{value: "R1", ok: true},
		ZoneEditor: &stubZoneEditor{ok: true},
		Importer: &stubImporter{ok: true, items: []*core.Shape{
			core.NewSegment(pt(0, 0), pt(1000, 0), core.DwgsUser, 1000),
		}},
		Selection: sel,
	}
	f := newFixture(Settings{}, collab)

	z := squareZone(f.board.Settings().ZoneDefaults(), 20)
	fp := core.NewFootprintShape(mm(50, 50), "U1")
	f.add(t, z, fp)
	ref := core.NewTextShape(mm(51, 50), core.FSilkS, core.Size{W: 1000000, H: 1000000}, 150000)
	ref.Text.Value = "U1"
	ref.Parent = fp.ID
	f.add(t, ref)

	sel.ids = []core.ItemID{z.ID}
	f.tool.settings.Footprint = fp.ID
	return f
}

// Gesture scripts that stop short of completion.
var partialGestures = map[Action][]Event{
	ActionDrawLine:        {Click(pt(0, 0)), Motion(pt(50, 20)), Cmd(CmdIncWidth)},
	ActionDrawCircle:      {Click(pt(0, 0)), Motion(pt(30, 0))},
	ActionDrawArc:         {Click(pt(0, 0)), Motion(pt(100, 0)), Click(pt(100, 0)), Motion(pt(0, 100))},
	ActionDrawDimension:   {Click(pt(0, 0)), Motion(pt(100, 0)), Click(pt(100, 0)), Motion(pt(50, 50))},
	ActionPlaceText:       {Click(pt(10, 10)), Motion(pt(20, 20)), Cmd(CmdRotate)},
	ActionDrawZone:        {Click(mm(0, 0)), Click(mm(10, 0)), Motion(mm(10, 10)), Click(mm(10, 10)), Motion(mm(5, 5))},
	ActionDrawKeepout:     {Click(mm(0, 0)), Click(mm(10, 0)), Motion(mm(10, 10))},
	ActionDrawZoneCutout:  {Click(mm(2, 2)), Click(mm(8, 2)), Click(mm(8, 8)), Motion(mm(2, 5))},
	ActionDrawSimilarZone: {Click(mm(30, 0)), Click(mm(40, 0)), Motion(mm(40, 10))},
	ActionPlaceDXF:        {Motion(pt(5, 5)), Cmd(CmdRotate), Cmd(CmdFlip)},
	ActionSetAnchor:       {Motion(mm(52, 50))},
}

func TestCancelLeavesBoardUntouched(t *testing.T) {
	for action, steps := range partialGestures {
		for n := 0; n <= len(steps); n++ {
			f := drawFixture(t)
			before := f.board.Snapshot()
			journal := len(f.board.Journal())

			if err := f.tool.Start(action); err != nil {
				t.Fatalf("%s: start failed: %v", action, err)
			}
			f.send(steps[:n]...)
			for i := 0; i < 3 && f.tool.Active(); i++ {
				f.send(Cancel())
			}

			if f.tool.Active() {
				t.Errorf("%s after %d steps: expected repeated cancel to exit", action, n)
			}
			if diff := cmp.Diff(before, f.board.Snapshot()); diff != "" {
				t.Errorf("%s after %d steps: board changed (-before +after):\n%s", action, n, diff)
			}
			if got := len(f.board.Journal()); got != journal {
				t.Errorf("%s after %d steps: expected %d journal entries, got %d", action, n, journal, got)
			}
			if f.tool.Preview().Len() != 0 || f.rec.Visible() != 0 {
				t.Errorf("%s after %d steps: expected an empty preview, got %d shapes", action, n, f.tool.Preview().Len())
			}
		}
	}
}

func TestCompletedGestureCommitsOnce(t *testing.T) {
	entry := func(label string, op board.Op, kind core.ShapeKind) board.JournalEntry {
		return board.JournalEntry{Label: label, Op: op, Kind: kind}
	}

	tests := []struct {
		name   string
		action Action
		only45 bool
		events []Event
		want   []board.JournalEntry
	}{
		{
			name:   "line",
			action: ActionDrawLine,
			events: []Event{Click(pt(0, 0)), Click(pt(100, 0)), DoubleClick(pt(100, 0))},
			want:   []board.JournalEntry{entry(LabelSegment, board.OpAdd, core.KindSegment)},
		},
		{
			name:   "line with 45 degree bend",
			action: ActionDrawLine,
			only45: true,
			events: []Event{Click(pt(0, 0)), Motion(pt(100, 30)), DoubleClick(pt(100, 30))},
			want: []board.JournalEntry{
				entry(LabelSegment, board.OpAdd, core.KindSegment),
				entry(LabelHelper, board.OpAdd, core.KindSegment),
			},
		},
		{
			name:   "circle",
			action: ActionDrawCircle,
			events: []Event{Click(pt(0, 0)), Click(pt(30, 40))},
			want:   []board.JournalEntry{entry(LabelCircle, board.OpAdd, core.KindCircle)},
		},
		{
			name:   "arc",
			action: ActionDrawArc,
			events: []Event{Click(pt(0, 0)), Click(pt(100, 0)), Click(pt(0, 100))},
			want:   []board.JournalEntry{entry(LabelArc, board.OpAdd, core.KindArc)},
		},
		{
			name:   "dimension",
			action: ActionDrawDimension,
			events: []Event{Click(pt(0, 0)), Click(pt(100, 0)), Click(pt(30, 50))},
			want:   []board.JournalEntry{entry(LabelDimension, board.OpAdd, core.KindDimension)},
		},
		{
			name:   "text",
			action: ActionPlaceText,
			events: []Event{Click(pt(10, 10)), Click(pt(20, 20))},
			want:   []board.JournalEntry{entry(LabelText, board.OpAdd, core.KindText)},
		},
		{
			name:   "zone",
			action: ActionDrawZone,
			events: []Event{Click(mm(0, 0)), Click(mm(10, 0)), Click(mm(10, 10)), Click(mm(0, 0))},
			want:   []board.JournalEntry{entry(LabelZone, board.OpAdd, core.KindZone)},
		},
		{
			name:   "cutout",
			action: ActionDrawZoneCutout,
			events: []Event{Click(mm(2, 2)), Click(mm(8, 2)), Click(mm(2, 8)), Click(mm(2, 2))},
			want:   []board.JournalEntry{entry(LabelCutout, board.OpModify, core.KindZone)},
		},
		{
			name:   "dxf",
			action: ActionPlaceDXF,
			events: []Event{Click(pt(5, 5))},
			want:   []board.JournalEntry{entry(LabelDXF, board.OpAdd, core.KindSegment)},
		},
		{
			name:   "anchor",
			action: ActionSetAnchor,
			events: []Event{Click(mm(52, 50))},
			want: []board.JournalEntry{
				entry(LabelAnchor, board.OpModify, core.KindFootprint),
				entry(LabelAnchor, board.OpModify, core.KindText),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := drawFixture(t)
			f.tool.SetSegments45Only(tt.only45)
			if err := f.tool.Start(tt.action); err != nil {
				t.Fatalf("Start failed: %v", err)
			}
			f.send(tt.events...)

			if err := f.tool.LastError(); err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			got := f.committed()
			if diff := cmp.Diff(tt.want, got, cmpopts.IgnoreFields(board.JournalEntry{}, "ID")); diff != "" {
				t.Errorf("Journal mismatch (-want +got):\n%s", diff)
			}
			if f.tool.Preview().Len() != 0 && tt.action != ActionDrawZoneCutout {
				t.Errorf("Expected an empty preview after the commit, got %d shapes", f.tool.Preview().Len())
			}
		})
	}
}

func TestStartPreconditions(t *testing.T) {
	segment := core.NewSegment(pt(0, 0), pt(10, 0), core.FSilkS, 1000)

	tests := []struct {
		name     string
		action   Action
		selected func(f *fixture) []core.ItemID
		want     error
	}{
		{"cutout without selection", ActionDrawZoneCutout, nil, ErrNoSourceZone},
		{"similar without selection", ActionDrawSimilarZone, nil, ErrNoSourceZone},
		{"cutout with two items", ActionDrawZoneCutout, func(f *fixture) []core.ItemID {
			z := f.board.Zones()[0]
			return []core.ItemID{z.ID, segment.ID}
		}, ErrAmbiguousSourceZone},
		{"cutout from a segment", ActionDrawZoneCutout, func(f *fixture) []core.ItemID {
			return []core.ItemID{segment.ID}
		}, ErrNotAZone},
		{"anchor on a board", ActionSetAnchor, nil, ErrNoFootprint},
		{"dxf without importer", ActionPlaceDXF, nil, ErrNothingToPlace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := &stubSelection{}
			f := newFixture(Settings{}, Collaborators{Selection: sel})
			segment = core.NewSegment(pt(0, 0), pt(10, 0), core.FSilkS, 1000)
			f.add(t, squareZone(f.board.Settings().ZoneDefaults(), 10), segment)
			if tt.selected != nil {
				sel.ids = tt.selected(f)
			}

			err := f.tool.Start(tt.action)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, err)
			}
			if !errors.Is(f.tool.LastError(), tt.want) {
				t.Errorf("Expected LastError to keep %v, got %v", tt.want, f.tool.LastError())
			}
			if f.tool.Active() {
				t.Error("Expected the tool to stay idle")
			}
			if len(f.rec.Shown) != 0 || f.rec.CursorShown {
				t.Error("Expected nothing shown after a failed start")
			}
		})
	}
}

func TestStartWithoutBoard(t *testing.T) {
	rec := view.NewRecorder()
	tool := New(nil, rec, rec, Collaborators{}, Settings{})
	if err := tool.Start(ActionDrawLine); !errors.Is(err, ErrNoModel) {
		t.Errorf("Expected ErrNoModel, got %v", err)
	}
	if err := tool.Start(ActionNone); err != nil {
		t.Errorf("Expected no error for ActionNone, got %v", err)
	}
}

func TestStartPreparesView(t *testing.T) {
	sel := &stubSelection{ids: []core.ItemID{1}}
	f := newFixture(Settings{}, Collaborators{Selection: sel})
	if err := f.tool.Start(ActionDrawLine); err != nil {
		t.Fatal(err)
	}

	if sel.cleared != 1 {
		t.Errorf("Expected the selection to be cleared once, got %d", sel.cleared)
	}
	if !f.rec.Shown[f.tool.Preview()] {
		t.Error("Expected the preview group to be shown")
	}
	if !f.rec.CursorShown || !f.rec.Snapping {
		t.Error("Expected cursor and snapping to be enabled")
	}

	f.send(Click(pt(0, 0)))
	if !f.rec.AutoPan || !f.rec.Captured {
		t.Error("Expected auto-pan and cursor capture while drawing")
	}

	f.tool.Stop()
	if len(f.rec.Shown) != 0 || f.rec.AutoPan || f.rec.Captured {
		t.Error("Expected the view to be released after Stop")
	}
}

func TestActivateCancelsRunningGesture(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.send(Activate(ActionDrawLine), Click(pt(0, 0)), Motion(pt(100, 0)))
	if f.tool.Preview().Len() == 0 {
		t.Fatal("Expected a line in the preview")
	}

	if !f.send(Activate(ActionDrawCircle)) {
		t.Fatal("Expected the circle tool to run")
	}
	if f.tool.Action() != ActionDrawCircle {
		t.Errorf("Expected CIRCLE, got %s", f.tool.Action())
	}
	if f.board.Len() != 0 {
		t.Errorf("Expected the interrupted line to be dropped, got %d items", f.board.Len())
	}
	if f.rec.Visible() != 0 {
		t.Errorf("Expected nothing visible, got %d shapes", f.rec.Visible())
	}
}

func TestEventsWhileIdleAreIgnored(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	if f.send(Click(pt(0, 0)), Motion(pt(10, 10)), Cancel()) {
		t.Error("Expected the tool to stay idle")
	}
	if f.tool.Cursor() != pt(10, 10) {
		t.Errorf("Expected the cursor to be tracked, got %v", f.tool.Cursor())
	}
}

func TestRightClickShowsMenu(t *testing.T) {
	menu := &stubMenu{}
	f := newFixture(Settings{}, Collaborators{Menu: menu})
	f.send(Activate(ActionDrawLine), Click(pt(0, 0)), RightClick(pt(5, 5)))

	if diff := cmp.Diff([]core.Point{pt(5, 5)}, menu.shown); diff != "" {
		t.Errorf("Menu mismatch (-want +got):\n%s", diff)
	}
	if f.board.Len() != 0 {
		t.Error("Expected a right click to commit nothing")
	}
}

func TestRunReplaysEvents(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	events := script{
		Activate(ActionDrawLine),
		Click(pt(0, 0)),
		Click(pt(100, 0)),
		DoubleClick(pt(100, 0)),
	}
	f.tool.Run(&events)

	if f.board.Len() != 1 {
		t.Errorf("Expected 1 committed segment, got %d", f.board.Len())
	}
	if f.tool.Active() {
		t.Error("Expected the tool to be idle once the source is exhausted")
	}
}

func TestRunDeactivationDropsGesture(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	events := script{Activate(ActionDrawLine), Click(pt(0, 0)), Motion(pt(100, 0))}
	f.tool.Run(&events)

	if f.board.Len() != 0 {
		t.Errorf("Expected nothing committed, got %d items", f.board.Len())
	}
	if f.tool.Active() || f.rec.Visible() != 0 {
		t.Error("Expected the gesture to be dropped on deactivation")
	}
}

func TestWidthClamp(t *testing.T) {
	starts := map[Action][]Event{
		ActionDrawLine:      {Click(pt(0, 0)), Motion(pt(100, 0))},
		ActionDrawArc:       {Click(pt(0, 0))},
		ActionDrawDimension: {Click(pt(0, 0))},
	}

	for action, events := range starts {
		f := newFixture(Settings{}, Collaborators{})
		if err := f.tool.Start(action); err != nil {
			t.Fatal(err)
		}
		initial := f.tool.LineWidth()
		f.send(Cmd(CmdDecWidth))
		if f.tool.LineWidth() != initial {
			t.Errorf("%s: expected width commands to be ignored before the first click", action)
		}

		f.send(events...)
		for i := 0; i < 10; i++ {
			f.send(Cmd(CmdDecWidth))
			if f.tool.LineWidth() < WidthStep {
				t.Fatalf("%s: width dropped to %d", action, f.tool.LineWidth())
			}
		}
		if f.tool.LineWidth() != WidthStep {
			t.Errorf("%s: expected width %d, got %d", action, WidthStep, f.tool.LineWidth())
		}

		f.send(Cmd(CmdIncWidth))
		want := 2 * WidthStep
		if f.tool.LineWidth() != want {
			t.Errorf("%s: expected width %d after increment, got %d", action, want, f.tool.LineWidth())
		}
		for _, s := range f.tool.Preview().Items() {
			if s.Kind != core.KindSegment || action == ActionDrawLine {
				if s.Width != want {
					t.Errorf("%s: expected %s width %d, got %d", action, s.Kind, want, s.Width)
				}
			}
		}
	}
}

func TestDrawingLayerRemap(t *testing.T) {
	tests := []struct {
		active core.Layer
		want   core.Layer
	}{
		{core.FCu, core.FSilkS},
		{core.BCu, core.BSilkS},
		{core.In1Cu, core.DwgsUser},
		{core.CmtsUser, core.CmtsUser},
		{core.EdgeCuts, core.EdgeCuts},
	}

	for _, tt := range tests {
		f := newFixture(Settings{}, Collaborators{})
		f.tool.SetActiveLayer(tt.active)
		f.send(Activate(ActionDrawLine), Click(pt(0, 0)), Click(pt(10, 0)), Cancel())

		items := f.board.Items()
		if len(items) != 1 {
			t.Fatalf("%s: expected 1 segment, got %d", tt.active, len(items))
		}
		if items[0].Layer != tt.want {
			t.Errorf("%s: expected layer %s, got %s", tt.active, tt.want, items[0].Layer)
		}
		if f.tool.ActiveLayer() != tt.want {
			t.Errorf("%s: expected active layer %s, got %s", tt.active, tt.want, f.tool.ActiveLayer())
		}
	}
}

func TestSegmentWidthByContext(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	ds := f.board.Settings()
	ds.DrawSegmentWidth = 200000
	ds.EdgeSegmentWidth = 50000
	ds.ModuleSegmentWidth = 120000

	f.tool.Start(ActionDrawLine)
	if f.tool.LineWidth() != 200000 {
		t.Errorf("Expected draw width, got %d", f.tool.LineWidth())
	}

	f.tool.SetActiveLayer(core.EdgeCuts)
	f.tool.Start(ActionDrawLine)
	if f.tool.LineWidth() != 50000 {
		t.Errorf("Expected edge width, got %d", f.tool.LineWidth())
	}

	f.tool.SetActiveLayer(core.FSilkS)
	f.tool.settings.Footprint = 7
	f.tool.Start(ActionDrawLine)
	if f.tool.LineWidth() != 120000 {
		t.Errorf("Expected footprint width, got %d", f.tool.LineWidth())
	}
}

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(Settings{}, Collaborators{})
	f.tool.SetLogger(log.New(&buf, "drawing: ", 0))

	f.send(Activate(ActionDrawCircle), Click(pt(0, 0)), Click(pt(3, 4)), Cancel())

	out := buf.String()
	for _, want := range []string{"CIRCLE started", LabelCircle, "CIRCLE finished"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected log to contain %q, got:\n%s", want, out)
		}
	}
}
