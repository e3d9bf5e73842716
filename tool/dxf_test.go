package tool

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pcbdraw/core"
)

func importedDrawing() []*core.Shape {
	return []*core.Shape{
		core.NewSegment(pt(10, 10), pt(20, 10), core.DwgsUser, 1000),
		core.NewSegment(pt(20, 10), pt(20, 20), core.DwgsUser, 1000),
	}
}

func TestPlaceDXF(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{Importer: &stubImporter{items: importedDrawing(), ok: true}})
	if err := f.tool.Start(ActionPlaceDXF); err != nil {
		t.Fatal(err)
	}
	if n := f.tool.Preview().Len(); n != 2 {
		t.Fatalf("Expected the drawing in the preview, got %d shapes", n)
	}

	f.send(Motion(pt(100, 100)))
	if f.send(Click(pt(100, 100))) {
		t.Error("Expected the tool to exit after placing")
	}

	want := []leg{{pt(100, 100), pt(110, 100)}, {pt(110, 100), pt(110, 110)}}
	if diff := cmp.Diff(want, legs(f.board.Items())); diff != "" {
		t.Errorf("Placement mismatch (-want +got):\n%s", diff)
	}
	journal := f.board.Journal()
	if len(journal) != 2 || journal[0].Label != LabelDXF || journal[1].Label != LabelDXF {
		t.Errorf("Expected both items in one %q commit, got %v", LabelDXF, journal)
	}
	if current, _ := f.board.History().Stats(); current != 2 {
		t.Errorf("Expected a single undo step, got %d states", current)
	}
}

func TestDXFRotateAroundCursor(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{Importer: &stubImporter{items: importedDrawing(), ok: true}})
	f.tool.Start(ActionPlaceDXF)
	f.send(Motion(pt(0, 0)), Cmd(CmdRotate))

	want := []leg{{pt(0, 0), pt(0, 10)}, {pt(0, 10), pt(-10, 10)}}
	if diff := cmp.Diff(want, legs(f.tool.Preview().Items())); diff != "" {
		t.Errorf("Rotation mismatch (-want +got):\n%s", diff)
	}
}

func TestDXFInFootprint(t *testing.T) {
	f := newFixture(Settings{Footprint: 9}, Collaborators{Importer: &stubImporter{items: importedDrawing(), ok: true}})
	f.tool.Start(ActionPlaceDXF)
	f.send(Click(pt(0, 0)))

	for _, s := range f.board.Items() {
		if s.Parent != 9 {
			t.Errorf("Expected imported items to belong to footprint 9, got %d", s.Parent)
		}
	}
}

func TestDXFCancelAndAbort(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{Importer: &stubImporter{items: importedDrawing(), ok: true}})
	f.tool.Start(ActionPlaceDXF)
	if f.send(Motion(pt(5, 5)), Cancel()) {
		t.Error("Expected cancel to exit")
	}
	if f.board.Len() != 0 || f.rec.Visible() != 0 {
		t.Error("Expected the drawing to be dropped")
	}

	f = newFixture(Settings{}, Collaborators{Importer: &stubImporter{items: importedDrawing(), ok: false}})
	if err := f.tool.Start(ActionPlaceDXF); !errors.Is(err, ErrNothingToPlace) {
		t.Errorf("Expected ErrNothingToPlace, got %v", err)
	}
	if f.tool.Active() {
		t.Error("Expected an aborted import not to start the tool")
	}
}
