package tool

import (
	"testing"

	"pcbdraw/core"
)

func TestDimensionHeightSign(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.send(Activate(ActionDrawDimension), Click(pt(0, 0)), Click(pt(100, 0)))

	tests := []struct {
		cursor core.Point
		want   int
	}{
		{pt(50, 50), 50},
		{pt(50, -50), -50},
		{pt(100, 0), 0},
	}
	for _, tt := range tests {
		f.send(Motion(tt.cursor))
		d := f.previewOf(core.KindDimension).Dimension
		if d.Height != tt.want {
			t.Errorf("Cursor %v: expected height %d, got %d", tt.cursor, tt.want, d.Height)
		}
	}
}

func TestDimension(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.send(Activate(ActionDrawDimension), Click(pt(0, 0)))

	ds := f.board.Settings()
	want := core.ClampPenSize(ds.PcbTextWidth, ds.PcbTextSize)
	if f.tool.LineWidth() != want {
		t.Errorf("Expected the running width %d, got %d", want, f.tool.LineWidth())
	}

	f.send(Click(pt(100, 0)), Click(pt(30, 50)))
	items := f.board.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 dimension, got %d items", len(items))
	}
	d := items[0].Dimension
	if d.Origin != pt(0, 0) || d.End != pt(100, 0) || d.Height != 50 {
		t.Errorf("Expected (0,0)-(100,0) at height 50, got %v-%v at %d", d.Origin, d.End, d.Height)
	}
	if d.Text.Size != ds.PcbTextSize || items[0].Width != want {
		t.Errorf("Expected default text size and width, got %v and %d", d.Text.Size, items[0].Width)
	}
	if !f.tool.Active() || f.tool.Preview().Len() != 0 {
		t.Error("Expected the tool to wait for the next dimension")
	}
}

func TestDimensionDoubleClickKeepsHeightStep(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.send(Activate(ActionDrawDimension), Click(pt(0, 0)), Click(pt(100, 0)), DoubleClick(pt(100, 40)))

	if f.board.Len() != 0 {
		t.Errorf("Expected the double click to commit nothing, got %d items", f.board.Len())
	}
	if f.previewOf(core.KindDimension) == nil {
		t.Fatal("Expected the dimension to stay in the preview")
	}

	f.send(Click(pt(30, 50)))
	items := f.board.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 dimension, got %d items", len(items))
	}
	if d := items[0].Dimension; d.Height != 50 {
		t.Errorf("Expected height 50 from the click, got %d", d.Height)
	}
}

func TestDimensionDegenerateEndRetries(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.send(Activate(ActionDrawDimension), Click(pt(0, 0)), Motion(pt(40, 0)), Click(pt(0, 0)))

	d := f.previewOf(core.KindDimension).Dimension
	if d.End != d.Origin {
		t.Errorf("Expected the end back on the origin, got %v", d.End)
	}

	// Still setting the end point.
	f.send(Motion(pt(80, 0)))
	if d.End != pt(80, 0) {
		t.Errorf("Expected the end to follow the cursor, got %v", d.End)
	}
	if d.Height != 0 {
		t.Errorf("Expected no height yet, got %d", d.Height)
	}
}

func TestDimensionClickOnTextRetries(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.send(Activate(ActionDrawDimension), Click(pt(0, 0)), Click(pt(100, 0)), Click(pt(50, 50)))

	if f.board.Len() != 0 {
		t.Fatal("Expected no commit for a click on the dimension text")
	}
	d := f.previewOf(core.KindDimension).Dimension
	if d.Height != 0 {
		t.Errorf("Expected the height to be reset, got %d", d.Height)
	}

	f.send(Click(pt(20, -40)))
	items := f.board.Items()
	if len(items) != 1 || items[0].Dimension.Height != -40 {
		t.Errorf("Expected one dimension at height -40, got %v", items)
	}
}

func TestDimensionCancel(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	if !f.send(Activate(ActionDrawDimension), Click(pt(0, 0)), Click(pt(100, 0)), Cancel()) {
		t.Fatal("Expected the tool to keep running")
	}
	if f.tool.Preview().Len() != 0 {
		t.Error("Expected the dimension to be dropped")
	}
	if f.send(Cancel()) {
		t.Error("Expected a second cancel to exit")
	}
}

func TestDimensionOnEdgeCuts(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{})
	f.tool.SetActiveLayer(core.EdgeCuts)
	f.send(Activate(ActionDrawDimension), Click(pt(0, 0)))

	if dim := f.previewOf(core.KindDimension); dim.Layer != core.DwgsUser {
		t.Errorf("Expected the dimension on Dwgs.User, got %s", dim.Layer)
	}
}
