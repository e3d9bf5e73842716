package tool

import (
	"testing"

	"pcbdraw/core"
)

func TestPlaceText(t *testing.T) {
	editor := &stubTextEditor{value: "R1", ok: true}
	f := newFixture(Settings{}, Collaborators{TextEditor: editor})
	f.send(Activate(ActionPlaceText), Click(pt(10, 10)))

	text := f.previewOf(core.KindText)
	if text == nil || text.Text.Value != "R1" {
		t.Fatalf("Expected the edited text in the preview, got %v", text)
	}

	f.send(Motion(pt(20, 20)), Cmd(CmdRotate))
	if text.Position() != pt(20, 20) || text.Text.Angle != 900 {
		t.Errorf("Expected text at (20,20) turned 900, got %v at %v", text.Position(), text.Text.Angle)
	}

	f.send(Click(pt(30, 30)))
	items := f.board.Items()
	if len(items) != 1 {
		t.Fatalf("Expected 1 text, got %d items", len(items))
	}
	ds := f.board.Settings()
	got := items[0]
	if got.Position() != pt(30, 30) || got.Text.Size != ds.PcbTextSize || got.Text.Thickness != ds.PcbTextWidth {
		t.Errorf("Unexpected text placement: %+v", got.Text)
	}
	if !f.tool.Active() || f.tool.Preview().Len() != 0 {
		t.Error("Expected the tool to wait for the next text")
	}
	if editor.calls != 1 {
		t.Errorf("Expected the editor to run once, got %d", editor.calls)
	}
}

func TestTextDoubleClickDoesNotPlace(t *testing.T) {
	editor := &stubTextEditor{value: "R1", ok: true}
	f := newFixture(Settings{}, Collaborators{TextEditor: editor})
	f.send(Activate(ActionPlaceText), Click(pt(10, 10)), DoubleClick(pt(10, 10)))

	if f.board.Len() != 0 {
		t.Errorf("Expected the double click to place nothing, got %d items", f.board.Len())
	}
	if f.previewOf(core.KindText) == nil {
		t.Fatal("Expected the text to stay in the preview")
	}
	if editor.calls != 1 {
		t.Errorf("Expected the editor to run once, got %d", editor.calls)
	}

	f.send(Click(pt(30, 30)))
	items := f.board.Items()
	if len(items) != 1 || items[0].Position() != pt(30, 30) {
		t.Errorf("Expected one text at (30,30), got %v", items)
	}
}

func TestRejectedText(t *testing.T) {
	tests := []struct {
		name   string
		editor TextEditor
	}{
		{"no editor", nil},
		{"cancelled", &stubTextEditor{ok: false}},
		{"empty", &stubTextEditor{ok: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(Settings{}, Collaborators{TextEditor: tt.editor})
			f.send(Activate(ActionPlaceText), Click(pt(10, 10)), Motion(pt(20, 20)))

			if f.tool.Preview().Len() != 0 {
				t.Error("Expected the rejected text to be dropped")
			}
			if f.board.Len() != 0 {
				t.Error("Expected nothing committed")
			}
			if !f.tool.Active() || !f.rec.CursorShown {
				t.Error("Expected the tool to keep running with a visible cursor")
			}
		})
	}
}

func TestTextOnBackIsMirrored(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{TextEditor: &stubTextEditor{value: "B", ok: true}})
	f.tool.SetActiveLayer(core.BSilkS)
	f.send(Activate(ActionPlaceText), Click(pt(0, 0)))

	if text := f.previewOf(core.KindText); !text.Text.Mirrored {
		t.Error("Expected text on the back to be mirrored")
	}

	f.send(Cmd(CmdFlip))
	if text := f.previewOf(core.KindText); text.Layer != core.FSilkS || text.Text.Mirrored {
		t.Errorf("Expected a flip to bring the text to the front, got %s mirrored=%v", text.Layer, text.Text.Mirrored)
	}
}

func TestTextInFootprint(t *testing.T) {
	f := newFixture(Settings{Footprint: 4}, Collaborators{TextEditor: &stubTextEditor{value: "REF", ok: true}})
	f.tool.SetActiveLayer(core.BSilkS)
	f.send(Activate(ActionPlaceText), Click(pt(0, 0)))

	text := f.previewOf(core.KindText)
	ds := f.board.Settings()
	if text.Parent != 4 || text.Text.Size != ds.ModuleTextSize || text.Text.Thickness != ds.ModuleTextWidth {
		t.Errorf("Expected footprint text defaults, got parent %d %+v", text.Parent, text.Text)
	}
	if text.Text.Mirrored {
		t.Error("Expected footprint text not to be mirrored")
	}
}

func TestTextCancel(t *testing.T) {
	f := newFixture(Settings{}, Collaborators{TextEditor: &stubTextEditor{value: "X", ok: true}})
	if !f.send(Activate(ActionPlaceText), Click(pt(0, 0)), Cancel()) {
		t.Fatal("Expected cancel with a text to keep the tool running")
	}
	if f.tool.Preview().Len() != 0 || f.board.Len() != 0 {
		t.Error("Expected the text to be dropped")
	}
	if f.send(Cancel()) {
		t.Error("Expected cancel without a text to exit")
	}
}
