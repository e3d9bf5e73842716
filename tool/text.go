package tool

import "pcbdraw/core"

// textGesture places texts: a click creates one and opens the editor, the
// text then follows the cursor until a second click drops it.
type textGesture struct {
	t    *DrawingTool
	text *core.Shape
}

func (g *textGesture) handle(ev Event) bool {
	t := g.t

	switch ev.Kind {
	case EventCancel:
		if g.text == nil {
			return false
		}
		g.abort()
		t.capture(false)
		t.controls.ShowCursor(true)
		t.update()

	case EventCommand:
		if g.text == nil {
			return true
		}
		switch ev.Command {
		case CmdRotate:
			g.text.Rotate(g.text.Position(), t.settings.RotationAngle)
		case CmdFlip:
			g.text.Flip(g.text.Position())
		}
		t.update()

	case EventMotion:
		if g.text != nil {
			g.text.SetPosition(t.cursor)
			t.update()
		}

	case EventClick:
		if g.text == nil {
			g.create()
		} else {
			g.place()
		}
		t.update()
	}
	return true
}

func (g *textGesture) create() {
	t := g.t
	ds := t.board.Settings()
	layer := t.activeLayer

	var text *core.Shape
	if t.settings.EditingFootprint() {
		text = core.NewTextShape(t.cursor, layer, ds.ModuleTextSize, ds.ModuleTextWidth)
		text.Text.Mirrored = false
		t.adopt(text)
	} else {
		text = core.NewTextShape(t.cursor, layer, ds.PcbTextSize, ds.PcbTextWidth)
	}

	// The editor is modal; the cursor is hidden while it runs.
	t.controls.ShowCursor(false)
	ok := t.collab.TextEditor != nil && t.collab.TextEditor.EditText(text)
	t.controls.ShowCursor(true)
	if !ok || text.Text.Value == "" {
		t.logger.Printf("%s: text rejected", t.action)
		return
	}

	g.text = text
	t.preview.Add(text)
	t.capture(true)
}

func (g *textGesture) place() {
	t := g.t
	text := g.text
	text.SetPosition(t.cursor)
	t.preview.Clear()
	g.text = nil
	t.commitShapes(LabelText, text)
	t.capture(false)
	t.controls.ShowCursor(true)
}

func (g *textGesture) abort() {
	g.t.preview.Clear()
	g.text = nil
}
