package tool

import "pcbdraw/core"

// dxfGesture drags the items of an imported drawing. The first item is the
// handle: it stays under the cursor, the rest keep their offsets to it.
type dxfGesture struct {
	t     *DrawingTool
	items []*core.Shape
}

func newDXFGesture(t *DrawingTool) (*dxfGesture, error) {
	if t.collab.Importer == nil {
		return nil, ErrNothingToPlace
	}
	items, ok := t.collab.Importer.ImportDXF()
	if !ok || len(items) == 0 {
		return nil, ErrNothingToPlace
	}
	return &dxfGesture{t: t, items: items}, nil
}

func (g *dxfGesture) enter() {
	t := g.t
	for _, item := range g.items {
		t.adopt(item)
		t.preview.Add(item)
	}
	g.moveTo(t.cursor)
	t.capture(true)
}

func (g *dxfGesture) handle(ev Event) bool {
	t := g.t

	switch ev.Kind {
	case EventCancel:
		g.abort()
		return false

	case EventMotion:
		g.moveTo(t.cursor)
		t.update()

	case EventCommand:
		for _, item := range g.items {
			switch ev.Command {
			case CmdRotate:
				item.Rotate(t.cursor, t.settings.RotationAngle)
			case CmdFlip:
				item.Flip(t.cursor)
			}
		}
		t.update()

	case EventClick:
		g.moveTo(t.cursor)
		items := g.items
		t.preview.Clear()
		g.items = nil
		t.commitShapes(LabelDXF, items...)
		return false
	}
	return true
}

func (g *dxfGesture) moveTo(p core.Point) {
	delta := p.Sub(g.items[0].Position())
	for _, item := range g.items {
		item.Move(delta)
	}
}

func (g *dxfGesture) abort() {
	g.t.preview.Clear()
	g.items = nil
}
