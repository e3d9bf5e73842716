package tool

import (
	"pcbdraw/core"
	"pcbdraw/geometry"
)

// segmentGesture draws line chains and circles. Lines in 45 degree mode are
// drawn as two legs: the shape itself runs to the bend and the helper runs
// from the bend to the cursor.
type segmentGesture struct {
	t    *DrawingTool
	kind core.ShapeKind

	shape       *core.Shape // nil while idle
	helper      *core.Shape
	direction45 bool
}

func (g *segmentGesture) started() bool {
	return g.shape != nil
}

func (g *segmentGesture) handle(ev Event) bool {
	t := g.t

	if g.kind == core.KindSegment {
		if limit := t.limit45(ev); limit != g.direction45 {
			g.direction45 = limit
			if g.started() {
				if limit {
					t.preview.Add(g.helper)
				} else {
					t.preview.Remove(g.helper)
				}
				g.follow(t.cursor)
				t.update()
			}
		}
	}

	switch ev.Kind {
	case EventCancel:
		if !g.started() {
			return false
		}
		g.abort()
		t.capture(false)
		t.update()

	case EventCommand:
		if !g.started() {
			return true
		}
		switch ev.Command {
		case CmdLayerChanged:
			layer := t.drawingLayer()
			g.shape.SetLayer(layer)
			g.helper.SetLayer(layer)
		case CmdIncWidth, CmdDecWidth:
			if t.changeWidth(ev.Command) {
				g.shape.SetWidth(t.lineWidth)
				g.helper.SetWidth(t.lineWidth)
			}
		}
		t.update()

	case EventMotion:
		if g.started() {
			g.follow(t.cursor)
			t.update()
		}

	case EventClick, EventDoubleClick:
		g.click(ev)
		t.update()
	}
	return true
}

func (g *segmentGesture) click(ev Event) {
	t := g.t
	if !g.started() {
		g.begin(t.cursor)
		return
	}

	g.follow(t.cursor)
	finishing := g.shape.Start == g.shape.End ||
		(ev.Kind == EventDoubleClick && g.kind == core.KindSegment)
	if finishing {
		g.finishDrawing()
		return
	}

	shape := g.shape
	t.preview.Clear()
	g.shape, g.helper = nil, nil
	if g.kind == core.KindCircle {
		t.commitShapes(LabelCircle, shape)
		t.capture(false)
		return
	}
	if t.commitShapes(LabelSegment, shape) {
		g.begin(shape.End)
	} else {
		t.capture(false)
	}
}

// begin starts a new shape at start, reaching out to the cursor.
func (g *segmentGesture) begin(start core.Point) {
	t := g.t
	layer := t.drawingLayer()
	if g.kind == core.KindCircle {
		g.shape = core.NewCircle(start, t.cursor, layer, t.lineWidth)
	} else {
		g.shape = core.NewSegment(start, t.cursor, layer, t.lineWidth)
	}
	t.adopt(g.shape)
	g.helper = g.shape.Duplicate()
	g.helper.Start = g.shape.End

	t.preview.Add(g.shape)
	if g.direction45 {
		t.preview.Add(g.helper)
	}
	g.follow(t.cursor)
	t.capture(true)
}

// follow moves the free end of the shape to p.
func (g *segmentGesture) follow(p core.Point) {
	if !g.direction45 || g.kind != core.KindSegment {
		g.shape.End = p
		return
	}
	route := geometry.Route45(g.shape.Start, p)
	if bend, ok := route.Bend(); ok {
		g.shape.End = bend
	} else {
		g.shape.End = p
	}
	g.helper.Start = g.shape.End
	g.helper.End = p
}

// finishDrawing commits whatever non-degenerate geometry is shown and goes
// back to idle. The helper leg of a 45 degree line is its own undo step.
func (g *segmentGesture) finishDrawing() {
	t := g.t
	shape, helper := g.shape, g.helper
	t.preview.Clear()
	g.shape, g.helper = nil, nil

	label := LabelSegment
	if g.kind == core.KindCircle {
		label = LabelCircle
	}
	if !shape.Degenerate() {
		t.commitShapes(label, shape)
	}
	if g.direction45 && g.kind == core.KindSegment && !helper.Degenerate() {
		t.commitShapes(LabelHelper, helper)
	}
	t.capture(false)
}

func (g *segmentGesture) abort() {
	g.t.preview.Clear()
	g.shape, g.helper = nil, nil
}
