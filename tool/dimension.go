package tool

import "pcbdraw/core"

type dimensionStep int

const (
	dimSetOrigin dimensionStep = iota
	dimSetEnd
	dimSetHeight
)

type dimensionGesture struct {
	t    *DrawingTool
	step dimensionStep
	dim  *core.Shape
}

func (g *dimensionGesture) handle(ev Event) bool {
	t := g.t

	switch ev.Kind {
	case EventCancel:
		if g.step == dimSetOrigin {
			return false
		}
		g.abort()
		t.capture(false)
		t.update()

	case EventClick:
		g.click()
		t.update()

	case EventMotion:
		switch g.step {
		case dimSetEnd:
			g.dim.Dimension.SetEnd(t.cursor)
		case dimSetHeight:
			g.dim.Dimension.SetHeight(g.dim.Dimension.HeightAt(t.cursor))
		}
		t.update()

	case EventCommand:
		switch ev.Command {
		case CmdIncWidth, CmdDecWidth:
			if g.step != dimSetOrigin && t.changeWidth(ev.Command) {
				g.dim.SetWidth(t.lineWidth)
			}
		case CmdLayerChanged:
			if g.dim != nil {
				g.dim.SetLayer(arcLayer(t.drawingLayer()))
			}
		}
		t.update()
	}
	return true
}

func (g *dimensionGesture) click() {
	t := g.t
	switch g.step {
	case dimSetOrigin:
		ds := t.board.Settings()
		width := core.ClampPenSize(ds.PcbTextWidth, ds.PcbTextSize)
		g.dim = core.NewDimensionShape(t.cursor, arcLayer(t.drawingLayer()), ds.PcbTextSize, width)
		t.adopt(g.dim)
		t.lineWidth = width
		t.preview.Add(g.dim)
		t.capture(true)
		g.step = dimSetEnd

	case dimSetEnd:
		d := g.dim.Dimension
		d.SetEnd(t.cursor)
		if d.End == d.Origin {
			// Retry the step; the dimension is back to a point.
			d.SetEnd(d.Origin)
			return
		}
		g.step = dimSetHeight

	case dimSetHeight:
		d := g.dim.Dimension
		d.SetHeight(d.HeightAt(t.cursor))
		if t.cursor == g.dim.Position() {
			d.SetHeight(0)
			return
		}
		dim := g.dim
		t.preview.Clear()
		g.dim = nil
		g.step = dimSetOrigin
		t.commitShapes(LabelDimension, dim)
		t.capture(false)
	}
}

func (g *dimensionGesture) abort() {
	g.t.preview.Clear()
	g.dim = nil
	g.step = dimSetOrigin
}
