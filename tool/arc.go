package tool

import (
	"pcbdraw/core"
	"pcbdraw/geometry"
)

type arcStep int

const (
	arcSetOrigin arcStep = iota
	arcSetEnd
	arcSetAngle
)

// arcGesture draws an arc in three clicks: center, start point, sweep. A
// thin helper line on the drawing layer shows the radius.
type arcGesture struct {
	t    *DrawingTool
	step arcStep

	arc       *core.Shape
	helper    *core.Shape
	clockwise bool
}

func (g *arcGesture) handle(ev Event) bool {
	t := g.t

	switch ev.Kind {
	case EventCancel:
		if g.step == arcSetOrigin {
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
		case arcSetEnd:
			g.arc.End = t.cursor
			g.helper.End = t.cursor
		case arcSetAngle:
			g.arc.Angle = geometry.ArcSweep(g.arc.Center(), g.arc.ArcStart(), t.cursor, g.clockwise)
		}
		t.update()

	case EventCommand:
		switch ev.Command {
		case CmdIncWidth, CmdDecWidth:
			if g.step != arcSetOrigin && t.changeWidth(ev.Command) {
				g.arc.SetWidth(t.lineWidth)
			}
		case CmdArcPosture:
			if g.step == arcSetAngle && g.arc.Angle != 0 {
				g.arc.Angle = geometry.FlipPosture(g.arc.Angle, g.clockwise)
			}
			g.clockwise = !g.clockwise
		case CmdLayerChanged:
			if g.arc != nil {
				g.arc.SetLayer(arcLayer(t.drawingLayer()))
			}
		}
		t.update()
	}
	return true
}

func (g *arcGesture) click() {
	t := g.t
	switch g.step {
	case arcSetOrigin:
		g.arc = core.NewArc(t.cursor, arcLayer(t.drawingLayer()), t.lineWidth)
		t.adopt(g.arc)
		g.helper = core.NewSegment(t.cursor, t.cursor, core.DwgsUser, 1)
		t.preview.Add(g.arc)
		t.preview.Add(g.helper)
		t.capture(true)
		g.step = arcSetEnd

	case arcSetEnd:
		center := g.arc.Center()
		if t.cursor == center {
			// Back to the state the step started from.
			g.arc.End = center
			g.helper.End = center
			return
		}
		g.arc.End = t.cursor
		g.helper.End = t.cursor
		g.step = arcSetAngle

	case arcSetAngle:
		g.arc.Angle = geometry.ArcSweep(g.arc.Center(), g.arc.ArcStart(), t.cursor, g.clockwise)
		if t.cursor == g.arc.ArcStart() || g.arc.Angle == 0 {
			g.arc.Angle = 0
			return
		}
		arc := g.arc
		t.preview.Clear()
		g.arc, g.helper = nil, nil
		g.step = arcSetOrigin
		t.commitShapes(LabelArc, arc)
		t.capture(false)
	}
}

func (g *arcGesture) abort() {
	g.t.preview.Clear()
	g.arc, g.helper = nil, nil
	g.step = arcSetOrigin
}

// arcLayer keeps arcs off the board outline.
func arcLayer(l core.Layer) core.Layer {
	if l == core.EdgeCuts {
		return core.DwgsUser
	}
	return l
}
