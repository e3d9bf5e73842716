package canvas

import (
	"math"

	"github.com/mattn/go-runewidth"

	"pcbdraw/core"
)

// Viewport maps board coordinates onto cells. Each cell covers
// CellWidth x CellHeight nanometres and cell (0,0) sits on Origin.
type Viewport struct {
	Origin     core.Point
	CellWidth  int
	CellHeight int
}

// ToCell returns the cell nearest to p.
func (v Viewport) ToCell(p core.Point) Cell {
	d := p.Sub(v.Origin)
	return Cell{
		X: floorDiv(d.X+v.CellWidth/2, v.CellWidth),
		Y: floorDiv(d.Y+v.CellHeight/2, v.CellHeight),
	}
}

// ToBoard returns the grid point a cell stands for.
func (v Viewport) ToBoard(c Cell) core.Point {
	return v.Origin.Add(core.Point{X: c.X * v.CellWidth, Y: c.Y * v.CellHeight})
}

// Pan shifts the view by whole cells.
func (v *Viewport) Pan(dx, dy int) {
	v.Origin = v.Origin.Add(core.Point{X: dx * v.CellWidth, Y: dy * v.CellHeight})
}

// CenterOn moves the view so that p lands in the middle of a cols x rows area.
func (v *Viewport) CenterOn(p core.Point, cols, rows int) {
	v.Origin = p.Sub(core.Point{X: cols / 2 * v.CellWidth, Y: rows / 2 * v.CellHeight})
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Renderer draws board shapes onto a canvas through a viewport.
type Renderer struct {
	canvas *MatrixCanvas
	view   Viewport
}

// NewRenderer creates a renderer drawing on c.
func NewRenderer(c *MatrixCanvas, v Viewport) *Renderer {
	return &Renderer{canvas: c, view: v}
}

// Canvas returns the target canvas.
func (r *Renderer) Canvas() *MatrixCanvas {
	return r.canvas
}

// DrawShapes draws board items, then preview items on top.
func (r *Renderer) DrawShapes(items, preview []*core.Shape) {
	for _, s := range items {
		r.canvas.SetInk(Ink{Layer: s.Layer})
		r.DrawShape(s)
	}
	for _, s := range preview {
		r.canvas.SetInk(Ink{Layer: s.Layer, Preview: true})
		r.DrawShape(s)
	}
}

// DrawShape draws one shape with the current ink.
func (r *Renderer) DrawShape(s *core.Shape) {
	switch s.Kind {
	case core.KindSegment:
		r.line(s.Start, s.End)
	case core.KindCircle:
		r.curve(s.Center(), s.End, 3600)
	case core.KindArc:
		r.curve(s.Center(), s.ArcStart(), s.Angle)
	case core.KindDimension:
		r.dimension(s.Dimension)
	case core.KindText:
		r.text(s.Text)
	case core.KindZone:
		r.zone(s.Zone)
	case core.KindFootprint:
		c := r.view.ToCell(s.Footprint.Position)
		r.canvas.Set(c, '⊕')
		r.canvas.DrawText(Cell{c.X + 1, c.Y}, s.Footprint.Reference)
	}
}

func (r *Renderer) line(a, b core.Point) {
	ca, cb := r.view.ToCell(a), r.view.ToCell(b)
	r.canvas.DrawLine(ca, cb, LineGlyph(cb.X-ca.X, cb.Y-ca.Y))
}

func (r *Renderer) polyline(points []core.Point, closed bool) {
	for i := 0; i+1 < len(points); i++ {
		r.line(points[i], points[i+1])
	}
	if closed && len(points) > 2 {
		r.line(points[len(points)-1], points[0])
	}
}

// curve approximates an arc of sweep tenths of a degree by chords about two
// cells long.
func (r *Renderer) curve(center, start core.Point, sweep float64) {
	radius := core.Distance(center, start)
	if radius == 0 || sweep == 0 {
		r.canvas.Set(r.view.ToCell(center), '·')
		return
	}
	cell := float64(min(r.view.CellWidth, r.view.CellHeight))
	length := radius * math.Abs(core.DeciDegToRad(sweep))
	steps := max(8, int(math.Ceil(length/(2*cell))))

	prev := start
	for i := 1; i <= steps; i++ {
		p := core.RotatePoint(start, center, sweep*float64(i)/float64(steps))
		r.line(prev, p)
		prev = p
	}
}

func (r *Renderer) dimension(d *core.Dimension) {
	r.line(d.Origin, d.CrossBarO)
	r.line(d.End, d.CrossBarF)
	r.line(d.CrossBarO, d.CrossBarF)
	r.line(d.CrossBarO, d.ArrowD1)
	r.line(d.CrossBarO, d.ArrowD2)
	r.line(d.CrossBarF, d.ArrowG1)
	r.line(d.CrossBarF, d.ArrowG2)
	r.text(&d.Text)
}

// text centers the value on its position. Quarter turns run top to bottom.
func (r *Renderer) text(t *core.Text) {
	value := t.Value
	if t.Mirrored {
		value = reverse(value)
	}
	c := r.view.ToCell(t.Pos)
	a := core.NormalizeDeciDeg(t.Angle)
	if (a > 450 && a < 1350) || (a > 2250 && a < 3150) {
		runes := []rune(value)
		y := c.Y - len(runes)/2
		for i, ch := range runes {
			r.canvas.DrawText(Cell{c.X, y + i}, string(ch))
		}
		return
	}
	r.canvas.DrawText(Cell{c.X - runewidth.StringWidth(value)/2, c.Y}, value)
}

func (r *Renderer) zone(z *core.Zone) {
	for _, c := range z.Outline.Contours {
		r.polyline(c.Points, c.Closed)
	}
	for _, h := range z.HatchLines {
		ca, cb := r.view.ToCell(h[0]), r.view.ToCell(h[1])
		r.canvas.DrawLine(ca, cb, '·')
	}
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
