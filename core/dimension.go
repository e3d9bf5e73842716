package core

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

const (
	// dimensionArrowLength is 50 mils.
	dimensionArrowLength = 1270000
	dimensionArrowAngle  = 27.5 * math.Pi / 180
)

// Dimension is a linear measurement between Origin and End. The crossbar is
// offset from the measured feature by Height along the axis normal.
type Dimension struct {
	Origin Point
	End    Point
	Height int
	Value  int // measured length
	Text   Text

	CrossBarO, CrossBarF Point
	ArrowD1, ArrowD2     Point // arrow heads at CrossBarO
	ArrowG1, ArrowG2     Point // arrow heads at CrossBarF
}

// SetOrigin moves the measurement origin.
func (d *Dimension) SetOrigin(p Point) {
	d.Origin = p
	d.Adjust()
}

// SetEnd moves the measurement end.
func (d *Dimension) SetEnd(p Point) {
	d.End = p
	d.Adjust()
}

// SetHeight sets the crossbar offset.
func (d *Dimension) SetHeight(h int) {
	d.Height = h
	d.Adjust()
}

// Angle returns the direction of the measured axis in radians.
func (d *Dimension) Angle() float64 {
	delta := d.End.Sub(d.Origin)
	if delta.IsZero() {
		return 0
	}
	return math.Atan2(float64(delta.Y), float64(delta.X))
}

// Normal returns the unit vector perpendicular to the measured axis.
func (d *Dimension) Normal() r2.Vec {
	a := d.Angle() + math.Pi/2
	return r2.Vec{X: math.Cos(a), Y: math.Sin(a)}
}

// HeightAt projects cursor onto the axis normal through End.
func (d *Dimension) HeightAt(cursor Point) int {
	return int(math.Round(r2.Dot(r2.Sub(cursor.Vec(), d.End.Vec()), d.Normal())))
}

// Adjust recomputes the measured value, crossbar, arrows and text from the
// origin, end and height.
func (d *Dimension) Adjust() {
	delta := d.End.Sub(d.Origin).Vec()
	d.Value = int(math.Round(r2.Norm(delta)))
	angle := d.Angle()

	offset := r2.Scale(float64(d.Height), d.Normal())
	d.CrossBarO = PointOf(r2.Add(d.Origin.Vec(), offset))
	d.CrossBarF = PointOf(r2.Add(d.End.Vec(), offset))

	arrow := func(base Point, a, sign float64) Point {
		v := r2.Vec{X: math.Cos(a), Y: math.Sin(a)}
		return PointOf(r2.Add(base.Vec(), r2.Scale(sign*dimensionArrowLength, v)))
	}
	d.ArrowD1 = arrow(d.CrossBarO, angle+dimensionArrowAngle, 1)
	d.ArrowD2 = arrow(d.CrossBarO, angle-dimensionArrowAngle, 1)
	d.ArrowG1 = arrow(d.CrossBarF, angle+dimensionArrowAngle, -1)
	d.ArrowG2 = arrow(d.CrossBarF, angle-dimensionArrowAngle, -1)

	d.Text.Pos = Point{
		X: (d.CrossBarO.X + d.CrossBarF.X) / 2,
		Y: (d.CrossBarO.Y + d.CrossBarF.Y) / 2,
	}

	// Keep the text readable from the bottom or right edge.
	textAngle := NormalizeDeciDeg(-RadToDeciDeg(angle))
	if textAngle > 900 && textAngle <= 2700 {
		textAngle = NormalizeDeciDeg(textAngle - 1800)
	}
	d.Text.Angle = textAngle
	d.Text.Value = fmt.Sprintf("%.2f mm", float64(d.Value)/1e6)
}
