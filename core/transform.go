package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec converts a point to a float vector.
func (p Point) Vec() r2.Vec {
	return r2.Vec{X: float64(p.X), Y: float64(p.Y)}
}

// PointOf rounds a float vector to the nearest point.
func PointOf(v r2.Vec) Point {
	return Point{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

// DeciDegToRad converts tenths of a degree to radians.
func DeciDegToRad(deci float64) float64 {
	return deci * math.Pi / 1800
}

// RadToDeciDeg converts radians to tenths of a degree.
func RadToDeciDeg(rad float64) float64 {
	return rad * 1800 / math.Pi
}

// NormalizeDeciDeg maps an angle into [0, 3600).
func NormalizeDeciDeg(a float64) float64 {
	for a < 0 {
		a += 3600
	}
	for a >= 3600 {
		a -= 3600
	}
	return a
}

// RotatePoint rotates p around center by an angle in tenths of a degree.
// Multiples of 90 degrees are exact.
func RotatePoint(p, center Point, deci float64) Point {
	switch NormalizeDeciDeg(deci) {
	case 0:
		return p
	case 900:
		d := p.Sub(center)
		return center.Add(Point{X: -d.Y, Y: d.X})
	case 1800:
		d := p.Sub(center)
		return center.Add(d.Neg())
	case 2700:
		d := p.Sub(center)
		return center.Add(Point{X: d.Y, Y: -d.X})
	}
	return PointOf(r2.Rotate(p.Vec(), DeciDegToRad(deci), center.Vec()))
}

// MirrorX mirrors p horizontally about the vertical line through center.
func MirrorX(p, center Point) Point {
	return Point{X: 2*center.X - p.X, Y: p.Y}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return r2.Norm(r2.Sub(a.Vec(), b.Vec()))
}
