package geometry

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"pcbdraw/core"
)

// RemoveNullSegments drops zero-length edges from a contour. For a closed
// contour the closing edge is checked too.
func RemoveNullSegments(c core.Contour) core.Contour {
	out := core.Contour{Closed: c.Closed}
	for _, p := range c.Points {
		if n := len(out.Points); n > 0 && out.Points[n-1] == p {
			continue
		}
		out.Points = append(out.Points, p)
	}
	if c.Closed {
		for len(out.Points) > 1 && out.Points[len(out.Points)-1] == out.Points[0] {
			out.Points = out.Points[:len(out.Points)-1]
		}
	}
	return out
}

// DistinctCorners counts the different points of a contour.
func DistinctCorners(points []core.Point) int {
	seen := make(map[core.Point]struct{}, len(points))
	for _, p := range points {
		seen[p] = struct{}{}
	}
	return len(seen)
}

// Area2 returns twice the signed area of the polygon through points. It is
// zero when every corner lies on one line.
func Area2(points []core.Point) int64 {
	var sum int64
	for i, p := range points {
		q := points[(i+1)%len(points)]
		sum += int64(p.X)*int64(q.Y) - int64(q.X)*int64(p.Y)
	}
	return sum
}

// Hatch computes the 45 degree hatch strokes drawn inside a zone outline.
// Strokes are pitch apart. With core.HatchDiagonalEdge only stubs of length
// pitch are kept next to the outline edges.
func Hatch(o core.Outline, style core.HatchStyle, pitch int) [][2]core.Point {
	if style == core.HatchNone || pitch <= 0 || len(o.Contours) == 0 {
		return nil
	}
	box := o.Bounds()

	// Lines y = x + b. Stepping b by pitch*sqrt2 spaces them pitch apart.
	step := float64(pitch) * math.Sqrt2
	bMin := float64(box.Min.Y - box.Max.X)
	bMax := float64(box.Max.Y - box.Min.X)
	first := math.Floor(bMin/step) * step

	var lines [][2]core.Point
	for b := first; b <= bMax; b += step {
		xs := crossings(o, b)
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			a := r2.Vec{X: xs[i], Y: xs[i] + b}
			e := r2.Vec{X: xs[i+1], Y: xs[i+1] + b}
			lines = append(lines, hatchStroke(a, e, style, float64(pitch))...)
		}
	}
	return lines
}

// crossings returns the x coordinates where the line y = x + b crosses the
// outline edges. Each edge is treated as half open so a shared vertex counts
// once.
func crossings(o core.Outline, b float64) []float64 {
	var xs []float64
	for _, c := range o.Contours {
		n := len(c.Points)
		if n < 3 {
			continue
		}
		for i := 0; i < n; i++ {
			p := c.Points[i].Vec()
			q := c.Points[(i+1)%n].Vec()
			fp := p.Y - p.X - b
			fq := q.Y - q.X - b
			if (fp < 0) == (fq < 0) {
				continue
			}
			t := fp / (fp - fq)
			x := r2.Add(p, r2.Scale(t, r2.Sub(q, p))).X
			xs = append(xs, x)
		}
	}
	return xs
}

func hatchStroke(a, e r2.Vec, style core.HatchStyle, length float64) [][2]core.Point {
	span := r2.Sub(e, a)
	if style == core.HatchDiagonalFull || r2.Norm(span) < 2*length {
		return [][2]core.Point{{core.PointOf(a), core.PointOf(e)}}
	}
	stub := r2.Scale(length, r2.Unit(span))
	return [][2]core.Point{
		{core.PointOf(a), core.PointOf(r2.Add(a, stub))},
		{core.PointOf(r2.Sub(e, stub)), core.PointOf(e)},
	}
}
