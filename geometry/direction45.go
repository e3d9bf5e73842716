package geometry

import (
	"math"

	"pcbdraw/core"
)

// Direction45 is one of the eight compass directions, screen up being north.
type Direction45 int

const (
	DirUndefined Direction45 = iota - 1
	DirN
	DirNE
	DirE
	DirSE
	DirS
	DirSW
	DirW
	DirNW
)

var directionNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (d Direction45) String() string {
	if d < DirN || d > DirNW {
		return "undefined"
	}
	return directionNames[d]
}

// DirectionOf snaps a vector to the nearest of the eight directions.
// The zero vector has no direction.
func DirectionOf(v core.Point) Direction45 {
	if v.IsZero() {
		return DirUndefined
	}
	// Compass bearing, clockwise from screen up. Y grows downward.
	bearing := 90 + math.Atan2(float64(v.Y), float64(v.X))*180/math.Pi
	if bearing < 0 {
		bearing += 360
	}
	if bearing >= 360 {
		bearing -= 360
	}
	return Direction45(int((bearing+22.5)/45) % 8)
}

// IsDiagonal reports whether the direction is one of NE, SE, SW, NW.
func (d Direction45) IsDiagonal() bool {
	return d != DirUndefined && d%2 == 1
}

// Opposite returns the reverse direction.
func (d Direction45) Opposite() Direction45 {
	if d == DirUndefined {
		return d
	}
	return (d + 4) % 8
}

// Vector returns a unit step in the direction, diagonals having both
// components set.
func (d Direction45) Vector() core.Point {
	switch d {
	case DirN:
		return core.Point{X: 0, Y: -1}
	case DirNE:
		return core.Point{X: 1, Y: -1}
	case DirE:
		return core.Point{X: 1, Y: 0}
	case DirSE:
		return core.Point{X: 1, Y: 1}
	case DirS:
		return core.Point{X: 0, Y: 1}
	case DirSW:
		return core.Point{X: -1, Y: 1}
	case DirW:
		return core.Point{X: -1, Y: 0}
	case DirNW:
		return core.Point{X: -1, Y: -1}
	}
	return core.Point{}
}

// Route is a polyline of two or three points: origin, an optional bend and
// the cursor.
type Route []core.Point

// Bend returns the bend point of a three point route.
func (r Route) Bend() (core.Point, bool) {
	if len(r) < 3 {
		return core.Point{}, false
	}
	return r[len(r)-2], true
}

// End returns the last point of the route.
func (r Route) End() core.Point {
	return r[len(r)-1]
}

// Route45 computes the shortest path from origin to cursor made of legs
// aligned to multiples of 45 degrees. When the cursor lies on such a line the
// route is a single leg, otherwise it bends once. The first leg is diagonal
// when the cursor vector snaps to a diagonal direction, straight otherwise.
func Route45(origin, cursor core.Point) Route {
	delta := cursor.Sub(origin)
	w, h := Abs(delta.X), Abs(delta.Y)
	sw, sh := Sign(delta.X), Sign(delta.Y)

	var straight, diagonal core.Point
	if IsHorizontal(delta) {
		straight = core.Point{X: (w - h) * sw}
		diagonal = core.Point{X: h * sw, Y: h * sh}
	} else {
		straight = core.Point{Y: sh * (h - w)}
		diagonal = core.Point{X: sw * w, Y: sh * w}
	}

	bend := origin.Add(straight)
	if DirectionOf(origin.Sub(cursor)).IsDiagonal() {
		bend = origin.Add(diagonal)
	}
	return simplify(Route{origin, bend, cursor})
}

// simplify drops repeated points and points lying on a straight run.
func simplify(r Route) Route {
	out := make(Route, 0, len(r))
	for _, p := range r {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		if len(out) >= 2 && Collinear(out[len(out)-2], out[len(out)-1], p) {
			out[len(out)-1] = p
			continue
		}
		out = append(out, p)
	}
	return out
}
