package geometry

import (
	"math"

	"pcbdraw/core"
)

// VectorAngle returns the angle of v in radians. Y grows downward so
// positive angles turn clockwise on screen.
func VectorAngle(v core.Point) float64 {
	return math.Atan2(float64(v.Y), float64(v.X))
}

// ArcSweep returns the sweep, in tenths of a degree, of an arc around center
// that starts at start and ends on the ray towards cursor. Clockwise arcs
// get a positive sweep, counter-clockwise ones a negative sweep.
func ArcSweep(center, start, cursor core.Point, clockwise bool) float64 {
	startAngle := VectorAngle(start.Sub(center))
	sweep := core.RadToDeciDeg(VectorAngle(cursor.Sub(center)) - startAngle)
	return Posture(sweep, clockwise)
}

// Posture folds a sweep onto the requested drawing direction.
func Posture(sweep float64, clockwise bool) float64 {
	if clockwise && sweep < 0 {
		sweep += 3600
	} else if !clockwise && sweep > 0 {
		sweep -= 3600
	}
	return sweep
}

// FlipPosture converts a sweep to the same arc drawn the other way round.
func FlipPosture(sweep float64, clockwise bool) float64 {
	if clockwise {
		return sweep - 3600
	}
	return sweep + 3600
}
