package geometry

import "pcbdraw/core"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 according to the sign of x.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// IsHorizontal returns true if the vector is more horizontal than vertical.
func IsHorizontal(v core.Point) bool {
	return Abs(v.X) > Abs(v.Y)
}

// Is45 reports whether the vector points along a multiple of 45 degrees.
// The zero vector counts as aligned.
func Is45(v core.Point) bool {
	return v.X == 0 || v.Y == 0 || Abs(v.X) == Abs(v.Y)
}

// Collinear reports whether b lies on the straight run from a to c,
// pointing the same way.
func Collinear(a, b, c core.Point) bool {
	ab := b.Sub(a)
	bc := c.Sub(b)
	cross := int64(ab.X)*int64(bc.Y) - int64(ab.Y)*int64(bc.X)
	dot := int64(ab.X)*int64(bc.X) + int64(ab.Y)*int64(bc.Y)
	return cross == 0 && dot >= 0
}
