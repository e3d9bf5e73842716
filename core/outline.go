package core

// Contour is one polygon ring. The closing edge from the last point back to
// the first is implied once Closed is set.
type Contour struct {
	Points []Point
	Closed bool
}

// Move translates every point of the contour.
func (c *Contour) Move(delta Point) {
	for i := range c.Points {
		c.Points[i] = c.Points[i].Add(delta)
	}
}

// Clone returns an independent copy of the contour.
func (c Contour) Clone() Contour {
	return Contour{Points: append([]Point(nil), c.Points...), Closed: c.Closed}
}

// Outline is a zone polygon: the first contour is the main outline, the
// following ones are holes cut into it.
type Outline struct {
	Contours []Contour
}

// NewContour opens a new, empty contour. The first contour is the outline,
// every later one a hole.
func (o *Outline) NewContour() {
	o.Contours = append(o.Contours, Contour{})
}

// Append adds a corner to the last contour, opening one if needed.
func (o *Outline) Append(p Point) {
	if len(o.Contours) == 0 {
		o.NewContour()
	}
	last := &o.Contours[len(o.Contours)-1]
	last.Points = append(last.Points, p)
}

// CloseLastContour marks the last contour closed.
func (o *Outline) CloseLastContour() {
	if len(o.Contours) > 0 {
		o.Contours[len(o.Contours)-1].Closed = true
	}
}

// AddHole appends a closed hole contour.
func (o *Outline) AddHole(points []Point) {
	o.NewContour()
	for _, p := range points {
		o.Append(p)
	}
	o.CloseLastContour()
}

// NumCorners counts the corners of every contour.
func (o *Outline) NumCorners() int {
	n := 0
	for _, c := range o.Contours {
		n += len(c.Points)
	}
	return n
}

// Corner returns the i-th corner, counting across contours in order.
func (o *Outline) Corner(i int) Point {
	for _, c := range o.Contours {
		if i < len(c.Points) {
			return c.Points[i]
		}
		i -= len(c.Points)
	}
	panic("core: outline corner index out of range")
}

// Holes returns the hole contours.
func (o *Outline) Holes() []Contour {
	if len(o.Contours) < 2 {
		return nil
	}
	return o.Contours[1:]
}

// Move translates the outline.
func (o *Outline) Move(delta Point) {
	for i := range o.Contours {
		o.Contours[i].Move(delta)
	}
}

// Transform replaces every corner with fn(corner).
func (o *Outline) Transform(fn func(Point) Point) {
	for i := range o.Contours {
		for j, p := range o.Contours[i].Points {
			o.Contours[i].Points[j] = fn(p)
		}
	}
}

// Clone returns a deep copy of the outline.
func (o Outline) Clone() Outline {
	c := Outline{Contours: make([]Contour, len(o.Contours))}
	for i, ct := range o.Contours {
		c.Contours[i] = ct.Clone()
	}
	return c
}

// Bounds returns the box around all corners.
func (o *Outline) Bounds() Bounds {
	var pts []Point
	for _, c := range o.Contours {
		pts = append(pts, c.Points...)
	}
	return BoundsOf(pts...)
}
