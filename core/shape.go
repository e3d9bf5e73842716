package core

import (
	"github.com/google/uuid"
)

// ShapeKind tags the variant carried by a Shape.
type ShapeKind int

const (
	KindSegment ShapeKind = iota
	KindCircle
	KindArc
	KindDimension
	KindText
	KindZone
	KindFootprint
)

// String returns the kind name for display and logs.
func (k ShapeKind) String() string {
	switch k {
	case KindSegment:
		return "segment"
	case KindCircle:
		return "circle"
	case KindArc:
		return "arc"
	case KindDimension:
		return "dimension"
	case KindText:
		return "text"
	case KindZone:
		return "zone"
	case KindFootprint:
		return "footprint"
	default:
		return "unknown"
	}
}

// Shape is a drawable board item. The geometric fields shared by every
// variant live here; the variant payload hangs off the matching pointer.
//
// Start/End mean: segment endpoints; circle center and a point on the
// circumference; arc center and arc start point.
type Shape struct {
	ID     ItemID // board handle, NoItem while the shape is uncommitted
	Parent ItemID // owning footprint, NoItem for board-level items
	UUID   uuid.UUID
	Kind   ShapeKind
	Layer  Layer
	Width  int

	Start Point
	End   Point
	Angle float64 // arc sweep, tenths of a degree

	NetCode int

	Dimension *Dimension
	Text      *Text
	Zone      *Zone
	Footprint *Footprint
}

// Footprint is the payload of a footprint item. Its children reference it
// through Shape.Parent.
type Footprint struct {
	Position  Point
	Reference string
}

func newShape(kind ShapeKind) *Shape {
	return &Shape{UUID: uuid.New(), Kind: kind}
}

// NewSegment creates an uncommitted line segment.
func NewSegment(start, end Point, layer Layer, width int) *Shape {
	s := newShape(KindSegment)
	s.Start, s.End = start, end
	s.Layer, s.Width = layer, width
	return s
}

// NewCircle creates an uncommitted circle from its center and a rim point.
func NewCircle(center, rim Point, layer Layer, width int) *Shape {
	s := newShape(KindCircle)
	s.Start, s.End = center, rim
	s.Layer, s.Width = layer, width
	return s
}

// NewArc creates an uncommitted arc with zero sweep, its start on the center.
func NewArc(center Point, layer Layer, width int) *Shape {
	s := newShape(KindArc)
	s.Start, s.End = center, center
	s.Layer, s.Width = layer, width
	return s
}

// NewDimensionShape creates an uncommitted dimension with coincident
// origin and end at p.
func NewDimensionShape(p Point, layer Layer, textSize Size, width int) *Shape {
	s := newShape(KindDimension)
	s.Layer = layer
	s.Width = width
	s.Dimension = &Dimension{Origin: p, End: p}
	s.Dimension.Text.Size = textSize
	s.Dimension.Text.Thickness = width
	s.Dimension.Adjust()
	return s
}

// NewTextShape creates an uncommitted text item at pos.
func NewTextShape(pos Point, layer Layer, size Size, thickness int) *Shape {
	s := newShape(KindText)
	s.Layer = layer
	s.Text = &Text{Pos: pos, Size: size, Thickness: thickness, Mirrored: layer.IsBack()}
	return s
}

// NewZoneShape creates an uncommitted zone with an empty outline.
func NewZoneShape(settings ZoneSettings) *Shape {
	s := newShape(KindZone)
	s.Zone = &Zone{}
	settings.Export(s)
	return s
}

// NewFootprintShape creates an uncommitted footprint anchored at pos.
func NewFootprintShape(pos Point, reference string) *Shape {
	s := newShape(KindFootprint)
	s.Layer = FCu
	s.Footprint = &Footprint{Position: pos, Reference: reference}
	return s
}

// InBoard reports whether the shape is owned by a board.
func (s *Shape) InBoard() bool {
	return s.ID.Valid()
}

// SetWidth changes the stroke width.
func (s *Shape) SetWidth(w int) {
	s.Width = w
	if s.Dimension != nil {
		s.Dimension.Text.Thickness = w
	}
}

// SetLayer moves the shape to another layer.
func (s *Shape) SetLayer(l Layer) {
	s.Layer = l
	if s.Zone != nil {
		s.Zone.Settings.Layer = l
	}
}

// Position returns the reference point of the shape.
func (s *Shape) Position() Point {
	switch s.Kind {
	case KindDimension:
		return s.Dimension.Text.Pos
	case KindText:
		return s.Text.Pos
	case KindZone:
		if s.Zone.Outline.NumCorners() > 0 {
			return s.Zone.Outline.Corner(0)
		}
	case KindFootprint:
		return s.Footprint.Position
	}
	return s.Start
}

// SetPosition moves the shape so that Position() returns p.
func (s *Shape) SetPosition(p Point) {
	s.Move(p.Sub(s.Position()))
}

// Center returns the center of a circle or arc.
func (s *Shape) Center() Point {
	return s.Start
}

// ArcStart returns the first point of an arc.
func (s *Shape) ArcStart() Point {
	return s.End
}

// ArcEnd returns the last point of an arc, the start rotated by the sweep.
func (s *Shape) ArcEnd() Point {
	return RotatePoint(s.End, s.Start, s.Angle)
}

// Radius returns the radius of a circle or arc.
func (s *Shape) Radius() float64 {
	return Distance(s.Start, s.End)
}

// Move translates the shape by delta.
func (s *Shape) Move(delta Point) {
	s.Start = s.Start.Add(delta)
	s.End = s.End.Add(delta)
	switch s.Kind {
	case KindDimension:
		s.Dimension.Origin = s.Dimension.Origin.Add(delta)
		s.Dimension.End = s.Dimension.End.Add(delta)
		s.Dimension.Adjust()
	case KindText:
		s.Text.Pos = s.Text.Pos.Add(delta)
	case KindZone:
		s.Zone.Outline.Move(delta)
		for i := range s.Zone.HatchLines {
			s.Zone.HatchLines[i][0] = s.Zone.HatchLines[i][0].Add(delta)
			s.Zone.HatchLines[i][1] = s.Zone.HatchLines[i][1].Add(delta)
		}
		for i := range s.Zone.FilledPolys {
			s.Zone.FilledPolys[i].Move(delta)
		}
	case KindFootprint:
		s.Footprint.Position = s.Footprint.Position.Add(delta)
	}
}

// Rotate turns the shape around center by an angle in tenths of a degree.
func (s *Shape) Rotate(center Point, deci float64) {
	s.Start = RotatePoint(s.Start, center, deci)
	s.End = RotatePoint(s.End, center, deci)
	switch s.Kind {
	case KindDimension:
		s.Dimension.Origin = RotatePoint(s.Dimension.Origin, center, deci)
		s.Dimension.End = RotatePoint(s.Dimension.End, center, deci)
		s.Dimension.Adjust()
	case KindText:
		s.Text.Pos = RotatePoint(s.Text.Pos, center, deci)
		s.Text.Angle = NormalizeDeciDeg(s.Text.Angle + deci)
	case KindZone:
		s.Zone.Outline.Transform(func(p Point) Point { return RotatePoint(p, center, deci) })
		s.Zone.NeedsRefill = s.Zone.Filled
		s.Zone.HatchLines = nil
	case KindFootprint:
		s.Footprint.Position = RotatePoint(s.Footprint.Position, center, deci)
	}
}

// Flip mirrors the shape to the other board side about the vertical line
// through center.
func (s *Shape) Flip(center Point) {
	s.Start = MirrorX(s.Start, center)
	s.End = MirrorX(s.End, center)
	s.SetLayer(s.Layer.Flip())
	switch s.Kind {
	case KindArc:
		s.Angle = -s.Angle
	case KindDimension:
		s.Dimension.Origin = MirrorX(s.Dimension.Origin, center)
		s.Dimension.End = MirrorX(s.Dimension.End, center)
		s.Dimension.Adjust()
	case KindText:
		s.Text.Pos = MirrorX(s.Text.Pos, center)
		s.Text.Mirrored = !s.Text.Mirrored
		s.Text.Angle = NormalizeDeciDeg(-s.Text.Angle)
	case KindZone:
		s.Zone.Outline.Transform(func(p Point) Point { return MirrorX(p, center) })
		s.Zone.NeedsRefill = s.Zone.Filled
		s.Zone.HatchLines = nil
	case KindFootprint:
		s.Footprint.Position = MirrorX(s.Footprint.Position, center)
	}
}

// Clone returns a deep copy that keeps the identity (UUID and handle).
func (s *Shape) Clone() *Shape {
	c := *s
	if s.Dimension != nil {
		d := *s.Dimension
		c.Dimension = &d
	}
	if s.Text != nil {
		t := *s.Text
		c.Text = &t
	}
	if s.Zone != nil {
		c.Zone = s.Zone.Clone()
	}
	if s.Footprint != nil {
		f := *s.Footprint
		c.Footprint = &f
	}
	return &c
}

// Duplicate returns a deep copy with a fresh identity, not owned by any board.
func (s *Shape) Duplicate() *Shape {
	c := s.Clone()
	c.UUID = uuid.New()
	c.ID = NoItem
	return c
}

// Degenerate reports whether the shape has no usable geometry.
func (s *Shape) Degenerate() bool {
	switch s.Kind {
	case KindSegment, KindCircle:
		return s.Start == s.End
	case KindArc:
		return s.Start == s.End || s.Angle == 0
	case KindDimension:
		return s.Dimension.Origin == s.Dimension.End
	case KindText:
		return s.Text.Value == ""
	case KindZone:
		for _, c := range s.Zone.Outline.Contours {
			if len(c.Points) < 3 {
				return true
			}
		}
		return len(s.Zone.Outline.Contours) == 0
	}
	return false
}
