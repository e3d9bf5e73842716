package validation

import (
	"fmt"
	"strings"

	"pcbdraw/core"
	"pcbdraw/geometry"
)

// ShapeValidator checks that shapes about to enter a board are well formed.
// The drawing loops guard against every case it reports, so a finding here
// means a loop let invalid geometry through.
type ShapeValidator struct {
	errors []ValidationError
	// Options
	strictMode bool // Enforce the drawing tool's layer rules as well
}

// ValidationError describes one problem found on a shape.
type ValidationError struct {
	Kind    core.ShapeKind
	Layer   core.Layer
	Context string
	Message string
}

// NewShapeValidator creates a validator with default settings.
func NewShapeValidator() *ShapeValidator {
	return &ShapeValidator{}
}

// SetStrictMode enables or disables the layer rule checks.
func (v *ShapeValidator) SetStrictMode(strict bool) {
	v.strictMode = strict
}

// Validate checks every shape and returns the problems found.
func (v *ShapeValidator) Validate(shapes ...*core.Shape) []ValidationError {
	v.errors = nil
	for _, s := range shapes {
		v.checkShape(s)
	}
	return v.errors
}

func (v *ShapeValidator) checkShape(s *core.Shape) {
	if s.Layer < 0 || s.Layer >= core.LayerCount {
		v.addError(s, "layer", "Layer %d does not exist", int(s.Layer))
	}

	switch s.Kind {
	case core.KindSegment:
		v.checkWidth(s)
		if s.Start == s.End {
			v.addError(s, fmt.Sprintf("start=end=%v", s.Start), "Segment has zero length")
		}

	case core.KindCircle:
		v.checkWidth(s)
		if s.Start == s.End {
			v.addError(s, fmt.Sprintf("center=%v", s.Start), "Circle has zero radius")
		}

	case core.KindArc:
		v.checkWidth(s)
		if s.Start == s.End {
			v.addError(s, fmt.Sprintf("center=%v", s.Start), "Arc has zero radius")
		}
		if s.Angle == 0 {
			v.addError(s, "angle=0", "Arc has zero sweep")
		}
		if v.strictMode && s.Layer == core.EdgeCuts {
			v.addError(s, "layer", "Arcs are not drawn on %s", s.Layer)
		}

	case core.KindDimension:
		v.checkWidth(s)
		if s.Dimension == nil {
			v.addError(s, "payload", "Dimension has no measurement")
			return
		}
		if s.Dimension.Origin == s.Dimension.End {
			v.addError(s, fmt.Sprintf("origin=end=%v", s.Dimension.Origin), "Dimension measures nothing")
		}
		if v.strictMode && s.Layer == core.EdgeCuts {
			v.addError(s, "layer", "Dimensions are not drawn on %s", s.Layer)
		}

	case core.KindText:
		if s.Text == nil || strings.TrimSpace(s.Text.Value) == "" {
			v.addError(s, "text", "Text is empty")
		}

	case core.KindZone:
		if s.Zone == nil {
			v.addError(s, "payload", "Zone has no outline")
			return
		}
		v.checkOutline(s)
		if v.strictMode && s.Zone.IsKeepout() && s.NetCode != 0 {
			v.addError(s, fmt.Sprintf("net=%d", s.NetCode), "Keepout areas carry no net")
		}

	case core.KindFootprint:
		if s.Footprint == nil {
			v.addError(s, "payload", "Footprint has no anchor")
		}
	}
}

func (v *ShapeValidator) checkWidth(s *core.Shape) {
	if s.Width <= 0 {
		v.addError(s, fmt.Sprintf("width=%d", s.Width), "Stroke width must be positive")
	}
}

func (v *ShapeValidator) checkOutline(s *core.Shape) {
	contours := s.Zone.Outline.Contours
	if len(contours) == 0 {
		v.addError(s, "contours=0", "Zone outline is empty")
		return
	}
	for i, c := range contours {
		if n := geometry.DistinctCorners(c.Points); n < 3 {
			v.addError(s, fmt.Sprintf("contour=%d", i), "Contour has %d distinct corners, need 3", n)
		} else if geometry.Area2(c.Points) == 0 {
			v.addError(s, fmt.Sprintf("contour=%d", i), "Contour encloses no area")
		}
		if !c.Closed {
			v.addError(s, fmt.Sprintf("contour=%d", i), "Contour is not closed")
		}
	}
}

// addError adds a validation error.
func (v *ShapeValidator) addError(s *core.Shape, context, format string, args ...interface{}) {
	v.errors = append(v.errors, ValidationError{
		Kind:    s.Kind,
		Layer:   s.Layer,
		Context: context,
		Message: fmt.Sprintf(format, args...),
	})
}

// String formats validation errors as a string.
func (e ValidationError) String() string {
	return fmt.Sprintf("%s on %s [%s]: %s", e.Kind, e.Layer, e.Context, e.Message)
}

// Error lets a ValidationError travel as an error value.
func (e ValidationError) Error() string {
	return e.String()
}
