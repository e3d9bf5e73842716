package core

// Text is a text annotation. Dimensions carry one as their label.
type Text struct {
	Value     string
	Pos       Point
	Size      Size
	Thickness int
	Angle     float64 // tenths of a degree
	Mirrored  bool
}

// ClampPenSize limits a stroke width to what the glyph size can carry.
// Bold text may use a quarter of the smaller glyph dimension.
func ClampPenSize(width int, size Size) int {
	limit := min(size.W, size.H) / 4
	if width > limit {
		return limit
	}
	return width
}
