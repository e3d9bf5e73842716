package terminal

import (
	"pcbdraw/board"
	"pcbdraw/core"
)

// selection holds the items picked while no tool runs.
type selection struct {
	ids []core.ItemID
}

func (s *selection) Selected() []core.ItemID {
	return append([]core.ItemID(nil), s.ids...)
}

func (s *selection) Clear() {
	s.ids = nil
}

// pickZone returns the smallest zone whose outline encloses p.
func pickZone(b *board.Board, p core.Point) (*core.Shape, bool) {
	var best *core.Shape
	var bestArea int
	for _, z := range b.Zones() {
		if len(z.Zone.Outline.Contours) == 0 || !insideContour(z.Zone.Outline.Contours[0].Points, p) {
			continue
		}
		bounds := z.Zone.Outline.Bounds()
		area := bounds.Width() * bounds.Height()
		if best == nil || area < bestArea {
			best, bestArea = z, area
		}
	}
	return best, best != nil
}

// insideContour is the even-odd rule.
func insideContour(points []core.Point, p core.Point) bool {
	inside := false
	for i, j := 0, len(points)-1; i < len(points); j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := float64(b.X-a.X)*float64(p.Y-a.Y)/float64(b.Y-a.Y) + float64(a.X)
			if float64(p.X) < x {
				inside = !inside
			}
		}
	}
	return inside
}
