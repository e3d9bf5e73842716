package board

import "pcbdraw/core"

// Filler computes zone fills. The fill of a zone is its outline with the
// holes kept as separate contours; keepout areas are never filled.
type Filler struct {
	board *Board
}

// NewFiller returns a filler reporting to b. A nil board is allowed.
func NewFiller(b *Board) *Filler {
	return &Filler{board: b}
}

// Fill refreshes the fill of each zone. EventZoneModified is raised only
// for zones the board already holds; staged zones report on Push.
func (f *Filler) Fill(zones ...*core.Shape) {
	for _, s := range zones {
		if s.Zone == nil || s.Zone.IsKeepout() {
			continue
		}
		z := s.Zone
		z.FilledPolys = make([]core.Contour, 0, len(z.Outline.Contours))
		for _, c := range z.Outline.Contours {
			z.FilledPolys = append(z.FilledPolys, c.Clone())
		}
		z.Filled = len(z.FilledPolys) > 0
		z.NeedsRefill = false
		if f.board != nil && f.board.owns(s) {
			f.board.emit(EventZoneModified, s)
		}
	}
}
