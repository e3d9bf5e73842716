package tool

import "pcbdraw/core"

// anchorGesture moves the reference anchor of the edited footprint. The
// footprint keeps its position; its children shift the other way.
type anchorGesture struct {
	t         *DrawingTool
	footprint core.ItemID
}

func newAnchorGesture(t *DrawingTool) (*anchorGesture, error) {
	id := t.settings.Footprint
	if !id.Valid() {
		return nil, ErrNoFootprint
	}
	fp, ok := t.board.Item(id)
	if !ok || fp.Kind != core.KindFootprint {
		return nil, ErrNoFootprint
	}
	return &anchorGesture{t: t, footprint: id}, nil
}

func (g *anchorGesture) enter() {
	g.t.controls.SetAutoPan(true)
	g.t.controls.CaptureCursor(false)
}

func (g *anchorGesture) handle(ev Event) bool {
	t := g.t

	switch ev.Kind {
	case EventCancel:
		return false

	case EventClick:
		c := t.board.NewCommit()
		fp, err := c.Modify(g.footprint)
		if err != nil {
			t.lastErr = err
			t.logger.Printf("%s: %v", t.action, err)
			return false
		}
		shift := fp.Footprint.Position.Sub(t.cursor)
		for _, child := range t.board.Children(g.footprint) {
			staged, err := c.Modify(child.ID)
			if err != nil {
				t.lastErr = err
				return false
			}
			staged.Move(shift)
		}
		t.push(c, LabelAnchor)
		return false
	}
	return true
}

func (g *anchorGesture) abort() {}
