package tool

import (
	"pcbdraw/core"
	"pcbdraw/geometry"
)

// zoneGesture collects the corners of a zone outline. Clicks add corners,
// a double click or a click back on the first corner closes the outline.
type zoneGesture struct {
	t       *DrawingTool
	mode    ZoneMode
	keepout bool
	source  *core.Shape // board zone for cutouts and similar zones

	zone    *core.Shape // nil until the first corner
	corners []core.Point
	edges   []*core.Shape

	// helper runs from the last corner to the cursor, or to the bend in 45
	// degree mode; helper45 covers the rest of the way.
	helper      *core.Shape
	helper45    *core.Shape
	direction45 bool
}

func (g *zoneGesture) enter() {
	if g.source != nil {
		g.t.preview.AddBorrowed(g.source)
	}
}

func (g *zoneGesture) started() bool {
	return len(g.corners) > 0
}

func (g *zoneGesture) handle(ev Event) bool {
	t := g.t

	if g.started() {
		if limit := t.limit45(ev); limit != g.direction45 {
			g.direction45 = limit
			if limit {
				t.preview.Add(g.helper45)
			} else {
				t.preview.Remove(g.helper45)
			}
			g.follow(t.cursor)
			t.update()
		}
	}

	switch ev.Kind {
	case EventCancel:
		if !g.started() {
			return false
		}
		g.abort()
		t.capture(false)
		t.update()

	case EventMotion:
		if g.started() {
			g.follow(t.cursor)
			t.update()
		}

	case EventClick, EventDoubleClick:
		switch {
		case ev.Kind == EventDoubleClick || (g.started() && t.cursor == g.corners[0]):
			g.close()
		case !g.started():
			g.first(ev)
		default:
			g.addCorner(t.cursor)
		}
		t.update()
	}
	return true
}

// first creates the zone at the first corner. A fresh zone asks for its
// settings; aborting the dialog leaves the tool waiting for a first click.
func (g *zoneGesture) first(ev Event) {
	t := g.t

	var zs core.ZoneSettings
	if g.source != nil {
		zs = core.ZoneSettingsOf(g.source)
	} else {
		zs = t.board.Settings().ZoneDefaults()
		zs.Layer = t.activeLayer
		zs.NetCode = t.board.HighlightNet()
		zs.Keepout = g.keepout

		kind := ZoneDialogNonCopper
		switch {
		case g.keepout:
			kind = ZoneDialogKeepout
		case zs.Layer.IsCopper():
			kind = ZoneDialogCopper
		}
		if t.collab.ZoneEditor != nil && !t.collab.ZoneEditor.EditZoneSettings(kind, &zs) {
			t.logger.Printf("%s: zone settings aborted", t.action)
			return
		}
	}

	g.zone = core.NewZoneShape(zs)
	if !zs.Keepout {
		t.board.SetNet(g.zone, zs.NetCode)
	}

	p := t.cursor
	g.corners = []core.Point{p}
	g.direction45 = t.limit45(ev)
	g.helper = core.NewSegment(p, p, g.zone.Layer, 1)
	g.helper45 = core.NewSegment(p, p, g.zone.Layer, 1)
	t.preview.Add(g.helper)
	if g.direction45 {
		t.preview.Add(g.helper45)
	}
	t.capture(true)
}

// routeTo returns the corners leading from the last corner to p.
func (g *zoneGesture) routeTo(p core.Point) []core.Point {
	last := g.corners[len(g.corners)-1]
	if p == last {
		return nil
	}
	if !g.direction45 {
		return []core.Point{p}
	}
	return geometry.Route45(last, p)[1:]
}

func (g *zoneGesture) addCorner(p core.Point) {
	t := g.t
	for _, c := range g.routeTo(p) {
		edge := core.NewSegment(g.corners[len(g.corners)-1], c, g.zone.Layer, 1)
		g.edges = append(g.edges, edge)
		t.preview.Add(edge)
		g.corners = append(g.corners, c)
	}
	g.follow(p)
}

// follow stretches the helper lines from the last corner to p.
func (g *zoneGesture) follow(p core.Point) {
	last := g.corners[len(g.corners)-1]
	g.helper.Start = last
	g.helper.End = p
	g.helper45.Start, g.helper45.End = p, p
	if !g.direction45 {
		return
	}
	if bend, ok := geometry.Route45(last, p).Bend(); ok {
		g.helper.End = bend
		g.helper45.Start = bend
	}
}

// close finishes the outline with the way to the cursor, the first corner
// excluded, and applies it. Too few distinct corners or an outline with no
// area discard the zone.
func (g *zoneGesture) close() {
	t := g.t
	if g.started() {
		origin := g.corners[0]
		for _, c := range g.routeTo(t.cursor) {
			if c != origin {
				g.corners = append(g.corners, c)
			}
		}
		contour := geometry.RemoveNullSegments(core.Contour{Points: g.corners, Closed: true})
		switch n := geometry.DistinctCorners(contour.Points); {
		case n < 3:
			t.logger.Printf("%s: zone discarded, %d distinct corners", t.action, n)
		case geometry.Area2(contour.Points) == 0:
			t.logger.Printf("%s: zone discarded, corners are collinear", t.action)
		default:
			g.apply(contour)
		}
	}
	g.abort()
	t.capture(false)
}

func (g *zoneGesture) apply(contour core.Contour) {
	t := g.t
	filler := t.collab.Filler

	if g.mode == ZoneCutout {
		c := t.board.NewCommit()
		staged, err := c.Modify(g.source.ID)
		if err != nil {
			t.lastErr = err
			t.logger.Printf("%s: %v", t.action, err)
			return
		}
		staged.Zone.Outline.AddHole(contour.Points)
		t.board.OnAreaPolygonModified(staged)
		if staged.Zone.Filled && filler != nil {
			filler.Fill(staged)
		}
		if t.push(c, LabelCutout) {
			t.preview.Remove(g.source)
			g.source = staged
			t.preview.AddBorrowed(staged)
		}
		return
	}

	z := g.zone
	z.Zone.Outline = core.Outline{Contours: []core.Contour{contour}}
	z.Zone.HatchLines = geometry.Hatch(z.Zone.Outline, z.Zone.Settings.HatchStyle, z.Zone.Settings.HatchPitch)
	if !z.Zone.IsKeepout() && filler != nil {
		filler.Fill(z)
	}
	t.commitShapes(LabelZone, z)
}

// abort drops the outline in progress. The borrowed source zone stays shown.
func (g *zoneGesture) abort() {
	t := g.t
	for _, e := range g.edges {
		t.preview.Remove(e)
	}
	if g.helper != nil {
		t.preview.Remove(g.helper)
		t.preview.Remove(g.helper45)
	}
	g.zone = nil
	g.corners = nil
	g.edges = nil
	g.helper, g.helper45 = nil, nil
}
