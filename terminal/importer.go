package terminal

import (
	"pcbdraw/board"
	"pcbdraw/core"
)

// Drawing is a ready-made drawing offered by the import menu in place of a
// DXF file. Build returns fresh items around the origin.
type Drawing struct {
	Name  string
	Build func(ds board.DesignSettings) []*core.Shape
}

// StockDrawings are the drawings the import menu lists.
var StockDrawings = []Drawing{
	{Name: "M3 mounting hole", Build: mountingHole},
	{Name: "Fiducial", Build: fiducial},
	{Name: "Board outline 50x30 mm", Build: boardOutline},
}

func nm(x, y float64) core.Point {
	return core.Point{X: int(x * 1e6), Y: int(y * 1e6)}
}

func mountingHole(ds board.DesignSettings) []*core.Shape {
	w := ds.DrawSegmentWidth
	label := core.NewTextShape(nm(0, -4.5), core.DwgsUser, ds.PcbTextSize, ds.PcbTextWidth)
	label.Text.Value = "M3"
	return []*core.Shape{
		core.NewCircle(nm(0, 0), nm(1.6, 0), core.DwgsUser, w),
		core.NewCircle(nm(0, 0), nm(3.2, 0), core.DwgsUser, w),
		core.NewSegment(nm(-4, 0), nm(4, 0), core.DwgsUser, w),
		core.NewSegment(nm(0, -4), nm(0, 4), core.DwgsUser, w),
		label,
	}
}

func fiducial(ds board.DesignSettings) []*core.Shape {
	return []*core.Shape{
		core.NewCircle(nm(0, 0), nm(0.5, 0), core.FSilkS, ds.DrawSegmentWidth),
		core.NewCircle(nm(0, 0), nm(1.5, 0), core.FSilkS, ds.DrawSegmentWidth),
	}
}

func boardOutline(ds board.DesignSettings) []*core.Shape {
	corners := []core.Point{nm(0, 0), nm(50, 0), nm(50, 30), nm(0, 30)}
	items := make([]*core.Shape, len(corners))
	for i, p := range corners {
		items[i] = core.NewSegment(p, corners[(i+1)%len(corners)], core.EdgeCuts, ds.EdgeSegmentWidth)
	}
	return items
}

// ImportDXF lets the user pick a stock drawing.
func (a *App) ImportDXF() ([]*core.Shape, bool) {
	m := &menu{title: "Import drawing"}
	for _, d := range StockDrawings {
		m.items = append(m.items, d.Name)
	}
	if !a.runDialog(m) {
		return nil, false
	}
	return StockDrawings[m.selected].Build(*a.board.Settings()), true
}
