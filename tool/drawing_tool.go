// Package tool implements the interactive drawing loops of the board editor.
// Every loop is an explicit state machine fed one Event at a time; partial
// geometry lives in a preview group and reaches the board only through a
// pushed commit.
package tool

import (
	"errors"
	"fmt"
	"io"
	"log"

	"pcbdraw/board"
	"pcbdraw/core"
	"pcbdraw/view"
)

// WidthStep is the stroke width change per width command.
const WidthStep = 100000

// DefaultRotationAngle is the rotate command step in tenths of a degree.
const DefaultRotationAngle = 900

var (
	ErrNoModel             = errors.New("no board to draw on")
	ErrNoSourceZone        = errors.New("no zone selected")
	ErrAmbiguousSourceZone = errors.New("more than one item selected")
	ErrNotAZone            = errors.New("selected item is not a zone")
	ErrNoFootprint         = errors.New("no footprint is being edited")
	ErrNothingToPlace      = errors.New("import produced nothing to place")
)

// Settings are the user preferences the drawing loops read.
type Settings struct {
	Segments45Only bool        // 45 degree mode without holding Ctrl
	RotationAngle  float64     // rotate command step, tenths of a degree
	Footprint      core.ItemID // footprint being edited, NoItem on a board
}

// EditingFootprint reports whether drawings go into a footprint.
func (s Settings) EditingFootprint() bool {
	return s.Footprint.Valid()
}

// gesture is one running drawing loop.
type gesture interface {
	// handle consumes an event and returns false once the loop is over.
	handle(ev Event) bool
	// abort discards every uncommitted shape.
	abort()
}

// DrawingTool dispatches events to the active drawing loop.
type DrawingTool struct {
	board    *board.Board
	view     view.View
	controls view.Controls
	collab   Collaborators
	settings Settings

	activeLayer core.Layer
	lineWidth   int
	cursor      core.Point

	action  Action
	gesture gesture
	preview *view.Group

	lastErr error
	logger  *log.Logger
}

// New creates an idle drawing tool.
func New(b *board.Board, v view.View, c view.Controls, collab Collaborators, settings Settings) *DrawingTool {
	if settings.RotationAngle == 0 {
		settings.RotationAngle = DefaultRotationAngle
	}
	return &DrawingTool{
		board:       b,
		view:        v,
		controls:    c,
		collab:      collab,
		settings:    settings,
		activeLayer: core.FSilkS,
		preview:     view.NewGroup(),
		logger:      log.New(io.Discard, "drawing: ", 0),
	}
}

// SetLogger replaces the discard logger.
func (t *DrawingTool) SetLogger(l *log.Logger) {
	t.logger = l
}

// Settings returns the current preferences.
func (t *DrawingTool) Settings() Settings {
	return t.settings
}

// SetSegments45Only changes the persistent 45 degree preference.
func (t *DrawingTool) SetSegments45Only(on bool) {
	t.settings.Segments45Only = on
}

// ActiveLayer returns the layer new items go to.
func (t *DrawingTool) ActiveLayer() core.Layer {
	return t.activeLayer
}

// SetActiveLayer changes the active layer. Running loops pick the change up
// through a CmdLayerChanged event.
func (t *DrawingTool) SetActiveLayer(l core.Layer) {
	t.activeLayer = l
}

// Action returns the running drawing action.
func (t *DrawingTool) Action() Action {
	return t.action
}

// Active reports whether a drawing loop runs.
func (t *DrawingTool) Active() bool {
	return t.gesture != nil
}

// Preview returns the group of shapes being drawn.
func (t *DrawingTool) Preview() *view.Group {
	return t.preview
}

// LineWidth returns the running stroke width.
func (t *DrawingTool) LineWidth() int {
	return t.lineWidth
}

// Cursor returns the last known cursor position.
func (t *DrawingTool) Cursor() core.Point {
	return t.cursor
}

// LastError returns the error that ended the last failed step, if any.
func (t *DrawingTool) LastError() error {
	return t.lastErr
}

// Start runs a drawing action, cancelling the one in progress. A failed
// precondition leaves the tool idle and is returned.
func (t *DrawingTool) Start(a Action) error {
	t.Stop()
	if a == ActionNone {
		return nil
	}
	t.lastErr = nil
	if t.board == nil {
		return t.fail(a, ErrNoModel)
	}

	g, err := t.newGesture(a)
	if err != nil {
		return t.fail(a, err)
	}

	t.action = a
	t.gesture = g
	t.preview = view.NewGroup()
	if t.collab.Selection != nil {
		t.collab.Selection.Clear()
	}
	t.view.Add(t.preview)
	t.controls.ShowCursor(true)
	t.controls.SetSnapping(true)
	if e, ok := g.(interface{ enter() }); ok {
		e.enter()
	}
	t.update()
	t.logger.Printf("%s started", a)
	return nil
}

func (t *DrawingTool) newGesture(a Action) (gesture, error) {
	switch a {
	case ActionDrawLine:
		t.lineWidth = t.segmentWidth(t.drawingLayer())
		return &segmentGesture{t: t, kind: core.KindSegment}, nil
	case ActionDrawCircle:
		t.lineWidth = t.segmentWidth(t.drawingLayer())
		return &segmentGesture{t: t, kind: core.KindCircle}, nil
	case ActionDrawArc:
		t.lineWidth = t.segmentWidth(t.drawingLayer())
		return &arcGesture{t: t, clockwise: true}, nil
	case ActionDrawDimension:
		t.lineWidth = t.segmentWidth(t.drawingLayer())
		return &dimensionGesture{t: t}, nil
	case ActionPlaceText:
		return &textGesture{t: t}, nil
	case ActionDrawZone:
		return &zoneGesture{t: t, mode: ZoneAdd}, nil
	case ActionDrawKeepout:
		return &zoneGesture{t: t, mode: ZoneAdd, keepout: true}, nil
	case ActionDrawZoneCutout, ActionDrawSimilarZone:
		src, err := t.sourceZone()
		if err != nil {
			return nil, err
		}
		mode := ZoneCutout
		if a == ActionDrawSimilarZone {
			mode = ZoneSimilar
		}
		return &zoneGesture{t: t, mode: mode, source: src}, nil
	case ActionPlaceDXF:
		return newDXFGesture(t)
	case ActionSetAnchor:
		return newAnchorGesture(t)
	}
	return nil, fmt.Errorf("unknown action %d", int(a))
}

// Stop cancels the running loop without committing anything.
func (t *DrawingTool) Stop() {
	if t.gesture == nil {
		return
	}
	t.gesture.abort()
	t.logger.Printf("%s cancelled", t.action)
	t.finish()
}

// HandleEvent feeds one event to the running loop. It returns whether a
// loop is still running afterwards.
func (t *DrawingTool) HandleEvent(ev Event) bool {
	if ev.IsPointer() {
		t.cursor = ev.Pos
	}

	if ev.Kind == EventActivate {
		// Errors are kept in LastError and logged.
		_ = t.Start(ev.Action)
		return t.Active()
	}
	if t.gesture == nil {
		return false
	}

	switch {
	case ev.Kind == EventRightClick:
		if t.collab.Menu != nil {
			t.collab.Menu.ShowContextMenu(ev.Pos)
		}
		return true
	case ev.Kind == EventCommand && ev.Command == CmdLayerChanged:
		t.activeLayer = ev.Layer
	}

	if !t.gesture.handle(ev) {
		t.logger.Printf("%s finished", t.action)
		t.finish()
	}
	return t.Active()
}

// Run pulls events from src until it reports deactivation, then cancels
// whatever is in progress.
func (t *DrawingTool) Run(src EventSource) {
	for {
		ev, ok := src.WaitNextEvent()
		if !ok {
			t.Stop()
			return
		}
		t.HandleEvent(ev)
	}
}

func (t *DrawingTool) finish() {
	t.preview.Clear()
	t.view.Remove(t.preview)
	t.controls.ShowCursor(false)
	t.controls.SetSnapping(false)
	t.capture(false)
	t.action = ActionNone
	t.gesture = nil
}

func (t *DrawingTool) fail(a Action, err error) error {
	t.lastErr = fmt.Errorf("%s: %w", a, err)
	t.logger.Printf("%v", t.lastErr)
	return t.lastErr
}

func (t *DrawingTool) update() {
	t.view.Update(t.preview)
}

func (t *DrawingTool) capture(on bool) {
	t.controls.SetAutoPan(on)
	t.controls.CaptureCursor(on)
}

// limit45 is the effective 45 degree flag for one event: the persistent
// setting inverted while Ctrl is held.
func (t *DrawingTool) limit45(ev Event) bool {
	return t.settings.Segments45Only != ev.Mod.Has(ModCtrl)
}

// drawingLayer returns the layer graphics are drawn on. Copper layers are
// not drawn on; the active layer moves to the matching graphic layer.
func (t *DrawingTool) drawingLayer() core.Layer {
	layer := t.activeLayer
	if layer.IsCopper() {
		switch layer {
		case core.FCu:
			layer = core.FSilkS
		case core.BCu:
			layer = core.BSilkS
		default:
			layer = core.DwgsUser
		}
		t.activeLayer = layer
	}
	return layer
}

// segmentWidth returns the default stroke width for a layer.
func (t *DrawingTool) segmentWidth(layer core.Layer) int {
	ds := t.board.Settings()
	switch {
	case layer == core.EdgeCuts:
		return ds.EdgeSegmentWidth
	case t.settings.EditingFootprint():
		return ds.ModuleSegmentWidth
	}
	return ds.DrawSegmentWidth
}

// changeWidth applies a width command to the running width and reports
// whether it changed. Decrements stop at one step.
func (t *DrawingTool) changeWidth(c Command) bool {
	switch c {
	case CmdIncWidth:
		t.lineWidth += WidthStep
		return true
	case CmdDecWidth:
		if t.lineWidth > WidthStep {
			t.lineWidth = max(t.lineWidth-WidthStep, WidthStep)
			return true
		}
	}
	return false
}

// adopt makes a new shape a child of the edited footprint.
func (t *DrawingTool) adopt(s *core.Shape) {
	if t.settings.EditingFootprint() {
		s.Parent = t.settings.Footprint
	}
}

// commitShapes adds shapes to the board in one transaction.
func (t *DrawingTool) commitShapes(label string, shapes ...*core.Shape) bool {
	c := t.board.NewCommit()
	for _, s := range shapes {
		c.Add(s)
	}
	return t.push(c, label)
}

func (t *DrawingTool) push(c *board.Commit, label string) bool {
	n := len(c.Staged())
	if err := c.Push(label); err != nil {
		t.lastErr = err
		t.logger.Printf("%s: commit failed: %v", t.action, err)
		return false
	}
	t.logger.Printf("%s: %s (%d items)", t.action, label, n)
	return true
}

// sourceZone returns the single selected zone cutouts and similar zones
// start from.
func (t *DrawingTool) sourceZone() (*core.Shape, error) {
	if t.collab.Selection == nil {
		return nil, ErrNoSourceZone
	}
	ids := t.collab.Selection.Selected()
	switch {
	case len(ids) == 0:
		return nil, ErrNoSourceZone
	case len(ids) > 1:
		return nil, ErrAmbiguousSourceZone
	}
	item, ok := t.board.Item(ids[0])
	if !ok || item.Kind != core.KindZone {
		return nil, ErrNotAZone
	}
	return item, nil
}
