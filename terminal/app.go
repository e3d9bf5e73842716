// Package terminal is the tcell front end of the drawing tool: it shows the
// board as text, turns mouse and keys into drawing events and hosts the
// modal dialogs the tool calls out to.
package terminal

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"pcbdraw/board"
	"pcbdraw/canvas"
	"pcbdraw/config"
	"pcbdraw/core"
	"pcbdraw/tool"
	"pcbdraw/view"
)

// Options configure an App.
type Options struct {
	ConfigPath string      // where toggled preferences are saved, empty to skip
	Footprint  core.ItemID // footprint being edited, NoItem for the board editor
}

// App runs the drawing tool on a terminal screen. It is the tool's View,
// Controls and dialog provider.
type App struct {
	screen tcell.Screen
	board  *board.Board
	tool   *tool.DrawingTool
	cfg    config.Config
	opts   Options

	view   canvas.Viewport
	input  *Translator
	sel    *selection
	groups map[*view.Group]bool

	cursorShown bool
	snapping    bool
	autoPan     bool
	captured    bool

	message  string
	shownErr error
	pending  []tool.Event
	quit     bool
	logger   *log.Logger
}

// New creates an app on an initialised screen. The view starts centered on
// the board origin.
func New(screen tcell.Screen, b *board.Board, cfg config.Config, opts Options) *App {
	a := &App{
		screen: screen,
		board:  b,
		cfg:    cfg,
		opts:   opts,
		view:   canvas.Viewport{CellWidth: cfg.Terminal.CellWidth, CellHeight: cfg.Terminal.CellHeight},
		sel:    &selection{},
		groups: make(map[*view.Group]bool),
		logger: log.New(io.Discard, "terminal: ", 0),
	}
	a.input = NewTranslator(&a.view)

	settings := cfg.ToolSettings()
	settings.Footprint = opts.Footprint
	a.tool = tool.New(b, a, a, tool.Collaborators{
		ZoneEditor: a,
		TextEditor: a,
		Importer:   a,
		Selection:  a.sel,
		Filler:     board.NewFiller(b),
		Menu:       a,
	}, settings)
	a.tool.SetActiveLayer(cfg.ActiveLayer())

	w, h := a.canvasSize()
	a.view.CenterOn(core.Point{}, w, h)
	a.input.SetCursor(a.view.ToCell(core.Point{}))

	b.On(board.EventCommitted, func(data interface{}) {
		if info, ok := data.(board.CommitInfo); ok {
			a.message = fmt.Sprintf("%s (%d items)", info.Label, len(info.Items))
		}
	})
	b.On(board.EventUndo, func(data interface{}) { a.message = fmt.Sprintf("Undo: %v", data) })
	b.On(board.EventRedo, func(data interface{}) { a.message = fmt.Sprintf("Redo: %v", data) })
	return a
}

// SetLogger sets the logger for app events.
func (a *App) SetLogger(l *log.Logger) {
	a.logger = l
}

// Tool returns the drawing tool the app drives.
func (a *App) Tool() *tool.DrawingTool {
	return a.tool
}

// Message returns the status message.
func (a *App) Message() string {
	return a.message
}

// Run polls the screen until the user quits. The caller owns the screen
// and finalises it.
func (a *App) Run() {
	a.screen.EnableMouse(tcell.MouseMotionEvents)
	for {
		a.draw()
		a.screen.Show()

		ev := a.screen.PollEvent()
		if ev == nil || !a.HandleEvent(ev) {
			break
		}
	}
	a.tool.Stop()
	a.logger.Printf("quit")
}

// HandleEvent processes one terminal event. It returns false once the user
// quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		return !a.quit
	case *tcell.EventKey, *tcell.EventMouse:
	default:
		return !a.quit
	}

	in := a.input.Translate(ev)
	for _, e := range in.Events {
		a.dispatch(e)
	}
	a.command(in.App)
	for len(a.pending) > 0 {
		e := a.pending[0]
		a.pending = a.pending[1:]
		a.dispatch(e)
	}
	return !a.quit
}

func (a *App) dispatch(e tool.Event) {
	if e.IsPointer() {
		e = a.constrain(e)
	}
	if !a.tool.Active() && e.Kind != tool.EventActivate {
		a.idle(e)
		return
	}

	a.tool.HandleEvent(e)
	if err := a.tool.LastError(); err != nil && err != a.shownErr {
		a.shownErr = err
		a.message = "Error: " + err.Error()
		a.logger.Printf("%v", err)
	}
}

// idle handles pointer events while no tool runs: clicks select zones.
func (a *App) idle(e tool.Event) {
	switch e.Kind {
	case tool.EventClick:
		a.sel.Clear()
		if z, ok := pickZone(a.board, e.Pos); ok {
			a.sel.ids = []core.ItemID{z.ID}
			a.message = fmt.Sprintf("Selected zone on %s", z.Layer)
		}
	case tool.EventRightClick:
		a.ShowContextMenu(e.Pos)
	case tool.EventCancel:
		a.sel.Clear()
	}
}

// constrain applies auto-pan and cursor capture to a pointer event.
func (a *App) constrain(e tool.Event) tool.Event {
	c := a.input.Cursor()
	w, h := a.canvasSize()
	if a.autoPan {
		dx, dy := 0, 0
		switch {
		case c.X <= 0:
			dx = -1
		case c.X >= w-1:
			dx = 1
		}
		switch {
		case c.Y <= 0:
			dy = -1
		case c.Y >= h-1:
			dy = 1
		}
		if dx != 0 || dy != 0 {
			a.view.Pan(dx, dy)
		}
	}
	if a.autoPan || a.captured {
		c.X = min(max(c.X, 0), w-1)
		c.Y = min(max(c.Y, 0), h-1)
		a.input.SetCursor(c)
	}
	e.Pos = a.view.ToBoard(c)
	return e
}

func (a *App) command(c AppCommand) {
	switch c {
	case AppQuit:
		a.tool.Stop()
		a.quit = true
	case AppUndo, AppRedo:
		if a.tool.Active() {
			a.message = "Finish the current tool first"
			return
		}
		if c == AppUndo && !a.board.Undo() {
			a.message = "Nothing to undo"
		}
		if c == AppRedo && !a.board.Redo() {
			a.message = "Nothing to redo"
		}
	case AppNextLayer:
		next := a.tool.ActiveLayer().Next()
		if a.tool.Active() {
			a.dispatch(tool.LayerChanged(next))
		} else {
			a.tool.SetActiveLayer(next)
		}
	case AppToggle45:
		a.toggle45()
	case AppPanLeft:
		a.pan(-4, 0)
	case AppPanRight:
		a.pan(4, 0)
	case AppPanUp:
		a.pan(0, -2)
	case AppPanDown:
		a.pan(0, 2)
	case AppHelp:
		a.runDialog(&pager{title: "Keys", lines: HelpText()})
	}
}

func (a *App) pan(dx, dy int) {
	a.view.Pan(dx, dy)
	if a.tool.Active() {
		a.dispatch(tool.Motion(a.view.ToBoard(a.input.Cursor())))
	}
}

// toggle45 flips the persistent 45 degree mode and saves it.
func (a *App) toggle45() {
	on := !a.tool.Settings().Segments45Only
	a.tool.SetSegments45Only(on)
	a.cfg.Drawing.Segments45Only = on
	a.message = "45 degree mode off"
	if on {
		a.message = "45 degree mode on"
	}
	if a.opts.ConfigPath == "" {
		return
	}
	if err := config.Save(a.opts.ConfigPath, a.cfg); err != nil {
		a.message = "Error: " + err.Error()
		a.logger.Printf("%v", err)
	}
}

// View

func (a *App) Add(g *view.Group)    { a.groups[g] = true }
func (a *App) Update(g *view.Group) {}
func (a *App) Remove(g *view.Group) { delete(a.groups, g) }

// Controls

func (a *App) ShowCursor(show bool)  { a.cursorShown = show }
func (a *App) SetSnapping(on bool)   { a.snapping = on }
func (a *App) SetAutoPan(on bool)    { a.autoPan = on }
func (a *App) CaptureCursor(on bool) { a.captured = on }

func (a *App) canvasSize() (int, int) {
	w, h := a.screen.Size()
	return max(w, 1), max(h-1, 1)
}

func (a *App) draw() {
	bg := rgb(canvas.Background)
	a.screen.Fill(' ', tcell.StyleDefault.Background(bg))

	w, h := a.canvasSize()
	c, err := canvas.NewMatrixCanvas(w, h)
	if err != nil {
		return
	}
	var highlight []*core.Shape
	for _, id := range a.sel.Selected() {
		if s, ok := a.board.Item(id); ok {
			highlight = append(highlight, s)
		}
	}
	for g := range a.groups {
		highlight = append(highlight, g.Items()...)
	}
	canvas.NewRenderer(c, a.view).DrawShapes(a.board.Items(), highlight)

	for y, row := range c.Matrix() {
		for x, r := range row {
			if r == ' ' || r == '\x00' {
				continue
			}
			fg := rgb(canvas.InkColor(c.InkAt(canvas.Cell{X: x, Y: y})))
			a.screen.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(fg).Background(bg))
		}
	}

	a.drawStatus()
	if cur := a.input.Cursor(); a.cursorShown || !a.tool.Active() {
		a.screen.ShowCursor(cur.X, cur.Y)
	} else {
		a.screen.HideCursor()
	}
}

func (a *App) drawStatus() {
	w, h := a.screen.Size()
	p := a.view.ToBoard(a.input.Cursor())
	current, total := a.board.History().Stats()

	parts := []string{
		fmt.Sprintf("Tool: %s", a.tool.Action()),
		fmt.Sprintf("Layer: %s", a.tool.ActiveLayer()),
		fmt.Sprintf("Width: %s", mm(a.tool.LineWidth())),
		fmt.Sprintf("X %.2f Y %.2f", float64(p.X)/1e6, float64(p.Y)/1e6),
	}
	if a.tool.Settings().Segments45Only {
		parts = append(parts, "45°")
	}
	if a.snapping {
		parts = append(parts, "snap")
	}
	if total > 1 {
		parts = append(parts, fmt.Sprintf("History: %d/%d", current, total))
	}
	if a.message != "" {
		parts = append(parts, a.message)
	}
	line := "[ pcbdraw ] " + strings.Join(parts, " | ")

	style := tcell.StyleDefault.Reverse(true)
	for x := 0; x < w; x++ {
		a.screen.SetContent(x, h-1, ' ', nil, style)
	}
	a.putString(0, h-1, canvas.FitText(line, w, "…"), style)
}

func (a *App) putString(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		a.screen.SetContent(x, y, r, nil, style)
		x += max(canvas.MeasureText(string(r)), 1)
	}
}

func rgb(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
