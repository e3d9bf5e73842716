package terminal

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"

	"pcbdraw/board"
	"pcbdraw/canvas"
	"pcbdraw/core"
	"pcbdraw/tool"
)

// dialog is a modal box drawn over the board. handleKey reports when the
// dialog is done and whether it was accepted.
type dialog interface {
	handleKey(ev *tcell.EventKey) (done, ok bool)
	content() (title string, body []string, focus int)
}

// prompt edits one line of text.
type prompt struct {
	title  string
	buffer []rune
}

func newPrompt(title, value string) *prompt {
	return &prompt{title: title, buffer: []rune(value)}
}

func (p *prompt) handleKey(ev *tcell.EventKey) (bool, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true, false
	case tcell.KeyEnter:
		return true, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.buffer) > 0 {
			p.buffer = p.buffer[:len(p.buffer)-1]
		}
	case tcell.KeyCtrlU:
		p.buffer = nil
	case tcell.KeyRune:
		p.buffer = append(p.buffer, ev.Rune())
	}
	return false, false
}

func (p *prompt) content() (string, []string, int) {
	return p.title, []string{string(p.buffer) + "│", "", "enter accept   esc cancel"}, 0
}

func (p *prompt) value() string {
	return string(p.buffer)
}

// menu picks one entry of a list.
type menu struct {
	title    string
	items    []string
	selected int
}

func (m *menu) handleKey(ev *tcell.EventKey) (bool, bool) {
	switch ev.Key() {
	case tcell.KeyEscape:
		return true, false
	case tcell.KeyEnter:
		return true, len(m.items) > 0
	case tcell.KeyUp:
		if m.selected > 0 {
			m.selected--
		}
	case tcell.KeyDown:
		if m.selected < len(m.items)-1 {
			m.selected++
		}
	case tcell.KeyRune:
		// Digits pick directly.
		if n, err := strconv.Atoi(string(ev.Rune())); err == nil && n >= 1 && n <= len(m.items) {
			m.selected = n - 1
			return true, true
		}
	}
	return false, false
}

func (m *menu) content() (string, []string, int) {
	body := make([]string, len(m.items))
	for i, item := range m.items {
		body[i] = fmt.Sprintf("%d. %s", i+1, item)
	}
	return m.title, body, m.selected
}

// pager shows read-only lines until any key is pressed.
type pager struct {
	title string
	lines []string
}

func (p *pager) handleKey(*tcell.EventKey) (bool, bool) {
	return true, true
}

func (p *pager) content() (string, []string, int) {
	return p.title, p.lines, -1
}

// zoneForm edits zone settings. Up and down pick a field, left and right
// change it.
type zoneForm struct {
	kind     tool.ZoneDialogKind
	settings *core.ZoneSettings
	nets     []*board.NetInfo
	field    int
}

type formField struct {
	label  string
	value  string
	change func(dir int)
}

func (f *zoneForm) fields() []formField {
	zs := f.settings
	fields := []formField{
		{"Layer", zs.Layer.String(), func(dir int) { zs.Layer = stepLayer(zs.Layer, dir, f.kind) }},
	}
	if f.kind != tool.ZoneDialogKeepout {
		fields = append(fields,
			formField{"Net", f.netName(), func(dir int) { zs.NetCode = f.stepNet(dir) }},
			formField{"Priority", strconv.Itoa(zs.Priority), func(dir int) { zs.Priority = max(0, zs.Priority+dir) }},
			formField{"Clearance", mm(zs.Clearance), func(dir int) { zs.Clearance = max(0, zs.Clearance+dir*tool.WidthStep) }},
			formField{"Min width", mm(zs.MinThickness), func(dir int) {
				zs.MinThickness = max(tool.WidthStep, zs.MinThickness+dir*tool.WidthStep)
			}},
		)
	} else {
		fields = append(fields,
			formField{"No tracks", yesNo(zs.NoTracks), func(int) { zs.NoTracks = !zs.NoTracks }},
			formField{"No vias", yesNo(zs.NoVias), func(int) { zs.NoVias = !zs.NoVias }},
			formField{"No copper pour", yesNo(zs.NoCopperPour), func(int) { zs.NoCopperPour = !zs.NoCopperPour }},
		)
	}
	return append(fields, formField{"Hatch", zs.HatchStyle.String(), func(dir int) {
		zs.HatchStyle = core.HatchStyle((int(zs.HatchStyle) + dir + 3) % 3)
	}})
}

func (f *zoneForm) handleKey(ev *tcell.EventKey) (bool, bool) {
	fields := f.fields()
	switch ev.Key() {
	case tcell.KeyEscape:
		return true, false
	case tcell.KeyEnter:
		return true, true
	case tcell.KeyUp:
		f.field = (f.field + len(fields) - 1) % len(fields)
	case tcell.KeyDown, tcell.KeyTab:
		f.field = (f.field + 1) % len(fields)
	case tcell.KeyLeft:
		fields[f.field].change(-1)
	case tcell.KeyRight:
		fields[f.field].change(1)
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			fields[f.field].change(1)
		}
	}
	return false, false
}

func (f *zoneForm) content() (string, []string, int) {
	fields := f.fields()
	body := make([]string, len(fields))
	for i, field := range fields {
		body[i] = fmt.Sprintf("%-15s %s", field.label, field.value)
	}
	return fmt.Sprintf("Zone settings (%s)", f.kind), body, f.field
}

func (f *zoneForm) netName() string {
	for _, n := range f.nets {
		if n.Code == f.settings.NetCode {
			if n.Name == "" {
				return "<no net>"
			}
			return n.Name
		}
	}
	return "<no net>"
}

func (f *zoneForm) stepNet(dir int) int {
	if len(f.nets) == 0 {
		return f.settings.NetCode
	}
	i := 0
	for j, n := range f.nets {
		if n.Code == f.settings.NetCode {
			i = j
		}
	}
	i = (i + dir + len(f.nets)) % len(f.nets)
	return f.nets[i].Code
}

// stepLayer cycles through the layers a zone of the given kind may use.
func stepLayer(l core.Layer, dir int, kind tool.ZoneDialogKind) core.Layer {
	for i := 0; i < int(core.LayerCount); i++ {
		l = core.Layer((int(l) + dir + int(core.LayerCount)) % int(core.LayerCount))
		if (kind == tool.ZoneDialogNonCopper) != l.IsCopper() {
			return l
		}
	}
	return l
}

func mm(nm int) string {
	return fmt.Sprintf("%.2f mm", float64(nm)/1e6)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

// runDialog runs a nested event loop until the dialog is done. The drawing
// loop waits meanwhile.
func (a *App) runDialog(d dialog) bool {
	for {
		a.draw()
		a.drawDialog(d)
		a.screen.Show()

		switch ev := a.screen.PollEvent().(type) {
		case nil:
			return false
		case *tcell.EventResize:
			a.screen.Sync()
		case *tcell.EventKey:
			if done, ok := d.handleKey(ev); done {
				return ok
			}
		}
	}
}

func (a *App) drawDialog(d dialog) {
	title, body, focus := d.content()
	w, h := a.screen.Size()

	width := canvas.MeasureText(title) + 4
	for _, line := range body {
		width = max(width, canvas.MeasureText(line)+4)
	}
	width = min(width, w)
	height := min(len(body)+2, h)
	x0, y0 := (w-width)/2, (h-height)/2

	style := tcell.StyleDefault.Background(tcell.ColorNavy).Foreground(tcell.ColorWhite)
	for y := y0; y < y0+height; y++ {
		for x := x0; x < x0+width; x++ {
			a.screen.SetContent(x, y, ' ', nil, style)
		}
	}
	for x := x0; x < x0+width; x++ {
		a.screen.SetContent(x, y0, '─', nil, style)
		a.screen.SetContent(x, y0+height-1, '─', nil, style)
	}
	a.putString(x0+2, y0, canvas.FitText(" "+title+" ", width-4, "…"), style.Bold(true))
	for i, line := range body {
		s := style
		if i == focus {
			s = s.Reverse(true)
		}
		a.putString(x0+2, y0+1+i, canvas.FitText(line, width-4, "…"), s)
	}
}

// EditText asks for the value of a freshly placed text.
func (a *App) EditText(text *core.Shape) bool {
	p := newPrompt("Text", text.Text.Value)
	if !a.runDialog(p) {
		return false
	}
	text.Text.Value = p.value()
	return true
}

// EditZoneSettings shows the zone settings form.
func (a *App) EditZoneSettings(kind tool.ZoneDialogKind, settings *core.ZoneSettings) bool {
	edited := *settings
	f := &zoneForm{kind: kind, settings: &edited, nets: a.board.Nets()}
	if !a.runDialog(f) {
		return false
	}
	*settings = edited
	return true
}

// ShowContextMenu offers the drawing actions. The chosen one starts after
// the current event.
func (a *App) ShowContextMenu(pos core.Point) {
	var actions []tool.Action
	for act := tool.ActionDrawLine; act <= tool.ActionSetAnchor; act++ {
		actions = append(actions, act)
	}
	m := &menu{title: "Draw"}
	for _, act := range actions {
		m.items = append(m.items, act.String())
	}
	if a.runDialog(m) {
		a.pending = append(a.pending, tool.Activate(actions[m.selected]))
	}
}
