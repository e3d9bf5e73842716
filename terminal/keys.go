package terminal

import (
	"fmt"
	"sort"
	"strings"

	"pcbdraw/tool"
)

// AppCommand is a key command handled by the application rather than the
// drawing tool.
type AppCommand int

const (
	AppNone AppCommand = iota
	AppQuit
	AppUndo
	AppRedo
	AppNextLayer
	AppToggle45
	AppPanLeft
	AppPanRight
	AppPanUp
	AppPanDown
	AppHelp
)

// Default key bindings. Upper case letters are app commands, lower case
// start drawing actions.
var actionKeys = map[rune]tool.Action{
	'l': tool.ActionDrawLine,
	'c': tool.ActionDrawCircle,
	'a': tool.ActionDrawArc,
	't': tool.ActionPlaceText,
	'd': tool.ActionDrawDimension,
	'z': tool.ActionDrawZone,
	'k': tool.ActionDrawKeepout,
	'x': tool.ActionDrawZoneCutout,
	's': tool.ActionDrawSimilarZone,
	'i': tool.ActionPlaceDXF,
	'n': tool.ActionSetAnchor,
}

var commandKeys = map[rune]tool.Command{
	'+': tool.CmdIncWidth,
	'=': tool.CmdIncWidth,
	'-': tool.CmdDecWidth,
	'/': tool.CmdArcPosture,
	'r': tool.CmdRotate,
	'f': tool.CmdFlip,
}

var appKeys = map[rune]AppCommand{
	'q': AppQuit,
	'u': AppUndo,
	'U': AppRedo,
	'L': AppNextLayer,
	'4': AppToggle45,
	'H': AppPanLeft,
	'J': AppPanDown,
	'K': AppPanUp,
	'N': AppPanRight,
	'?': AppHelp,
}

// HelpText lists the bindings, one per line.
func HelpText() []string {
	lines := []string{
		"mouse / arrows+enter   click, double click closes",
		"esc                    cancel",
		"right click            context menu",
		"ctrl (held)            invert 45 degree mode",
		"ctrl+r                 redo",
		"ctrl+c                 quit",
	}
	for r, a := range actionKeys {
		lines = append(lines, fmt.Sprintf("%-22c %s", r, strings.ToLower(a.String())))
	}
	for r, c := range commandKeys {
		lines = append(lines, fmt.Sprintf("%-22c %s", r, c))
	}
	for r, c := range appKeys {
		lines = append(lines, fmt.Sprintf("%-22c %s", r, appCommandNames[c]))
	}
	sort.Strings(lines[6:])
	return lines
}

var appCommandNames = map[AppCommand]string{
	AppQuit:      "quit",
	AppUndo:      "undo",
	AppRedo:      "redo",
	AppNextLayer: "next layer",
	AppToggle45:  "toggle 45 degree mode",
	AppPanLeft:   "pan left",
	AppPanRight:  "pan right",
	AppPanUp:     "pan up",
	AppPanDown:   "pan down",
	AppHelp:      "help",
}
