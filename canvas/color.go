package canvas

import (
	"github.com/lucasb-eyer/go-colorful"

	"pcbdraw/core"
)

// Background is the board background color.
var Background = mustHex("#001023")

// Layer colors, close to the stock board editor palette.
var layerHex = map[core.Layer]string{
	core.FCu:      "#c83434",
	core.In1Cu:    "#7f4a26",
	core.In2Cu:    "#c2c200",
	core.BCu:      "#4d7fc4",
	core.BAdhes:   "#0000c8",
	core.FAdhes:   "#845a35",
	core.BPaste:   "#00c2c2",
	core.FPaste:   "#b4a0a0",
	core.BSilkS:   "#e8b2a7",
	core.FSilkS:   "#f2eda1",
	core.BMask:    "#02ffee",
	core.FMask:    "#d864ff",
	core.DwgsUser: "#c2c2c2",
	core.CmtsUser: "#5994dc",
	core.Eco1User: "#b4dbd2",
	core.Eco2User: "#d8c852",
	core.EdgeCuts: "#d0d210",
	core.Margin:   "#ff26e2",
	core.BCrtYd:   "#26e9ff",
	core.FCrtYd:   "#ff26e2",
	core.BFab:     "#585d84",
	core.FFab:     "#afafaf",
}

// LayerColor returns the display color of a layer. Unknown layers are grey.
func LayerColor(l core.Layer) colorful.Color {
	hex, ok := layerHex[l]
	if !ok {
		return mustHex("#808080")
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return mustHex("#808080")
	}
	return c
}

// InkColor returns the color a cell is drawn with. Preview glyphs are
// blended toward white so uncommitted shapes stand out.
func InkColor(ink Ink) colorful.Color {
	c := LayerColor(ink.Layer)
	if ink.Preview {
		return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, 0.45).Clamped()
	}
	return c
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
