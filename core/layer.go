package core

import "fmt"

// Layer identifies a board layer.
type Layer int

const (
	FCu Layer = iota
	In1Cu
	In2Cu
	BCu
	BAdhes
	FAdhes
	BPaste
	FPaste
	BSilkS
	FSilkS
	BMask
	FMask
	DwgsUser
	CmtsUser
	Eco1User
	Eco2User
	EdgeCuts
	Margin
	BCrtYd
	FCrtYd
	BFab
	FFab

	LayerCount
)

var layerNames = [LayerCount]string{
	FCu:      "F.Cu",
	In1Cu:    "In1.Cu",
	In2Cu:    "In2.Cu",
	BCu:      "B.Cu",
	BAdhes:   "B.Adhes",
	FAdhes:   "F.Adhes",
	BPaste:   "B.Paste",
	FPaste:   "F.Paste",
	BSilkS:   "B.SilkS",
	FSilkS:   "F.SilkS",
	BMask:    "B.Mask",
	FMask:    "F.Mask",
	DwgsUser: "Dwgs.User",
	CmtsUser: "Cmts.User",
	Eco1User: "Eco1.User",
	Eco2User: "Eco2.User",
	EdgeCuts: "Edge.Cuts",
	Margin:   "Margin",
	BCrtYd:   "B.CrtYd",
	FCrtYd:   "F.CrtYd",
	BFab:     "B.Fab",
	FFab:     "F.Fab",
}

// String returns the board layer name.
func (l Layer) String() string {
	if l < 0 || l >= LayerCount {
		return fmt.Sprintf("Layer(%d)", int(l))
	}
	return layerNames[l]
}

// ParseLayer looks a layer up by its board name.
func ParseLayer(name string) (Layer, error) {
	for l, n := range layerNames {
		if n == name {
			return Layer(l), nil
		}
	}
	return 0, fmt.Errorf("unknown layer %q", name)
}

// IsCopper reports whether the layer carries copper.
func (l Layer) IsCopper() bool {
	return l >= FCu && l <= BCu
}

// IsBack reports whether the layer belongs to the bottom side.
func (l Layer) IsBack() bool {
	switch l {
	case BCu, BAdhes, BPaste, BSilkS, BMask, BCrtYd, BFab:
		return true
	}
	return false
}

// Flip returns the matching layer on the opposite board side.
// Layers without a counterpart are returned unchanged.
func (l Layer) Flip() Layer {
	switch l {
	case FCu:
		return BCu
	case BCu:
		return FCu
	case In1Cu:
		return In2Cu
	case In2Cu:
		return In1Cu
	case FAdhes:
		return BAdhes
	case BAdhes:
		return FAdhes
	case FPaste:
		return BPaste
	case BPaste:
		return FPaste
	case FSilkS:
		return BSilkS
	case BSilkS:
		return FSilkS
	case FMask:
		return BMask
	case BMask:
		return FMask
	case FCrtYd:
		return BCrtYd
	case BCrtYd:
		return FCrtYd
	case FFab:
		return BFab
	case BFab:
		return FFab
	}
	return l
}

// Next cycles to the following layer, wrapping around.
func (l Layer) Next() Layer {
	return (l + 1) % LayerCount
}
