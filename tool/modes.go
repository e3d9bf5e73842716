package tool

// Action selects one of the interactive drawing loops.
type Action int

const (
	ActionNone Action = iota
	ActionDrawLine
	ActionDrawCircle
	ActionDrawArc
	ActionPlaceText
	ActionDrawDimension
	ActionDrawZone
	ActionDrawKeepout
	ActionDrawZoneCutout
	ActionDrawSimilarZone
	ActionPlaceDXF
	ActionSetAnchor
)

// String returns the action name for display
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "NONE"
	case ActionDrawLine:
		return "LINE"
	case ActionDrawCircle:
		return "CIRCLE"
	case ActionDrawArc:
		return "ARC"
	case ActionPlaceText:
		return "TEXT"
	case ActionDrawDimension:
		return "DIMENSION"
	case ActionDrawZone:
		return "ZONE"
	case ActionDrawKeepout:
		return "KEEPOUT"
	case ActionDrawZoneCutout:
		return "CUTOUT"
	case ActionDrawSimilarZone:
		return "SIMILAR"
	case ActionPlaceDXF:
		return "DXF"
	case ActionSetAnchor:
		return "ANCHOR"
	default:
		return "UNKNOWN"
	}
}

// Command is a keyboard command delivered while a loop runs.
type Command int

const (
	CmdIncWidth Command = iota
	CmdDecWidth
	CmdArcPosture
	CmdLayerChanged
	CmdRotate
	CmdFlip
)

func (c Command) String() string {
	switch c {
	case CmdIncWidth:
		return "incWidth"
	case CmdDecWidth:
		return "decWidth"
	case CmdArcPosture:
		return "arcPosture"
	case CmdLayerChanged:
		return "layerChanged"
	case CmdRotate:
		return "rotate"
	case CmdFlip:
		return "flip"
	}
	return "unknown"
}

// ZoneMode selects what a finished zone outline is used for.
type ZoneMode int

const (
	ZoneAdd     ZoneMode = iota // New zone with fresh settings
	ZoneCutout                  // Hole cut into the selected zone
	ZoneSimilar                 // New zone with the selected zone's settings
)

func (m ZoneMode) String() string {
	switch m {
	case ZoneAdd:
		return "add"
	case ZoneCutout:
		return "cutout"
	case ZoneSimilar:
		return "similar"
	}
	return "unknown"
}

// Commit labels, one per kind of finished gesture.
const (
	LabelSegment   = "Draw a line segment"
	LabelHelper    = "Draw a line"
	LabelCircle    = "Draw a circle"
	LabelArc       = "Draw an arc"
	LabelDimension = "Draw a dimension"
	LabelText      = "Place a text"
	LabelZone      = "Draw a zone"
	LabelCutout    = "Add a zone cutout"
	LabelDXF       = "Place a DXF drawing"
	LabelAnchor    = "Move the footprint reference anchor"
)
