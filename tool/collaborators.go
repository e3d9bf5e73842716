package tool

import "pcbdraw/core"

// ZoneDialogKind picks the zone settings dialog to show.
type ZoneDialogKind int

const (
	ZoneDialogCopper ZoneDialogKind = iota
	ZoneDialogNonCopper
	ZoneDialogKeepout
)

func (k ZoneDialogKind) String() string {
	switch k {
	case ZoneDialogCopper:
		return "copper"
	case ZoneDialogNonCopper:
		return "non-copper"
	case ZoneDialogKeepout:
		return "keepout"
	}
	return "unknown"
}

// ZoneSettingsEditor edits settings for a new zone. It returns false when
// the user aborts. The call is modal: the drawing loop waits for it.
type ZoneSettingsEditor interface {
	EditZoneSettings(kind ZoneDialogKind, settings *core.ZoneSettings) bool
}

// TextEditor fills in a freshly placed text. It returns false when the user
// rejects the text. The call is modal.
type TextEditor interface {
	EditText(text *core.Shape) bool
}

// DXFImporter produces the items of an imported drawing, segments and
// texts. It returns false when the import was aborted.
type DXFImporter interface {
	ImportDXF() ([]*core.Shape, bool)
}

// Selection is the current item selection of the editor.
type Selection interface {
	Selected() []core.ItemID
	Clear()
}

// ZoneFiller computes zone fills.
type ZoneFiller interface {
	Fill(zones ...*core.Shape)
}

// ContextMenu shows the right click menu.
type ContextMenu interface {
	ShowContextMenu(pos core.Point)
}

// Collaborators groups the optional services a DrawingTool calls out to.
// Nil members disable the matching feature: without a zone editor new zones
// take the defaults, without a text editor no text can be placed.
type Collaborators struct {
	ZoneEditor ZoneSettingsEditor
	TextEditor TextEditor
	Importer   DXFImporter
	Selection  Selection
	Filler     ZoneFiller
	Menu       ContextMenu
}
