package core

// HatchStyle selects how a zone outline is hatched in the view.
type HatchStyle int

const (
	HatchNone HatchStyle = iota
	HatchDiagonalEdge
	HatchDiagonalFull
)

func (h HatchStyle) String() string {
	switch h {
	case HatchDiagonalEdge:
		return "edge"
	case HatchDiagonalFull:
		return "full"
	}
	return "none"
}

// ParseHatchStyle is the inverse of HatchStyle.String. Unknown names map to
// HatchDiagonalEdge.
func ParseHatchStyle(name string) HatchStyle {
	switch name {
	case "none":
		return HatchNone
	case "full":
		return HatchDiagonalFull
	}
	return HatchDiagonalEdge
}

// ZoneSettings are the user-editable zone properties, shared between a
// settings dialog and the zones it creates.
type ZoneSettings struct {
	Layer        Layer
	NetCode      int
	Priority     int
	Keepout      bool
	NoTracks     bool // keepout only
	NoVias       bool // keepout only
	NoCopperPour bool // keepout only
	HatchStyle   HatchStyle
	HatchPitch   int
	MinThickness int
	Clearance    int
}

// Export applies the settings onto a zone shape.
func (zs ZoneSettings) Export(s *Shape) {
	s.Layer = zs.Layer
	s.NetCode = zs.NetCode
	if zs.Keepout {
		s.NetCode = 0
	}
	s.Zone.Settings = zs
}

// ZoneSettingsOf reads the settings back from a zone shape.
func ZoneSettingsOf(s *Shape) ZoneSettings {
	zs := s.Zone.Settings
	zs.Layer = s.Layer
	zs.NetCode = s.NetCode
	return zs
}

// Zone is the payload of a copper, non-copper or keepout zone.
type Zone struct {
	Settings    ZoneSettings
	Outline     Outline
	HatchLines  [][2]Point
	Filled      bool
	FilledPolys []Contour
	NeedsRefill bool
}

// IsKeepout reports whether the zone is a keepout area.
func (z *Zone) IsKeepout() bool {
	return z.Settings.Keepout
}

// Clone returns a deep copy of the zone payload.
func (z *Zone) Clone() *Zone {
	c := *z
	c.Outline = z.Outline.Clone()
	c.HatchLines = append([][2]Point(nil), z.HatchLines...)
	c.FilledPolys = make([]Contour, len(z.FilledPolys))
	for i, p := range z.FilledPolys {
		c.FilledPolys[i] = p.Clone()
	}
	if z.FilledPolys == nil {
		c.FilledPolys = nil
	}
	return &c
}
