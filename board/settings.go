package board

import "pcbdraw/core"

// DesignSettings hold the defaults new drawings pick up.
type DesignSettings struct {
	DrawSegmentWidth   int
	EdgeSegmentWidth   int
	ModuleSegmentWidth int

	PcbTextSize     core.Size
	PcbTextWidth    int
	ModuleTextSize  core.Size
	ModuleTextWidth int

	ZoneHatchStyle   core.HatchStyle
	ZoneHatchPitch   int
	ZoneClearance    int
	ZoneMinThickness int
}

// DefaultDesignSettings returns the stock values, all in nanometres.
func DefaultDesignSettings() DesignSettings {
	return DesignSettings{
		DrawSegmentWidth:   150000,
		EdgeSegmentWidth:   150000,
		ModuleSegmentWidth: 150000,
		PcbTextSize:        core.Size{W: 1500000, H: 1500000},
		PcbTextWidth:       300000,
		ModuleTextSize:     core.Size{W: 1000000, H: 1000000},
		ModuleTextWidth:    150000,
		ZoneHatchStyle:     core.HatchDiagonalEdge,
		ZoneHatchPitch:     508000,
		ZoneClearance:      508000,
		ZoneMinThickness:   254000,
	}
}

// ZoneDefaults returns the settings a new zone starts from.
func (ds DesignSettings) ZoneDefaults() core.ZoneSettings {
	return core.ZoneSettings{
		HatchStyle:   ds.ZoneHatchStyle,
		HatchPitch:   ds.ZoneHatchPitch,
		Clearance:    ds.ZoneClearance,
		MinThickness: ds.ZoneMinThickness,
	}
}
