// Package config loads and saves the user settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"pcbdraw/board"
	"pcbdraw/core"
	"pcbdraw/tool"
)

// EnvPath names the environment variable that overrides the settings path.
const EnvPath = "PCBDRAW_CONFIG"

// Config holds persistent editor settings
type Config struct {
	Drawing  Drawing  `toml:"drawing"`
	Design   Design   `toml:"design"`
	Terminal Terminal `toml:"terminal"`
	Nets     []Net    `toml:"nets"`
}

// Drawing are the drawing tool preferences.
type Drawing struct {
	Segments45Only bool    `toml:"segments_45_only"`
	RotationAngle  float64 `toml:"rotation_angle"` // tenths of a degree
	Layer          string  `toml:"layer"`          // initial active layer
}

// Design are the board defaults in nanometres. Text sizes are square.
type Design struct {
	DrawSegmentWidth   int    `toml:"draw_segment_width"`
	EdgeSegmentWidth   int    `toml:"edge_segment_width"`
	ModuleSegmentWidth int    `toml:"module_segment_width"`
	PcbTextSize        int    `toml:"pcb_text_size"`
	PcbTextWidth       int    `toml:"pcb_text_width"`
	ModuleTextSize     int    `toml:"module_text_size"`
	ModuleTextWidth    int    `toml:"module_text_width"`
	ZoneHatchStyle     string `toml:"zone_hatch_style"`
	ZoneHatchPitch     int    `toml:"zone_hatch_pitch"`
	ZoneClearance      int    `toml:"zone_clearance"`
	ZoneMinThickness   int    `toml:"zone_min_thickness"`
}

// Terminal sets how many board units one screen cell covers.
type Terminal struct {
	CellWidth  int `toml:"cell_width"`
	CellHeight int `toml:"cell_height"`
}

// Net is a net created on new boards.
type Net struct {
	Name  string `toml:"name"`
	Class string `toml:"class"`
}

// Default returns the stock configuration.
func Default() Config {
	ds := board.DefaultDesignSettings()
	return Config{
		Drawing: Drawing{
			RotationAngle: tool.DefaultRotationAngle,
			Layer:         core.FSilkS.String(),
		},
		Design: Design{
			DrawSegmentWidth:   ds.DrawSegmentWidth,
			EdgeSegmentWidth:   ds.EdgeSegmentWidth,
			ModuleSegmentWidth: ds.ModuleSegmentWidth,
			PcbTextSize:        ds.PcbTextSize.W,
			PcbTextWidth:       ds.PcbTextWidth,
			ModuleTextSize:     ds.ModuleTextSize.W,
			ModuleTextWidth:    ds.ModuleTextWidth,
			ZoneHatchStyle:     ds.ZoneHatchStyle.String(),
			ZoneHatchPitch:     ds.ZoneHatchPitch,
			ZoneClearance:      ds.ZoneClearance,
			ZoneMinThickness:   ds.ZoneMinThickness,
		},
		Terminal: Terminal{CellWidth: 500000, CellHeight: 1000000},
	}
}

// DefaultPath returns the settings file path: $PCBDRAW_CONFIG, or
// settings.toml in the user config directory.
func DefaultPath() string {
	if p := os.Getenv(EnvPath); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".pcbdraw.toml"
	}
	return filepath.Join(dir, "pcbdraw", "settings.toml")
}

// Load reads the settings file at path over the defaults. A missing file
// yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), fmt.Errorf("load %s: unknown keys %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the settings file, creating its directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	defer f.Close()

	fmt.Fprintln(f, "# pcbdraw configuration")
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return f.Close()
}

// Validate rejects values no drawing can use.
func (c Config) Validate() error {
	d := c.Design
	widths := map[string]int{
		"draw_segment_width":   d.DrawSegmentWidth,
		"edge_segment_width":   d.EdgeSegmentWidth,
		"module_segment_width": d.ModuleSegmentWidth,
		"pcb_text_size":        d.PcbTextSize,
		"pcb_text_width":       d.PcbTextWidth,
		"module_text_size":     d.ModuleTextSize,
		"module_text_width":    d.ModuleTextWidth,
	}
	for name, w := range widths {
		if w <= 0 {
			return fmt.Errorf("design.%s must be positive, got %d", name, w)
		}
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 {
		return fmt.Errorf("terminal cell size must be positive, got %dx%d", c.Terminal.CellWidth, c.Terminal.CellHeight)
	}
	if _, err := core.ParseLayer(c.Drawing.Layer); err != nil {
		return fmt.Errorf("drawing.layer: %w", err)
	}
	return nil
}

// DesignSettings converts the design section for a new board.
func (c Config) DesignSettings() board.DesignSettings {
	d := c.Design
	return board.DesignSettings{
		DrawSegmentWidth:   d.DrawSegmentWidth,
		EdgeSegmentWidth:   d.EdgeSegmentWidth,
		ModuleSegmentWidth: d.ModuleSegmentWidth,
		PcbTextSize:        core.Size{W: d.PcbTextSize, H: d.PcbTextSize},
		PcbTextWidth:       d.PcbTextWidth,
		ModuleTextSize:     core.Size{W: d.ModuleTextSize, H: d.ModuleTextSize},
		ModuleTextWidth:    d.ModuleTextWidth,
		ZoneHatchStyle:     core.ParseHatchStyle(d.ZoneHatchStyle),
		ZoneHatchPitch:     d.ZoneHatchPitch,
		ZoneClearance:      d.ZoneClearance,
		ZoneMinThickness:   d.ZoneMinThickness,
	}
}

// ToolSettings converts the drawing section.
func (c Config) ToolSettings() tool.Settings {
	return tool.Settings{
		Segments45Only: c.Drawing.Segments45Only,
		RotationAngle:  c.Drawing.RotationAngle,
	}
}

// ActiveLayer returns the initial active layer.
func (c Config) ActiveLayer() core.Layer {
	l, err := core.ParseLayer(c.Drawing.Layer)
	if err != nil {
		return core.FSilkS
	}
	return l
}

// NewBoard creates a board with the configured design settings and nets.
func (c Config) NewBoard() (*board.Board, error) {
	b := board.New(c.DesignSettings())
	for _, n := range c.Nets {
		if _, err := b.AddNet(n.Name, n.Class); err != nil {
			return nil, fmt.Errorf("net %q: %w", n.Name, err)
		}
	}
	return b, nil
}
