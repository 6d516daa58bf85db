package tessellate

import (
	"fmt"
	"io/ioutil"
	"strings"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

// PxPerMM converts millimetres to px at 96 DPI.
const PxPerMM = 3.779527559

// MMToPx converts millimetres to px.
func MMToPx(mm float64) float64 {
	return mm * PxPerMM
}

// Config includes settings for one artwork
type Config struct {
	// tessellation type by name, see ParseShape
	Shape string `yaml:"shape" json:"shape"`

	// in mm
	WidthMM    float64 `yaml:"width_mm" json:"width_mm"`
	HeightMM   float64 `yaml:"height_mm" json:"height_mm"`
	TileSizeMM float64 `yaml:"tile_size_mm" json:"tile_size_mm"`
	SpacingMM  float64 `yaml:"spacing_mm" json:"spacing_mm"`

	Seed int64 `yaml:"seed" json:"seed"`

	// preset name; ignored if Colors is set
	Palette string `yaml:"palette" json:"palette"`
	// custom palette
	PaletteName string   `yaml:"palette_name,omitempty" json:"palette_name,omitempty"`
	Colors      []string `yaml:"colors,omitempty" json:"colors,omitempty"`

	ColorMode string `yaml:"color_mode" json:"color_mode"`

	MaxTiles int `yaml:"max_tiles" json:"max_tiles"`
}

// DefaultConfig returns an A4 config with default settings.
func DefaultConfig() *Config {
	a4 := pageSizes["a4"]
	return &Config{
		Shape:      Square.String(),
		WidthMM:    a4[0],
		HeightMM:   a4[1],
		TileSizeMM: 10,
		SpacingMM:  2,
		Seed:       12345,
		Palette:    DefaultPalette,
		ColorMode:  string(ModeHex),
		MaxTiles:   DefaultMaxTiles,
	}
}

// defaults fills in empty names & the tile budget. Lengths & seed are left
// alone: zero is a valid seed or spacing, and a zero size or canvas is a
// degenerate artwork that generates nothing. Missing yaml keys get their
// defaults in LoadConfigFile instead.
func (c *Config) defaults() {
	d := DefaultConfig()
	if c.Shape == "" {
		c.Shape = d.Shape
	}
	if c.Palette == "" {
		c.Palette = d.Palette
	}
	if c.ColorMode == "" {
		c.ColorMode = d.ColorMode
	}
	if c.MaxTiles <= 0 {
		c.MaxTiles = d.MaxTiles
	}
}

var pageSizes = map[string][2]float64{
	"a4": {210, 297},
	"a3": {297, 420},
}

// PageSize returns the (width, height) in mm of a named paper size.
func PageSize(name string) (float64, float64, error) {
	wh, ok := pageSizes[strings.ToLower(name)]
	if !ok {
		return 0, 0, fmt.Errorf("unknown page size %q", name)
	}
	return wh[0], wh[1], nil
}

// ResolvePalette returns the custom palette if colours are set, otherwise
// the named preset (falling back to the default preset).
func (c *Config) ResolvePalette() *Palette {
	mode := ParseColorMode(c.ColorMode)
	if len(c.Colors) > 0 {
		name := c.PaletteName
		if name == "" {
			name = "Custom"
		}
		colors := c.Colors
		if len(colors) > MaxPaletteColors {
			colors = colors[:MaxPaletteColors]
		}
		return &Palette{Name: name, Colors: append([]string{}, colors...), Mode: mode}
	}
	p, ok := Preset(c.Palette)
	if !ok {
		p, _ = Preset(DefaultPalette)
	}
	return p
}

// Params converts the config into px based generation params.
// Unknown shape names fall back to square; use ParseShape first to catch
// them.
func (c *Config) Params() Params {
	shape, _ := ParseShape(c.Shape)
	return Params{
		Shape:    shape,
		Width:    MMToPx(c.WidthMM),
		Height:   MMToPx(c.HeightMM),
		TileSize: MMToPx(c.TileSizeMM),
		Spacing:  MMToPx(c.SpacingMM),
		Seed:     c.Seed,
		Palette:  c.ResolvePalette(),
		Mode:     ParseColorMode(c.ColorMode),
		MaxTiles: c.MaxTiles,
	}
}

// Generate is shorthand for Generate(c.Params()).
func (c *Config) Generate() []Tile {
	return Generate(c.Params())
}

// LoadConfigFile reads a YAML config over DefaultConfig, so keys missing
// from the file keep their defaults while explicit values (even 0) are kept.
// A leading ~ in path is expanded.
func LoadConfigFile(path string) (*Config, error) {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return nil, err
	}
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", fpath, err)
	}
	cfg.defaults()
	return cfg, nil
}

// WriteFile writes the config as YAML.
func (c *Config) WriteFile(path string) error {
	fpath, err := homedir.Expand(path)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}
