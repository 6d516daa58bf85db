package tessellate

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxPaletteColors is how many colours a palette may hold.
const MaxPaletteColors = 10

// ErrPaletteFull is returned when adding to a palette already at
// MaxPaletteColors.
var ErrPaletteFull = errors.New("palette is full")

// Palette is an ordered list of "#rrggbb" colours.
type Palette struct {
	Name   string    `json:"name" yaml:"name"`
	Colors []string  `json:"colors" yaml:"colors"`
	Mode   ColorMode `json:"type" yaml:"type"`
}

var presets = map[string]Palette{
	"ocean": {
		Name:   "Ocean",
		Colors: []string{"#001f3f", "#0074d9", "#39cccc", "#7fdbda", "#ffffff"},
		Mode:   ModeHex,
	},
	"sunset": {
		Name:   "Sunset",
		Colors: []string{"#ff6b6b", "#ffa94d", "#ffd93d", "#6bcf7f", "#4ecdc4"},
		Mode:   ModeHex,
	},
	"forest": {
		Name:   "Forest",
		Colors: []string{"#2c5530", "#3e7c41", "#6b8e23", "#9bcc50", "#c4d67f"},
		Mode:   ModeHex,
	},
	"purple_dream": {
		Name:   "Purple Dream",
		Colors: []string{"#6366f1", "#8b5cf6", "#a78bfa", "#c4b5fd", "#e9d5ff"},
		Mode:   ModeHex,
	},
	"monochrome": {
		Name:   "Monochrome",
		Colors: []string{"#000000", "#333333", "#666666", "#999999", "#cccccc"},
		Mode:   ModeHex,
	},
	"vibrant": {
		Name:   "Vibrant",
		Colors: []string{"#ff0080", "#ff8c00", "#40e0d0", "#ff0080", "#800080"},
		Mode:   ModeHex,
	},
}

// DefaultPalette is the preset used when none is named.
const DefaultPalette = "ocean"

// Presets returns the names of the built in palettes, sorted.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for k := range presets {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Preset returns a copy of the named built in palette.
func Preset(name string) (*Palette, bool) {
	p, ok := presets[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return &Palette{
		Name:   p.Name,
		Colors: append([]string{}, p.Colors...),
		Mode:   p.Mode,
	}, true
}

// NewPalette returns an empty custom palette.
func NewPalette(name string, mode ColorMode) *Palette {
	return &Palette{Name: name, Colors: []string{}, Mode: mode}
}

// AddColor appends a "#rrggbb" colour.
func (p *Palette) AddColor(hex string) error {
	if len(p.Colors) >= MaxPaletteColors {
		return ErrPaletteFull
	}
	if _, err := HexToHSV(hex); err != nil {
		return err
	}
	p.Colors = append(p.Colors, strings.ToLower(hex))
	return nil
}

// RemoveColor drops the colour at index i.
func (p *Palette) RemoveColor(i int) error {
	if i < 0 || i >= len(p.Colors) {
		return fmt.Errorf("palette index %d out of range [0,%d)", i, len(p.Colors))
	}
	p.Colors = append(p.Colors[:i:i], p.Colors[i+1:]...)
	return nil
}
