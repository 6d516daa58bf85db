package tessellate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorMode is the encoding colours are emitted in.
type ColorMode string

const (
	ModeHex ColorMode = "hex"
	ModeHSV ColorMode = "hsv"
)

const (
	fallbackHex = "#000000"
	fallbackHSV = "hsv(0, 0%, 0%)"

	// stroke drawn around every tile
	strokeHex = "#ffffff"
	strokeHSV = "hsv(0, 0%, 100%)"
)

// ErrBadColor is returned (wrapped) for colour strings we can't read.
var ErrBadColor = errors.New("invalid colour")

// ParseColorMode reads "hex" or "hsv". Anything else is hex.
func ParseColorMode(s string) ColorMode {
	if strings.EqualFold(strings.TrimSpace(s), string(ModeHSV)) {
		return ModeHSV
	}
	return ModeHex
}

// HSV is a colour as integer degrees / percentages.
type HSV struct {
	H int `json:"h"`
	S int `json:"s"`
	V int `json:"v"`
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %d%%, %d%%)", c.H, c.S, c.V)
}

// round half up (towards +Inf); math.Round goes away from zero which gives
// different answers for negative halves.
func round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// HexToHSV converts "#rrggbb" to HSV.
func HexToHSV(hex string) (HSV, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return HSV{}, fmt.Errorf("%w: %q", ErrBadColor, hex)
	}
	r, g, b := c.R, c.G, c.B

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))
	delta := max - min

	h := 0.0
	if delta != 0 {
		switch max {
		case r:
			h = math.Mod((g-b)/delta, 6)
		case g:
			h = (b-r)/delta + 2
		default:
			h = (r-g)/delta + 4
		}
	}
	h = round(h * 60)
	if h < 0 {
		h += 360
	}

	s := 0.0
	if max != 0 {
		s = round(delta / max * 100)
	}

	return HSV{H: int(h), S: int(s), V: int(round(max * 100))}, nil
}

// HSVToHex converts hue (degrees), saturation & value (0-100) to "#rrggbb".
// Hue wraps into [0,360), s & v are clamped to [0,100].
func HSVToHex(h, s, v float64) string {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clamp(s, 0, 100) / 100
	v = clamp(v, 0, 100) / 100
	return colorful.Hsv(h, s, v).Hex()
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParseColor reads either encoding we emit: "#rrggbb" or "hsv(h, s%, v%)".
func ParseColor(s string) (colorful.Color, error) {
	in := strings.TrimSpace(s)
	if strings.HasPrefix(in, "#") {
		c, err := colorful.Hex(in)
		if err != nil {
			return colorful.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
		}
		return c, nil
	}

	var h, sat, v float64
	if _, err := fmt.Sscanf(strings.ToLower(in), "hsv(%g, %g%%, %g%%)", &h, &sat, &v); err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrBadColor, s)
	}
	c, _ := colorful.Hex(HSVToHex(h, sat, v))
	return c, nil
}

// ColorIndex picks a palette index for a tile from its geometry alone.
// n must be > 0.
func ColorIndex(t Tile, n int) int {
	var i int
	switch t.Shape {
	case Triangle:
		i = t.Orientation + int(math.Floor(t.X/50)) + int(math.Floor(t.Y/50))
	case Hexagon:
		i = int(math.Floor(t.X/t.Radius)) + int(math.Floor(t.Y/t.Radius))
	case Rhombus:
		i = int(math.Floor(t.X/30)) + int(math.Floor(t.Y/30)) + int(math.Floor(t.Angle/30))
	default:
		i = int(math.Floor((t.X + t.Y + t.Rotation) / 100))
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// TileColor returns the colour string for a tile in the given mode.
// An empty palette gives black.
func TileColor(t Tile, p *Palette, mode ColorMode) string {
	if p == nil || len(p.Colors) == 0 {
		if mode == ModeHSV {
			return fallbackHSV
		}
		return fallbackHex
	}

	selected := p.Colors[ColorIndex(t, len(p.Colors))]
	if mode != ModeHSV {
		return selected
	}

	hsv, err := HexToHSV(selected)
	if err != nil {
		return fallbackHSV
	}
	return hsv.String()
}

// TileOpacity is 0.8 + [0,0.2) drawn from a Random seeded with
// seed + row + col (the numeric parts of the tile ID).
func TileOpacity(t Tile, seed int64) float64 {
	return 0.8 + NewRandom(seed+int64(t.Row)+int64(t.Col)).Next()*0.2
}

// Colorize returns a copy of tiles with Color & Opacity set.
func Colorize(tiles []Tile, p *Palette, mode ColorMode, seed int64) []Tile {
	out := make([]Tile, len(tiles))
	for i, t := range tiles {
		t.Color = TileColor(t, p, mode)
		t.Opacity = TileOpacity(t, seed)
		out[i] = t
	}
	return out
}

// StrokeColor is the outline colour drawn around tiles in the given mode.
func StrokeColor(mode ColorMode) string {
	if mode == ModeHSV {
		return strokeHSV
	}
	return strokeHex
}
