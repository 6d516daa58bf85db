package tessellate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHexToHSV(t *testing.T) {
	cases := map[string]HSV{
		"#ff0000": {0, 100, 100},
		"#00ff00": {120, 100, 100},
		"#0000ff": {240, 100, 100},
		"#ffff00": {60, 100, 100},
		"#00ffff": {180, 100, 100},
		"#ff00ff": {300, 100, 100},
		"#ffffff": {0, 0, 100},
		"#000000": {0, 0, 0},
		"#001f3f": {210, 100, 25},
		"#ff6b6b": {0, 58, 100},
		"#6366f1": {239, 59, 95},
	}

	for hex, want := range cases {
		got, err := HexToHSV(hex)
		require.Nil(t, err, hex)
		assert.Equal(t, want, got, hex)
	}
}

func TestHexToHSVInvalid(t *testing.T) {
	_, err := HexToHSV("red")
	assert.True(t, errors.Is(err, ErrBadColor))
}

func TestHSVToHex(t *testing.T) {
	assert.Equal(t, "#ff0000", HSVToHex(0, 100, 100))
	assert.Equal(t, "#ff0000", HSVToHex(360, 100, 100))
	assert.Equal(t, "#000000", HSVToHex(123, 50, 0))
	assert.Equal(t, "#ffffff", HSVToHex(0, 0, 100))
	assert.Equal(t, "#ffffff", HSVToHex(0, -5, 150))
}

func TestHexHSVRoundTrip(t *testing.T) {
	for _, hex := range []string{"#ff0000", "#00ff00", "#0000ff", "#ffff00", "#00ffff", "#ff00ff"} {
		hsv, err := HexToHSV(hex)
		require.Nil(t, err)
		assert.Equal(t, hex, HSVToHex(float64(hsv.H), float64(hsv.S), float64(hsv.V)))
	}

	// everything else survives within rounding
	for _, name := range Presets() {
		p, _ := Preset(name)
		for _, hex := range p.Colors {
			hsv, err := HexToHSV(hex)
			require.Nil(t, err)

			want, _ := ParseColor(hex)
			got, err := ParseColor(HSVToHex(float64(hsv.H), float64(hsv.S), float64(hsv.V)))
			require.Nil(t, err)

			assert.InDelta(t, want.R, got.R, 4.0/255, hex)
			assert.InDelta(t, want.G, got.G, 4.0/255, hex)
			assert.InDelta(t, want.B, got.B, 4.0/255, hex)
		}
	}
}

func TestParseColor(t *testing.T) {
	hex, err := ParseColor("#ff0000")
	require.Nil(t, err)

	hsv, err := ParseColor("hsv(0, 100%, 100%)")
	require.Nil(t, err)
	assert.Equal(t, hex, hsv)

	_, err = ParseColor("hsv(nope)")
	assert.True(t, errors.Is(err, ErrBadColor))
}

func TestColorIndex(t *testing.T) {
	cases := []struct {
		name string
		tile Tile
		want int
	}{
		{"square", Tile{Shape: Square, X: 3, Y: 3, Rotation: 148.7376543}, 1},
		{"square wraps", Tile{Shape: Square, X: 300, Y: 200, Rotation: 10}, 0},
		{"triangle", Tile{Shape: Triangle, X: 18, Y: 3, Orientation: 2}, 2},
		{"triangle position", Tile{Shape: Triangle, X: 120, Y: 60, Orientation: 3}, 1},
		{"hexagon", Tile{Shape: Hexagon, X: 25.5, Y: 3, Radius: 7.5}, 3},
		{"rhombus", Tile{Shape: Rhombus, X: 33, Y: 3, Angle: 60}, 3},
		{"negative position", Tile{Shape: Rhombus, X: -31, Y: 0, Angle: 60}, 0},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, ColorIndex(c.tile, 5), c.name)
	}
}

func TestTileColor(t *testing.T) {
	ocean, _ := Preset("ocean")
	tl := Tile{Shape: Square, X: 3, Y: 3, Rotation: 148.7376543}

	assert.Equal(t, "#0074d9", TileColor(tl, ocean, ModeHex))
	assert.Equal(t, "hsv(208, 100%, 85%)", TileColor(tl, ocean, ModeHSV))
}

func TestTileColorEmptyPalette(t *testing.T) {
	empty := NewPalette("empty", ModeHex)

	for _, s := range Shapes() {
		tl := Tile{Shape: s, X: 123, Y: 456, Radius: 5, Size: 10, Rotation: 77, Angle: 60}
		assert.Equal(t, "#000000", TileColor(tl, empty, ModeHex))
		assert.Equal(t, "hsv(0, 0%, 0%)", TileColor(tl, empty, ModeHSV))
	}
	assert.Equal(t, "#000000", TileColor(Tile{}, nil, ModeHex))
}

func TestTileOpacity(t *testing.T) {
	assert.InDelta(t, 0.8826320301783266, TileOpacity(Tile{Row: 0, Col: 0}, 12345), 1e-12)
	assert.InDelta(t, 0.8906061385459534, TileOpacity(Tile{Row: 0, Col: 1}, 12345), 1e-12)

	// only the sum of row & col matters
	assert.Equal(t, TileOpacity(Tile{Row: 2, Col: 3}, 9), TileOpacity(Tile{Row: 4, Col: 1}, 9))

	r := NewRandom(3)
	for i := 0; i < 1000; i++ {
		o := TileOpacity(Tile{Row: r.NextInt(0, 100), Col: r.NextInt(0, 100)}, int64(i))
		assert.True(t, o >= 0.8 && o < 1.0, "opacity %v", o)
	}
}

func TestColorizeCopies(t *testing.T) {
	ocean, _ := Preset("ocean")
	in := []Tile{{Shape: Square, X: 3, Y: 3, Size: 15}}

	out := Colorize(in, ocean, ModeHex, 1)
	assert.Equal(t, "", in[0].Color)
	assert.NotEqual(t, "", out[0].Color)
	assert.NotZero(t, out[0].Opacity)
}

func TestParseColorMode(t *testing.T) {
	assert.Equal(t, ModeHSV, ParseColorMode("HSV"))
	assert.Equal(t, ModeHex, ParseColorMode("hex"))
	assert.Equal(t, ModeHex, ParseColorMode("cmyk"))
}
