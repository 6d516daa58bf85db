package tessellate

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParams(s Shape) Params {
	ocean, _ := Preset("ocean")
	return Params{
		Shape:    s,
		Width:    MMToPx(210),
		Height:   MMToPx(297),
		TileSize: MMToPx(10),
		Spacing:  MMToPx(2),
		Seed:     12345,
		Palette:  ocean,
		Mode:     ModeHex,
		MaxTiles: DefaultMaxTiles,
	}
}

func TestGenerateDeterministic(t *testing.T) {
	for _, s := range Shapes() {
		for _, mode := range []ColorMode{ModeHex, ModeHSV} {
			p := testParams(s)
			p.Mode = mode

			a := Generate(p)
			b := Generate(p)
			require.NotEmpty(t, a, s.String())
			assert.Equal(t, a, b, "%s/%s", s, mode)
		}
	}
}

func TestGenerateSeedMatters(t *testing.T) {
	p := testParams(Hexagon)
	a := Generate(p)
	p.Seed++
	b := Generate(p)

	assert.Equal(t, len(a), len(b))
	assert.NotEqual(t, a, b)
}

func TestGenerateScenario(t *testing.T) {
	ocean, _ := Preset("ocean")
	tiles := GenerateTiles(Square, 100, 100, 15, 3, 12345, ocean, ModeHex, 5000)

	require.Equal(t, 25, len(tiles))
	assert.Equal(t, "0-0", tiles[0].ID())
	assert.Equal(t, "4-4", tiles[24].ID())
	assert.Equal(t, "#0074d9", tiles[0].Color)
	assert.Equal(t, "#001f3f", tiles[1].Color)
	assert.InDelta(t, 0.8826320301783266, tiles[0].Opacity, 1e-12)

	for _, tl := range tiles {
		assert.True(t, tl.Opacity >= 0.8 && tl.Opacity < 1)
		assert.Contains(t, ocean.Colors, tl.Color)
	}
}

func TestGenerateCapping(t *testing.T) {
	p := testParams(Square)
	p.TileSize = 3
	p.Spacing = 0
	p.MaxTiles = 0
	uncapped := p
	uncapped.MaxTiles = 1 << 30

	all := Generate(uncapped)
	n := len(all)
	require.True(t, n > DefaultMaxTiles)

	capped := Generate(p)
	skip := (n + DefaultMaxTiles - 1) / DefaultMaxTiles
	assert.Equal(t, (n+skip-1)/skip, len(capped))

	for i, tl := range capped {
		assert.Equal(t, all[i*skip], tl)
	}
}

func TestGenerateColourStability(t *testing.T) {
	p := testParams(Triangle)
	a := Generate(p)

	p.MaxTiles = len(a) + 100
	b := Generate(p)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Color, b[i].Color)
		assert.Equal(t, a[i].Opacity, b[i].Opacity)
	}
}

func TestGenerateFallbackShapes(t *testing.T) {
	square := Generate(testParams(Square))
	assert.Equal(t, square, Generate(testParams(Kagome)))
	assert.Equal(t, square, Generate(testParams(Penrose)))
}

func TestGenerateDegenerate(t *testing.T) {
	p := testParams(Hexagon)
	p.TileSize = -1
	assert.Empty(t, Generate(p))

	p = testParams(Rhombus)
	p.Palette = nil
	for _, tl := range Generate(p) {
		assert.Equal(t, "#000000", tl.Color)
	}
}

func TestGenerateLargeSeedInRange(t *testing.T) {
	ocean, _ := Preset("ocean")
	for _, seed := range []int64{1e15, math.MaxInt64, -42} {
		tiles := GenerateTiles(Square, 100, 100, 15, 3, seed, ocean, ModeHex, 5000)
		require.Equal(t, 25, len(tiles))
		for _, tl := range tiles {
			assert.True(t, tl.Rotation >= 0 && tl.Rotation < 360, "seed %d: rotation %v", seed, tl.Rotation)
			assert.True(t, tl.Opacity >= 0.8 && tl.Opacity < 1, "seed %d: opacity %v", seed, tl.Opacity)
		}
	}
}
