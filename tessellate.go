// Package tessellate procedurally generates seeded 2D tessellations
// (square, triangle, hexagon & rhombus grids) with deterministic per-tile
// colours, and renders them to SVG or PNG.
//
// The same Params always produce the same tiles, down to the colour &
// opacity of each one.
package tessellate

// Params are the inputs of one generation pass. Lengths are in px.
type Params struct {
	Shape    Shape
	Width    float64
	Height   float64
	TileSize float64
	Spacing  float64
	Seed     int64
	Palette  *Palette
	Mode     ColorMode

	// <= 0 means DefaultMaxTiles
	MaxTiles int
}

// Generate runs a full pass: generate, downsample, colour.
// It never fails; degenerate input gives an empty (or small) result.
func Generate(p Params) []Tile {
	rng := NewRandom(p.Seed)
	raw := GeneratorFor(p.Shape)(p.Width, p.Height, p.TileSize, p.Spacing, rng)
	return Colorize(Downsample(raw, p.MaxTiles), p.Palette, p.Mode, p.Seed)
}

// GenerateTiles is Generate with positional arguments.
func GenerateTiles(shape Shape, width, height, tileSize, spacing float64, seed int64, palette *Palette, mode ColorMode, maxTiles int) []Tile {
	return Generate(Params{
		Shape:    shape,
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		Spacing:  spacing,
		Seed:     seed,
		Palette:  palette,
		Mode:     mode,
		MaxTiles: maxTiles,
	})
}
