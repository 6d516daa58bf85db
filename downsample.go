package tessellate

// DefaultMaxTiles is the tile budget used when none (or a non-positive
// one) is given.
const DefaultMaxTiles = 5000

// Downsample thins tiles to at most max by keeping every skip-th tile,
// skip = ceil(len/max). Order & IDs are preserved; the result may be
// smaller than max.
//
// The input is returned as is when it's already within budget.
func Downsample(tiles []Tile, max int) []Tile {
	if max <= 0 {
		max = DefaultMaxTiles
	}
	if len(tiles) <= max {
		return tiles
	}

	skip := (len(tiles) + max - 1) / max
	kept := make([]Tile, 0, (len(tiles)+skip-1)/skip)
	for i := 0; i < len(tiles); i += skip {
		kept = append(kept, tiles[i])
	}
	return kept
}
