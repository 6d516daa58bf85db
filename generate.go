/* generators that fill a width x height canvas with tiles.

Every generator walks its grid row by row, column by column, and draws
exactly one rotation from the given Random per tile it emits, so the RNG
stream (and thus the artwork) depends only on the inputs.
*/
package tessellate

import (
	"math"
)

var sqrt3 = math.Sqrt(3)

// Generator fills a canvas with tiles of one shape.
type Generator func(width, height, tileSize, spacing float64, rng *Random) []Tile

// GeneratorFor returns the generator used for the given shape.
// Shapes without their own generator use the square one.
func GeneratorFor(s Shape) Generator {
	switch s {
	case Triangle:
		return TriangleTiles
	case Hexagon:
		return HexagonTiles
	case Rhombus:
		return RhombusTiles
	default:
		return SquareTiles
	}
}

// gridCount is floor((extent+spacing)/pitch), or 0 if that isn't a sane
// positive number.
func gridCount(extent, spacing, pitch float64) int {
	if !(pitch > 0) {
		return 0
	}
	n := math.Floor((extent + spacing) / pitch)
	if math.IsNaN(n) || math.IsInf(n, 0) || n <= 0 {
		return 0
	}
	return int(n)
}

// SquareTiles lays out an axis aligned grid of squares.
func SquareTiles(width, height, tileSize, spacing float64, rng *Random) []Tile {
	if !(tileSize > 0) {
		return nil
	}
	pitch := tileSize + spacing
	cols := gridCount(width, spacing, pitch)
	rows := gridCount(height, spacing, pitch)

	tiles := make([]Tile, 0, rows*cols)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			tiles = append(tiles, Tile{
				Shape:    Square,
				Row:      row,
				Col:      col,
				X:        float64(col)*pitch + spacing,
				Y:        float64(row)*pitch + spacing,
				Size:     tileSize,
				Rotation: rng.NextFloat(0, 360),
			})
		}
	}
	return tiles
}

// TriangleTiles interleaves up & down triangles, two half-width columns per
// nominal column. Triangles that would overflow the canvas are dropped.
func TriangleTiles(width, height, tileSize, spacing float64, rng *Random) []Tile {
	if !(tileSize > 0) {
		return nil
	}
	rowHeight := tileSize * sqrt3 / 2
	rows := gridCount(height, spacing, rowHeight+spacing)
	cols := gridCount(width, spacing, tileSize+spacing)

	tiles := []Tile{}
	for row := 0; row < rows; row++ {
		y := float64(row)*rowHeight + spacing
		for col := 0; col < cols*2; col++ {
			x := float64(col)*(tileSize/2) + spacing
			if col%2 != 0 {
				x = float64(col)*(tileSize/2) + tileSize/4 + spacing
			}
			if x+tileSize > width || y+tileSize > height {
				continue
			}
			tiles = append(tiles, Tile{
				Shape:       Triangle,
				Row:         row,
				Col:         col,
				X:           x,
				Y:           y,
				Size:        tileSize,
				Rotation:    rng.NextFloat(0, 360),
				Orientation: col % 4,
			})
		}
	}
	return tiles
}

// HexagonTiles packs hexagons of radius tileSize/2 with odd rows staggered.
// Hexagons that would overflow the canvas are dropped.
func HexagonTiles(width, height, tileSize, spacing float64, rng *Random) []Tile {
	if !(tileSize > 0) {
		return nil
	}
	radius := tileSize / 2
	hexHeight := sqrt3 * radius
	hexWidth := 2 * radius
	rows := gridCount(height, spacing, hexHeight+spacing)
	cols := gridCount(width, spacing, hexWidth*0.75+spacing)

	tiles := []Tile{}
	for row := 0; row < rows; row++ {
		y := float64(row)*hexHeight*0.5 + spacing
		for col := 0; col < cols; col++ {
			x := float64(col)*hexWidth*0.75 + float64(row%2)*hexWidth*0.375 + spacing
			if x+hexWidth > width || y+hexHeight > height {
				continue
			}
			tiles = append(tiles, Tile{
				Shape:    Hexagon,
				Row:      row,
				Col:      col,
				X:        x,
				Y:        y,
				Radius:   radius,
				Rotation: rng.NextFloat(0, 360),
			})
		}
	}
	return tiles
}

// RhombusTiles lays out 60 degree rhombi in brick rows. Every grid cell is
// emitted, there's no fit check.
func RhombusTiles(width, height, tileSize, spacing float64, rng *Random) []Tile {
	if !(tileSize > 0) {
		return nil
	}
	rowHeight := tileSize * math.Sin(math.Pi/3)
	rows := gridCount(height, spacing, rowHeight+spacing)
	cols := gridCount(width, spacing, tileSize+spacing)

	tiles := make([]Tile, 0, rows*cols)
	for row := 0; row < rows; row++ {
		y := float64(row)*tileSize*math.Sin(math.Pi/3) + spacing
		for col := 0; col < cols; col++ {
			tiles = append(tiles, Tile{
				Shape:    Rhombus,
				Row:      row,
				Col:      col,
				X:        float64(col)*tileSize + float64(row%2)*(tileSize/2) + spacing,
				Y:        y,
				Size:     tileSize,
				Rotation: rng.NextFloat(0, 360),
				Angle:    RhombusAngle,
			})
		}
	}
	return tiles
}
