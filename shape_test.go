package tessellate

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShape(t *testing.T) {
	for _, s := range Shapes() {
		got, err := ParseShape(s.String())
		assert.Nil(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseShape(" Hexagon ")
	assert.Nil(t, err)
	assert.Equal(t, Hexagon, got)

	got, err = ParseShape("hexgon")
	assert.True(t, errors.Is(err, ErrUnknownShape))
	assert.Equal(t, Square, got)
}

func TestShapeImplemented(t *testing.T) {
	assert.True(t, Rhombus.Implemented())
	assert.False(t, Kagome.Implemented())
	assert.False(t, Penrose.Implemented())
	assert.Equal(t, "Penrose-like", Penrose.Title())
}

func TestShapeTitleFromName(t *testing.T) {
	// what the commands print for stored & typed shape names
	for name, title := range map[string]string{
		"square":  "Square Grid",
		"hexagon": "Hexagonal",
		"kagome":  Kagome.Title(),
		"hexgon":  "Square Grid",
	} {
		s, _ := ParseShape(name)
		assert.Equal(t, title, s.Title(), name)
	}

	s, err := ParseShape("kagome")
	assert.Nil(t, err)
	assert.False(t, s.Implemented())
	assert.NotEqual(t, s.String(), s.Title())
}

func TestShapeText(t *testing.T) {
	b, err := Triangle.MarshalText()
	assert.Nil(t, err)
	assert.Equal(t, "triangle", string(b))

	var s Shape
	assert.Nil(t, s.UnmarshalText([]byte("rhombus")))
	assert.Equal(t, Rhombus, s)
}

func TestOutlines(t *testing.T) {
	tri := Tile{Shape: Triangle, Size: 10}
	assert.Equal(t, []Point{{5, 0}, {10, 10}, {0, 10}}, tri.Outline())
	assert.Equal(t, Point{5, 5}, tri.Pivot())

	hex := Tile{Shape: Hexagon, Radius: 10}
	pts := hex.Outline()
	assert.Equal(t, 6, len(pts))
	assert.InDelta(t, 20, pts[0].X, 1e-9)
	assert.InDelta(t, 10, pts[0].Y, 1e-9)
	assert.InDelta(t, 0, pts[3].X, 1e-9)
	assert.Equal(t, Point{10, 10}, hex.Pivot())

	rh := Tile{Shape: Rhombus, Size: 10, Angle: 60}
	pts = rh.Outline()
	h := 10 * math.Sin(math.Pi/3)
	assert.Equal(t, Point{0, 0}, pts[0])
	assert.Equal(t, Point{10, 0}, pts[1])
	assert.InDelta(t, 5, pts[2].X, 1e-9)
	assert.InDelta(t, h, pts[2].Y, 1e-9)
	assert.InDelta(t, -5, pts[3].X, 1e-9)
	assert.InDelta(t, h/2, rh.Pivot().Y, 1e-9)

	sq := Tile{Shape: Square, Size: 4}
	assert.Equal(t, []Point{{0, 0}, {4, 0}, {4, 4}, {0, 4}}, sq.Outline())
}
