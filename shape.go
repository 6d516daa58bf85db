package tessellate

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Shape is the kind of tessellation (and so the kind of each tile in it).
type Shape int

const (
	Square Shape = iota
	Triangle
	Hexagon
	Rhombus

	// Kagome & Penrose can be selected but are drawn with the square
	// generator.
	Kagome
	Penrose
)

// RhombusAngle is the interior angle (degrees) of every rhombus tile.
const RhombusAngle = 60.0

// ErrUnknownShape is returned (wrapped) by ParseShape for names we don't know.
var ErrUnknownShape = errors.New("unknown tessellation type")

var shapeNames = []string{"square", "triangle", "hexagon", "rhombus", "kagome", "penrose"}

var shapeTitles = []string{"Square Grid", "Triangular", "Hexagonal", "Rhombus", "Kagome", "Penrose-like"}

// Shapes returns every selectable shape, in menu order.
func Shapes() []Shape {
	return []Shape{Square, Triangle, Hexagon, Rhombus, Kagome, Penrose}
}

// ParseShape reads a shape by name (case insensitive).
// Unknown names give Square along with an error wrapping ErrUnknownShape;
// callers that want the lenient behaviour can ignore the error.
func ParseShape(name string) (Shape, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, s := range shapeNames {
		if s == n {
			return Shape(i), nil
		}
	}
	return Square, fmt.Errorf("%w: %q", ErrUnknownShape, name)
}

func (s Shape) String() string {
	if s < 0 || int(s) >= len(shapeNames) {
		return shapeNames[Square]
	}
	return shapeNames[s]
}

// Title is the human readable name of the shape.
func (s Shape) Title() string {
	if s < 0 || int(s) >= len(shapeTitles) {
		return shapeTitles[Square]
	}
	return shapeTitles[s]
}

// Implemented reports if the shape has its own generator.
func (s Shape) Implemented() bool {
	return s >= Square && s <= Rhombus
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Shape) UnmarshalText(b []byte) error {
	v, err := ParseShape(string(b))
	*s = v
	return err
}

// Tile is a single placed shape.
//
// Fields that don't apply to a shape are left zero: Radius is only set on
// hexagons, Size on everything else, Orientation on triangles & Angle on
// rhombi.
type Tile struct {
	Shape Shape `json:"shape"`

	// grid cell this tile was generated from, forms the ID
	Row int `json:"row"`
	Col int `json:"col"`

	// top left anchor in px
	X float64 `json:"x"`
	Y float64 `json:"y"`

	Size   float64 `json:"size,omitempty"`
	Radius float64 `json:"radius,omitempty"`

	// degrees, purely visual
	Rotation float64 `json:"rotation"`

	Orientation int     `json:"orientation,omitempty"`
	Angle       float64 `json:"angle,omitempty"`

	// set by the colour engine
	Color   string  `json:"color,omitempty"`
	Opacity float64 `json:"opacity,omitempty"`
}

// ID is "{row}-{col}", unique within one generated set.
func (t Tile) ID() string {
	return fmt.Sprintf("%d-%d", t.Row, t.Col)
}

// Point is a 2D point in px.
type Point struct {
	X float64
	Y float64
}

// Outline returns the tile's vertices relative to its anchor (X,Y),
// before rotation.
func (t Tile) Outline() []Point {
	switch t.Shape {
	case Triangle:
		s := t.Size
		return []Point{{s / 2, 0}, {s, s}, {0, s}}
	case Hexagon:
		r := t.Radius
		pts := make([]Point, 6)
		for i := range pts {
			a := math.Pi / 3 * float64(i)
			pts[i] = Point{r + r*math.Cos(a), r + r*math.Sin(a)}
		}
		return pts
	case Rhombus:
		s := t.Size
		a := t.Angle * math.Pi / 180
		h := s * math.Sin(a)
		c := s * math.Cos(math.Pi-a)
		return []Point{{0, 0}, {s, 0}, {s + c, h}, {c, h}}
	default:
		s := t.Size
		return []Point{{0, 0}, {s, 0}, {s, s}, {0, s}}
	}
}

// Pivot is the point (relative to the anchor) the tile rotates around.
func (t Tile) Pivot() Point {
	switch t.Shape {
	case Hexagon:
		return Point{t.Radius, t.Radius}
	case Rhombus:
		h := t.Size * math.Sin(t.Angle*math.Pi/180)
		return Point{t.Size / 2, h / 2}
	default:
		return Point{t.Size / 2, t.Size / 2}
	}
}
