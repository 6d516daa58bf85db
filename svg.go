/* this file is a simplified set of structs for reading & writing SVG files.

We only need a small part of SVG to draw tessellations so we only bother to
read / write those things:
- a single root <svg> sized in mm with a px viewBox
- one <g> per tile carrying the translate / rotate transform
- a <rect> (squares) or <polygon> (everything else) inside each group
- a <metadata> block holding what's needed to regenerate the artwork
*/
package tessellate

import (
	"encoding/xml"
	"strconv"
	"strings"
)

const svgNS = "http://www.w3.org/2000/svg"

// SVG is the root element of an exported document.
type SVG struct {
	XMLName  xml.Name  `xml:"svg"`
	Xmlns    string    `xml:"xmlns,attr"`
	Width    string    `xml:"width,attr"`  // eg. "210mm"
	Height   string    `xml:"height,attr"` // eg. "297mm"
	ViewBox  string    `xml:"viewBox,attr"`
	Metadata *Metadata `xml:"metadata"`
	Groups   []*Group  `xml:"g"`
}

// Metadata records how the document was generated.
type Metadata struct {
	Source     *Source     `xml:"tessellation"`
	Properties []*Property `xml:"properties>property"`
}

// Source is a Config flattened into attributes.
type Source struct {
	Shape       string  `xml:"shape,attr"`
	WidthMM     float64 `xml:"width-mm,attr"`
	HeightMM    float64 `xml:"height-mm,attr"`
	TileSizeMM  float64 `xml:"tile-size-mm,attr"`
	SpacingMM   float64 `xml:"spacing-mm,attr"`
	Seed        int64   `xml:"seed,attr"`
	Palette     string  `xml:"palette,attr"`
	PaletteName string  `xml:"palette-name,attr,omitempty"`
	Colors      string  `xml:"colors,attr,omitempty"` // space separated
	ColorMode   string  `xml:"color-mode,attr"`
	MaxTiles    int     `xml:"max-tiles,attr"`
	Tiles       int     `xml:"tiles,attr"`
}

// Property is one key / value / type triple of user metadata.
type Property struct {
	Name  string `xml:"name,attr"`
	Value string `xml:"value,attr"`
	Type  string `xml:"type,attr"` // string (default), int, bool
}

// Group wraps a single tile shape & positions it.
type Group struct {
	ID        string   `xml:"id,attr,omitempty"`
	Transform string   `xml:"transform,attr"`
	Rect      *Rect    `xml:"rect"`
	Polygon   *Polygon `xml:"polygon"`
}

// Paint holds the presentation attributes shared by all shapes.
type Paint struct {
	Fill        string `xml:"fill,attr"`
	Stroke      string `xml:"stroke,attr"`
	StrokeWidth string `xml:"stroke-width,attr"`
	Opacity     string `xml:"opacity,attr"`
}

// Rect is an SVG <rect>
type Rect struct {
	X      string `xml:"x,attr"`
	Y      string `xml:"y,attr"`
	Width  string `xml:"width,attr"`
	Height string `xml:"height,attr"`
	Paint
}

// Polygon is an SVG <polygon>
type Polygon struct {
	Points string `xml:"points,attr"`
	Paint
}

// num formats a float the short way, without exponents.
func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// encodePoints turns vertices into the "x,y x,y ..." form.
func encodePoints(pts []Point) string {
	out := make([]string, len(pts))
	for i, p := range pts {
		out[i] = num(p.X) + "," + num(p.Y)
	}
	return strings.Join(out, " ")
}

// decodePoints reads "x,y x,y ..." back into vertices.
func decodePoints(in string) ([]Point, error) {
	fields := strings.Fields(in)
	pts := make([]Point, 0, len(fields))
	for _, f := range fields {
		xy := strings.SplitN(f, ",", 2)
		if len(xy) != 2 {
			return nil, &xml.SyntaxError{Msg: "bad polygon point " + f}
		}
		x, err := strconv.ParseFloat(xy[0], 64)
		if err != nil {
			return nil, err
		}
		y, err := strconv.ParseFloat(xy[1], 64)
		if err != nil {
			return nil, err
		}
		pts = append(pts, Point{x, y})
	}
	return pts, nil
}
