/* file adds helper functions to our SVG document wrapper struct.
 */
package tessellate

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
)

const strokeWidth = "0.5"

// Document is an exported tessellation.
type Document struct {
	SVG
}

// NewDocument renders the given tiles onto a page described by cfg.
// cfg is recorded in the document metadata so it can be regenerated later.
func NewDocument(cfg *Config, tiles []Tile) *Document {
	d := &Document{SVG{
		Xmlns:   svgNS,
		Width:   num(cfg.WidthMM) + "mm",
		Height:  num(cfg.HeightMM) + "mm",
		ViewBox: fmt.Sprintf("0 0 %s %s", num(MMToPx(cfg.WidthMM)), num(MMToPx(cfg.HeightMM))),
		Metadata: &Metadata{
			Source:     newSource(cfg, len(tiles)),
			Properties: []*Property{},
		},
		Groups: make([]*Group, 0, len(tiles)),
	}}

	stroke := StrokeColor(ParseColorMode(cfg.ColorMode))
	for _, t := range tiles {
		d.Groups = append(d.Groups, tileGroup(t, stroke))
	}
	return d
}

// Render generates cfg's tiles & renders them into a document.
func Render(cfg *Config) *Document {
	return NewDocument(cfg, cfg.Generate())
}

func newSource(cfg *Config, tiles int) *Source {
	return &Source{
		Shape:       cfg.Shape,
		WidthMM:     cfg.WidthMM,
		HeightMM:    cfg.HeightMM,
		TileSizeMM:  cfg.TileSizeMM,
		SpacingMM:   cfg.SpacingMM,
		Seed:        cfg.Seed,
		Palette:     cfg.Palette,
		PaletteName: cfg.PaletteName,
		Colors:      strings.Join(cfg.Colors, " "),
		ColorMode:   cfg.ColorMode,
		MaxTiles:    cfg.MaxTiles,
		Tiles:       tiles,
	}
}

// tileGroup maps a tile to its SVG shape.
func tileGroup(t Tile, stroke string) *Group {
	pivot := t.Pivot()
	g := &Group{
		ID: t.ID(),
		Transform: fmt.Sprintf(
			"translate(%s,%s) rotate(%s %s %s)",
			num(t.X), num(t.Y), num(t.Rotation), num(pivot.X), num(pivot.Y),
		),
	}
	paint := Paint{
		Fill:        t.Color,
		Stroke:      stroke,
		StrokeWidth: strokeWidth,
		Opacity:     num(t.Opacity),
	}

	switch t.Shape {
	case Triangle, Hexagon, Rhombus:
		g.Polygon = &Polygon{Points: encodePoints(t.Outline()), Paint: paint}
	default:
		g.Rect = &Rect{X: "0", Y: "0", Width: num(t.Size), Height: num(t.Size), Paint: paint}
	}
	return g
}

// Outline returns the vertices of the group's shape (before its transform).
func (g *Group) Outline() ([]Point, error) {
	if g.Polygon != nil {
		return decodePoints(g.Polygon.Points)
	}
	if g.Rect != nil {
		return decodePoints(fmt.Sprintf("%s,%s %s,%s %s,%s %s,%s",
			g.Rect.X, g.Rect.Y,
			g.Rect.Width, g.Rect.Y,
			g.Rect.Width, g.Rect.Height,
			g.Rect.X, g.Rect.Height,
		))
	}
	return nil, fmt.Errorf("group %s has no shape", g.ID)
}

// Config returns the config the document was generated from.
func (d *Document) Config() (*Config, error) {
	if d.Metadata == nil || d.Metadata.Source == nil {
		return nil, fmt.Errorf("document has no tessellation metadata")
	}
	s := d.Metadata.Source
	cfg := &Config{
		Shape:       s.Shape,
		WidthMM:     s.WidthMM,
		HeightMM:    s.HeightMM,
		TileSizeMM:  s.TileSizeMM,
		SpacingMM:   s.SpacingMM,
		Seed:        s.Seed,
		Palette:     s.Palette,
		PaletteName: s.PaletteName,
		Colors:      strings.Fields(s.Colors),
		ColorMode:   s.ColorMode,
		MaxTiles:    s.MaxTiles,
	}
	if len(cfg.Colors) == 0 {
		cfg.Colors = nil
	}
	cfg.defaults()
	return cfg, nil
}

// Properties returns user properties set on the document
func (d *Document) Properties() *Properties {
	if d.Metadata == nil {
		return NewProperties()
	}
	return newPropertiesFromList(d.Metadata.Properties)
}

// SetProperties sets user properties on the document
func (d *Document) SetProperties(in *Properties) {
	if d.Metadata == nil {
		d.Metadata = &Metadata{}
	}
	d.Metadata.Properties = in.toList()
}

// Encode the document as XML to a io.Writer stream
func (d *Document) Encode(w io.Writer) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(&d.SVG); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// Decode an input SVG written by Encode
func Decode(r io.Reader) (*Document, error) {
	d := &Document{}
	if err := xml.NewDecoder(r).Decode(&d.SVG); err != nil {
		return nil, err
	}
	if d.SVG.XMLName.Local != "svg" {
		return nil, fmt.Errorf("not an svg document: <%s>", d.SVG.XMLName.Local)
	}
	// the namespace is carried by Xmlns, keeping it here too would write it twice
	d.SVG.XMLName = xml.Name{Local: "svg"}
	return d, nil
}

// Open reads an SVG from disk. A leading ~ in fname is expanded.
func Open(fname string) (*Document, error) {
	fpath, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(fpath)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}

// WriteFile writes the document to disk. A leading ~ in fname is expanded.
func (d *Document) WriteFile(fname string) error {
	fpath, err := homedir.Expand(fname)
	if err != nil {
		return err
	}
	buff := bytes.Buffer{}
	err = d.Encode(&buff)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, buff.Bytes(), 0644)
}

// ExportName is the default file name for an exported artwork.
func ExportName(shape string, at time.Time) string {
	return fmt.Sprintf("generative-art-%s-%d.svg", shape, at.UnixNano()/int64(time.Millisecond))
}
