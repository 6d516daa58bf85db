package tessellate

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig(shape string) *Config {
	cfg := DefaultConfig()
	cfg.Shape = shape
	cfg.WidthMM = 60
	cfg.HeightMM = 40
	cfg.TileSizeMM = 8
	cfg.SpacingMM = 1
	return cfg
}

func TestNewDocument(t *testing.T) {
	cfg := smallConfig("square")
	tiles := cfg.Generate()
	doc := NewDocument(cfg, tiles)

	assert.Equal(t, "60mm", doc.Width)
	assert.Equal(t, "40mm", doc.Height)
	assert.True(t, strings.HasPrefix(doc.ViewBox, "0 0 226.77"), doc.ViewBox)
	require.Equal(t, len(tiles), len(doc.Groups))

	g := doc.Groups[0]
	assert.Equal(t, "0-0", g.ID)
	require.NotNil(t, g.Rect)
	assert.Nil(t, g.Polygon)
	assert.Equal(t, tiles[0].Color, g.Rect.Fill)
	assert.Equal(t, "#ffffff", g.Rect.Stroke)
	assert.Equal(t, "0.5", g.Rect.StrokeWidth)

	p := tiles[0].Pivot()
	assert.Equal(t,
		fmt.Sprintf("translate(%s,%s) rotate(%s %s %s)", num(tiles[0].X), num(tiles[0].Y), num(tiles[0].Rotation), num(p.X), num(p.Y)),
		g.Transform,
	)
}

func TestNewDocumentPolygons(t *testing.T) {
	for _, shape := range []string{"triangle", "hexagon", "rhombus"} {
		cfg := smallConfig(shape)
		cfg.ColorMode = "hsv"
		tiles := cfg.Generate()
		doc := NewDocument(cfg, tiles)

		require.NotEmpty(t, doc.Groups, shape)
		for i, g := range doc.Groups {
			require.NotNil(t, g.Polygon, shape)
			assert.Equal(t, "hsv(0, 0%, 100%)", g.Polygon.Stroke)
			assert.True(t, strings.HasPrefix(g.Polygon.Fill, "hsv("))

			pts, err := g.Outline()
			require.Nil(t, err)
			want := tiles[i].Outline()
			require.Equal(t, len(want), len(pts))
			for j := range want {
				assert.InDelta(t, want[j].X, pts[j].X, 1e-9)
				assert.InDelta(t, want[j].Y, pts[j].Y, 1e-9)
			}
		}
	}
}

func TestDocumentEncodeDecode(t *testing.T) {
	cfg := smallConfig("hexagon")
	cfg.Colors = []string{"#ff0000", "#00ff00", "#0000ff"}
	cfg.PaletteName = "rgb"

	doc := Render(cfg)
	props := NewProperties()
	props.SetString("author", "ana")
	props.SetInt("edition", 4)
	doc.SetProperties(props)

	buf := bytes.Buffer{}
	require.Nil(t, doc.Encode(&buf))
	assert.True(t, strings.HasPrefix(buf.String(), "<?xml"))
	assert.Contains(t, buf.String(), `xmlns="http://www.w3.org/2000/svg"`)

	back, err := Decode(&buf)
	require.Nil(t, err)
	assert.Equal(t, len(doc.Groups), len(back.Groups))
	assert.Equal(t, doc.Groups[3], back.Groups[3])
	assert.Equal(t, props, back.Properties())

	got, err := back.Config()
	require.Nil(t, err)
	assert.Equal(t, cfg, got)

	// regenerating from the file gives the same artwork
	assert.Equal(t, cfg.Generate(), got.Generate())
	assert.Equal(t, len(doc.Groups), back.Metadata.Source.Tiles)
}

func TestDocumentZeroTileSize(t *testing.T) {
	cfg := smallConfig("square")
	cfg.TileSizeMM = 0

	buf := bytes.Buffer{}
	require.Nil(t, Render(cfg).Encode(&buf))

	back, err := Decode(&buf)
	require.Nil(t, err)
	got, err := back.Config()
	require.Nil(t, err)

	assert.Equal(t, 0.0, got.TileSizeMM)
	assert.Empty(t, got.Generate())
}

func TestDocumentWriteOpen(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "art.svg")
	cfg := smallConfig("rhombus")

	require.Nil(t, Render(cfg).WriteFile(fname))

	doc, err := Open(fname)
	require.Nil(t, err)
	got, err := doc.Config()
	require.Nil(t, err)
	assert.Equal(t, cfg, got)
}

func TestDecodeRejectsOtherXML(t *testing.T) {
	_, err := Decode(strings.NewReader(`<map width="1"></map>`))
	assert.NotNil(t, err)

	doc, err := Decode(strings.NewReader(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`))
	require.Nil(t, err)
	_, err = doc.Config()
	assert.NotNil(t, err)
}

func TestExportName(t *testing.T) {
	at := time.Unix(1700000000, 123000000)
	assert.Equal(t, "generative-art-hexagon-1700000000123.svg", ExportName("hexagon", at))
}
