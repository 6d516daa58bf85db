package tessellate

import (
	"bytes"
	"image"
	"image/png"
	"math"

	"github.com/fogleman/gg"
	"github.com/mitchellh/go-homedir"
	"github.com/nfnt/resize"
)

// Rasterize draws tiles onto a transparent image the size of cfg's page,
// scale px per px (1 = 96 DPI).
// The geometry & transforms are the same as the SVG export.
func Rasterize(cfg *Config, tiles []Tile, scale float64) image.Image {
	if !(scale > 0) {
		scale = 1
	}
	w := int(math.Ceil(MMToPx(cfg.WidthMM) * scale))
	h := int(math.Ceil(MMToPx(cfg.HeightMM) * scale))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dc := gg.NewContext(w, h)
	dc.Scale(scale, scale)
	dc.SetLineWidth(0.5)

	for _, t := range tiles {
		drawTile(dc, t)
	}
	return dc.Image()
}

// drawTile fills & strokes one tile. Colours we can't read are drawn black.
func drawTile(dc *gg.Context, t Tile) {
	pts := t.Outline()
	if len(pts) == 0 {
		return
	}
	pivot := t.Pivot()

	dc.Push()
	defer dc.Pop()

	dc.Translate(t.X, t.Y)
	dc.RotateAbout(gg.Radians(t.Rotation), pivot.X, pivot.Y)

	dc.NewSubPath()
	dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		dc.LineTo(p.X, p.Y)
	}
	dc.ClosePath()

	fill, _ := ParseColor(t.Color) // zero value is black
	dc.SetRGBA(fill.R, fill.G, fill.B, t.Opacity)
	dc.FillPreserve()

	dc.SetRGBA(1, 1, 1, t.Opacity)
	dc.Stroke()
}

// Thumbnail shrinks img to fit within max x max, keeping the aspect ratio.
// Images already small enough are returned as is.
func Thumbnail(img image.Image, max uint) image.Image {
	return resize.Thumbnail(max, max, img, resize.Lanczos3)
}

// EncodePNG encodes img as png bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	buff := new(bytes.Buffer)
	if err := png.Encode(buff, img); err != nil {
		return nil, err
	}
	return buff.Bytes(), nil
}

// SavePNG writes img to disk. A leading ~ in fpath is expanded.
func SavePNG(fpath string, img image.Image) error {
	p, err := homedir.Expand(fpath)
	if err != nil {
		return err
	}
	return gg.SavePNG(p, img)
}
