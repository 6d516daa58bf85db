package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tessellate"
)

const desc = `Regenerates an exported tessellation SVG from its embedded metadata and writes a png preview.`

var cli struct {
	Input  string  `short:"i" required:"" help:"input svg written by tessellate"`
	Output string  `short:"o" help:"output png, defaults to input with .png"`
	Scale  float64 `default:"1" help:"png px per svg px"`
	Thumb  uint    `help:"shrink the preview to fit in this many px (0: full size)"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("preview"),
		kong.Description(desc),
	)
	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	doc, err := tessellate.Open(cli.Input)
	if err != nil {
		log.Error("reading svg", "path", cli.Input, "err", err)
		os.Exit(1)
	}

	cfg, err := doc.Config()
	if err != nil {
		log.Error("reading svg", "path", cli.Input, "err", err)
		os.Exit(1)
	}

	tiles := cfg.Generate()
	if want := doc.Metadata.Source.Tiles; want != len(tiles) {
		log.Warn("regenerated tile count differs from file", "file", want, "now", len(tiles))
	}

	img := tessellate.Rasterize(cfg, tiles, cli.Scale)
	if cli.Thumb > 0 {
		img = tessellate.Thumbnail(img, cli.Thumb)
	}

	out := cli.Output
	if out == "" {
		out = strings.TrimSuffix(cli.Input, ".svg") + ".png"
	}
	if err := tessellate.SavePNG(out, img); err != nil {
		log.Error("writing png", "path", out, "err", err)
		os.Exit(1)
	}
	log.Info("wrote png", "path", out, "tiles", len(tiles))
}
