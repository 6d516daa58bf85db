package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tessellate"
)

const desc = `Generates a seeded tessellation (square, triangle, hexagon, rhombus) and exports it as SVG.

The same parameters always produce exactly the same artwork. Lengths are given in mm; the SVG is sized
in mm with a 96 DPI px viewBox. Generation parameters are embedded in the SVG metadata so an exported
file can be regenerated later (see 'preview').`

var cli struct {
	// optional yaml config, flags given explicitly override it
	Config string `short:"c" help:"yaml config file to start from"`

	Shape    string  `short:"t" default:"square" help:"tessellation type: square, triangle, hexagon, rhombus (kagome, penrose draw as square)"`
	Page     string  `help:"paper size preset (a4, a3), overrides width & height"`
	Width    float64 `short:"W" default:"210" help:"canvas width in mm"`
	Height   float64 `short:"H" default:"297" help:"canvas height in mm"`
	TileSize float64 `short:"s" default:"10" help:"tile size in mm"`
	Spacing  float64 `default:"2" help:"gap between tiles in mm"`
	Seed     int64   `default:"12345" help:"random seed"`

	Palette   string   `default:"ocean" help:"preset palette name"`
	Colors    []string `help:"custom palette colours (#rrggbb), overrides --palette"`
	ColorMode string   `short:"m" default:"hex" help:"colour encoding: hex or hsv"`
	MaxTiles  int      `default:"5000" help:"tile budget, larger tessellations are thinned"`

	// where to write things
	Out     string  `short:"o" help:"output svg, defaults to generative-art-<type>-<ms>.svg"`
	PNG     string  `help:"also write a png preview here"`
	Scale   float64 `default:"1" help:"png px per svg px"`
	Gallery string  `short:"g" help:"also save into this gallery database"`
	Name    string  `short:"n" default:"untitled" help:"name used when saving to a gallery"`

	// set properties on the artwork
	Props map[string]string `short:"p" help:"set props on resulting artwork"`

	// write the final merged config out as yaml
	WriteConfig string `help:"write the final config as yaml here"`

	Overwrite bool `help:"overwrite existing file(s) if found"`
	Strict    bool `help:"fail on unknown tessellation types instead of drawing squares"`
	DryRun    bool `help:"print out what you're planning"`
	Verbose   bool `short:"v" help:"debug logging"`
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("tessellate"),
		kong.Description(desc),
	)

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(ctx, log); err != nil {
		log.Error("tessellate failed", "err", err)
		os.Exit(1)
	}
}

func run(ctx *kong.Context, log *slog.Logger) error {
	cfg, err := buildConfig(ctx)
	if err != nil {
		return err
	}

	shape, err := tessellate.ParseShape(cfg.Shape)
	if err != nil {
		if cli.Strict {
			return err
		}
		log.Warn("drawing squares instead", "err", err)
	} else if !shape.Implemented() {
		log.Warn("no generator for shape, drawing squares instead", "shape", shape.Title())
	}

	tiles := cfg.Generate()
	props := parseProps()

	out := cli.Out
	if out == "" {
		out = tessellate.ExportName(cfg.Shape, time.Now())
	}

	log.Info("generated",
		"shape", shape.Title(),
		"page_mm", fmt.Sprintf("%gx%g", cfg.WidthMM, cfg.HeightMM),
		"seed", cfg.Seed,
		"palette", cfg.ResolvePalette().Name,
		"tiles", len(tiles),
	)
	log.Debug("artwork properties", "keys", props.Keys())

	if cli.DryRun {
		log.Info("dry-run detected: doing nothing", "would_write", out)
		return nil
	}

	if cli.WriteConfig != "" {
		if err := cfg.WriteFile(cli.WriteConfig); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	doc := tessellate.NewDocument(cfg, tiles)
	doc.SetProperties(props)

	if fileExists(out) && !cli.Overwrite {
		log.Warn("skipping svg, file exists", "path", out)
	} else {
		if err := doc.WriteFile(out); err != nil {
			return fmt.Errorf("writing svg: %w", err)
		}
		log.Info("wrote svg", "path", out)
	}

	if cli.PNG == "" && cli.Gallery == "" {
		return nil
	}

	img := tessellate.Rasterize(cfg, tiles, cli.Scale)
	if cli.PNG != "" {
		if fileExists(cli.PNG) && !cli.Overwrite {
			log.Warn("skipping png, file exists", "path", cli.PNG)
		} else {
			if err := tessellate.SavePNG(cli.PNG, img); err != nil {
				return fmt.Errorf("writing png: %w", err)
			}
			log.Info("wrote png", "path", cli.PNG)
		}
	}

	if cli.Gallery != "" {
		thumb, err := tessellate.EncodePNG(tessellate.Thumbnail(img, 256))
		if err != nil {
			return err
		}

		g, err := tessellate.OpenGallery(cli.Gallery)
		if err != nil {
			return fmt.Errorf("opening gallery: %w", err)
		}
		defer g.Close()

		id, err := g.Save(cli.Name, cfg, props, thumb)
		if err != nil {
			return fmt.Errorf("saving to gallery: %w", err)
		}
		log.Info("saved to gallery", "id", id, "db", g.Filename())
	}

	return nil
}

// buildConfig starts from --config (or defaults) and applies any flags the
// user actually passed.
func buildConfig(ctx *kong.Context) (*tessellate.Config, error) {
	cfg := tessellate.DefaultConfig()
	if cli.Config != "" {
		var err error
		cfg, err = tessellate.LoadConfigFile(cli.Config)
		if err != nil {
			return nil, err
		}
	}

	set := explicitFlags(ctx)
	if cli.Config == "" || set["shape"] {
		cfg.Shape = cli.Shape
	}
	if cli.Config == "" || set["width"] {
		cfg.WidthMM = cli.Width
	}
	if cli.Config == "" || set["height"] {
		cfg.HeightMM = cli.Height
	}
	if cli.Config == "" || set["tile-size"] {
		cfg.TileSizeMM = cli.TileSize
	}
	if cli.Config == "" || set["spacing"] {
		cfg.SpacingMM = cli.Spacing
	}
	if cli.Config == "" || set["seed"] {
		cfg.Seed = cli.Seed
	}
	if cli.Config == "" || set["palette"] {
		cfg.Palette = cli.Palette
	}
	if cli.Config == "" || set["color-mode"] {
		cfg.ColorMode = cli.ColorMode
	}
	if cli.Config == "" || set["max-tiles"] {
		cfg.MaxTiles = cli.MaxTiles
	}

	if len(cli.Colors) > 0 {
		p := tessellate.NewPalette("Custom", tessellate.ParseColorMode(cfg.ColorMode))
		for _, c := range cli.Colors {
			if err := p.AddColor(c); err != nil {
				return nil, fmt.Errorf("--colors %s: %w", c, err)
			}
		}
		cfg.PaletteName = p.Name
		cfg.Colors = p.Colors
	}

	if cli.Page != "" {
		w, h, err := tessellate.PageSize(cli.Page)
		if err != nil {
			return nil, err
		}
		cfg.WidthMM, cfg.HeightMM = w, h
	}

	if _, ok := tessellate.Preset(cfg.Palette); !ok && len(cfg.Colors) == 0 {
		return nil, errors.New("unknown palette " + cfg.Palette + ", expected one of " + strings.Join(tessellate.Presets(), ", "))
	}
	return cfg, nil
}

// explicitFlags returns the names of flags given on the command line.
func explicitFlags(ctx *kong.Context) map[string]bool {
	set := map[string]bool{}
	for _, path := range ctx.Path {
		if path.Flag != nil {
			set[path.Flag.Name] = true
		}
	}
	return set
}

// parseProps reads given cli -p --props into a final *Properties
func parseProps() *tessellate.Properties {
	p := tessellate.NewProperties()
	for k, v := range cli.Props {
		p.Parse(k, v)
	}
	return p
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
