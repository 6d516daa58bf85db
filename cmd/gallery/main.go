package main

import (
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tessellate"
)

const desc = `Lists, re-renders and manages artworks saved in a gallery database file.

Saved artworks hold only their generation config, so 'render' regenerates the exact same tiles.`

var cli struct {
	// where to find the gallery database file
	Input   string `short:"i" required:"" help:"gallery database file (required)"`
	Verbose bool   `short:"v" help:"debug logging"`

	List struct{} `cmd:"" help:"list saved artworks"`

	Render struct {
		ID     string  `arg:"" help:"artwork id"`
		Output string  `short:"o" help:"where to write the svg. Defaults to <id>.svg. Overwrites output file if it exists."`
		PNG    string  `help:"also write a png here"`
		Scale  float64 `default:"1" help:"png px per svg px"`
		Thumb  string  `help:"write the stored thumbnail here"`
	} `cmd:"" help:"regenerate an artwork as svg (and png)"`

	Delete struct {
		ID string `arg:"" help:"artwork id"`
	} `cmd:"" help:"delete an artwork"`

	Props struct {
		ID  string            `arg:"" help:"artwork id"`
		Set map[string]string `short:"p" help:"set (merge) properties"`
	} `cmd:"" help:"show or set artwork properties"`
}

func main() {
	ctx := kong.Parse(&cli, kong.Name("gallery"), kong.Description(desc))

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if !fileExists(cli.Input) {
		log.Error("input file not found", "path", cli.Input)
		os.Exit(1)
	}

	g, err := tessellate.OpenGallery(cli.Input)
	if err != nil {
		log.Error("opening gallery", "err", err)
		os.Exit(1)
	}
	defer g.Close()

	switch ctx.Command() {
	case "list":
		err = list(g)
	case "render <id>":
		err = render(g, log)
	case "delete <id>":
		err = g.Delete(cli.Delete.ID)
		if err == nil {
			log.Info("deleted", "id", cli.Delete.ID)
		}
	case "props <id>":
		err = props(g)
	default:
		err = fmt.Errorf("unknown command %q", ctx.Command())
	}
	if err != nil {
		log.Error(ctx.Command(), "err", err)
		g.Close()
		os.Exit(1)
	}
}

func list(g *tessellate.Gallery) error {
	arts, err := g.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSHAPE\tSEED\tTILES\tCREATED")
	for _, a := range arts {
		shape, _ := tessellate.ParseShape(a.Config.Shape)
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%s\n", a.ID, a.Name, shape.Title(), a.Config.Seed, a.Tiles, a.Created.Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func render(g *tessellate.Gallery, log *slog.Logger) error {
	a, err := g.Load(cli.Render.ID)
	if err != nil {
		return err
	}
	props, err := g.Properties(a.ID)
	if err != nil {
		return err
	}

	out := cli.Render.Output
	if out == "" {
		out = a.ID + ".svg"
	}

	tiles := a.Config.Generate()
	doc := tessellate.NewDocument(a.Config, tiles)
	doc.SetProperties(props)
	if err := doc.WriteFile(out); err != nil {
		return err
	}
	log.Info("wrote svg", "path", out, "tiles", len(tiles))

	if cli.Render.PNG != "" {
		if err := tessellate.SavePNG(cli.Render.PNG, tessellate.Rasterize(a.Config, tiles, cli.Render.Scale)); err != nil {
			return err
		}
		log.Info("wrote png", "path", cli.Render.PNG)
	}

	if cli.Render.Thumb != "" {
		if len(a.Thumbnail) == 0 {
			log.Warn("artwork has no thumbnail", "id", a.ID)
		} else if err := os.WriteFile(cli.Render.Thumb, a.Thumbnail, 0644); err != nil {
			return err
		}
	}
	return nil
}

func props(g *tessellate.Gallery) error {
	if len(cli.Props.Set) > 0 {
		p := tessellate.NewProperties()
		for k, v := range cli.Props.Set {
			p.Parse(k, v)
		}
		if err := g.SetProperties(cli.Props.ID, p); err != nil {
			return err
		}
	}

	p, err := g.Properties(cli.Props.ID)
	if err != nil {
		return err
	}
	for _, k := range p.Keys() {
		if v, ok := p.Int(k); ok {
			fmt.Printf("%s=%d\n", k, v)
		} else if v, ok := p.Bool(k); ok {
			fmt.Printf("%s=%v\n", k, v)
		} else {
			v, _ := p.String(k)
			fmt.Printf("%s=%s\n", k, v)
		}
	}
	return nil
}

// fileExists checks if file exists
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
