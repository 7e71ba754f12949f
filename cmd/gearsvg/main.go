// Command gearsvg writes a gear as a standalone SVG document.
//
// Settings are taken from the built-in defaults, then from an optional TOML
// file given with -config, then from flags:
//
//	radius = 90
//	inner_radius = 45
//	center_x = 100
//	center_y = 100
//	rotation = 216
//	groove_count = 10
//	groove_depth = 0.4
//	width_proportion = 0.2
//	cutoff = 4
//	fill = "#333"
//	stroke = "none"
//	precision = 3
//	size = 200
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/pelletier/go-toml/v2"

	"honnef.co/go/gear"
)

type config struct {
	Radius          float64 `toml:"radius"`
	InnerRadius     float64 `toml:"inner_radius"`
	CenterX         float64 `toml:"center_x"`
	CenterY         float64 `toml:"center_y"`
	Rotation        float64 `toml:"rotation"`
	GrooveCount     int     `toml:"groove_count"`
	GrooveDepth     float64 `toml:"groove_depth"`
	WidthProportion float64 `toml:"width_proportion"`
	Cutoff          int     `toml:"cutoff"`

	Fill      string  `toml:"fill"`
	Stroke    string  `toml:"stroke"`
	Precision uint    `toml:"precision"`
	Size      float64 `toml:"size"`
}

func defaultConfig() config {
	s := gear.DefaultSettings()
	return config{
		Radius:          s.Radius,
		InnerRadius:     s.InnerRadius,
		CenterX:         s.Center.X,
		CenterY:         s.Center.Y,
		Rotation:        s.Rotation,
		GrooveCount:     s.GrooveCount,
		GrooveDepth:     s.GrooveDepth,
		WidthProportion: s.WidthProportion,
		Cutoff:          s.Cutoff,
		Fill:            "#333",
		Stroke:          "none",
		Precision:       3,
		Size:            200,
	}
}

func (cfg config) settings() gear.Settings {
	return gear.Settings{
		Radius:          cfg.Radius,
		InnerRadius:     cfg.InnerRadius,
		Center:          gear.Pt(cfg.CenterX, cfg.CenterY),
		Rotation:        cfg.Rotation,
		GrooveCount:     cfg.GrooveCount,
		GrooveDepth:     cfg.GrooveDepth,
		WidthProportion: cfg.WidthProportion,
		Cutoff:          cfg.Cutoff,
	}
}

func loadConfig(path string, cfg *config) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("decoding %s: %w", path, err)
	}
	return nil
}

func run(args []string, stdout, stderr io.Writer) error {
	cfg := defaultConfig()

	fs := flag.NewFlagSet("gearsvg", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "TOML settings file")
		output     = fs.String("o", "", "output file (default stdout)")
		verbose    = fs.Bool("v", false, "log debug information to stderr")
	)
	fs.Float64Var(&cfg.Radius, "radius", cfg.Radius, "outer radius")
	fs.Float64Var(&cfg.InnerRadius, "inner-radius", cfg.InnerRadius, "bore radius")
	fs.Float64Var(&cfg.CenterX, "cx", cfg.CenterX, "center x")
	fs.Float64Var(&cfg.CenterY, "cy", cfg.CenterY, "center y")
	fs.Float64Var(&cfg.Rotation, "rotation", cfg.Rotation, "rotation in degrees")
	fs.IntVar(&cfg.GrooveCount, "grooves", cfg.GrooveCount, "number of grooves")
	fs.Float64Var(&cfg.GrooveDepth, "depth", cfg.GrooveDepth, "groove depth, 0 to 1")
	fs.Float64Var(&cfg.WidthProportion, "width", cfg.WidthProportion, "spike to groove width proportion, -1 to 1")
	fs.IntVar(&cfg.Cutoff, "cutoff", cfg.Cutoff, "number of grooves to draw before truncating")
	fs.StringVar(&cfg.Fill, "fill", cfg.Fill, "fill style")
	fs.StringVar(&cfg.Stroke, "stroke", cfg.Stroke, "stroke style")
	fs.UintVar(&cfg.Precision, "precision", cfg.Precision, "decimal digits of coordinates")
	fs.Float64Var(&cfg.Size, "size", cfg.Size, "width and height of the document")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			return err
		}
		// Explicit flags take precedence over the file.
		if err := fs.Parse(args); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	gear.SetLogger(logger)

	s := cfg.settings()
	if s.GrooveCount < 1 {
		return fmt.Errorf("groove count must be at least 1, got %d", s.GrooveCount)
	}
	logger.Debug("settings", slog.Any("settings", s), slog.Bool("truncated", s.Truncated()))

	if *output == "" {
		if err := writeDocument(stdout, cfg); err != nil {
			return fmt.Errorf("writing SVG: %w", err)
		}
		return nil
	}

	f, err := os.Create(*output)
	if err != nil {
		return err
	}
	err = writeDocument(f, cfg)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", *output, err)
	}
	logger.Info("wrote gear", slog.String("file", *output))
	return nil
}

func writeDocument(w io.Writer, cfg config) error {
	size := gear.FormatNumber(cfg.Size, -1)
	if _, err := fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n", size, size, size, size); err != nil {
		return err
	}
	p := gear.Generate(cfg.settings(), cfg.Fill, cfg.Stroke)
	prec := int(min(cfg.Precision, gear.MaxPrecision))
	if err := p.WriteSVG(w, gear.SVGOptions{Precision: prec}); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n</svg>\n")
	return err
}

func main() {
	log.SetFlags(0)
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
		// Usage has been printed by the flag set.
	default:
		log.Fatalf("gearsvg: %v", err)
	}
}
