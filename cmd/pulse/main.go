// Command pulse renders the PULSE grid animation to PNG frames, an animated
// PNG, or the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/gdamore/tcell/v2"

	pulse "github.com/gogpu/gg-pulse"
	"github.com/gogpu/gg-pulse/export"
	"github.com/gogpu/gg-pulse/preview"
)

func main() {
	var (
		variant = flag.String("variant", pulse.DefaultVariant, "preset: "+strings.Join(pulse.Variants(), ", "))
		width   = flag.Int("width", 1000, "canvas width")
		height  = flag.Int("height", 1000, "canvas height")
		out     = flag.String("out", "", "output directory (png) or file (apng)")
		format  = flag.String("format", "png", "output format: png or apng (apng keeps every frame in memory, ~4*width*height bytes each)")
		frames  = flag.Int("frames", 0, "frames to record, 0 for one loop")
		play    = flag.Bool("preview", false, "play in the terminal instead of recording")
		fps     = flag.Int("fps", preview.DefaultFPS, "terminal playback rate")
		verbose = flag.Bool("v", false, "debug logging to stderr")
	)
	flag.Parse()

	if *verbose {
		pulse.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	p, err := pulse.Variant(*variant)
	if err != nil {
		log.Fatalf("Invalid variant: %v", err)
	}
	s, err := pulse.NewSketch(p, *width, *height)
	if err != nil {
		log.Fatalf("Failed to build sketch: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *play {
		if err := runPreview(ctx, s, *fps); err != nil {
			log.Fatalf("Preview failed: %v", err)
		}
		return
	}

	w, dest, err := newWriter(*format, *out)
	if err != nil {
		log.Fatalf("Invalid output: %v", err)
	}
	if err := export.Run(ctx, s, w, *frames); err != nil {
		_ = w.Close()
		log.Fatalf("Recording failed: %v", err)
	}
	if err := w.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("%s saved to %s (%dx%d)\n", *variant, dest, *width, *height)
}

func newWriter(format, out string) (export.Writer, string, error) {
	switch format {
	case "png":
		if out == "" {
			out = "frames"
		}
		return &export.PNGSequence{Dir: out, Prefix: "pulse"}, out, nil
	case "apng":
		if out == "" {
			out = "pulse.png"
		}
		return &export.APNG{Path: out}, out, nil
	default:
		return nil, "", fmt.Errorf("unknown format %q", format)
	}
}

func runPreview(ctx context.Context, s *pulse.Sketch, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	pl := preview.NewPlayer(screen, s, preview.WithFPS(fps))
	defer func() { _ = pl.Close() }()

	if err := pl.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
