// Package export captures one loop of a pulse sketch to image files.
//
// Capture is driven by the frame counter alone: frame i is rendered at
// phase Percent(i, Duration), so stopping or restarting a capture never
// shifts the animation.
package export

import (
	"context"
	"fmt"
	"image"

	pulse "github.com/gogpu/gg-pulse"
)

// Writer receives rendered frames in order.
type Writer interface {
	// Frame stores frame index. img is not reused after the call returns.
	Frame(index int, img image.Image) error
	// Close flushes any buffered output.
	Close() error
}

// Run renders frames 0..frames-1 of s and hands each one to w. With
// frames <= 0 it renders exactly one loop. Run stops between frames when
// ctx is done. It does not close w.
func Run(ctx context.Context, s *pulse.Sketch, w Writer, frames int) error {
	if frames <= 0 {
		frames = s.Frames()
	}
	log := pulse.Logger()

	cs := s.Canvas()
	defer func() { _ = cs.Context().Close() }()

	log.Info("export: recording started", "frames", frames)
	for i := range frames {
		if err := ctx.Err(); err != nil {
			log.Warn("export: recording interrupted", "frame", i, "err", err)
			return err
		}
		st := s.Draw(cs, i)
		if err := w.Frame(i, pulse.Snapshot(cs)); err != nil {
			return fmt.Errorf("export: frame %d: %w", i, err)
		}
		log.Debug("export: frame captured", "frame", i, "shapes", st.Shapes, "layers", cs.Layers())
	}

	log.Info("export: recording ended", "frames", frames)
	return nil
}
