package export

import (
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/setanarut/apng"
)

// Frame delay of 2/100 s.
const (
	delayNum = 2
	delayDen = 100
)

// ErrNoFrames is returned when an APNG is closed before any frame arrived.
var ErrNoFrames = errors.New("export: no frames to encode")

// APNG buffers frames in memory and writes a single animated PNG to Path
// on Close.
//
// Every frame is held until Close: a width x height capture of n frames
// needs about 4*width*height*n bytes, 2.4 GB for 600 frames at 1000x1000.
// Use PNGSequence for long or large captures.
type APNG struct {
	Path string

	frames []image.Image
}

var _ Writer = (*APNG)(nil)

// Frame implements Writer.
func (a *APNG) Frame(_ int, img image.Image) error {
	a.frames = append(a.frames, img)
	return nil
}

// Len returns the number of buffered frames.
func (a *APNG) Len() int { return len(a.frames) }

// Close implements Writer. The buffered frames are kept when encoding
// fails, so Close can be retried.
func (a *APNG) Close() error {
	if len(a.frames) == 0 {
		return ErrNoFrames
	}

	anim := apng.APNG{Frames: make([]apng.Frame, len(a.frames))}
	for i, img := range a.frames {
		anim.Frames[i] = apng.Frame{
			Image:            img,
			DelayNumerator:   delayNum,
			DelayDenominator: delayDen,
		}
	}

	f, err := os.Create(a.Path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return fmt.Errorf("export: write apng: %w", err)
	}
	if err := apng.EncodeAll(f, &anim); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: encode apng: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: write apng: %w", err)
	}
	a.frames = nil
	return nil
}
