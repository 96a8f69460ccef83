package pulse

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"
)

// Sketch binds a variant's parameters to a canvas size and its sampled
// mask. The host owns the frame counter and calls Draw or RenderImage once
// per frame.
//
// A Sketch is immutable and safe for concurrent use; the surfaces it draws
// onto are not.
type Sketch struct {
	params        Params
	mask          *Mask
	width, height int
}

// NewSketch validates p and samples its text mask for a width x height
// canvas.
func NewSketch(p Params, width, height int, opts ...SketchOption) (*Sketch, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidCanvasSize
	}

	var o sketchOptions
	for _, opt := range opts {
		opt(&o)
	}

	m := o.mask
	if m == nil {
		maskOpts := append([]MaskOption{WithBands(p.Bands)}, o.maskOpts...)
		var err error
		m, err = BuildMask(p.Text, p.SampleSize, float64(height), maskOpts...)
		if err != nil {
			return nil, fmt.Errorf("pulse: build mask: %w", err)
		}
	}

	return &Sketch{params: p, mask: m, width: width, height: height}, nil
}

// Params returns the sketch parameters.
func (s *Sketch) Params() Params { return s.params }

// Mask returns the sampled mask.
func (s *Sketch) Mask() *Mask { return s.mask }

// Size returns the canvas size.
func (s *Sketch) Size() (width, height int) { return s.width, s.height }

// Frames returns the loop length in frames.
func (s *Sketch) Frames() int { return s.params.Duration }

// Draw renders frame onto dst.
func (s *Sketch) Draw(dst Surface, frame int) FrameStats {
	return RenderFrame(dst, frame, s.mask, s.params, s.width, s.height)
}

// Canvas returns a fresh canvas surface sized for the sketch. Reusing one
// surface across frames reuses its layer batches.
func (s *Sketch) Canvas() *CanvasSurface {
	return NewCanvasSurface(gg.NewContext(s.width, s.height))
}

// RenderImage renders frame into a new image.
func (s *Sketch) RenderImage(frame int) (*image.RGBA, FrameStats) {
	cs := s.Canvas()
	defer func() { _ = cs.Context().Close() }()
	st := s.Draw(cs, frame)
	return toRGBA(cs.Context().Image()), st
}

// Snapshot flushes cs and copies its current pixels.
func Snapshot(cs *CanvasSurface) *image.RGBA {
	cs.Flush()
	return toRGBA(cs.Context().Image())
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	draw.Draw(out, b, img, b.Min, draw.Src)
	return out
}
