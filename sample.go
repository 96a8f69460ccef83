package pulse

import (
	"fmt"
	"image"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
)

// BuildMask draws s into an offscreen bitmap of sampleSize and samples it
// into a Mask scaled for a canvas of height canvasHeight.
//
// The text is white on black, centered horizontally and repeated on
// evenly spaced horizontal bands inside a 10% border. The offscreen
// context is discarded before BuildMask returns.
func BuildMask(s string, sampleSize image.Point, canvasHeight float64, opts ...MaskOption) (*Mask, error) {
	if s == "" {
		return nil, ErrEmptyText
	}
	if sampleSize.X <= 0 || sampleSize.Y <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if !(canvasHeight > 0) {
		return nil, ErrInvalidCanvasSize
	}

	o := defaultMaskOptions()
	for _, opt := range opts {
		opt(&o)
	}
	data := o.fontData
	if data == nil {
		data = gomono.TTF
	}

	source, err := text.NewFontSource(data)
	if err != nil {
		return nil, fmt.Errorf("pulse: load mask font: %w", err)
	}
	defer func() { _ = source.Close() }()

	img := drawBands(s, sampleSize, source, o.bands)
	return SampleImage(img, canvasHeight)
}

// drawBands renders s bands times onto a fresh black context and returns
// a copy of its pixels.
func drawBands(s string, size image.Point, source *text.FontSource, bands int) image.Image {
	dc := gg.NewContext(size.X, size.Y)
	defer func() { _ = dc.Close() }()

	w, h := float64(size.X), float64(size.Y)
	border := 0.1 * h
	n := float64(bands)

	face := source.Face((h - border) / n)
	dc.ClearWithColor(gg.Black)
	dc.SetFont(face)
	dc.SetRGB(1, 1, 1)

	// Baseline offset that puts the middle of the em box on the band center.
	metrics := face.Metrics()
	middle := (metrics.Ascent - metrics.Descent) / 2
	tw, _ := dc.MeasureString(s)

	for i := range bands {
		cy := (h-border/2)*float64(2*i+1)/(2*n) + border/2
		dc.DrawString(s, (w-tw)/2, cy+middle)
	}
	return dc.Image()
}

// SampleImage reduces img to its ink points. A pixel is ink when any of
// its color channels is non-zero; alpha is ignored. Coordinates are scaled
// by canvasHeight / img height.
func SampleImage(img image.Image, canvasHeight float64) (*Mask, error) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if !(canvasHeight > 0) {
		return nil, ErrInvalidCanvasSize
	}

	ratio := canvasHeight / float64(h)
	lit := inkFunc(img)

	var points []InkPoint
	for i := range w * h {
		if lit(b.Min.X+i%w, b.Min.Y+i/w) {
			points = append(points, xyFromIndex(i, w, ratio))
		}
	}

	m := newMask(points, h, ratio)
	if m.Degenerate() {
		Logger().Warn("pulse: degenerate mask", "points", m.Len())
	} else {
		Logger().Info("pulse: mask built",
			"points", m.Len(),
			"maxDistance", m.MaxDistance(),
			"sampleRatio", ratio)
	}
	return m, nil
}

// xyFromIndex converts a flat pixel index to scaled 2D coordinates.
func xyFromIndex(i, width int, ratio float64) InkPoint {
	x := i % width
	y := i / width
	return InkPoint{X: float64(x) * ratio, Y: float64(y) * ratio}
}

// inkFunc returns a pixel classifier for img, reading the Pix slice
// directly for the RGBA layouts gg produces.
func inkFunc(img image.Image) func(x, y int) bool {
	switch im := img.(type) {
	case *image.RGBA:
		return func(x, y int) bool {
			i := im.PixOffset(x, y)
			return im.Pix[i] > 0 || im.Pix[i+1] > 0 || im.Pix[i+2] > 0
		}
	case *image.NRGBA:
		return func(x, y int) bool {
			i := im.PixOffset(x, y)
			return im.Pix[i] > 0 || im.Pix[i+1] > 0 || im.Pix[i+2] > 0
		}
	default:
		return func(x, y int) bool {
			r, g, b, _ := img.At(x, y).RGBA()
			return r > 0 || g > 0 || b > 0
		}
	}
}
