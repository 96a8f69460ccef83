package pulse

import (
	"image"

	"github.com/gogpu/gg"
)

// ShapeKind selects the primitive drawn for each active cell.
type ShapeKind uint8

const (
	// ShapeRect draws axis-aligned squares.
	ShapeRect ShapeKind = iota
	// ShapeCircle draws circles inscribed in the same square.
	ShapeCircle
)

// String returns the kind name.
func (k ShapeKind) String() string {
	switch k {
	case ShapeRect:
		return "rect"
	case ShapeCircle:
		return "circle"
	default:
		return "unknown"
	}
}

// TrigMode selects how the traveling wave is folded.
type TrigMode uint8

const (
	// TrigAbs uses |cos|, so every cell pulses outward twice per period.
	TrigAbs TrigMode = iota
	// TrigSigned uses cos directly; negative phases pull shapes inward.
	TrigSigned
)

// Params holds the fixed constants of one animation variant.
type Params struct {
	Shape ShapeKind
	Trig  TrigMode

	// Spacing is the grid step in canvas pixels.
	Spacing float64
	// BaseSize is the shape side at full wave intensity.
	BaseSize float64
	// SampleSize is the offscreen mask resolution.
	SampleSize image.Point
	// Duration is the loop length in frames.
	Duration int

	// Channel is the gray level ceiling, 0-255.
	Channel float64
	// Background fills the frame before any shape is drawn.
	Background gg.RGBA
	// ColorBlend and AlphaBlend weight the wave against a constant floor.
	ColorBlend float64
	AlphaBlend float64

	// Omega is the temporal angular frequency per loop.
	Omega float64
	// Displacement scales the radial offset.
	Displacement float64
	// Aberration is the chromatic aberration magnitude in pixels, 0 disables it.
	Aberration float64
	// TintAlpha is the alpha of the red, green and blue aberration copies.
	TintAlpha float64

	// Text is drawn into the mask, repeated on Bands rows.
	Text  string
	Bands int
}

// Validate reports the first parameter outside its allowed range.
func (p Params) Validate() error {
	switch {
	case !(p.Spacing > 0):
		return &ParamError{Field: "Spacing", Value: p.Spacing}
	case !(p.BaseSize >= 0):
		return &ParamError{Field: "BaseSize", Value: p.BaseSize}
	case p.SampleSize.X <= 0 || p.SampleSize.Y <= 0:
		return ErrInvalidSampleSize
	case p.Duration <= 0:
		return &ParamError{Field: "Duration", Value: float64(p.Duration)}
	case p.Channel < 0 || p.Channel > 255:
		return &ParamError{Field: "Channel", Value: p.Channel}
	case p.ColorBlend < 0 || p.ColorBlend > 1:
		return &ParamError{Field: "ColorBlend", Value: p.ColorBlend}
	case p.AlphaBlend < 0 || p.AlphaBlend > 1:
		return &ParamError{Field: "AlphaBlend", Value: p.AlphaBlend}
	case p.Aberration < 0:
		return &ParamError{Field: "Aberration", Value: p.Aberration}
	case p.Text == "":
		return ErrEmptyText
	}
	return nil
}
