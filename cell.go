package pulse

import (
	"math"

	"github.com/gogpu/gg"
)

// Cell is the animated state of one active grid cell.
type Cell struct {
	// X, Y is the grid position.
	X, Y float64
	// PixelDist is the distance from the canvas center divided by the mask
	// extent. It is not clamped and can exceed 1 near the mask's far corners.
	PixelDist float64
	// Phi is the spatial phase, PixelDist * π.
	Phi float64
	// Trig is the wave intensity: [0, 1] for TrigAbs, [-1, 1] for TrigSigned.
	Trig float64
	// Side is Trig * BaseSize.
	Side float64
	// Offset is the radial displacement away from the center.
	Offset float64
	// Gamma is the angle from the canvas center to the cell.
	Gamma float64
	// Gray is the gray level in [Channel*(1-ColorBlend), Channel].
	Gray float64
	// Alpha is in [1-AlphaBlend, 1].
	Alpha float64
	// Aberration is the tint copy offset.
	Aberration float64
}

// ComputeCell evaluates the animation for the grid cell at (x, y) on a
// width x height canvas at loop phase percent.
func ComputeCell(x, y, percent float64, m *Mask, p Params, width, height float64) Cell {
	cx, cy := width/2, height/2
	pixelDist := Dist(x, y, cx, cy) / m.MaxDistance()
	trig := Wave(pixelDist, percent, p.Omega, p.Trig)
	mag := math.Abs(trig)

	return Cell{
		X:          x,
		Y:          y,
		PixelDist:  pixelDist,
		Phi:        pixelDist * math.Pi,
		Trig:       trig,
		Side:       trig * p.BaseSize,
		Offset:     Ease(trig) * p.BaseSize * pixelDist * p.Displacement,
		Gamma:      math.Atan2(y-cy, x-cx),
		Gray:       mag*p.Channel*p.ColorBlend + p.Channel*(1-p.ColorBlend),
		Alpha:      mag*p.AlphaBlend + (1 - p.AlphaBlend),
		Aberration: p.Aberration * (1 - mag),
	}
}

// Anchor returns the top-left corner of the cell's shape after radial
// displacement.
func (c Cell) Anchor() (x, y float64) {
	return c.X + c.Offset*math.Cos(c.Gamma), c.Y + c.Offset*math.Sin(c.Gamma)
}

// Shape is one fill command: a square or its inscribed circle with its
// top-left corner at (X, Y).
type Shape struct {
	Kind  ShapeKind
	X, Y  float64
	Size  float64
	Color gg.RGBA
}

// Aberration tints.
var (
	tintRed   = gg.RGB(1, 0, 0)
	tintGreen = gg.RGB(0, 1, 0)
	tintBlue  = gg.RGB(0, 0, 1)
)

// AppendShapes appends the shapes for c to dst: the main gray shape, then
// the red, green and blue copies when aberration is enabled.
func AppendShapes(dst []Shape, c Cell, p Params) []Shape {
	ax, ay := c.Anchor()
	size := math.Abs(c.Side) / 2
	g := c.Gray / 255

	dst = append(dst, Shape{
		Kind:  p.Shape,
		X:     ax,
		Y:     ay,
		Size:  size,
		Color: gg.RGBA{R: g, G: g, B: g, A: c.Alpha},
	})
	if p.Aberration <= 0 {
		return dst
	}

	a := c.Aberration
	tints := [...]struct {
		dx, dy float64
		col    gg.RGBA
	}{
		{-a / 2, -a / 2, tintRed},
		{a / 2, -a / 2, tintGreen},
		{0, a, tintBlue},
	}
	for _, t := range tints {
		col := t.col
		col.A = p.TintAlpha
		dst = append(dst, Shape{Kind: p.Shape, X: ax + t.dx, Y: ay + t.dy, Size: size, Color: col})
	}
	return dst
}
