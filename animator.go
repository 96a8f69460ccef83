package pulse

import "github.com/gogpu/gg"

// Surface receives the draw commands of one frame.
type Surface interface {
	// Clear fills the whole frame with an opaque color.
	Clear(bg gg.RGBA)
	// Fill draws one shape with screen compositing. A surface may defer
	// the drawing until Flush.
	Fill(s Shape)
	// Flush completes the frame.
	Flush()
}

// FrameStats summarizes one rendered frame.
type FrameStats struct {
	// Evaluated counts visited grid cells: ceil(w/spacing) * ceil(h/spacing).
	Evaluated int
	// Active counts cells close enough to an ink point to be drawn.
	Active int
	// Shapes counts Fill calls, including aberration copies.
	Shapes int
}

// RenderFrame draws frame frameIndex of the animation onto dst.
//
// The frame depends only on frameIndex modulo p.Duration; no state carries
// over between calls. A degenerate mask clears the frame and draws nothing.
func RenderFrame(dst Surface, frameIndex int, m *Mask, p Params, width, height int) FrameStats {
	dst.Clear(p.Background)

	var st FrameStats
	defer dst.Flush()
	if !(p.Spacing > 0) || width <= 0 || height <= 0 {
		return st
	}

	percent := Percent(frameIndex, p.Duration)
	w, h := float64(width), float64(height)
	shapes := make([]Shape, 0, 4)

	for j := 0; float64(j)*p.Spacing < h; j++ {
		y := float64(j) * p.Spacing
		var row []InkPoint
		if !m.Degenerate() {
			row = m.Row(y)
		}
		for i := 0; float64(i)*p.Spacing < w; i++ {
			x := float64(i) * p.Spacing
			st.Evaluated++
			if len(row) == 0 || !m.Near(row, x) {
				continue
			}
			st.Active++

			c := ComputeCell(x, y, percent, m, p, w, h)
			shapes = AppendShapes(shapes[:0], c, p)
			for _, s := range shapes {
				dst.Fill(s)
			}
			st.Shapes += len(shapes)
		}
	}

	Logger().Debug("pulse: frame rendered",
		"frame", frameIndex,
		"percent", percent,
		"evaluated", st.Evaluated,
		"active", st.Active,
		"shapes", st.Shapes)
	return st
}
