package pulse

import (
	"math"
	"slices"

	"github.com/gogpu/gg"
)

// InkPoint is one lit pixel of the text mask in canvas coordinates.
type InkPoint = gg.Point

// fallbackMaxDistance replaces an undefined mask extent so that relative
// distances never divide by zero.
const fallbackMaxDistance = 1.0

// Mask is the sampled text mask: a fixed set of ink points plus the
// scalars the animator needs. A Mask is read-only after construction and
// safe for concurrent use.
type Mask struct {
	points  []InkPoint
	rows    [][]InkPoint // points bucketed by sample row
	ratio   float64
	maxDist float64
	degen   bool
}

// newMask builds a Mask from points laid out on a sample grid of rows
// rows, already scaled by ratio. Points must be in row-major order.
func newMask(points []InkPoint, rows int, ratio float64) *Mask {
	m := &Mask{
		points: points,
		rows:   make([][]InkPoint, rows),
		ratio:  ratio,
	}

	for _, p := range points {
		j := int(math.Round(p.Y / ratio))
		if j >= 0 && j < rows {
			m.rows[j] = append(m.rows[j], p)
		}
	}

	m.maxDist = maxDistance(points)
	if len(points) < 2 || m.maxDist <= 0 || math.IsNaN(m.maxDist) {
		m.maxDist = fallbackMaxDistance
		m.degen = true
	}
	return m
}

// maxDistance orders points by squared distance from the origin (farthest
// first) and measures between the two ends of that order. For the letter
// layouts used here this matches the true diameter of the point set.
func maxDistance(points []InkPoint) float64 {
	if len(points) < 2 {
		return 0
	}
	sorted := slices.Clone(points)
	slices.SortStableFunc(sorted, func(a, b InkPoint) int {
		da := DistSq(a.X, a.Y, 0, 0)
		db := DistSq(b.X, b.Y, 0, 0)
		switch {
		case da > db:
			return -1
		case da < db:
			return 1
		}
		return 0
	})
	first, last := sorted[0], sorted[len(sorted)-1]
	return Dist(first.X, first.Y, last.X, last.Y)
}

// Points returns a copy of the ink points in row-major sample order.
func (m *Mask) Points() []InkPoint {
	return slices.Clone(m.points)
}

// Len returns the number of ink points.
func (m *Mask) Len() int {
	return len(m.points)
}

// SampleRatio returns the canvas-to-sample scale factor. It is also the
// proximity threshold used for grid cells.
func (m *Mask) SampleRatio() float64 {
	return m.ratio
}

// MaxDistance returns the mask extent used to normalize distances.
// Degenerate masks report 1.
func (m *Mask) MaxDistance() float64 {
	return m.maxDist
}

// Degenerate reports whether the mask has fewer than two distinct ink
// points. A degenerate mask activates no grid cells.
func (m *Mask) Degenerate() bool {
	return m.degen
}

// Bounds returns the top-left and bottom-right corners of the ink points.
// Both are the zero point for an empty mask.
func (m *Mask) Bounds() (lo, hi InkPoint) {
	if len(m.points) == 0 {
		return InkPoint{}, InkPoint{}
	}
	lo, hi = m.points[0], m.points[0]
	for _, p := range m.points[1:] {
		lo.X = math.Min(lo.X, p.X)
		lo.Y = math.Min(lo.Y, p.Y)
		hi.X = math.Max(hi.X, p.X)
		hi.Y = math.Max(hi.Y, p.Y)
	}
	return lo, hi
}

// Row returns the ink points whose vertical distance from y is less than
// the sample ratio, in row-major order.
//
// Only the sample rows that can satisfy the bound are scanned, which gives
// the same result as filtering every point.
func (m *Mask) Row(y float64) []InkPoint {
	if len(m.points) == 0 {
		return nil
	}
	c := y / m.ratio
	lo := max(int(math.Floor(c-1)), 0)
	hi := min(int(math.Ceil(c+1)), len(m.rows)-1)

	var out []InkPoint
	for j := lo; j <= hi; j++ {
		for _, p := range m.rows[j] {
			if math.Abs(p.Y-y) < m.ratio {
				out = append(out, p)
			}
		}
	}
	return out
}

// Near reports whether any point of row lies within the sample ratio of x
// horizontally. Together with Row this approximates "close to ink" without
// point-in-glyph containment.
func (m *Mask) Near(row []InkPoint, x float64) bool {
	for _, p := range row {
		if math.Abs(p.X-x) < m.ratio {
			return true
		}
	}
	return false
}
