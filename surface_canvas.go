package pulse

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

// tileSize is the occupancy grid resolution used to pack shapes into
// screen layers.
const tileSize = 4

// CanvasSurface paints frames onto a gg.Context with screen compositing,
// so overlapping shapes brighten instead of covering each other.
//
// Fill only queues a shape. Flush packs the queued shapes into layers
// whose shapes never overlap, draws each layer source-over and composites
// it with gg.BlendScreen. Screen with per-shape alpha is order independent
// (1 - Π(1 - aᵢsᵢ) per channel), so packing leaves the result unchanged
// while keeping the layer count near the overlap depth of the frame.
//
// The context must have an identity transform. CanvasSurface is not safe
// for concurrent use.
type CanvasSurface struct {
	dc      *gg.Context
	batches []*layerBatch
	used    int
	layers  int
}

var _ Surface = (*CanvasSurface)(nil)

// layerBatch is a set of mutually disjoint shapes.
type layerBatch struct {
	shapes []Shape
	tiles  []bool
}

// NewCanvasSurface returns a surface drawing into dc.
func NewCanvasSurface(dc *gg.Context) *CanvasSurface {
	return &CanvasSurface{dc: dc}
}

// Context returns the underlying drawing context.
func (s *CanvasSurface) Context() *gg.Context {
	return s.dc
}

// Clear implements Surface. Shapes still queued are discarded.
func (s *CanvasSurface) Clear(bg gg.RGBA) {
	s.reset()
	s.layers = 0
	bg.A = 1
	s.dc.ClearWithColor(bg)
}

// Fill implements Surface.
func (s *CanvasSurface) Fill(sh Shape) {
	if !(sh.Size > 0) || !(sh.Color.A > 0) {
		return
	}
	tr, ok := s.tileRect(sh)
	if !ok {
		return
	}
	for _, b := range s.batches[:s.used] {
		if b.place(sh, tr, s.cols()) {
			return
		}
	}
	b := s.nextBatch()
	b.place(sh, tr, s.cols())
}

// Flush implements Surface. It composites every queued shape.
func (s *CanvasSurface) Flush() {
	for _, b := range s.batches[:s.used] {
		s.dc.PushLayer(gg.BlendScreen, 1)
		for _, sh := range b.shapes {
			c := sh.Color
			s.dc.SetRGBA(c.R, c.G, c.B, math.Min(c.A, 1))
			switch sh.Kind {
			case ShapeCircle:
				r := sh.Size / 2
				s.dc.DrawCircle(sh.X+r, sh.Y+r, r)
			default:
				s.dc.DrawRectangle(sh.X, sh.Y, sh.Size, sh.Size)
			}
			_ = s.dc.Fill()
		}
		s.dc.PopLayer()
		s.layers++
	}
	s.reset()
}

// Layers returns how many screen layers have been composited since the
// last Clear.
func (s *CanvasSurface) Layers() int {
	return s.layers
}

func (s *CanvasSurface) reset() {
	for _, b := range s.batches[:s.used] {
		b.shapes = b.shapes[:0]
		clear(b.tiles)
	}
	s.used = 0
}

func (s *CanvasSurface) cols() int {
	return (s.dc.Width() + tileSize - 1) / tileSize
}

func (s *CanvasSurface) rows() int {
	return (s.dc.Height() + tileSize - 1) / tileSize
}

func (s *CanvasSurface) nextBatch() *layerBatch {
	if s.used == len(s.batches) {
		s.batches = append(s.batches, &layerBatch{tiles: make([]bool, s.cols()*s.rows())})
	}
	b := s.batches[s.used]
	s.used++
	return b
}

// tileRect returns the tiles touched by sh, including one pixel of
// antialiasing margin, clipped to the canvas.
func (s *CanvasSurface) tileRect(sh Shape) (image.Rectangle, bool) {
	px := image.Rect(
		int(math.Floor(sh.X))-1, int(math.Floor(sh.Y))-1,
		int(math.Ceil(sh.X+sh.Size))+1, int(math.Ceil(sh.Y+sh.Size))+1,
	).Intersect(image.Rect(0, 0, s.dc.Width(), s.dc.Height()))
	if px.Empty() {
		return image.Rectangle{}, false
	}
	return image.Rect(
		px.Min.X/tileSize, px.Min.Y/tileSize,
		(px.Max.X+tileSize-1)/tileSize, (px.Max.Y+tileSize-1)/tileSize,
	), true
}

// place adds sh to b when none of its tiles are taken.
func (b *layerBatch) place(sh Shape, tr image.Rectangle, cols int) bool {
	for y := tr.Min.Y; y < tr.Max.Y; y++ {
		for x := tr.Min.X; x < tr.Max.X; x++ {
			if b.tiles[y*cols+x] {
				return false
			}
		}
	}
	for y := tr.Min.Y; y < tr.Max.Y; y++ {
		for x := tr.Min.X; x < tr.Max.X; x++ {
			b.tiles[y*cols+x] = true
		}
	}
	b.shapes = append(b.shapes, sh)
	return true
}
