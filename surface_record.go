package pulse

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"
)

// RecordSurface captures a frame as gg recording commands. Rectangles
// become FillRect commands and circles become FillPath commands, one per
// shape, after a full-canvas background FillRect.
//
// Recordings carry no blend mode, so playback composites shapes with
// normal source-over.
type RecordSurface struct {
	rec           *recording.Recorder
	width, height int
}

var _ Surface = (*RecordSurface)(nil)

// NewRecordSurface returns a recording surface of the given size.
func NewRecordSurface(width, height int) *RecordSurface {
	return &RecordSurface{
		rec:    recording.NewRecorder(width, height),
		width:  width,
		height: height,
	}
}

// Clear implements Surface.
func (s *RecordSurface) Clear(bg gg.RGBA) {
	s.rec.SetFillRGBA(bg.R, bg.G, bg.B, 1)
	s.rec.FillRectangle(0, 0, float64(s.width), float64(s.height))
}

// Fill implements Surface.
func (s *RecordSurface) Fill(sh Shape) {
	s.rec.SetFillRGBA(sh.Color.R, sh.Color.G, sh.Color.B, math.Min(sh.Color.A, 1))
	switch sh.Kind {
	case ShapeCircle:
		r := sh.Size / 2
		s.rec.DrawCircle(sh.X+r, sh.Y+r, r)
		s.rec.Fill()
	default:
		s.rec.FillRectangle(sh.X, sh.Y, sh.Size, sh.Size)
	}
}

// Flush implements Surface. Commands are recorded as they arrive.
func (s *RecordSurface) Flush() {}

// Finish ends the recording and returns it. The surface must not be used
// afterwards.
func (s *RecordSurface) Finish() *recording.Recording {
	return s.rec.FinishRecording()
}
