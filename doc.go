// Package pulse renders a pulsing grid animation shaped by a text mask.
//
// # Overview
//
// A short string ("PULSE" by default) is drawn once into a small offscreen
// gg.Context. Every lit pixel of that bitmap becomes an ink point, scaled
// up to canvas resolution. Each frame, a regular grid is laid over the
// canvas and every grid cell close to an ink point gets a shape whose size,
// color and radial offset follow a traveling cosine wave:
//
//	trig = |cos(-pixelDist*π + omega*percent)|
//
// where pixelDist is the cell's distance from the canvas center relative to
// the mask's extent, and percent is the loop phase in [0, 1).
//
// # Quick Start
//
//	p, _ := pulse.Variant("aberration")
//	s, err := pulse.NewSketch(p, 1000, 1000)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	img, _ := s.RenderImage(0)
//
// # Surfaces
//
// Drawing goes through the [Surface] interface. [CanvasSurface] paints onto a
// gg.Context using screen blending so overlapping shapes brighten.
// [RecordSurface] captures the frame as gg recording commands.
//
// # Determinism
//
// A frame depends only on its index. Frame f and frame f+Duration render
// identically, so playback can start, seek or loop anywhere.
package pulse
