// Package preview plays a pulse sketch in the terminal.
//
// Each terminal cell shows two vertical pixels: the upper half block '▀'
// takes the top pixel as foreground and the bottom pixel as background.
// Frames are rendered at sketch resolution and downscaled to fit the
// screen, so a resize only changes the scaling.
package preview

import (
	"context"
	"image"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	pulse "github.com/gogpu/gg-pulse"
)

// DefaultFPS is the default playback rate.
const DefaultFPS = 60

const halfBlock = '▀'

// Option configures a Player.
type Option func(*Player)

// WithFPS sets the playback rate. Values below 1 are ignored.
func WithFPS(fps int) Option {
	return func(p *Player) {
		if fps >= 1 {
			p.fps = fps
		}
	}
}

// Player draws sketch frames onto a tcell screen. The caller owns the
// screen and must Init it before use and Fini it afterwards.
type Player struct {
	screen tcell.Screen
	sketch *pulse.Sketch
	canvas *pulse.CanvasSurface
	fps    int
	frame  int

	scaled *image.RGBA
	bg     tcell.Color
}

// NewPlayer returns a Player for s on screen.
func NewPlayer(screen tcell.Screen, s *pulse.Sketch, opts ...Option) *Player {
	p := &Player{
		screen: screen,
		sketch: s,
		canvas: s.Canvas(),
		fps:    DefaultFPS,
		bg:     toTcell(s.Params().Background.Color()),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Frame returns the next frame index Run will draw.
func (p *Player) Frame() int { return p.frame }

// Close releases the render canvas.
func (p *Player) Close() error {
	return p.canvas.Context().Close()
}

// Run plays the sketch until ctx is done or Esc, q or Ctrl-C is pressed.
func (p *Player) Run(ctx context.Context) error {
	ticker := time.NewTicker(time.Second / time.Duration(p.fps))
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := p.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	log := pulse.Logger()
	log.Info("preview: started", "fps", p.fps)
	for {
		select {
		case <-ctx.Done():
			log.Info("preview: stopped", "frame", p.frame, "err", ctx.Err())
			return ctx.Err()

		case ev := <-events:
			if !p.handleEvent(ev) {
				log.Info("preview: stopped", "frame", p.frame)
				return nil
			}

		case <-ticker.C:
			p.DrawFrame(p.frame)
			p.frame++
		}
	}
}

// handleEvent reports whether playback should continue.
func (p *Player) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return false
			}
		}
	case *tcell.EventResize:
		w, h := ev.Size()
		pulse.Logger().Debug("preview: resize", "cols", w, "rows", h)
		p.screen.Sync()
	}
	return true
}

// DrawFrame renders frame, scales it to the screen and shows it.
func (p *Player) DrawFrame(frame int) pulse.FrameStats {
	st := p.sketch.Draw(p.canvas, frame)

	cols, rows := p.screen.Size()
	sw, sh := p.sketch.Size()
	fit := fitRect(sw, sh, cols, rows*2)
	if fit.Empty() {
		return st
	}
	if p.scaled == nil || p.scaled.Bounds() != fit {
		p.scaled = image.NewRGBA(fit)
	}
	draw.ApproxBiLinear.Scale(p.scaled, fit, pulse.Snapshot(p.canvas), image.Rect(0, 0, sw, sh), draw.Src, nil)

	bgStyle := tcell.StyleDefault.Background(p.bg)
	for y := range rows {
		for x := range cols {
			p.screen.SetContent(x, y, ' ', nil, bgStyle)
		}
	}
	for y := fit.Min.Y; y < fit.Max.Y; y += 2 {
		for x := fit.Min.X; x < fit.Max.X; x++ {
			top := toTcell(p.scaled.RGBAAt(x, y))
			bottom := p.bg
			if y+1 < fit.Max.Y {
				bottom = toTcell(p.scaled.RGBAAt(x, y+1))
			}
			style := tcell.StyleDefault.Foreground(top).Background(bottom)
			p.screen.SetContent(x, y/2, halfBlock, nil, style)
		}
	}
	p.screen.Show()
	return st
}

// fitRect returns the largest rectangle with the aspect of w x h that fits
// centered in a cols x px grid. The top edge is kept even so pixel rows pair
// up into terminal cells.
func fitRect(w, h, cols, px int) image.Rectangle {
	if w <= 0 || h <= 0 || cols <= 0 || px <= 0 {
		return image.Rectangle{}
	}
	tw, th := cols, cols*h/w
	if th > px {
		tw, th = px*w/h, px
	}
	x0 := (cols - tw) / 2
	y0 := (px - th) / 2 &^ 1
	return image.Rect(x0, y0, x0+tw, y0+th)
}

func toTcell(c color.Color) tcell.Color {
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return tcell.ColorBlack
	}
	r, g, b := cf.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
