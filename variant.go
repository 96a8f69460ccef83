package pulse

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// preset is a variant definition with its background kept as a hex string.
type preset struct {
	params     Params
	background string
}

// base is the square-grid sketch with chromatic aberration.
var base = Params{
	Shape:        ShapeRect,
	Trig:         TrigAbs,
	Spacing:      10,
	BaseSize:     22,
	SampleSize:   image.Pt(150, 150),
	Duration:     600,
	Channel:      240,
	ColorBlend:   0.5,
	AlphaBlend:   0.8,
	Omega:        2 * math.Pi,
	Displacement: 2,
	Aberration:   5,
	TintAlpha:    0.9,
	Text:         "PULSE",
	Bands:        3,
}

var presets = map[string]func() preset{
	"aberration": func() preset {
		return preset{params: base, background: "#232323"}
	},
	"rects": func() preset {
		p := base
		p.Aberration = 0
		return preset{params: p, background: "#232323"}
	},
	"circles": func() preset {
		p := base
		p.Shape = ShapeCircle
		p.Spacing = 12
		p.BaseSize = 20
		p.Aberration = 0
		return preset{params: p, background: "#101018"}
	},
	"signed": func() preset {
		p := base
		p.Trig = TrigSigned
		p.Omega = 4 * math.Pi
		p.Aberration = 0
		return preset{params: p, background: "#1a1a1a"}
	},
}

// DefaultVariant is the preset used when no name is given.
const DefaultVariant = "aberration"

// Variant returns the parameters of a named preset.
func Variant(name string) (Params, error) {
	mk, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
	}
	pr := mk()
	c, err := colorful.Hex(pr.background)
	if err != nil {
		return Params{}, fmt.Errorf("pulse: variant %s background: %w", name, err)
	}
	pr.params.Background = gg.RGB(c.R, c.G, c.B)
	return pr.params, nil
}

// Variants returns the preset names in sorted order.
func Variants() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
