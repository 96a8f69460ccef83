package pulse

// MaskOption configures BuildMask.
//
// Example:
//
//	m, err := pulse.BuildMask("PULSE", image.Pt(150, 150), 1000,
//	    pulse.WithBands(2),
//	    pulse.WithFontData(ttf))
type MaskOption func(*maskOptions)

type maskOptions struct {
	fontData []byte
	bands    int
}

func defaultMaskOptions() maskOptions {
	return maskOptions{
		fontData: nil, // gomono
		bands:    3,
	}
}

// WithFontData sets the TrueType/OpenType font used to draw the mask text.
// The default is Go Mono.
func WithFontData(data []byte) MaskOption {
	return func(o *maskOptions) {
		o.fontData = data
	}
}

// WithBands sets how many times the text is repeated vertically.
// Values below 1 are ignored.
func WithBands(n int) MaskOption {
	return func(o *maskOptions) {
		if n >= 1 {
			o.bands = n
		}
	}
}

// SketchOption configures NewSketch.
type SketchOption func(*sketchOptions)

type sketchOptions struct {
	mask     *Mask
	maskOpts []MaskOption
}

// WithMask supplies a prebuilt mask instead of sampling the params' text.
// The mask must have been built for the same canvas height.
func WithMask(m *Mask) SketchOption {
	return func(o *sketchOptions) {
		o.mask = m
	}
}

// WithMaskOptions passes options through to BuildMask.
func WithMaskOptions(opts ...MaskOption) SketchOption {
	return func(o *sketchOptions) {
		o.maskOpts = append(o.maskOpts, opts...)
	}
}
