package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PNGSequence writes each frame to Dir/Prefix-NNNN.png.
type PNGSequence struct {
	Dir    string
	Prefix string
}

var _ Writer = (*PNGSequence)(nil)

// Path returns the file name used for frame index.
func (p *PNGSequence) Path(index int) string {
	prefix := p.Prefix
	if prefix == "" {
		prefix = "frame"
	}
	return filepath.Join(p.Dir, fmt.Sprintf("%s-%04d.png", prefix, index))
}

// Frame implements Writer.
func (p *PNGSequence) Frame(index int, img image.Image) error {
	if err := os.MkdirAll(p.Dir, 0o755); err != nil {
		return err
	}
	f, err := os.Create(p.Path(index)) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Close implements Writer.
func (p *PNGSequence) Close() error { return nil }
