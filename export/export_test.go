package export

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	pulse "github.com/gogpu/gg-pulse"
)

// testSketch returns a 60x60 aberration sketch with a short loop and a
// two-block mask.
func testSketch(t *testing.T, duration int) *pulse.Sketch {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	for y := range 12 {
		for x := range 12 {
			c := color.RGBA{A: 255}
			if (x >= 2 && x < 5 && y >= 2 && y < 6) || (x >= 8 && x < 11 && y >= 7 && y < 10) {
				c = color.RGBA{R: 255, G: 255, B: 255, A: 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	m, err := pulse.SampleImage(img, 60)
	if err != nil {
		t.Fatalf("SampleImage() error = %v", err)
	}
	p, err := pulse.Variant("aberration")
	if err != nil {
		t.Fatal(err)
	}
	p.Duration = duration
	s, err := pulse.NewSketch(p, 60, 60, pulse.WithMask(m))
	if err != nil {
		t.Fatalf("NewSketch() error = %v", err)
	}
	return s
}

// frameLog keeps every frame it receives.
type frameLog struct {
	indices []int
	frames  []image.Image
	err     error
	closed  bool
}

func (l *frameLog) Frame(i int, img image.Image) error {
	if l.err != nil {
		return l.err
	}
	l.indices = append(l.indices, i)
	l.frames = append(l.frames, img)
	return nil
}

func (l *frameLog) Close() error {
	l.closed = true
	return nil
}

func TestRunOneLoop(t *testing.T) {
	s := testSketch(t, 6)
	var log frameLog
	if err := Run(context.Background(), s, &log, 0); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(log.indices) != 6 {
		t.Fatalf("got %d frames, want 6", len(log.indices))
	}
	for i, idx := range log.indices {
		if idx != i {
			t.Errorf("frame %d has index %d", i, idx)
		}
	}
	if log.closed {
		t.Error("Run() should not close the writer")
	}
}

func TestRunFramesMatchRenderImage(t *testing.T) {
	s := testSketch(t, 4)
	var log frameLog
	if err := Run(context.Background(), s, &log, 8); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(log.frames) != 8 {
		t.Fatalf("got %d frames, want 8", len(log.frames))
	}
	for i, img := range log.frames {
		want, _ := s.RenderImage(i)
		got := img.(*image.RGBA)
		for j := range want.Pix {
			if got.Pix[j] != want.Pix[j] {
				t.Fatalf("frame %d differs from RenderImage at byte %d", i, j)
			}
		}
	}
	// Frame 4 starts the second loop.
	a, b := log.frames[0].(*image.RGBA), log.frames[4].(*image.RGBA)
	for j := range a.Pix {
		if a.Pix[j] != b.Pix[j] {
			t.Fatalf("frame 4 differs from frame 0 at byte %d", j)
		}
	}
}

func TestRunCancelled(t *testing.T) {
	s := testSketch(t, 10)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var log frameLog
	err := Run(ctx, s, &log, 0)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(log.frames) != 0 {
		t.Errorf("cancelled run wrote %d frames", len(log.frames))
	}
}

func TestRunWriterError(t *testing.T) {
	s := testSketch(t, 3)
	boom := errors.New("disk full")
	log := frameLog{err: boom}
	if err := Run(context.Background(), s, &log, 0); !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want %v", err, boom)
	}
}

func TestPNGSequence(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	s := testSketch(t, 3)
	w := &PNGSequence{Dir: dir, Prefix: "pulse"}
	if err := Run(context.Background(), s, w, 0); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Fatalf("wrote %d files, want 3", len(entries))
	}
	for i := range 3 {
		path := w.Path(i)
		if want := filepath.Join(dir, []string{"pulse-0000.png", "pulse-0001.png", "pulse-0002.png"}[i]); path != want {
			t.Errorf("Path(%d) = %q, want %q", i, path, want)
		}
		f, err := os.Open(path)
		if err != nil {
			t.Fatal(err)
		}
		cfg, err := png.DecodeConfig(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode %s: %v", path, err)
		}
		if cfg.Width != 60 || cfg.Height != 60 {
			t.Errorf("%s is %dx%d, want 60x60", path, cfg.Width, cfg.Height)
		}
	}
}

func TestPNGSequenceDefaultPrefix(t *testing.T) {
	w := &PNGSequence{Dir: "d"}
	if got, want := w.Path(12), filepath.Join("d", "frame-0012.png"); got != want {
		t.Errorf("Path(12) = %q, want %q", got, want)
	}
}

func TestAPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.png")
	s := testSketch(t, 4)
	w := &APNG{Path: path}
	if err := Run(context.Background(), s, w, 0); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if w.Len() != 4 {
		t.Errorf("buffered %d frames, want 4", w.Len())
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	fi, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if fi.Size() == 0 {
		t.Error("apng file is empty")
	}
}

func TestAPNGOverwritesStaleFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pulse.png")
	if err := os.WriteFile(path, []byte("stale"), 0o600); err != nil {
		t.Fatal(err)
	}
	w := &APNG{Path: path}
	if err := Run(context.Background(), testSketch(t, 2), w, 0); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Errorf("file starts with %q, want a PNG signature", data[:min(len(data), 8)])
	}
}

func TestAPNGWriteError(t *testing.T) {
	// A directory at Path makes the file impossible to create.
	path := filepath.Join(t.TempDir(), "pulse.png")
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatal(err)
	}
	w := &APNG{Path: path}
	if err := Run(context.Background(), testSketch(t, 3), w, 0); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err == nil {
		t.Fatal("Close() error = nil, want write failure")
	}
	if w.Len() != 3 {
		t.Errorf("Len() after failed Close = %d, want 3 frames kept", w.Len())
	}
}

func TestAPNGNoFrames(t *testing.T) {
	w := &APNG{Path: filepath.Join(t.TempDir(), "empty.png")}
	if err := w.Close(); !errors.Is(err, ErrNoFrames) {
		t.Errorf("Close() error = %v, want ErrNoFrames", err)
	}
}
