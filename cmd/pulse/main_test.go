package main

import (
	"testing"

	"github.com/gogpu/gg-pulse/export"
)

func TestNewWriter(t *testing.T) {
	w, dest, err := newWriter("png", "")
	if err != nil {
		t.Fatal(err)
	}
	if seq, ok := w.(*export.PNGSequence); !ok || seq.Dir != "frames" || dest != "frames" {
		t.Errorf("png writer = %#v, dest %q", w, dest)
	}

	w, dest, err = newWriter("apng", "loop.png")
	if err != nil {
		t.Fatal(err)
	}
	if a, ok := w.(*export.APNG); !ok || a.Path != "loop.png" || dest != "loop.png" {
		t.Errorf("apng writer = %#v, dest %q", w, dest)
	}

	if _, _, err := newWriter("gif", ""); err == nil {
		t.Error("newWriter(gif) should fail")
	}
}
