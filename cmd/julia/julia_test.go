package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestRun(t *testing.T) {
	out := filepath.Join(t.TempDir(), "julia.png")

	cmd := mainCmd()
	cmd.SetArgs([]string{
		"--columns=16",
		"--rows=9",
		"--iterations=5",
		"--out=" + out,
	})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 16 || b.Dy() != 9 {
		t.Errorf("image bounds = %v, want 16x9", b)
	}
}
