package palette

import (
	"github.com/willbeason/polybrot/pkg/bitmap"
	"github.com/willbeason/polybrot/pkg/cnum"
	"github.com/willbeason/polybrot/pkg/escape"
	"math"
	"testing"
)

func TestChannel(t *testing.T) {
	tcs := []struct {
		name     string
		v        int
		base     uint8
		mod      int
		inverted bool
		want     uint8
	}{
		{"saturates", 0, 255, 10, false, 255},
		{"exact", 20, 25, 10, false, 50},
		{"base reached", 25, 25, 10, false, 0},
		{"past base", 30, 25, 10, false, 50},
		{"negative mod", 0, 0, -10, false, 0},
		{"negative mod past base", 3, 0, -10, false, 30},
		{"inverted", 20, 25, 10, true, 205},
		{"inverted saturates", 0, 255, 10, true, 255},
		{"inverted zero mod", 7, 100, 0, true, 255},
		{"huge count", math.MaxInt32, 255, 127, false, 255},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got := Channel(tc.v, tc.base, tc.mod, tc.inverted)
			if got != tc.want {
				t.Errorf("Channel(%d, %d, %d, %v) = %d, want %d", tc.v, tc.base, tc.mod, tc.inverted, got, tc.want)
			}
		})
	}
}

func TestMakePixels(t *testing.T) {
	grid := escape.CountGrid{
		{0, 1, 2},
		{250, 253, 255},
	}
	p := Palette{BaseR: 255, BaseG: 255, BaseB: 0, ModR: 1, ModG: 100, ModB: 1}

	got := MakePixels(grid, p, false)

	width, height := got.Size()
	if width != 3 || height != 2 {
		t.Fatalf("size = %dx%d, want 3x2", width, height)
	}

	want := [][]bitmap.Pixel{
		{{R: 255, G: 255, B: 0}, {R: 254, G: 255, B: 1}, {R: 253, G: 255, B: 2}},
		{{R: 5, G: 255, B: 250}, {R: 2, G: 200, B: 253}, {R: 0, G: 0, B: 255}},
	}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got[y][x], want[y][x])
			}
		}
	}
}

func TestMakePixels_DoesNotModifyGrid(t *testing.T) {
	grid := escape.CountGrid{{3, 4}}
	_ = MakePixels(grid, Classic, true)

	if grid[0][0] != 3 || grid[0][1] != 4 {
		t.Errorf("grid modified: %v", grid)
	}
}

func TestRemapPrisoners(t *testing.T) {
	grid := escape.CountGrid{{1, 25}, {25, 24}}

	got := RemapPrisoners(grid, 25, 255)

	want := escape.CountGrid{{1, 255}, {255, 24}}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Errorf("cell (%d, %d) = %d, want %d", x, y, got[y][x], want[y][x])
			}
		}
	}
	if grid[0][1] != 25 {
		t.Errorf("input grid modified: %v", grid)
	}
}

func TestImage(t *testing.T) {
	buf := PixelBuffer{
		{{R: 1, G: 2, B: 3}, {R: 4, G: 5, B: 6}},
		{{R: 7, G: 8, B: 9}, {R: 10, G: 11, B: 12}},
		{{R: 13, G: 14, B: 15}, {R: 16, G: 17, B: 18}},
	}

	img, err := buf.Image()
	if err != nil {
		t.Fatal(err)
	}
	if img.Width() != 2 || img.Height() != 3 {
		t.Fatalf("image is %dx%d, want 2x3", img.Width(), img.Height())
	}

	for y := range buf {
		for x := range buf[y] {
			if got := img.Pixel(x, y); got != buf[y][x] {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, buf[y][x])
			}
		}
	}
}

func TestBrightness(t *testing.T) {
	grid := escape.ValueGrid{
		{cnum.Zero, cnum.New(3, 4)},
		{cnum.New(math.Inf(1), 0), cnum.New(math.NaN(), 1)},
	}

	got := Brightness(grid, LightBlue)

	if got[0][0] != LightBlue {
		t.Errorf("origin = %v, want full tint %v", got[0][0], LightBlue)
	}
	if got[0][1].B == 0 || got[0][1].B >= LightBlue.B {
		t.Errorf("|z| = 5 gave %v, want partial tint", got[0][1])
	}
	for x, p := range got[1] {
		if p != (bitmap.Pixel{}) {
			t.Errorf("non-finite cell %d = %v, want black", x, p)
		}
	}
}

func TestBrightness_AllNonFinite(t *testing.T) {
	grid := escape.ValueGrid{{cnum.New(math.NaN(), 0)}}

	got := Brightness(grid, LightBlue)
	if got[0][0] != (bitmap.Pixel{}) {
		t.Errorf("got %v, want black", got[0][0])
	}
}
