package render

import (
	"image/color"
	"testing"
)

func TestFillCellsRGBA(t *testing.T) {
	cells := []uint8{0, 1, 1, 0}
	buf := make([]byte, 16)
	on := color.RGBA{R: 10, G: 20, B: 30, A: 255}
	fillCellsRGBA(buf, cells, on, color.Black)

	want := []byte{
		0, 0, 0, 255,
		10, 20, 30, 255,
		10, 20, 30, 255,
		0, 0, 0, 255,
	}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestParseHex(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
		ok   bool
	}{
		{"#ff8800", color.RGBA{R: 255, G: 136, B: 0, A: 255}, true},
		{"00FF7f", color.RGBA{G: 255, B: 127, A: 255}, true},
		{"#fff", color.RGBA{}, false},
		{"#gg0000", color.RGBA{}, false},
		{"", color.RGBA{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseHex(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseHex(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
