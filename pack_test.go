package fxfont

import (
	"image"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestStorageSize(t *testing.T) {
	tests := []struct{ w, h, words int }{
		{0, 0, 0},
		{1, 1, 1},
		{8, 4, 1},
		{8, 8, 2},
		{5, 7, 2},
		{10, 13, 5},
		{32, 32, 32},
	}
	for _, tt := range tests {
		if got := StorageSize(tt.w, tt.h); got != tt.words {
			t.Errorf("StorageSize(%d, %d) = %d, expected %d", tt.w, tt.h, got, tt.words)
		}
	}
}

func TestPackGlyph(t *testing.T) {
	// 3x3 pixels stream as 101 010 111 -> 1010 1011 1(000 ...).
	src := newTestSource(
		"#.#",
		".#.",
		"###",
	)
	got := PackGlyph(src, image.Rect(0, 0, 3, 3))
	want := []byte{0b1010_1011, 0b1000_0000, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Packed bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestPackGlyphSubRect(t *testing.T) {
	src := newTestSource(
		"........",
		"..##....",
		"..#.....",
		"........",
	)
	got := PackGlyph(src, image.Rect(2, 1, 4, 3))
	want := []byte{0b1110_0000, 0, 0, 0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Packed bytes mismatch (-want +got):\n%s", diff)
	}
}

func TestPackGlyphIgnoresGray(t *testing.T) {
	src := newTestSource("~#~")
	got := PackGlyph(src, image.Rect(0, 0, 3, 1))
	if got[0] != 0b0100_0000 {
		t.Errorf("Only black pixels should be set, got %08b", got[0])
	}
}

func TestPackRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	sizes := [][2]int{{1, 1}, {3, 5}, {7, 9}, {8, 8}, {10, 13}, {31, 1}, {33, 3}, {17, 17}, {64, 2}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		src := randomSource(rng, w, h)
		data := PackGlyph(src, image.Rect(0, 0, w, h))

		if len(data) != 4*StorageSize(w, h) {
			t.Errorf("%dx%d: expected %d bytes, got %d", w, h, 4*StorageSize(w, h), len(data))
			continue
		}
		for i := 0; i < len(data)*8; i++ {
			bit := (data[i/8]>>(7-i%8))&1 == 1
			if i >= w*h {
				if bit {
					t.Errorf("%dx%d: padding bit %d is set", w, h, i)
				}
				continue
			}
			if want := src.IsBlack(i%w, i/w); bit != want {
				t.Errorf("%dx%d: bit %d is %v, expected %v", w, h, i, bit, want)
			}
		}

		bits := UnpackBits(data, w*h)
		for i, b := range bits {
			if b != src.IsBlack(i%w, i/w) {
				t.Errorf("%dx%d: UnpackBits bit %d is %v", w, h, i, b)
			}
		}
	}
}

func TestUnpackBitsShortData(t *testing.T) {
	got := UnpackBits([]byte{0xff}, 10)
	want := []bool{true, true, true, true, true, true, true, true, false, false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("UnpackBits mismatch (-want +got):\n%s", diff)
	}
}
