package fxfont

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRecordRoundTrip(t *testing.T) {
	for _, proportional := range []bool{false, true} {
		f, err := Convert(digitSheet(), Config{
			Charset:      "numeric",
			Grid:         GridConfig{Size: "8x8"},
			Proportional: proportional,
			Flags:        "italic",
		})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		data, err := f.MarshalBinary()
		if err != nil {
			t.Fatalf("MarshalBinary failed: %v", err)
		}

		var got PackedFont
		if err := got.UnmarshalBinary(data); err != nil {
			t.Fatalf("UnmarshalBinary failed: %v", err)
		}
		if diff := cmp.Diff(f, &got); diff != "" {
			t.Errorf("Proportional %v: round trip mismatch (-want +got):\n%s", proportional, diff)
		}
	}
}

func TestRecordHeaderLayout(t *testing.T) {
	f := &PackedFont{
		Flags: 0x81, LineHeight: 0x0102, GridHeight: 3, BlockCount: 1, GlyphCount: 4,
		CharSpacing: 5, LineDistance: 6, Blocks: []byte{1, 2, 3, 4}, Widths: []byte{9},
	}
	data, _ := f.MarshalBinary()
	want := []byte{
		0x81, 0x01, 0x02, 0, 3, 0, 1, 0, 4, 0, 5, 0, 6, 0, 0, 0, 0,
		0, 0, 0, 4, 1, 2, 3, 4, // blocks
		0, 0, 0, 0, // glyphs
		0, 0, 0, 0, // index
		0, 0, 0, 1, 9, // widths
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("Record layout mismatch (-want +got):\n%s", diff)
	}
}

func TestUnmarshalMalformed(t *testing.T) {
	f := &PackedFont{BlockCount: 1, Blocks: []byte{1, 2, 3, 4}, Glyphs: []byte{0, 0, 0, 0}}
	data, _ := f.MarshalBinary()

	tests := []struct {
		name string
		data []byte
	}{
		{"short header", data[:5]},
		{"truncated segment", data[:len(data)-2]},
		{"trailing bytes", append(append([]byte(nil), data...), 0)},
		{"block count", func() []byte {
			d := append([]byte(nil), data...)
			d[6] = 2
			return d
		}()},
	}
	for _, tt := range tests {
		var got PackedFont
		if err := got.UnmarshalBinary(tt.data); !errors.Is(err, ErrMalformedRecord) {
			t.Errorf("%s: expected ErrMalformedRecord, got %v", tt.name, err)
		}
	}
}

func TestGlyphLookup(t *testing.T) {
	for _, proportional := range []bool{false, true} {
		f, err := Convert(digitSheet(), Config{
			Charset:      "numeric",
			Grid:         GridConfig{Size: "8x8"},
			Proportional: proportional,
		})
		if err != nil {
			t.Fatalf("Convert failed: %v", err)
		}
		if f.NumGlyphs() != 10 {
			t.Fatalf("Expected 10 glyphs, got %d", f.NumGlyphs())
		}

		for d := 0; d < 10; d++ {
			g, err := f.GlyphFor(rune('0' + d))
			if err != nil {
				t.Fatalf("GlyphFor(%d) failed: %v", d, err)
			}
			bar := d%5 + 1
			x0 := 1
			if proportional {
				x0 = 0
				if g.Width != bar {
					t.Errorf("Digit %d: expected width %d, got %d", d, bar, g.Width)
				}
			}
			if int(g.Bits.Count()) != 6*bar {
				t.Errorf("Digit %d: expected %d black pixels, got %d", d, 6*bar, g.Bits.Count())
			}
			if !g.At(x0, 1) || g.At(x0, 0) || g.At(x0+bar, 1) {
				t.Errorf("Digit %d: bar misplaced:\n%s", d, g)
			}
		}
	}
}

func TestGlyphNotFound(t *testing.T) {
	f, err := Convert(digitSheet(), Config{Charset: "numeric", Grid: GridConfig{Size: "8x8"}})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.Glyph(10); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Expected ErrGlyphNotFound for index 10, got %v", err)
	}
	if _, err := f.GlyphFor('A'); !errors.Is(err, ErrGlyphNotFound) {
		t.Errorf("Expected ErrGlyphNotFound for 'A', got %v", err)
	}
}

func TestGlyphCorruptIndex(t *testing.T) {
	f, err := Convert(digitSheet(), Config{Charset: "numeric", Grid: GridConfig{Size: "8x8"}, Proportional: true})
	if err != nil {
		t.Fatal(err)
	}
	f.Index = f.Index[:2]
	if _, err := f.Glyph(9); !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Expected ErrMalformedRecord, got %v", err)
	}
}

func TestBitmapString(t *testing.T) {
	src := newTestSource("#.", ".#")
	f, err := Convert(src, Config{Charset: "unicode", Grid: GridConfig{Size: "2x2"}, EncodeAllCells: true})
	if err != nil {
		t.Fatal(err)
	}
	g, err := f.Glyph(0)
	if err != nil {
		t.Fatal(err)
	}
	want := strings.Join([]string{"#.", ".#", ""}, "\n")
	if got := g.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}
