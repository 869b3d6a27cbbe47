package fxfont

import (
	"encoding/binary"
	"fmt"
)

// indexStride is the number of glyphs between two index entries.
const indexStride = 8

// tableBuilder accumulates the glyph, index and width segments of one
// conversion.
type tableBuilder struct {
	glyphs []byte
	index  []byte
	widths []byte
	count  int
}

// add appends the bitmap of the next glyph. Every indexStride glyphs it
// first records the word offset of the glyph data written so far.
func (t *tableBuilder) add(bitmap []byte) error {
	if t.count%indexStride == 0 {
		offset := len(t.glyphs) / 4
		if offset > 0xffff {
			return fmt.Errorf("%w: glyph %d starts at word %d", ErrFieldOverflow, t.count, offset)
		}
		t.index = binary.BigEndian.AppendUint16(t.index, uint16(offset))
	}
	t.glyphs = append(t.glyphs, bitmap...)
	t.count++
	return nil
}

// addWidth records the trimmed width of a proportional glyph.
func (t *tableBuilder) addWidth(w int) error {
	if w > 0xff {
		return fmt.Errorf("%w: glyph %d is %d pixels wide", ErrGlyphTooWide, t.count, w)
	}
	t.widths = append(t.widths, byte(w))
	return nil
}
