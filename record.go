package fxfont

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// recordHeaderSize is the flags byte followed by eight 16-bit fields.
const recordHeaderSize = 1 + 8*2

// MarshalBinary serializes the record as its header fields in declaration
// order followed by the Blocks, Glyphs, Index and Widths segments, each
// prefixed with its 32-bit length.
func (f *PackedFont) MarshalBinary() ([]byte, error) {
	segments := [][]byte{f.Blocks, f.Glyphs, f.Index, f.Widths}
	size := recordHeaderSize
	for _, s := range segments {
		size += 4 + len(s)
	}

	data := make([]byte, 0, size)
	data = append(data, f.Flags)
	for _, v := range []uint16{
		f.LineHeight, f.GridHeight, f.BlockCount, f.GlyphCount,
		f.CharSpacing, f.LineDistance, f.Width, f.StorageSize,
	} {
		data = binary.BigEndian.AppendUint16(data, v)
	}
	for _, s := range segments {
		data = binary.BigEndian.AppendUint32(data, uint32(len(s)))
		data = append(data, s...)
	}
	return data, nil
}

// UnmarshalBinary parses data produced by MarshalBinary.
func (f *PackedFont) UnmarshalBinary(data []byte) error {
	if len(data) < recordHeaderSize {
		return fmt.Errorf("%w: %d byte header", ErrMalformedRecord, len(data))
	}
	var g PackedFont
	g.Flags = data[0]
	for i, dst := range []*uint16{
		&g.LineHeight, &g.GridHeight, &g.BlockCount, &g.GlyphCount,
		&g.CharSpacing, &g.LineDistance, &g.Width, &g.StorageSize,
	} {
		*dst = binary.BigEndian.Uint16(data[1+2*i:])
	}

	rest := data[recordHeaderSize:]
	for _, dst := range []*[]byte{&g.Blocks, &g.Glyphs, &g.Index, &g.Widths} {
		if len(rest) < 4 {
			return fmt.Errorf("%w: truncated segment length", ErrMalformedRecord)
		}
		n := binary.BigEndian.Uint32(rest)
		rest = rest[4:]
		if uint64(n) > uint64(len(rest)) {
			return fmt.Errorf("%w: segment of %d bytes, %d left", ErrMalformedRecord, n, len(rest))
		}
		if n > 0 {
			*dst = append([]byte(nil), rest[:n]...)
		}
		rest = rest[n:]
	}
	if len(rest) != 0 {
		return fmt.Errorf("%w: %d trailing bytes", ErrMalformedRecord, len(rest))
	}
	if len(g.Blocks) != 4*int(g.BlockCount) {
		return fmt.Errorf("%w: %d block bytes for %d blocks", ErrMalformedRecord, len(g.Blocks), g.BlockCount)
	}
	*f = g
	return nil
}

// CharsetBlocks decodes the blocks segment.
func (f *PackedFont) CharsetBlocks() []CharsetBlock {
	blocks := make([]CharsetBlock, 0, len(f.Blocks)/4)
	for i := 0; i+4 <= len(f.Blocks); i += 4 {
		blocks = append(blocks, DecodeBlock(binary.BigEndian.Uint32(f.Blocks[i:])))
	}
	return blocks
}

// NumGlyphs is the number of bitmaps stored in the record, which may exceed
// GlyphCount when every grid cell was encoded.
func (f *PackedFont) NumGlyphs() int {
	if f.Proportional() {
		return len(f.Widths)
	}
	if f.StorageSize == 0 {
		return 0
	}
	return len(f.Glyphs) / (4 * int(f.StorageSize))
}

// Glyph decodes the i-th bitmap of the record. Proportional glyphs are
// located through the index table.
func (f *PackedFont) Glyph(i int) (*Bitmap, error) {
	if i < 0 || i >= f.NumGlyphs() {
		return nil, fmt.Errorf("%w: index %d", ErrGlyphNotFound, i)
	}
	h := int(f.GridHeight)

	var offset, w int
	if f.Proportional() {
		entry := i / indexStride
		if 2*entry+2 > len(f.Index) {
			return nil, fmt.Errorf("%w: no index entry for glyph %d", ErrMalformedRecord, i)
		}
		offset = 4 * int(binary.BigEndian.Uint16(f.Index[2*entry:]))
		for j := entry * indexStride; j < i; j++ {
			offset += 4 * StorageSize(int(f.Widths[j]), h)
		}
		w = int(f.Widths[i])
	} else {
		offset = i * 4 * int(f.StorageSize)
		w = int(f.Width)
	}

	end := offset + 4*StorageSize(w, h)
	if end > len(f.Glyphs) {
		return nil, fmt.Errorf("%w: glyph %d ends at byte %d of %d", ErrMalformedRecord, i, end, len(f.Glyphs))
	}
	return newBitmap(w, h, f.Glyphs[offset:end]), nil
}

// GlyphFor decodes the bitmap mapped to code point r by the charset blocks.
func (f *PackedFont) GlyphFor(r rune) (*Bitmap, error) {
	n := 0
	for _, b := range f.CharsetBlocks() {
		if r >= b.Start && r < b.Start+rune(b.Length) {
			return f.Glyph(n + int(r-b.Start))
		}
		n += b.Length
	}
	return nil, fmt.Errorf("%w: U+%04X", ErrGlyphNotFound, r)
}

// Bitmap is a decoded glyph; a set bit is a black pixel.
type Bitmap struct {
	Width  int
	Height int
	Bits   *bitset.BitSet
}

func newBitmap(w, h int, data []byte) *Bitmap {
	bits := bitset.New(uint(w * h))
	for i, set := range UnpackBits(data, w*h) {
		if set {
			bits.Set(uint(i))
		}
	}
	return &Bitmap{Width: w, Height: h, Bits: bits}
}

// At reports whether the pixel at (x, y) is black. Pixels outside the
// bitmap are not.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || x >= b.Width || y < 0 || y >= b.Height {
		return false
	}
	return b.Bits.Test(uint(y*b.Width + x))
}

// Format draws the bitmap as text, one line per row.
func (b *Bitmap) Format(on, off rune) string {
	var sb strings.Builder
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			if b.At(x, y) {
				sb.WriteRune(on)
			} else {
				sb.WriteRune(off)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (b *Bitmap) String() string {
	return b.Format('#', '.')
}
