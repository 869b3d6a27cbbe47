package fxfont

import (
	"bytes"
	"image"

	"github.com/icza/bitio"
)

// StorageSize is the number of 32-bit words holding a w x h glyph bitmap.
func StorageSize(w, h int) int {
	return (w*h + 31) >> 5
}

// PackGlyph serializes the pixels of r, row by row, as one continuous
// MSB-first bit stream with a set bit for every black pixel. Rows are not
// padded; the stream is zero-filled up to a whole number of 32-bit words.
func PackGlyph(src PixelSource, r image.Rectangle) []byte {
	size := 4 * StorageSize(r.Dx(), r.Dy())
	buf := bytes.NewBuffer(make([]byte, 0, size))

	// Writes to a bytes.Buffer cannot fail.
	w := bitio.NewWriter(buf)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			w.TryWriteBool(src.IsBlack(x, y))
		}
	}
	w.Close()

	data := buf.Bytes()
	for len(data) < size {
		data = append(data, 0)
	}
	return data
}

// UnpackBits reads the first n bits of a packed bitmap. Bits missing from
// data read as false.
func UnpackBits(data []byte, n int) []bool {
	bits := make([]bool, n)
	r := bitio.NewReader(bytes.NewReader(data))
	for i := range bits {
		b, err := r.ReadBool()
		if err != nil {
			break
		}
		bits[i] = b
	}
	return bits
}
