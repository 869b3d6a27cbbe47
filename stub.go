package fxfont

import (
	"fmt"
	"io"
	"strings"
)

// WriteStub writes a Python module declaring the font object name through
// a single gint.font constructor call with the record fields in order.
func WriteStub(w io.Writer, name string, f *PackedFont) error {
	if name == "" {
		name = DefaultName
	}
	var sb strings.Builder
	sb.WriteString("import gint\n")
	fmt.Fprintf(&sb, "%s = gint.font(%d, %d, %d, %d, %d, %d, %d, %s, %s",
		name, f.Flags, f.LineHeight, f.GridHeight, f.BlockCount, f.GlyphCount,
		f.CharSpacing, f.LineDistance, PyBytes(f.Blocks), PyBytes(f.Glyphs))
	if f.Proportional() {
		fmt.Fprintf(&sb, ", 0, 0, %s, %s", PyBytes(f.Index), PyBytes(f.Widths))
	} else {
		fmt.Fprintf(&sb, ", %d, %d, None, None", f.Width, f.StorageSize)
	}
	sb.WriteString(")\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// PyBytes formats data as a Python bytes literal.
func PyBytes(data []byte) string {
	var sb strings.Builder
	sb.Grow(3 + len(data)*2)
	sb.WriteString("b'")
	for _, c := range data {
		switch {
		case c == '\'':
			sb.WriteString(`\'`)
		case c == '\\':
			sb.WriteString(`\\`)
		case c >= 0x20 && c <= 0x7e:
			sb.WriteByte(c)
		default:
			fmt.Fprintf(&sb, `\x%02x`, c)
		}
	}
	sb.WriteByte('\'')
	return sb.String()
}
