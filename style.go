package fxfont

import (
	"fmt"
	"strings"
)

// Style is the set of style flags of a font.
type Style struct {
	Bold   bool
	Italic bool
	Serif  bool
	Mono   bool
}

// ParseFlags parses a comma-separated list of style names. Empty entries
// are skipped.
func ParseFlags(s string) (Style, error) {
	var st Style
	for _, f := range strings.Split(s, ",") {
		switch f {
		case "":
		case "bold":
			st.Bold = true
		case "italic":
			st.Italic = true
		case "serif":
			st.Serif = true
		case "mono":
			st.Mono = true
		default:
			return Style{}, fmt.Errorf("%w: %s", ErrUnknownFlag, f)
		}
	}
	return st, nil
}

// Byte packs the style and the proportional bit into the record flags byte.
func (st Style) Byte(proportional bool) uint8 {
	var b uint8
	if st.Bold {
		b |= 1 << 7
	}
	if st.Italic {
		b |= 1 << 6
	}
	if st.Serif {
		b |= 1 << 5
	}
	if st.Mono {
		b |= 1 << 4
	}
	if proportional {
		b |= 1
	}
	return b
}

// StyleFromByte unpacks a record flags byte.
func StyleFromByte(b uint8) (st Style, proportional bool) {
	return Style{
		Bold:   b&(1<<7) != 0,
		Italic: b&(1<<6) != 0,
		Serif:  b&(1<<5) != 0,
		Mono:   b&(1<<4) != 0,
	}, b&1 != 0
}
