package fxfont

import (
	"fmt"
	"sort"
	"strings"
)

// CharsetBlock declares a run of Length consecutive code points starting at
// Start, mapped to consecutive glyphs of the sheet.
type CharsetBlock struct {
	Start  rune
	Length int
}

// charsets is the table of predefined character sets. It is never written
// after initialization.
var charsets = map[string][]CharsetBlock{
	"numeric":  {{0x30, 10}},
	"upper":    {{0x41, 26}},
	"alpha":    {{0x41, 26}, {0x61, 26}},
	"alnum":    {{0x41, 26}, {0x61, 26}, {0x30, 10}},
	"print":    {{0x20, 95}},
	"ascii":    {{0x00, 128}},
	"unicode":  {},
	"256chars": {{0x00, 256}},
}

// LookupCharset returns the blocks of the named character set, in declared
// order. The returned slice is a copy. The error for an unknown name lists
// the registered ones.
func LookupCharset(name string) ([]CharsetBlock, error) {
	blocks, ok := charsets[name]
	if !ok {
		return nil, fmt.Errorf("%w '%s' (known: %s)",
			ErrUnknownCharset, name, strings.Join(CharsetNames(), ", "))
	}
	return append([]CharsetBlock(nil), blocks...), nil
}

// CharsetNames lists the registered character sets in sorted order.
func CharsetNames() []string {
	names := make([]string, 0, len(charsets))
	for name := range charsets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GlyphCount is the number of glyphs the blocks declare.
func GlyphCount(blocks []CharsetBlock) int {
	n := 0
	for _, b := range blocks {
		n += b.Length
	}
	return n
}

// Runes expands blocks into code points, in glyph order.
func Runes(blocks []CharsetBlock) []rune {
	runes := make([]rune, 0, GlyphCount(blocks))
	for _, b := range blocks {
		for i := 0; i < b.Length; i++ {
			runes = append(runes, b.Start+rune(i))
		}
	}
	return runes
}

// EncodeBlock packs a block into the 32-bit word stored in the blocks
// segment: the start code point in the upper 20 bits, the length in the
// lower 12. Start must be below 1<<20 and Length below 4096.
func EncodeBlock(b CharsetBlock) uint32 {
	return uint32(b.Start)<<12 | uint32(b.Length)
}

// DecodeBlock is the inverse of EncodeBlock.
func DecodeBlock(word uint32) CharsetBlock {
	return CharsetBlock{Start: rune(word >> 12), Length: int(word & 0xfff)}
}
