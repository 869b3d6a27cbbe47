package fxfont

import (
	"encoding/binary"
	"fmt"

	"github.com/sirupsen/logrus"
)

// PackedFont is an encoded font record. Multi-byte integers in the segments
// are big-endian.
type PackedFont struct {
	Flags        uint8
	LineHeight   uint16
	GridHeight   uint16
	BlockCount   uint16
	GlyphCount   uint16
	CharSpacing  uint16
	LineDistance uint16

	// Blocks holds one EncodeBlock word per charset block.
	Blocks []byte
	// Glyphs holds the packed bitmaps, each a whole number of words.
	Glyphs []byte

	// Width and StorageSize are the cell width and the per-glyph word count
	// of a fixed-width font, and zero for a proportional one.
	Width       uint16
	StorageSize uint16

	// Index and Widths are only present in proportional fonts. Index holds
	// the word offset of every 8th glyph, Widths one byte per glyph.
	Index  []byte
	Widths []byte
}

// Proportional reports whether the record has per-glyph widths.
func (f *PackedFont) Proportional() bool {
	return f.Flags&1 != 0
}

// Convert encodes the glyph sheet src according to cfg.
func Convert(src PixelSource, cfg Config) (*PackedFont, error) {
	if cfg.Charset == "" {
		return nil, ErrMissingCharset
	}
	blocks, err := LookupCharset(cfg.Charset)
	if err != nil {
		return nil, err
	}
	glyphCount := GlyphCount(blocks)

	grid, err := ResolveGrid(cfg.Grid)
	if err != nil {
		return nil, err
	}
	area, err := ResolveArea(cfg.Area, src.Width(), src.Height())
	if err != nil {
		return nil, err
	}
	sheet := Crop(src, area)

	capacity := grid.Capacity(area.Dx(), area.Dy())
	if glyphCount > capacity {
		return nil, fmt.Errorf("%w (got %d, need %d for '%s')",
			ErrInsufficientGridCapacity, capacity, glyphCount, cfg.Charset)
	}

	style, err := ParseFlags(cfg.Flags)
	if err != nil {
		return nil, err
	}

	lineHeight := valueOr(cfg.LineHeight, grid.CellHeight)
	charSpacing := valueOr(cfg.CharSpacing, 1)
	lineDistance := valueOr(cfg.LineDistance, lineHeight+1)

	logrus.WithFields(logrus.Fields{
		"charset":  cfg.Charset,
		"glyphs":   glyphCount,
		"area":     area,
		"cell":     fmt.Sprintf("%dx%d", grid.CellWidth, grid.CellHeight),
		"capacity": capacity,
	}).Debug("resolved sheet geometry")

	f := &PackedFont{Flags: style.Byte(cfg.Proportional)}
	type field struct {
		name  string
		value int
		dst   *uint16
	}
	header := []field{
		{"line height", lineHeight, &f.LineHeight},
		{"grid height", grid.CellHeight, &f.GridHeight},
		{"block count", len(blocks), &f.BlockCount},
		{"glyph count", glyphCount, &f.GlyphCount},
		{"char spacing", charSpacing, &f.CharSpacing},
		{"line distance", lineDistance, &f.LineDistance},
	}
	if !cfg.Proportional {
		header = append(header,
			field{"grid width", grid.CellWidth, &f.Width},
			field{"storage size", StorageSize(grid.CellWidth, grid.CellHeight), &f.StorageSize})
	}
	for _, h := range header {
		if h.value < 0 || h.value > 0xffff {
			return nil, fmt.Errorf("%w: %s %d", ErrFieldOverflow, h.name, h.value)
		}
		*h.dst = uint16(h.value)
	}

	for _, b := range blocks {
		f.Blocks = binary.BigEndian.AppendUint32(f.Blocks, EncodeBlock(b))
	}

	var t tableBuilder
	for cell := range grid.Cells(area.Dx(), area.Dy()) {
		if !cfg.EncodeAllCells && t.count >= glyphCount {
			break
		}
		if cfg.Proportional {
			x, w := Trim(sheet, cell)
			cell.Min.X += x
			cell.Max.X = cell.Min.X + w
			if err := t.addWidth(w); err != nil {
				return nil, err
			}
		}
		if err := t.add(PackGlyph(sheet, cell)); err != nil {
			return nil, err
		}
	}

	f.Glyphs = t.glyphs
	if cfg.Proportional {
		f.Index = t.index
		f.Widths = t.widths
	}

	logrus.WithFields(logrus.Fields{
		"encoded":      t.count,
		"glyph_bytes":  len(f.Glyphs),
		"proportional": cfg.Proportional,
	}).Debug("encoded glyphs")

	return f, nil
}
