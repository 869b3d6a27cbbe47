package fxfont

import (
	"fmt"
	"image"
	"iter"
	"strconv"
	"strings"
)

// Grid describes how glyph cells are laid out on a sheet. Each cell holds a
// CellWidth x CellHeight glyph surrounded by Padding pixels on every side;
// cells are separated, and the whole grid framed, by Border pixel lines.
type Grid struct {
	CellWidth  int
	CellHeight int
	Padding    int
	Border     int
}

// ResolveGrid validates cfg and returns the grid it describes. A size value
// takes precedence over width and height.
func ResolveGrid(cfg GridConfig) (Grid, error) {
	g := Grid{
		CellWidth:  cfg.Width,
		CellHeight: cfg.Height,
		Padding:    cfg.Padding,
		Border:     cfg.Border,
	}
	if cfg.Size != "" {
		w, h, err := parseSize(cfg.Size)
		if err != nil {
			return Grid{}, err
		}
		g.CellWidth, g.CellHeight = w, h
	}
	if g.CellWidth <= 0 || g.CellHeight <= 0 {
		return Grid{}, fmt.Errorf("%w (%dx%d)", ErrInvalidGridSize, g.CellWidth, g.CellHeight)
	}
	return g, nil
}

// ResolveArea returns the crop rectangle of a sheet of the given size.
// Missing width and height default to the full image; a size value
// overrides both. The rectangle is not canonicalized: a zero or negative
// size yields an empty area, which holds no cells.
func ResolveArea(cfg AreaConfig, imgWidth, imgHeight int) (image.Rectangle, error) {
	w := valueOr(cfg.Width, imgWidth)
	h := valueOr(cfg.Height, imgHeight)
	if cfg.Size != "" {
		var err error
		if w, h, err = parseSize(cfg.Size); err != nil {
			return image.Rectangle{}, err
		}
	}
	origin := image.Pt(cfg.X, cfg.Y)
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(w, h))}, nil
}

// parseSize parses a "WxH" value.
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidSize, s)
	}
	return w, h, nil
}

// outer is the distance between the origins of two adjacent cells, minus
// the border.
func (g Grid) outer() (int, int) {
	return g.CellWidth + 2*g.Padding, g.CellHeight + 2*g.Padding
}

// Columns is the number of whole cells that fit across width pixels.
func (g Grid) Columns(width int) int {
	w, _ := g.outer()
	return max(0, (width-g.Border)/(w+g.Border))
}

// Rows is the number of whole cells that fit down height pixels.
func (g Grid) Rows(height int) int {
	_, h := g.outer()
	return max(0, (height-g.Border)/(h+g.Border))
}

// Capacity is the number of cells in an area of the given size.
func (g Grid) Capacity(width, height int) int {
	return g.Columns(width) * g.Rows(height)
}

// Cells yields the glyph rectangle of every cell that fits in an area of
// the given size, row by row, left to right. Rectangles are relative to the
// area origin and exclude padding and borders.
func (g Grid) Cells(width, height int) iter.Seq[image.Rectangle] {
	columns, rows := g.Columns(width), g.Rows(height)
	w, h := g.outer()
	return func(yield func(image.Rectangle) bool) {
		for r := 0; r < rows; r++ {
			for c := 0; c < columns; c++ {
				x := g.Border + c*(w+g.Border) + g.Padding
				y := g.Border + r*(h+g.Border) + g.Padding
				if !yield(image.Rect(x, y, x+g.CellWidth, y+g.CellHeight)) {
					return
				}
			}
		}
	}
}
