// Package render draws glyph sheets from TrueType fonts, producing input
// for fxfont.Convert without an image editor.
package render

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"math"
	"os"

	"github.com/disintegration/gift"
	"github.com/golang/freetype"
	"github.com/golang/freetype/truetype"
	"github.com/wbrown/fxfont"
	"golang.org/x/image/font"
)

// Options controls sheet layout.
type Options struct {
	// Size is the font size in pixels.
	Size float64
	// Padding is added around every glyph, inside the cell.
	Padding int
	// Threshold is the brightness percentage below which a pixel becomes
	// black. Defaults to 50.
	Threshold float32
}

var errNoGlyphs = errors.New("render: no glyphs to draw")

// LoadFont loads a TrueType font from file
func LoadFont(path string) (*truetype.Font, error) {
	fontBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font: %w", err)
	}

	ttf, err := freetype.ParseFont(fontBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return ttf, nil
}

// Charset renders the named charset. See Sheet.
func Charset(ttf *truetype.Font, name string, opts Options) (*image.Gray, fxfont.GridConfig, error) {
	blocks, err := fxfont.LookupCharset(name)
	if err != nil {
		return nil, fxfont.GridConfig{}, err
	}
	return Sheet(ttf, fxfont.Runes(blocks), opts)
}

// Sheet draws runes black on white into a roughly square grid and
// binarizes the result. Every cell is as wide as the widest advance and as
// tall as the font's ascent plus descent, both rounded up to even, plus
// twice the padding. Glyphs are centered in their cells.
//
// The returned grid configuration describes the sheet for fxfont.Convert;
// padding is part of the cell.
func Sheet(ttf *truetype.Font, runes []rune, opts Options) (*image.Gray, fxfont.GridConfig, error) {
	if len(runes) == 0 {
		return nil, fxfont.GridConfig{}, errNoGlyphs
	}

	face := truetype.NewFace(ttf, &truetype.Options{
		Size:    opts.Size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	defer face.Close()

	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	glyphHeight := ascent + metrics.Descent.Ceil()
	glyphWidth := 0
	advances := make([]int, len(runes))
	for i, r := range runes {
		adv, _ := face.GlyphAdvance(r)
		advances[i] = adv.Ceil()
		glyphWidth = max(glyphWidth, advances[i])
	}
	glyphWidth += glyphWidth % 2
	glyphHeight += glyphHeight % 2

	cellWidth := glyphWidth + 2*opts.Padding
	cellHeight := glyphHeight + 2*opts.Padding
	columns := int(math.Ceil(math.Sqrt(float64(len(runes)))))
	rows := (len(runes) + columns - 1) / columns

	canvas := image.NewRGBA(image.Rect(0, 0, columns*cellWidth, rows*cellHeight))
	draw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, draw.Src)

	ctx := freetype.NewContext()
	ctx.SetDPI(72)
	ctx.SetFont(ttf)
	ctx.SetFontSize(opts.Size)
	ctx.SetClip(canvas.Bounds())
	ctx.SetDst(canvas)
	ctx.SetSrc(image.Black)
	ctx.SetHinting(font.HintingFull)

	for i, r := range runes {
		x := (i%columns)*cellWidth + (cellWidth-advances[i])/2
		top := (i/columns)*cellHeight + opts.Padding + (glyphHeight-(ascent+metrics.Descent.Ceil()))/2
		if _, err := ctx.DrawString(string(r), freetype.Pt(x, top+ascent)); err != nil {
			return nil, fxfont.GridConfig{}, fmt.Errorf("failed to draw %q: %w", r, err)
		}
	}

	threshold := opts.Threshold
	if threshold == 0 {
		threshold = 50
	}
	g := gift.New(gift.Grayscale(), gift.Threshold(threshold))
	sheet := image.NewGray(g.Bounds(canvas.Bounds()))
	g.Draw(sheet, canvas)

	return sheet, fxfont.GridConfig{Width: cellWidth, Height: cellHeight}, nil
}
