package imageutil

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/wbrown/fxfont"
)

// PreviewOptions controls RenderPreview.
type PreviewOptions struct {
	Columns int // glyphs per row, 16 when zero
	Spacing int // background pixels between glyphs
	Scale   int // integer upscale factor, 1 when zero
}

// RenderPreview decodes every glyph of f and lays them out left to right,
// top to bottom, black on white.
func RenderPreview(f *fxfont.PackedFont, opts PreviewOptions) (*image.Gray, error) {
	columns := opts.Columns
	if columns <= 0 {
		columns = 16
	}

	n := f.NumGlyphs()
	glyphs := make([]*fxfont.Bitmap, n)
	cellWidth := int(f.Width)
	for i := range glyphs {
		g, err := f.Glyph(i)
		if err != nil {
			return nil, err
		}
		glyphs[i] = g
		cellWidth = max(cellWidth, g.Width)
	}
	cellHeight := int(f.GridHeight)

	rows := (n + columns - 1) / columns
	if n < columns {
		columns = max(n, 1)
	}
	pitchX := cellWidth + opts.Spacing
	pitchY := cellHeight + opts.Spacing
	img := image.NewGray(image.Rect(0, 0,
		columns*pitchX+opts.Spacing, rows*pitchY+opts.Spacing))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for i, g := range glyphs {
		ox := opts.Spacing + (i%columns)*pitchX
		oy := opts.Spacing + (i/columns)*pitchY
		for y := 0; y < g.Height; y++ {
			for x := 0; x < g.Width; x++ {
				if g.At(x, y) {
					img.SetGray(ox+x, oy+y, color.Gray{Y: monoBlack})
				}
			}
		}
	}
	return Scale(img, opts.Scale), nil
}
