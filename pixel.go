package fxfont

import "image"

// PixelSource is the monochrome view of a glyph sheet consumed by the
// encoder. IsBlack and IsWhite must never both be true for the same
// in-bounds pixel; a pixel may be neither (for instance a transparent one).
//
// Each implementation decides what out-of-bounds coordinates report and
// should document it.
type PixelSource interface {
	Width() int
	Height() int
	IsBlack(x, y int) bool
	IsWhite(x, y int) bool
}

// croppedSource translates queries by the origin of r, so that (0,0) maps
// to r.Min in the parent. Out-of-bounds queries are forwarded to the parent
// unchanged.
type croppedSource struct {
	src PixelSource
	r   image.Rectangle
}

// Crop returns a view of src restricted to r. Coordinates of the view are
// relative to r.Min; r may extend past the edges of src.
func Crop(src PixelSource, r image.Rectangle) PixelSource {
	if c, ok := src.(*croppedSource); ok {
		return &croppedSource{src: c.src, r: r.Add(c.r.Min)}
	}
	return &croppedSource{src: src, r: r}
}

func (c *croppedSource) Width() int  { return c.r.Dx() }
func (c *croppedSource) Height() int { return c.r.Dy() }

func (c *croppedSource) IsBlack(x, y int) bool {
	return c.src.IsBlack(c.r.Min.X+x, c.r.Min.Y+y)
}

func (c *croppedSource) IsWhite(x, y int) bool {
	return c.src.IsWhite(c.r.Min.X+x, c.r.Min.Y+y)
}
