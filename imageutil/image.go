// Package imageutil loads glyph sheet images and adapts them to the
// fxfont.PixelSource interface.
package imageutil

import (
	"image"

	"golang.org/x/image/draw"
)

// Sheet classification thresholds. A pixel is opaque when its alpha is at
// least OpaqueAlpha; an opaque pixel is black when the mean of its R, G and B
// channels is below BlackLevel and white when the mean is above WhiteLevel.
const (
	OpaqueAlpha = 128
	BlackLevel  = 43
	WhiteLevel  = 212
)

// Sheet is a glyph sheet backed by a non-premultiplied RGBA image whose
// origin is (0,0).
//
// Transparent pixels are neither black nor white. Coordinates outside the
// image are white and never black, so a cell that overhangs the sheet trims
// as if it were padded with background.
type Sheet struct {
	*image.NRGBA
}

// NewSheet copies img into a Sheet.
func NewSheet(img image.Image) *Sheet {
	if nrgba, ok := img.(*image.NRGBA); ok && nrgba.Rect.Min == (image.Point{}) {
		return &Sheet{NRGBA: nrgba}
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(dst, dst.Bounds(), img, bounds.Min, draw.Src)
	return &Sheet{NRGBA: dst}
}

// Width returns the image width.
func (s *Sheet) Width() int {
	return s.Rect.Dx()
}

// Height returns the image height.
func (s *Sheet) Height() int {
	return s.Rect.Dy()
}

// level returns three times the mean channel value of an opaque pixel.
func (s *Sheet) level(x, y int) (sum int, opaque bool) {
	c := s.NRGBAAt(x, y)
	if c.A < OpaqueAlpha {
		return 0, false
	}
	return int(c.R) + int(c.G) + int(c.B), true
}

// IsBlack reports whether (x, y) is an opaque dark pixel.
func (s *Sheet) IsBlack(x, y int) bool {
	if !(image.Point{x, y}.In(s.Rect)) {
		return false
	}
	sum, opaque := s.level(x, y)
	return opaque && sum < 3*BlackLevel
}

// IsWhite reports whether (x, y) is an opaque light pixel or lies outside
// the sheet.
func (s *Sheet) IsWhite(x, y int) bool {
	if !(image.Point{x, y}.In(s.Rect)) {
		return true
	}
	sum, opaque := s.level(x, y)
	return opaque && sum > 3*WhiteLevel
}
