package imageutil

import (
	"image"
	"image/color"

	"github.com/wbrown/fxfont"
)

// Gray levels used by Monochrome.
const (
	monoBlack   = 0x00
	monoWhite   = 0xff
	monoNeither = 0x80
)

// Monochrome renders the classification of every pixel of src: black
// pixels as black, white pixels as white and anything else as mid gray.
// It shows what the encoder sees of a sheet.
func Monochrome(src fxfont.PixelSource) *image.Gray {
	width, height := src.Width(), src.Height()
	gray := image.NewGray(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			v := uint8(monoNeither)
			switch {
			case src.IsBlack(x, y):
				v = monoBlack
			case src.IsWhite(x, y):
				v = monoWhite
			}
			gray.SetGray(x, y, color.Gray{Y: v})
		}
	}
	return gray
}
