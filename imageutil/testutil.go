package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

// NewBlankImage creates an opaque white image, the background of a sheet.
func NewBlankImage(width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.NRGBA{255, 255, 255, 255}), image.Point{}, draw.Src)
	return img
}

// DrawPattern paints rows of text onto img with the top left corner at
// origin: '#' is black, '?' is transparent, '~' is mid gray and anything
// else is left untouched.
func DrawPattern(img *image.NRGBA, origin image.Point, rows ...string) {
	for y, row := range rows {
		for x, c := range row {
			p := origin.Add(image.Pt(x, y))
			switch c {
			case '#':
				img.SetNRGBA(p.X, p.Y, color.NRGBA{0, 0, 0, 255})
			case '?':
				img.SetNRGBA(p.X, p.Y, color.NRGBA{})
			case '~':
				img.SetNRGBA(p.X, p.Y, color.NRGBA{128, 128, 128, 255})
			}
		}
	}
}

// CreateCheckerboardImage creates a black and white checkerboard.
func CreateCheckerboardImage(width, height, squareSize int) *image.NRGBA {
	img := NewBlankImage(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if ((x/squareSize)+(y/squareSize))%2 != 0 {
				img.SetNRGBA(x, y, color.NRGBA{0, 0, 0, 255})
			}
		}
	}
	return img
}
