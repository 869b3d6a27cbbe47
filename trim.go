package fxfont

import "image"

// Trim narrows cell horizontally to the span of columns holding any
// non-white pixel. It returns the offset of that span from cell.Min.X and its
// width. The width is never below 1: a blank cell trims down to its last
// column.
func Trim(src PixelSource, cell image.Rectangle) (offsetX, width int) {
	blank := func(x int) bool {
		for y := cell.Min.Y; y < cell.Max.Y; y++ {
			if !src.IsWhite(cell.Min.X+x, y) {
				return false
			}
		}
		return true
	}

	left, right := 0, cell.Dx()
	for left+1 < right && blank(left) {
		left++
	}
	for right-1 > left && blank(right-1) {
		right--
	}
	return left, right - left
}
