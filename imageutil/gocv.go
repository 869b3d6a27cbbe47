//go:build gocv

package imageutil

import (
	"fmt"

	"gocv.io/x/gocv"
)

// LoadSheetMat decodes the image at path with OpenCV. It accepts every
// format the local OpenCV build reads, which is wider than the pure Go
// decoders behind LoadSheet. Build with -tags gocv to enable it.
func LoadSheetMat(path string) (*Sheet, error) {
	mat := gocv.IMRead(path, gocv.IMReadUnchanged)
	if mat.Empty() {
		return nil, fmt.Errorf("could not read image from %s", path)
	}
	defer mat.Close()

	img, err := mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert image: %w", err)
	}
	return NewSheet(img), nil
}
