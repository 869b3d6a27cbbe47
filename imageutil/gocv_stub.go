//go:build !gocv

package imageutil

import "errors"

// ErrNoOpenCV is returned by LoadSheetMat when built without the gocv tag.
var ErrNoOpenCV = errors.New("imageutil: built without OpenCV support (use -tags gocv)")

// LoadSheetMat needs the gocv build tag.
func LoadSheetMat(path string) (*Sheet, error) {
	return nil, ErrNoOpenCV
}
