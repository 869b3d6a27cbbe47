package fxfont

import (
	"math/rand"
	"strings"
)

// testSource is an in-memory PixelSource. Pixels are given as text rows:
// '#' is black, '.' is white and anything else is neither. Outside the rows
// every pixel is white.
type testSource struct {
	w, h int
	px   [][]byte
}

func newTestSource(rows ...string) *testSource {
	s := &testSource{h: len(rows)}
	for _, r := range rows {
		s.w = max(s.w, len(r))
		s.px = append(s.px, []byte(r))
	}
	return s
}

// blankSource is a white w x h source.
func blankSource(w, h int) *testSource {
	rows := make([]string, h)
	for i := range rows {
		rows[i] = strings.Repeat(".", w)
	}
	return newTestSource(rows...)
}

// randomSource fills a w x h source with random black and white pixels.
func randomSource(rng *rand.Rand, w, h int) *testSource {
	s := blankSource(w, h)
	for y := range s.px {
		for x := range s.px[y] {
			if rng.Intn(2) == 1 {
				s.px[y][x] = '#'
			}
		}
	}
	return s
}

// paint copies rows onto s with the top left corner at (x0, y0).
func (s *testSource) paint(x0, y0 int, rows ...string) {
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			s.px[y0+y][x0+x] = r[x]
		}
	}
}

func (s *testSource) at(x, y int) (byte, bool) {
	if y < 0 || y >= len(s.px) || x < 0 || x >= len(s.px[y]) {
		return 0, false
	}
	return s.px[y][x], true
}

func (s *testSource) Width() int  { return s.w }
func (s *testSource) Height() int { return s.h }

func (s *testSource) IsBlack(x, y int) bool {
	c, ok := s.at(x, y)
	return ok && c == '#'
}

func (s *testSource) IsWhite(x, y int) bool {
	c, ok := s.at(x, y)
	return !ok || c == '.'
}
