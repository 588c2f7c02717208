package asciiart

import (
	"fmt"
	"image"
)

// patternRasterizer renders each rune from a fixed per-rune fill pattern
// so catalog tests do not depend on font outlines. Runes without a
// pattern render blank.
type patternRasterizer struct {
	patterns map[rune]func(x, y int) bool
	fail     rune
}

func (pr *patternRasterizer) Name() string {
	return "pattern"
}

func (pr *patternRasterizer) RenderGlyph(r rune, cellWidth, cellHeight int) (*image.Gray, error) {
	if pr.fail != 0 && r == pr.fail {
		return nil, fmt.Errorf("%w: cannot render %q", ErrFontLoad, r)
	}
	img := image.NewGray(image.Rect(0, 0, cellWidth, cellHeight))
	fill := pr.patterns[r]
	if fill == nil {
		return img, nil
	}
	for y := 0; y < cellHeight; y++ {
		for x := 0; x < cellWidth; x++ {
			if fill(x, y) {
				img.Pix[y*img.Stride+x] = 255
			}
		}
	}
	return img, nil
}

func fullFill(x, y int) bool       { return true }
func topHalfFill(x, y int) bool    { return y < 6 }
func leftColumnFill(x, y int) bool { return x == 0 }

func newPatternRasterizer() *patternRasterizer {
	return &patternRasterizer{
		patterns: map[rune]func(x, y int) bool{
			'#': fullFill,
			'^': topHalfFill,
			'|': leftColumnFill,
		},
	}
}
