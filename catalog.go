package asciiart

import (
	"fmt"
	"image"
	"sort"
	"unicode"
)

// Glyph is one character of the catalog: its rendered cell, the cell
// flattened row-major and scaled to [0, 1], and its density, the mean of
// the raw 0-255 cell values. Glyphs are never modified after the catalog
// is built.
type Glyph struct {
	Rune    rune
	Bitmap  *image.Gray
	Vector  []float64
	Density float64
}

// Catalog holds the glyphs available for matching, ordered by ascending
// density. Characters with equal density keep their charset order. Row i
// of Matrix is the vector of Glyphs[i].
type Catalog struct {
	CellWidth  int
	CellHeight int
	Glyphs     []Glyph
	Matrix     *Matrix
}

// DefaultCharset returns the printable ASCII characters, space (0x20)
// through tilde (0x7E), in code point order.
func DefaultCharset() []rune {
	charset := make([]rune, 0, 0x7e-0x20+1)
	for r := rune(0x20); r <= 0x7e; r++ {
		charset = append(charset, r)
	}
	return charset
}

// ParseCharset returns the distinct printable characters of s in order of
// first appearance. Control and other non-printing characters are
// dropped.
func ParseCharset(s string) []rune {
	seen := make(map[rune]bool)
	var charset []rune
	for _, r := range s {
		if seen[r] || !unicode.IsPrint(r) {
			continue
		}
		seen[r] = true
		charset = append(charset, r)
	}
	return charset
}

// NewCatalog renders every rune of charset into a cellWidth x cellHeight
// cell and returns the density-sorted catalog. An empty charset yields an
// empty catalog; matching against it fails with ErrEmptyCatalog.
func NewCatalog(r Rasterizer, cellWidth, cellHeight int, charset []rune) (*Catalog, error) {
	return buildCatalog(r, cellWidth, cellHeight, charset, 0)
}

func buildCatalog(r Rasterizer, cellWidth, cellHeight int, charset []rune, workers int) (*Catalog, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: no font", ErrFontLoad)
	}
	if cellWidth <= 0 || cellHeight <= 0 {
		return nil, fmt.Errorf("%w: invalid cell size %dx%d", ErrFontLoad, cellWidth, cellHeight)
	}

	glyphs := make([]Glyph, len(charset))
	errs := make([]error, len(charset))
	parallelFor(len(charset), workers, func(i int) {
		glyphs[i], errs[i] = renderGlyph(r, charset[i], cellWidth, cellHeight)
	})
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].Density < glyphs[j].Density
	})

	// Move the vectors into one contiguous matrix for batch matching
	matrix := NewMatrix(len(glyphs), cellWidth*cellHeight)
	for i := range glyphs {
		row := matrix.Row(i)
		copy(row, glyphs[i].Vector)
		glyphs[i].Vector = row
	}

	return &Catalog{
		CellWidth:  cellWidth,
		CellHeight: cellHeight,
		Glyphs:     glyphs,
		Matrix:     matrix,
	}, nil
}

// renderGlyph rasterizes a single rune and derives its vector and density.
func renderGlyph(r Rasterizer, char rune, cellWidth, cellHeight int) (Glyph, error) {
	bitmap, err := r.RenderGlyph(char, cellWidth, cellHeight)
	if err != nil {
		return Glyph{}, err
	}
	b := bitmap.Bounds()
	if b.Dx() != cellWidth || b.Dy() != cellHeight {
		return Glyph{}, fmt.Errorf("%w: glyph %q rendered at %dx%d, want %dx%d",
			ErrDimensionMismatch, char, b.Dx(), b.Dy(), cellWidth, cellHeight)
	}

	vector := make([]float64, 0, cellWidth*cellHeight)
	sum := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		start := bitmap.PixOffset(b.Min.X, y)
		for _, v := range bitmap.Pix[start : start+cellWidth] {
			sum += int(v)
			vector = append(vector, float64(v)/255)
		}
	}

	return Glyph{
		Rune:    char,
		Bitmap:  bitmap,
		Vector:  vector,
		Density: float64(sum) / float64(cellWidth*cellHeight),
	}, nil
}

// Len returns the number of glyphs in the catalog.
func (c *Catalog) Len() int {
	return len(c.Glyphs)
}

// Runes returns the catalog characters in catalog order.
func (c *Catalog) Runes() []rune {
	runes := make([]rune, len(c.Glyphs))
	for i, g := range c.Glyphs {
		runes[i] = g.Rune
	}
	return runes
}

// Densities returns the glyph densities in catalog order.
func (c *Catalog) Densities() []float64 {
	densities := make([]float64, len(c.Glyphs))
	for i, g := range c.Glyphs {
		densities[i] = g.Density
	}
	return densities
}
