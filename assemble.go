package asciiart

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/wbrown/asciiart/imageutil"
)

// Lines maps matched glyph indices to characters and splits them into one
// line per tile row.
func Lines(grid *TileGrid, catalog *Catalog, indices []int) ([]string, error) {
	if err := checkIndices(grid, catalog, indices); err != nil {
		return nil, err
	}

	lines := make([]string, grid.Rows)
	var sb strings.Builder
	for j := 0; j < grid.Rows; j++ {
		sb.Reset()
		for _, idx := range indices[j*grid.Cols : (j+1)*grid.Cols] {
			sb.WriteRune(catalog.Glyphs[idx].Rune)
		}
		lines[j] = sb.String()
	}
	return lines, nil
}

// RenderImage draws the matched glyph bitmaps back into a grayscale image
// the size of the tiled area, giving a preview of how the text looks in
// the catalog's font.
func RenderImage(grid *TileGrid, catalog *Catalog, indices []int) (*imageutil.GrayImage, error) {
	if err := checkIndices(grid, catalog, indices); err != nil {
		return nil, err
	}
	if catalog.CellWidth != grid.TileWidth || catalog.CellHeight != grid.TileHeight {
		return nil, fmt.Errorf("%w: glyph cells are %dx%d, tiles %dx%d", ErrDimensionMismatch,
			catalog.CellWidth, catalog.CellHeight, grid.TileWidth, grid.TileHeight)
	}

	img := imageutil.NewGrayImage(grid.Cols*grid.TileWidth, grid.Rows*grid.TileHeight)
	for k, idx := range indices {
		i, j := k%grid.Cols, k/grid.Cols
		cell := image.Rect(0, 0, grid.TileWidth, grid.TileHeight).
			Add(image.Pt(i*grid.TileWidth, j*grid.TileHeight))
		bitmap := catalog.Glyphs[idx].Bitmap
		draw.Draw(img.Gray, cell, bitmap, bitmap.Bounds().Min, draw.Src)
	}
	return img, nil
}

func checkIndices(grid *TileGrid, catalog *Catalog, indices []int) error {
	if len(indices) != grid.Len() {
		return fmt.Errorf("%w: %d matches for %d tiles", ErrDimensionMismatch, len(indices), grid.Len())
	}
	for k, idx := range indices {
		if idx < 0 || idx >= catalog.Len() {
			return fmt.Errorf("tile %d: glyph index %d out of range [0, %d)", k, idx, catalog.Len())
		}
	}
	return nil
}
