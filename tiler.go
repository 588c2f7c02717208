package asciiart

import (
	"fmt"
	"image"

	"github.com/wbrown/asciiart/imageutil"
)

// Tile is one fixed-size crop of the source image. Rect is in the source
// image's coordinate space and Vector holds its pixels row-major, scaled
// to [0, 1].
type Tile struct {
	Rect   image.Rectangle
	Vector []float64
}

// TileGrid is the set of whole tiles covering an image, in row-major
// order: Tiles[j*Cols+i] is column i of row j. A trailing partial column
// or row is dropped. Row k of Matrix is the vector of Tiles[k].
type TileGrid struct {
	Cols       int
	Rows       int
	TileWidth  int
	TileHeight int
	Tiles      []Tile
	Matrix     *Matrix
}

// NewTileGrid partitions img into non-overlapping tileWidth x tileHeight
// tiles. An image narrower or shorter than one tile gives a grid with no
// tiles; Cols and Rows still report the whole-tile counts, so one of them
// is zero.
func NewTileGrid(img *imageutil.GrayImage, tileWidth, tileHeight int) (*TileGrid, error) {
	if tileWidth <= 0 || tileHeight <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidTileSize, tileWidth, tileHeight)
	}

	cols := img.Width() / tileWidth
	rows := img.Height() / tileHeight

	grid := &TileGrid{
		Cols:       cols,
		Rows:       rows,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Tiles:      make([]Tile, cols*rows),
		Matrix:     NewMatrix(cols*rows, tileWidth*tileHeight),
	}

	origin := img.Bounds().Min
	for j := 0; j < rows; j++ {
		for i := 0; i < cols; i++ {
			k := j*cols + i
			vector := grid.Matrix.Row(k)
			for y := 0; y < tileHeight; y++ {
				src := img.Row(j*tileHeight + y)[i*tileWidth : (i+1)*tileWidth]
				dst := vector[y*tileWidth : (y+1)*tileWidth]
				for x, v := range src {
					dst[x] = float64(v) / 255
				}
			}
			grid.Tiles[k] = Tile{
				Rect: image.Rect(i*tileWidth, j*tileHeight, (i+1)*tileWidth, (j+1)*tileHeight).
					Add(origin),
				Vector: vector,
			}
		}
	}

	return grid, nil
}

// Len returns the number of tiles in the grid.
func (g *TileGrid) Len() int {
	return len(g.Tiles)
}
