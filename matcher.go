package asciiart

import "fmt"

// SquaredDistance returns the squared Euclidean distance between two
// vectors of equal length.
func SquaredDistance(a, b []float64) float64 {
	b = b[:len(a)]
	var sum float64
	for i, v := range a {
		d := v - b[i]
		sum += d * d
	}
	return sum
}

// Match returns, for every row of tiles, the index of the row of glyphs
// at minimum squared distance. Exact ties resolve to the lowest glyph
// index. The result is in tile order.
//
// Rows are matched on up to workers goroutines (workers <= 0 uses
// GOMAXPROCS); the search itself is an exhaustive scan, which stays cheap
// because catalogs and tile vectors are small.
func Match(tiles, glyphs *Matrix, workers int) ([]int, error) {
	if err := checkShapes(tiles, glyphs); err != nil {
		return nil, err
	}

	result := make([]int, tiles.Rows)
	parallelFor(tiles.Rows, workers, func(i int) {
		result[i] = nearest(tiles.Row(i), glyphs)
	})
	return result, nil
}

// Distances returns the tiles.Rows x glyphs.Rows matrix of squared
// distances between every tile and every glyph.
func Distances(tiles, glyphs *Matrix) (*Matrix, error) {
	if err := checkShapes(tiles, glyphs); err != nil {
		return nil, err
	}

	dist := NewMatrix(tiles.Rows, glyphs.Rows)
	for i := 0; i < tiles.Rows; i++ {
		tile := tiles.Row(i)
		row := dist.Row(i)
		for j := range row {
			row[j] = SquaredDistance(tile, glyphs.Row(j))
		}
	}
	return dist, nil
}

func checkShapes(tiles, glyphs *Matrix) error {
	if tiles.Cols != glyphs.Cols {
		return fmt.Errorf("%w: tile vectors have length %d, glyph vectors %d",
			ErrDimensionMismatch, tiles.Cols, glyphs.Cols)
	}
	if glyphs.Rows == 0 {
		return ErrEmptyCatalog
	}
	return nil
}

// nearest scans every glyph; strict less-than keeps the first minimum.
func nearest(tile []float64, glyphs *Matrix) int {
	best := 0
	bestDist := SquaredDistance(tile, glyphs.Row(0))
	for j := 1; j < glyphs.Rows; j++ {
		if d := SquaredDistance(tile, glyphs.Row(j)); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}
