package asciiart

import "fmt"

// Matrix is a dense row-major matrix of float64 values. Rows are the
// vectors being compared (one per glyph or per tile) and Cols is the
// vector length.
type Matrix struct {
	Rows int
	Cols int
	Data []float64
}

// NewMatrix allocates a zeroed rows x cols matrix.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// Row returns row i. The slice aliases the matrix buffer and is capped so
// appends cannot spill into the next row.
func (m *Matrix) Row(i int) []float64 {
	start := i * m.Cols
	return m.Data[start : start+m.Cols : start+m.Cols]
}

// At returns the value at row i, column j.
func (m *Matrix) At(i, j int) float64 {
	return m.Data[i*m.Cols+j]
}

// Set stores v at row i, column j.
func (m *Matrix) Set(i, j int, v float64) {
	m.Data[i*m.Cols+j] = v
}

func (m *Matrix) String() string {
	return fmt.Sprintf("Matrix(%dx%d)", m.Rows, m.Cols)
}
