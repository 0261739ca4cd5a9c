package utils

import "gonum.org/v1/gonum/mat"

// Meshgrid generates the dense 2-D grid of the given column and row
// coordinates as a 2xN matrix in (column, row) order, with rows varying
// slowest. N = len(cols) * len(rows).
func Meshgrid(cols, rows []float64) *mat.Dense {
	grid := mat.NewDense(2, len(cols)*len(rows), nil)
	k := 0
	for i := range rows {
		for j := range cols {
			grid.Set(0, k, cols[j])
			grid.Set(1, k, rows[i])
			k++
		}
	}
	return grid
}

// PixelGrid returns the grid of whole pixel coordinates spanning a raster of
// the given size as a 2xN matrix in (column, row) order, row major. The
// column k of the result is pixel (k % width, k / width).
func PixelGrid(width, height int) *mat.Dense {
	cols := make([]float64, width)
	for j := range cols {
		cols[j] = float64(j)
	}
	rows := make([]float64, height)
	for i := range rows {
		rows[i] = float64(i)
	}
	return Meshgrid(cols, rows)
}
