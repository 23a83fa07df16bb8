/*Package mat implements the one matrix operation the shape package's
inertia diagnostic needs: an LU-decomposition-backed determinant. It only
works on square matrices, which is all InertiaDeterminant requires.
*/
package mat

import (
	"math"
)

// Matrix represents a matrix of float64 values.
type Matrix struct {
	Vals          []float64
	Width, Height int
}

// LUFactors contains the upper-triangular factor and accumulated pivot
// sign of a matrix's LU decomposition, the data a determinant needs.
type LUFactors struct {
	lu Matrix
	d  float64
}

// NewMatrix creates a matrix with the specified values and dimensions.
func NewMatrix(vals []float64, width, height int) *Matrix {
	if width <= 0 {
		panic("width must be positive.")
	} else if height <= 0 {
		panic("height must be positive.")
	} else if width*height != len(vals) {
		panic("height * width must equal len(vals).")
	}

	return &Matrix{Vals: vals, Width: width, Height: height}
}

// Determinant computes the determinant of a matrix.
func (m *Matrix) Determinant() float64 {
	lu := m.LU()
	return lu.Determinant()
}

// NewLUFactors creates an LUFactors instance of the requested dimensions.
func NewLUFactors(n int) *LUFactors {
	luf := new(LUFactors)

	luf.lu.Vals, luf.lu.Width, luf.lu.Height = make([]float64, n*n), n, n
	luf.d = 1

	return luf
}

// LU returns the LU decomposition of a matrix.
func (m *Matrix) LU() *LUFactors {
	if m.Width != m.Height {
		panic("m is non-square.")
	}

	lu := NewLUFactors(m.Width)
	m.LUFactorsAt(lu)
	return lu
}

// LUFactorsAt stores the LU decomposition of a matrix at the specified
// location.
func (m *Matrix) LUFactorsAt(luf *LUFactors) {
	if luf.lu.Width != m.Width || luf.lu.Height != m.Height {
		panic("luf has different dimensions than m.")
	}

	n := m.Width
	lu := luf.lu.Vals

	// Maintained for determinant calculations.
	luf.d = 1

	// Crout's algorithm.
	copy(lu, m.Vals)

	for k := 0; k < n; k++ {
		// Partial pivot: swap rows so the largest-magnitude entry left in
		// column k leads before eliminating below it.
		maxRow := findMaxRow(n, lu, k)

		if k != maxRow {
			swapRows(k, maxRow, n, lu)
			luf.d = -luf.d
		}

		kOffset := k * n
		if lu[kOffset+k] == 0 {
			// The rest of column k is zero: the matrix is singular and U's
			// diagonal already holds the zero.
			continue
		}
		for i := k + 1; i < n; i++ {
			iOffset := i * n
			lu[iOffset+k] /= lu[kOffset+k]
			tmp := lu[iOffset+k]
			for j := k + 1; j < n; j++ {
				lu[iOffset+j] -= tmp * lu[kOffset+j]
			}
		}
	}
}

// findMaxRow finds the index of the row containing the maximum-magnitude
// value in the given column, ignoring rows above col since those have
// already been swapped into place.
func findMaxRow(n int, m []float64, col int) int {
	max, maxRow := -1.0, 0

	for i := col; i < n; i++ {
		val := math.Abs(m[i*n+col])
		if val > max {
			max = val
			maxRow = i
		}
	}
	return maxRow
}

func swapRows(i1, i2, n int, lu []float64) {
	i1Offset, i2Offset := n*i1, n*i2
	for j := 0; j < n; j++ {
		idx1, idx2 := i1Offset+j, i2Offset+j
		lu[idx1], lu[idx2] = lu[idx2], lu[idx1]
	}
}

// Determinant computes the determinant of the matrix represented by the
// given LU decomposition: the product of U's diagonal, sign-corrected
// for the row swaps performed during partial pivoting.
func (luf *LUFactors) Determinant() float64 {
	d := luf.d
	lu := luf.lu.Vals
	n := luf.lu.Width

	for i := 0; i < luf.lu.Width; i++ {
		d *= lu[i*n+i]
	}
	return d
}
