package math

import (
	"errors"
	"math"
)

// ErrDegenerateTransform is returned when a matrix inverse is requested on a
// singular or near-singular matrix. Inversion fails loudly at scene
// construction time; it never silently substitutes the identity.
var ErrDegenerateTransform = errors.New("matrix is singular and cannot be inverted")

// Matrix4 is a row-major 4x4 matrix representing an affine or general linear
// transform on homogeneous coordinates.
type Matrix4 [4][4]float64

// Identity returns the 4x4 identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Multiply returns the matrix product m * other. In a composed transform the
// rightmost factor applies to a tuple first.
func (m Matrix4) Multiply(other Matrix4) Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[row][col] = m[row][0]*other[0][col] +
				m[row][1]*other[1][col] +
				m[row][2]*other[2][col] +
				m[row][3]*other[3][col]
		}
	}
	return result
}

// MultiplyTuple returns the matrix applied to a tuple.
func (m Matrix4) MultiplyTuple(t Tuple) Tuple {
	return Tuple{
		X: m[0][0]*t.X + m[0][1]*t.Y + m[0][2]*t.Z + m[0][3]*t.W,
		Y: m[1][0]*t.X + m[1][1]*t.Y + m[1][2]*t.Z + m[1][3]*t.W,
		Z: m[2][0]*t.X + m[2][1]*t.Y + m[2][2]*t.Z + m[2][3]*t.W,
		W: m[3][0]*t.X + m[3][1]*t.Y + m[3][2]*t.Z + m[3][3]*t.W,
	}
}

// Transpose returns the matrix with rows and columns swapped.
func (m Matrix4) Transpose() Matrix4 {
	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			result[col][row] = m[row][col]
		}
	}
	return result
}

// submatrix returns the 3x3 matrix left after removing the given row and
// column, flattened row-major.
func (m Matrix4) submatrix(dropRow, dropCol int) [9]float64 {
	var sub [9]float64
	i := 0
	for row := 0; row < 4; row++ {
		if row == dropRow {
			continue
		}
		for col := 0; col < 4; col++ {
			if col == dropCol {
				continue
			}
			sub[i] = m[row][col]
			i++
		}
	}
	return sub
}

func det3(s [9]float64) float64 {
	return s[0]*(s[4]*s[8]-s[5]*s[7]) -
		s[1]*(s[3]*s[8]-s[5]*s[6]) +
		s[2]*(s[3]*s[7]-s[4]*s[6])
}

// Cofactor returns the signed minor for the given row and column.
func (m Matrix4) Cofactor(row, col int) float64 {
	minor := det3(m.submatrix(row, col))
	if (row+col)%2 != 0 {
		return -minor
	}
	return minor
}

// Determinant computes the determinant by cofactor expansion along the first
// row.
func (m Matrix4) Determinant() float64 {
	return m[0][0]*m.Cofactor(0, 0) +
		m[0][1]*m.Cofactor(0, 1) +
		m[0][2]*m.Cofactor(0, 2) +
		m[0][3]*m.Cofactor(0, 3)
}

// Inverse returns the inverse of the matrix, or ErrDegenerateTransform when
// the determinant is within Epsilon of zero.
func (m Matrix4) Inverse() (Matrix4, error) {
	det := m.Determinant()
	if math.Abs(det) < Epsilon {
		return Matrix4{}, ErrDegenerateTransform
	}

	var result Matrix4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			// Transposed assignment folds the adjugate transpose in.
			result[col][row] = m.Cofactor(row, col) / det
		}
	}
	return result, nil
}

// Equals reports whether two matrices are equal within Epsilon.
func (m Matrix4) Equals(other Matrix4) bool {
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if !EqualFloat(m[row][col], other[row][col]) {
				return false
			}
		}
	}
	return true
}
