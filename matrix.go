package easel

import "github.com/chewxy/math32"

// Matrix represents a 2D affine transformation as a 2x3 matrix in row-major
// order:
//
//	| A  B  C |
//	| D  E  F |
//
// This represents the transformation:
//
//	x' = A*x + B*y + C
//	y' = D*x + E*y + F
type Matrix struct {
	A, B, C float32
	D, E, F float32
}

// Identity returns the identity transformation matrix.
func Identity() Matrix {
	return Matrix{
		A: 1, B: 0, C: 0,
		D: 0, E: 1, F: 0,
	}
}

// ColumnMajor builds a matrix from column-major coefficients: the columns
// are (m11, m12), (m21, m22), and (m31, m32).
func ColumnMajor(m11, m21, m31, m12, m22, m32 float32) Matrix {
	return Matrix{
		A: m11, B: m21, C: m31,
		D: m12, E: m22, F: m32,
	}
}

// RowMajor builds a matrix from row-major coefficients: the rows are
// (m11, m12, m13) and (m21, m22, m23).
func RowMajor(m11, m12, m13, m21, m22, m23 float32) Matrix {
	return Matrix{
		A: m11, B: m12, C: m13,
		D: m21, E: m22, F: m23,
	}
}

// TranslationMatrix creates a pure translation.
func TranslationMatrix(tx, ty float32) Matrix {
	return Matrix{
		A: 1, B: 0, C: tx,
		D: 0, E: 1, F: ty,
	}
}

// ScaleMatrix creates a pure scale.
func ScaleMatrix(sx, sy float32) Matrix {
	return Matrix{
		A: sx, B: 0, C: 0,
		D: 0, E: sy, F: 0,
	}
}

// RotationMatrix creates a pure rotation by an angle in radians.
func RotationMatrix(angle float32) Matrix {
	sin, cos := math32.Sincos(angle)
	return Matrix{
		A: cos, B: -sin, C: 0,
		D: sin, E: cos, F: 0,
	}
}

// RotationMatrixDegrees creates a pure rotation by an angle in degrees.
func RotationMatrixDegrees(angle float32) Matrix {
	return RotationMatrix(angle * math32.Pi / 180)
}

// Multiply multiplies two matrices (m * other).
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies the transformation to a point.
func (m Matrix) TransformPoint(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// TransformVector applies the transformation to a vector (no translation).
func (m Matrix) TransformVector(p Point) Point {
	return Point{
		X: m.A*p.X + m.B*p.Y,
		Y: m.D*p.X + m.E*p.Y,
	}
}

// Invert returns the inverse matrix.
// Returns the identity matrix if the matrix is not invertible.
func (m Matrix) Invert() Matrix {
	det := m.A*m.E - m.B*m.D
	if math32.Abs(det) < 1e-8 {
		return Identity()
	}

	invDet := 1 / det
	return Matrix{
		A: m.E * invDet,
		B: -m.B * invDet,
		C: (m.B*m.F - m.C*m.E) * invDet,
		D: -m.D * invDet,
		E: m.A * invDet,
		F: (m.C*m.D - m.A*m.F) * invDet,
	}
}

// IsIdentity returns true if the matrix is the identity matrix.
func (m Matrix) IsIdentity() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 &&
		m.D == 0 && m.E == 1 && m.F == 0
}
