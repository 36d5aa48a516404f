package ecfft

import "fmt"

// Matrix is a 2x2 matrix of field elements. It encodes, for one fold pair, the
// linear relation between a polynomial's values at the two paired points and
// the values of its low/high components at the common image point.
type Matrix[E any, ptE Element[E]] [2][2]E

// Inverse returns m⁻¹, computed with the closed form
// det = ad - bc, m⁻¹ = det⁻¹ · [[d, -b], [-c, a]].
// It returns ErrDivisionByZero if the determinant is zero.
func (m *Matrix[E, ptE]) Inverse() (Matrix[E, ptE], error) {
	var det, t E
	ptE(&det).Mul(ptE(&m[0][0]), ptE(&m[1][1]))
	ptE(&t).Mul(ptE(&m[0][1]), ptE(&m[1][0]))
	ptE(&det).Sub(ptE(&det), ptE(&t))
	if ptE(&det).IsZero() {
		return Matrix[E, ptE]{}, fmt.Errorf("%w: singular matrix", ErrDivisionByZero)
	}
	ptE(&det).Inverse(ptE(&det))

	var inv Matrix[E, ptE]
	ptE(&inv[0][0]).Mul(ptE(&m[1][1]), ptE(&det))
	ptE(&inv[0][1]).Neg(ptE(&m[0][1]))
	ptE(&inv[0][1]).Mul(ptE(&inv[0][1]), ptE(&det))
	ptE(&inv[1][0]).Neg(ptE(&m[1][0]))
	ptE(&inv[1][0]).Mul(ptE(&inv[1][0]), ptE(&det))
	ptE(&inv[1][1]).Mul(ptE(&m[0][0]), ptE(&det))
	return inv, nil
}

// Apply returns the matrix-vector product m·(x, y).
func (m *Matrix[E, ptE]) Apply(x, y E) (E, E) {
	m.ApplyInPlace(&x, &y)
	return x, y
}

// ApplyInPlace sets (x, y) to m·(x, y), avoiding intermediate allocations in
// hot loops.
func (m *Matrix[E, ptE]) ApplyInPlace(x, y *E) {
	var u, v, t E
	ptE(&u).Mul(ptE(&m[0][0]), ptE(x))
	ptE(&t).Mul(ptE(&m[0][1]), ptE(y))
	ptE(&u).Add(ptE(&u), ptE(&t))
	ptE(&v).Mul(ptE(&m[1][0]), ptE(x))
	ptE(&t).Mul(ptE(&m[1][1]), ptE(y))
	ptE(&v).Add(ptE(&v), ptE(&t))
	*x = u
	*y = v
}
