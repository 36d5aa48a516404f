package ecfft

import "fmt"

// Isogeny is a degree-2 over degree-1 rational map between two cosets,
//
//	ψ(x) = (n0 + n1·x + n2·x²) / (d0 + d1·x).
//
// On the coset it was generated for it acts as an exact 2-to-1 folding map;
// one isogeny is consumed per halving level. Immutable once constructed.
type Isogeny[E any, ptE Element[E]] struct {
	Numerator   [3]E
	Denominator [2]E
}

// Eval evaluates the map at x. It returns ErrDivisionByZero if the denominator
// vanishes at x, which cannot happen for points of the coset the map was
// generated for.
func (iso *Isogeny[E, ptE]) Eval(x *E) (E, error) {
	var den E
	ptE(&den).Mul(ptE(&iso.Denominator[1]), ptE(x))
	ptE(&den).Add(ptE(&den), ptE(&iso.Denominator[0]))
	if ptE(&den).IsZero() {
		var zero E
		return zero, fmt.Errorf("%w: isogeny denominator vanishes at %s", ErrDivisionByZero, ptE(x).String())
	}

	var num E
	ptE(&num).Set(&iso.Numerator[2])
	ptE(&num).Mul(ptE(&num), ptE(x))
	ptE(&num).Add(ptE(&num), ptE(&iso.Numerator[1]))
	ptE(&num).Mul(ptE(&num), ptE(x))
	ptE(&num).Add(ptE(&num), ptE(&iso.Numerator[0]))

	ptE(&den).Inverse(ptE(&den))
	ptE(&num).Mul(ptE(&num), ptE(&den))
	return num, nil
}
