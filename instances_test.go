package ecfft

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/field/babybear"
	"github.com/stretchr/testify/require"
)

// Test instances. Correctness of the tree only needs each level's map to fold
// the level's coset 2-to-1 with pairs at half-length distance, which lets the
// tests build valid parameter sets without the offline generator:
//
//   - the subgroup instance uses ψ(x) = x² on a 2^logN-order multiplicative
//     subgroup, the degenerate case where ECFFT reduces to the classical FFT;
//   - the rational instance uses ψ(x) = (x²+1)/x, which satisfies
//     ψ(1/x) = ψ(x) and ψ(-x) = -ψ(x), so it folds
//     [a, b, -a, -b, 1/a, 1/b, -1/a, -1/b] onto [t, u, -t, -u] and exercises
//     non-constant denominator powers in the matrices.

type bbParams = Parameters[babybear.Element, *babybear.Element]
type bbIsogeny = Isogeny[babybear.Element, *babybear.Element]

// squareIsogeny returns ψ(x) = x².
func squareIsogeny() bbIsogeny {
	var iso bbIsogeny
	iso.Numerator[2].SetOne()
	iso.Denominator[0].SetOne()
	return iso
}

// recipIsogeny returns ψ(x) = (x²+1)/x.
func recipIsogeny() bbIsogeny {
	var iso bbIsogeny
	iso.Numerator[0].SetOne()
	iso.Numerator[2].SetOne()
	iso.Denominator[1].SetOne()
	return iso
}

// subgroupCoset returns the order-2^logN subgroup of the multiplicative
// group, in generator-power order. 31 generates the full multiplicative
// group of babybear.
func subgroupCoset(logN int) []babybear.Element {
	exp := new(big.Int).Sub(babybear.Modulus(), big.NewInt(1))
	exp.Rsh(exp, uint(logN))
	var g, w babybear.Element
	g.SetUint64(31)
	w.Exp(g, exp)

	coset := make([]babybear.Element, 1<<logN)
	coset[0].SetOne()
	for j := 1; j < len(coset); j++ {
		coset[j].Mul(&coset[j-1], &w)
	}
	return coset
}

func newSubgroupParameters(t *testing.T, logN int) *bbParams {
	t.Helper()
	isogenies := make([]bbIsogeny, logN-1)
	for i := range isogenies {
		isogenies[i] = squareIsogeny()
	}
	params, err := NewParameters(logN, subgroupCoset(logN), isogenies)
	require.NoError(t, err)
	require.NoError(t, params.Validate())
	return params
}

// newRationalParameters supports logN 2 and 3.
func newRationalParameters(t *testing.T, logN int) *bbParams {
	t.Helper()
	var a, b, invA, invB babybear.Element
	a.SetUint64(2)
	b.SetUint64(3)
	invA.Inverse(&a)
	invB.Inverse(&b)

	var coset []babybear.Element
	var isogenies []bbIsogeny
	switch logN {
	case 2:
		coset = []babybear.Element{a, b, invA, invB}
		isogenies = []bbIsogeny{recipIsogeny()}
	case 3:
		var negA, negB, negInvA, negInvB babybear.Element
		negA.Neg(&a)
		negB.Neg(&b)
		negInvA.Neg(&invA)
		negInvB.Neg(&invB)
		coset = []babybear.Element{a, b, negA, negB, invA, invB, negInvA, negInvB}
		isogenies = []bbIsogeny{recipIsogeny(), squareIsogeny()}
	default:
		t.Fatalf("no rational instance for logN=%d", logN)
	}

	params, err := NewParameters(logN, coset, isogenies)
	require.NoError(t, err)
	require.NoError(t, params.Validate())
	return params
}

// horner evaluates the polynomial with the given coefficients (lowest degree
// first) at x, the reference the fast paths are checked against.
func horner[E any, ptE Element[E]](coeffs []E, x *E) E {
	var acc E
	for i := len(coeffs) - 1; i >= 0; i-- {
		ptE(&acc).Mul(ptE(&acc), ptE(x))
		ptE(&acc).Add(ptE(&acc), ptE(&coeffs[i]))
	}
	return acc
}

func evalOnCoset[E any, ptE Element[E]](coeffs, coset []E) []E {
	evals := make([]E, len(coset))
	for j := range coset {
		evals[j] = horner[E, ptE](coeffs, &coset[j])
	}
	return evals
}

func randomBabybear(n int) []babybear.Element {
	elems := make([]babybear.Element, n)
	for i := range elems {
		elems[i].MustSetRandom()
	}
	return elems
}
