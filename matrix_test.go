package ecfft

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bls12-381/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

type frMatrix = Matrix[fr.Element, *fr.Element]

func genFrMatrix() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var m frMatrix
		for i := 0; i < 2; i++ {
			for j := 0; j < 2; j++ {
				m[i][j].MustSetRandom()
			}
		}
		return gopter.NewGenResult(m, gopter.NoShrinker)
	}
}

func genFrPair() gopter.Gen {
	return func(genParams *gopter.GenParameters) *gopter.GenResult {
		var v [2]fr.Element
		v[0].MustSetRandom()
		v[1].MustSetRandom()
		return gopter.NewGenResult(v, gopter.NoShrinker)
	}
}

func TestMatrixInverseLaw(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	properties.Property("apply(m⁻¹, apply(m, v)) == v == apply(m, apply(m⁻¹, v))", prop.ForAll(
		func(m frMatrix, v [2]fr.Element) bool {
			inv, err := m.Inverse()
			if err != nil {
				// a random matrix is singular with negligible probability
				return false
			}
			x, y := m.Apply(v[0], v[1])
			x, y = inv.Apply(x, y)
			if !x.Equal(&v[0]) || !y.Equal(&v[1]) {
				return false
			}
			x, y = inv.Apply(v[0], v[1])
			x, y = m.Apply(x, y)
			return x.Equal(&v[0]) && y.Equal(&v[1])
		},
		genFrMatrix(),
		genFrPair(),
	))
	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestMatrixApplyInPlace(t *testing.T) {
	var m frMatrix
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			m[i][j].MustSetRandom()
		}
	}
	var x, y fr.Element
	x.MustSetRandom()
	y.MustSetRandom()

	wantX, wantY := m.Apply(x, y)
	m.ApplyInPlace(&x, &y)
	require.True(t, x.Equal(&wantX))
	require.True(t, y.Equal(&wantY))
}

func TestMatrixSingular(t *testing.T) {
	var m frMatrix
	m[0][0].SetOne()
	m[0][1].SetOne()
	m[1][0].SetOne()
	m[1][1].SetOne()
	_, err := m.Inverse()
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestMatrixInverseValues(t *testing.T) {
	// [[1, 2], [3, 4]] has determinant -2
	var m frMatrix
	m[0][0].SetUint64(1)
	m[0][1].SetUint64(2)
	m[1][0].SetUint64(3)
	m[1][1].SetUint64(4)
	inv, err := m.Inverse()
	require.NoError(t, err)

	var one, zero fr.Element
	one.SetOne()
	x, y := inv.Apply(m[0][0], m[1][0]) // first column of m
	require.True(t, x.Equal(&one) && y.Equal(&zero), "m⁻¹·m·e0 != e0")
	x, y = inv.Apply(m[0][1], m[1][1])
	require.True(t, x.Equal(&zero) && y.Equal(&one), "m⁻¹·m·e1 != e1")
}
