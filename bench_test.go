package ecfft

import (
	"testing"

	"github.com/consensys/gnark-crypto/field/babybear"
)

func benchParams(b *testing.B, logN int) *Precomputation[babybear.Element, *babybear.Element] {
	b.Helper()
	isogenies := make([]bbIsogeny, logN-1)
	for i := range isogenies {
		isogenies[i] = squareIsogeny()
	}
	params, err := NewParameters(logN, subgroupCoset(logN), isogenies)
	if err != nil {
		b.Fatal(err)
	}
	pre, err := params.Precompute()
	if err != nil {
		b.Fatal(err)
	}
	return pre
}

func BenchmarkExtend(b *testing.B) {
	pre := benchParams(b, 12)
	cp, err := pre.CosetPrecomputation(0)
	if err != nil {
		b.Fatal(err)
	}
	values := randomBabybear(1 << 11)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := cp.Extend(values); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEvaluateOverDomain(b *testing.B) {
	pre := benchParams(b, 12)
	coeffs := randomBabybear(1 << 12)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pre.EvaluateOverDomain(coeffs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPrecompute(b *testing.B) {
	isogenies := make([]bbIsogeny, 11)
	for i := range isogenies {
		isogenies[i] = squareIsogeny()
	}
	params, err := NewParameters(12, subgroupCoset(12), isogenies)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := params.Precompute(); err != nil {
			b.Fatal(err)
		}
	}
}
