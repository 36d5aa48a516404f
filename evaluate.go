package ecfft

import (
	"fmt"
	"sync"
)

// Below this size the recursion stays on the calling goroutine; above it, the
// two halves of a split run on separate goroutines with a join before the
// combine step. Purely a performance knob, the combine order is unchanged.
const serialCutoff = 1 << 9

// Extend takes the evaluations of a polynomial of degree < len(values) on the
// level's coset s and returns its evaluations on the partner coset s′, in
// s′'s stored order. values must have the length of one of the precomputed
// levels: a power of two at most half the coset size.
func (pre *CosetPrecomputation[E, ptE]) Extend(values []E) ([]E, error) {
	n := len(values)
	if !isPowerOfTwo(n) || n > 1<<len(pre.steps) {
		return nil, fmt.Errorf("%w: %d values, expected a power of two at most %d", ErrLengthMismatch, n, 1<<len(pre.steps))
	}
	return pre.extend(values), nil
}

func (pre *CosetPrecomputation[E, ptE]) extend(values []E) []E {
	n := len(values)
	if n == 1 {
		// a degree-0 polynomial takes the same value everywhere
		return []E{values[0]}
	}
	step := &pre.steps[len(pre.steps)-log2(n)]
	half := n / 2

	// Separate the evaluations into the two component polynomials' values on
	// the image coset.
	p0 := make([]E, half)
	p1 := make([]E, half)
	for j := 0; j < half; j++ {
		x, y := values[j], values[j+half]
		step.InverseMatrices[j].ApplyInPlace(&x, &y)
		p0[j], p1[j] = x, y
	}

	var e0, e1 []E
	if half < serialCutoff {
		e0 = pre.extend(p0)
		e1 = pre.extend(p1)
	} else {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			e1 = pre.extend(p1)
		}()
		e0 = pre.extend(p0)
		wg.Wait()
	}

	// Recombine the extended components into evaluations on s′.
	out := make([]E, n)
	for j := 0; j < half; j++ {
		x, y := e0[j], e1[j]
		step.Matrices[j].ApplyInPlace(&x, &y)
		out[j], out[j+half] = x, y
	}
	return out
}

// EvaluateOverDomain evaluates the polynomial with the given coefficients
// (lowest degree first) at every point of the sub-coset whose size equals
// len(coefficients), in the sub-coset's stored order. len(coefficients) must
// be a power of two; it must not exceed the base coset size.
func (pre *Precomputation[E, ptE]) EvaluateOverDomain(coefficients []E) ([]E, error) {
	n := len(coefficients)
	if n > pre.params.N() {
		return nil, fmt.Errorf("%w: %d coefficients on a domain of size %d", ErrDegreeTooLarge, n, pre.params.N())
	}
	if !isPowerOfTwo(n) {
		return nil, fmt.Errorf("%w: %d coefficients, expected a power of two", ErrLengthMismatch, n)
	}
	return pre.evaluate(coefficients, pre.params.logN-log2(n)), nil
}

// evaluate computes the evaluations of coefficients over SubCoset(level),
// whose size equals len(coefficients). Radix-2 divide and conquer: the low
// and high coefficient halves are evaluated on the stride-2 sub-coset, their
// evaluations extended to the odd-indexed points, and the halves combined as
// f = low + x^(n/2)·high.
func (pre *Precomputation[E, ptE]) evaluate(coefficients []E, level int) []E {
	n := len(coefficients)
	if n == 1 {
		return []E{coefficients[0]}
	}
	half := n / 2

	var low, high []E
	if half < serialCutoff {
		low = pre.evaluate(coefficients[:half], level+1)
		high = pre.evaluate(coefficients[half:], level+1)
	} else {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			high = pre.evaluate(coefficients[half:], level+1)
		}()
		low = pre.evaluate(coefficients[:half], level+1)
		wg.Wait()
	}

	cp := &pre.cosets[level]
	lowPrime := cp.extend(low)
	highPrime := cp.extend(high)

	k := log2(half)
	out := make([]E, n)
	var xp, t E
	for j := 0; j < half; j++ {
		// even-indexed point, evaluations straight from the recursion
		xp = pow2k[E, ptE](&cp.coset[2*j], k)
		ptE(&t).Mul(&xp, &high[j])
		ptE(&out[2*j]).Add(&low[j], &t)

		// odd-indexed point, evaluations obtained by extension
		xp = pow2k[E, ptE](&cp.coset[2*j+1], k)
		ptE(&t).Mul(&xp, &highPrime[j])
		ptE(&out[2*j+1]).Add(&lowPrime[j], &t)
	}
	return out
}

// pow2k computes x^(2^k) by repeated squaring.
func pow2k[E any, ptE Element[E]](x *E, k int) E {
	var r E
	ptE(&r).Set(ptE(x))
	for ; k > 0; k-- {
		ptE(&r).Square(ptE(&r))
	}
	return r
}
