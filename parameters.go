package ecfft

import (
	"fmt"
	"math/bits"
)

// Parameters is the per-curve configuration: the size-2^LogN base coset and
// the chain of isogenies folding it down, ordered from the finest level
// (size N) to the coarsest (size 2). The numeric data is produced offline by a
// symbolic-algebra tool; see the bls12381 subpackage for a concrete set.
//
// Parameters are immutable after construction and safe for concurrent use.
type Parameters[E any, ptE Element[E]] struct {
	logN      int
	coset     []E
	isogenies []Isogeny[E, ptE]
}

// NewParameters builds a parameter set from a base coset of size 2^logN and
// logN-1 isogenies. Only the shape is checked here; use [Parameters.Validate]
// to verify the 2-to-1 fold contract of a freshly generated table.
func NewParameters[E any, ptE Element[E]](logN int, coset []E, isogenies []Isogeny[E, ptE]) (*Parameters[E, ptE], error) {
	if logN < 1 {
		return nil, fmt.Errorf("%w: logN must be at least 1, got %d", ErrInvalidTable, logN)
	}
	if len(coset) != 1<<logN {
		return nil, fmt.Errorf("%w: coset has %d points, expected %d", ErrLengthMismatch, len(coset), 1<<logN)
	}
	if len(isogenies) != logN-1 {
		return nil, fmt.Errorf("%w: got %d isogenies, expected %d", ErrLengthMismatch, len(isogenies), logN-1)
	}
	p := &Parameters[E, ptE]{
		logN:      logN,
		coset:     make([]E, len(coset)),
		isogenies: make([]Isogeny[E, ptE], len(isogenies)),
	}
	copy(p.coset, coset)
	copy(p.isogenies, isogenies)
	return p, nil
}

// LogN returns the domain size exponent.
func (p *Parameters[E, ptE]) LogN() int { return p.logN }

// N returns the base coset size 2^LogN.
func (p *Parameters[E, ptE]) N() int { return 1 << p.logN }

// BaseCoset returns a copy of the full evaluation domain, in evaluation order.
func (p *Parameters[E, ptE]) BaseCoset() []E {
	c, _ := p.SubCoset(0)
	return c
}

// SubCoset returns the size-N/2^i sub-coset used at recursion level i, i.e.
// every 2^i-th point of the base coset. Its ordering matches the level-i
// precomputation exactly.
func (p *Parameters[E, ptE]) SubCoset(i int) ([]E, error) {
	if i < 0 || i > p.logN {
		return nil, fmt.Errorf("%w: sub-coset level %d out of range [0, %d]", ErrLengthMismatch, i, p.logN)
	}
	sub := make([]E, len(p.coset)>>i)
	for j := range sub {
		sub[j] = p.coset[j<<i]
	}
	return sub, nil
}

// Isogenies returns a copy of the isogeny chain, finest level first.
func (p *Parameters[E, ptE]) Isogenies() []Isogeny[E, ptE] {
	isos := make([]Isogeny[E, ptE], len(p.isogenies))
	copy(isos, p.isogenies)
	return isos
}

// Validate checks the algebraic contract the table generator must satisfy:
// at every level, the level's isogeny folds the two halves of the current
// coset onto the same image points, pairwise. A violation would otherwise
// produce silently incorrect evaluations, with no runtime signal.
//
// The check performs O(N) isogeny evaluations; run it once at integration
// time, not per call.
func (p *Parameters[E, ptE]) Validate() error {
	cur := p.BaseCoset()
	for l := 0; l < p.logN-1; l++ {
		iso := &p.isogenies[l]
		half := len(cur) / 2
		next := make([]E, half)
		for j := 0; j < half; j++ {
			if ptE(&cur[j]).Equal(ptE(&cur[j+half])) {
				return fmt.Errorf("%w: level %d pair %d is degenerate (%s repeated)",
					ErrInvalidTable, l, j, ptE(&cur[j]).String())
			}
			y0, err := iso.Eval(&cur[j])
			if err != nil {
				return fmt.Errorf("level %d point %d: %w", l, j, err)
			}
			y1, err := iso.Eval(&cur[j+half])
			if err != nil {
				return fmt.Errorf("level %d point %d: %w", l, j+half, err)
			}
			if !ptE(&y0).Equal(ptE(&y1)) {
				return fmt.Errorf("%w: isogeny %d does not fold pair %d (ψ(%s)=%s, ψ(%s)=%s)",
					ErrInvalidTable, l, j,
					ptE(&cur[j]).String(), ptE(&y0).String(),
					ptE(&cur[j+half]).String(), ptE(&y1).String())
			}
			next[j] = y0
		}
		cur = next
	}
	return nil
}

func log2(n int) int {
	return bits.TrailingZeros(uint(n))
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
