package ecfft

import (
	"fmt"
	"math/bits"
	"time"

	"github.com/consensys/ecfft/logger"
	"golang.org/x/sync/errgroup"
)

// PrecomputationStep holds the data cached for one halving level: the coset s
// at that level, the partner coset s′ that [CosetPrecomputation.Extend] maps s
// onto, and one matrix per fold pair for each of the two cosets. Matrices
// recombine component values into evaluations on s′; InverseMatrices separate
// evaluations on s into component values.
type PrecomputationStep[E any, ptE Element[E]] struct {
	S               []E
	SPrime          []E
	Matrices        []Matrix[E, ptE]
	InverseMatrices []Matrix[E, ptE]
}

// CosetPrecomputation is the extension tree built once on a coset by
// [Parameters.PrecomputeOnCoset]. Steps are stored flat, one per level from
// the finest down to cosets of size 2. Read-only once built; safe to share
// across concurrent Extend calls.
type CosetPrecomputation[E any, ptE Element[E]] struct {
	coset []E
	steps []PrecomputationStep[E, ptE]
}

// Coset returns the coset this precomputation was built on. The returned
// slice is shared and must not be modified.
func (pre *CosetPrecomputation[E, ptE]) Coset() []E { return pre.coset }

// Steps returns the per-level steps, finest level first. The returned slice
// is shared and must not be modified.
func (pre *CosetPrecomputation[E, ptE]) Steps() []PrecomputationStep[E, ptE] { return pre.steps }

// Precomputation carries one extension tree per stride-2^i sub-coset of the
// base coset, which is what full-domain evaluation needs. Built once by
// [Parameters.Precompute], then read-only.
type Precomputation[E any, ptE Element[E]] struct {
	params *Parameters[E, ptE]
	cosets []CosetPrecomputation[E, ptE]
}

// Parameters returns the parameter set this precomputation was built from.
func (pre *Precomputation[E, ptE]) Parameters() *Parameters[E, ptE] { return pre.params }

// CosetPrecomputation returns the extension tree built on SubCoset(level).
func (pre *Precomputation[E, ptE]) CosetPrecomputation(level int) (*CosetPrecomputation[E, ptE], error) {
	if level < 0 || level >= len(pre.cosets) {
		return nil, fmt.Errorf("%w: level %d out of range [0, %d)", ErrLengthMismatch, level, len(pre.cosets))
	}
	return &pre.cosets[level], nil
}

// PrecomputeOnCoset builds the extension tree for the given coset. The coset
// must be a power-of-two prefix-stride of the structure the isogeny chain
// folds: size 2^m with m ≤ LogN, point j and point j+half mapping to the same
// image at every level (the base coset and any stride-2 subsampling of it
// qualify). Construction is deterministic and performs only field arithmetic.
func (p *Parameters[E, ptE]) PrecomputeOnCoset(coset []E) (*CosetPrecomputation[E, ptE], error) {
	n := len(coset)
	if !isPowerOfTwo(n) || n > p.N() {
		return nil, fmt.Errorf("%w: coset size %d is not a power of two at most %d", ErrLengthMismatch, n, p.N())
	}
	start := time.Now()
	logN := log2(n)

	cur := make([]E, n)
	copy(cur, coset)

	steps := make([]PrecomputationStep[E, ptE], 0, logN)
	for i := logN - 1; i >= 1; i-- {
		iso := &p.isogenies[logN-1-i]
		step, err := newStep[E, ptE](cur, iso)
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", logN-1-i, err)
		}
		steps = append(steps, step)

		// The image coset for the next level: ψ maps the first half of the
		// current coset bijectively onto it.
		next := make([]E, 1<<i)
		for j := range next {
			if next[j], err = iso.Eval(&cur[j]); err != nil {
				return nil, fmt.Errorf("level %d: %w", logN-1-i, err)
			}
		}
		cur = next
	}

	res := &CosetPrecomputation[E, ptE]{coset: append([]E(nil), coset...), steps: steps}
	log := logger.Logger()
	log.Debug().Int("n", n).Dur("took", time.Since(start)).Msg("built ecfft coset precomputation")
	return res, nil
}

// newStep derives the per-pair matrices for one level. cur is the coset being
// folded at this level; s and s′ are its even- and odd-indexed halves. For a
// fold pair (x0, x1) and v the isogeny denominator, a polynomial f of degree
// < |s| satisfies
//
//	f(x) = v(x)^q · (f0(ψ(x)) + x·f1(ψ(x))),  q = |s|/2 - 1,
//
// with f0, f1 of degree < |s|/2, so the matrix [[v(x0)^q, x0·v(x0)^q],
// [v(x1)^q, x1·v(x1)^q]] maps (f0, f1) values at the image point to f values
// at the pair.
func newStep[E any, ptE Element[E]](cur []E, iso *Isogeny[E, ptE]) (PrecomputationStep[E, ptE], error) {
	half := len(cur) / 2
	s := make([]E, half)
	sPrime := make([]E, half)
	for j := 0; j < half; j++ {
		s[j] = cur[2*j]
		sPrime[j] = cur[2*j+1]
	}

	nbPairs := half / 2
	q := nbPairs - 1
	step := PrecomputationStep[E, ptE]{
		S:               s,
		SPrime:          sPrime,
		Matrices:        make([]Matrix[E, ptE], nbPairs),
		InverseMatrices: make([]Matrix[E, ptE], nbPairs),
	}
	for j := 0; j < nbPairs; j++ {
		m := pairMatrix[E, ptE](&s[j], &s[j+nbPairs], &iso.Denominator, q)
		inv, err := m.Inverse()
		if err != nil {
			return PrecomputationStep[E, ptE]{}, fmt.Errorf("fold pair %d of s: %w", j, err)
		}
		step.InverseMatrices[j] = inv
		step.Matrices[j] = pairMatrix[E, ptE](&sPrime[j], &sPrime[j+nbPairs], &iso.Denominator, q)
	}
	return step, nil
}

func pairMatrix[E any, ptE Element[E]](x0, x1 *E, den *[2]E, q int) Matrix[E, ptE] {
	var m Matrix[E, ptE]
	m[0][0] = denPow[E, ptE](x0, den, q)
	ptE(&m[0][1]).Mul(ptE(&m[0][0]), ptE(x0))
	m[1][0] = denPow[E, ptE](x1, den, q)
	ptE(&m[1][1]).Mul(ptE(&m[1][0]), ptE(x1))
	return m
}

// denPow computes (d0 + d1·x)^q with a square-and-multiply chain; q is small
// (at most half the coset size).
func denPow[E any, ptE Element[E]](x *E, den *[2]E, q int) E {
	var v E
	ptE(&v).Mul(ptE(&den[1]), ptE(x))
	ptE(&v).Add(ptE(&v), ptE(&den[0]))

	var r E
	ptE(&r).SetOne()
	for b := bits.Len(uint(q)) - 1; b >= 0; b-- {
		ptE(&r).Square(ptE(&r))
		if q>>b&1 == 1 {
			ptE(&r).Mul(ptE(&r), ptE(&v))
		}
	}
	return r
}

// Precompute builds the full precomputation: one extension tree per
// stride-2^i sub-coset, i from 0 (the base coset) to LogN-1 (size 2). The
// per-level builds are independent and run concurrently.
func (p *Parameters[E, ptE]) Precompute() (*Precomputation[E, ptE], error) {
	start := time.Now()
	cosets := make([]CosetPrecomputation[E, ptE], p.logN)
	var g errgroup.Group
	for i := 0; i < p.logN; i++ {
		g.Go(func() error {
			sub, err := p.SubCoset(i)
			if err != nil {
				return err
			}
			pre, err := p.PrecomputeOnCoset(sub)
			if err != nil {
				return fmt.Errorf("sub-coset %d: %w", i, err)
			}
			cosets[i] = *pre
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	log := logger.Logger()
	log.Debug().Int("n", p.N()).Dur("took", time.Since(start)).Msg("built ecfft precomputation")
	return &Precomputation[E, ptE]{params: p, cosets: cosets}, nil
}
