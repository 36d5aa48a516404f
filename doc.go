// Package ecfft implements fast polynomial evaluation and low-degree extension
// over prime fields whose multiplicative group has no large smooth-order
// subgroup, where the classical radix-2 FFT does not apply.
//
// The construction replaces roots-of-unity butterflies with degree-2 rational
// maps (isogenies) between curves: a structured evaluation domain (a "coset")
// of size 2^m is folded level by level onto half-size image cosets, exactly as
// the FFT halves a multiplicative subgroup. The per-level data needed to undo
// each fold (the half cosets and one 2x2 matrix per fold pair) is computed
// once by [Parameters.PrecomputeOnCoset] and reused read-only by
// [CosetPrecomputation.Extend] (low-degree extension) and
// [Precomputation.EvaluateOverDomain] (full-domain evaluation).
//
// The core is generic over the field: any gnark-crypto generated element type
// (for instance ecc/bls12-381/fp.Element) satisfies the [Element] constraint.
// Concrete curve parameter sets live in subpackages; see bls12381.
//
// Coset points and isogeny coefficients are produced offline by a
// symbolic-algebra tool and loaded as plain tables, see [ParseCosetTable] and
// [ParseIsogenyTable].
package ecfft
