// Package bls12381 provides ECFFT parameters over the BLS12-381 base field.
//
// The auxiliary curve E = EllipticCurve(Fq, [a, b]) with
//
//	a = 0x287cc81c41f14f729fcbc12f57b2dd49bdcfc64938f9ad946c9fe5288aa3e9653670d336b09c058baad66ae717c1df7
//	b = 0x33f44f9b6fd7ba0080f0ad4843e076da70b11e6846d41e19792a15a4920e2294f9c971db67257eefea71c70514c6e54
//
// has order 2^15 * c with c odd, which yields a coset of size N = 2^15 and a
// chain of 14 degree-2 isogenies. The numeric tables are generated offline by
// the get_params.sage script and loaded from disk at startup.
package bls12381

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/consensys/ecfft"
	"github.com/consensys/gnark-crypto/ecc/bls12-381/fp"
)

const (
	// LogN is the domain size exponent: the 2-adic valuation of the
	// auxiliary curve's order.
	LogN = 15
	// N is the evaluation domain size.
	N = 1 << LogN

	cosetFile   = "bls12-381_coset"
	isogenyFile = "bls12-381_isogenies"
)

// Parameters is the ECFFT parameter set instantiated over Fq.
type Parameters = ecfft.Parameters[fp.Element, *fp.Element]

// Option configures table loading. See the descriptions of functions
// returning instances of this type.
type Option func(*config) error

type config struct {
	dir string
}

// WithTableDir sets the directory the parameter tables are read from.
// Defaults to the current directory.
func WithTableDir(dir string) Option {
	return func(cfg *config) error {
		if dir == "" {
			return fmt.Errorf("empty table directory")
		}
		cfg.dir = dir
		return nil
	}
}

// NewParameters loads the coset and isogeny tables and returns the parameter
// set. Missing or malformed tables are fatal; there is no fallback.
func NewParameters(opts ...Option) (*Parameters, error) {
	cfg := config{dir: "."}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	coset, err := loadCoset(filepath.Join(cfg.dir, cosetFile))
	if err != nil {
		return nil, err
	}
	isogenies, err := loadIsogenies(filepath.Join(cfg.dir, isogenyFile))
	if err != nil {
		return nil, err
	}
	return ecfft.NewParameters(LogN, coset, isogenies)
}

func loadCoset(path string) ([]fp.Element, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open coset table (run get_params.sage to generate it): %w", err)
	}
	defer f.Close()
	return ecfft.ParseCosetTable[fp.Element, *fp.Element](f, fp.Limbs)
}

func loadIsogenies(path string) ([]ecfft.Isogeny[fp.Element, *fp.Element], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open isogeny table (run get_params.sage to generate it): %w", err)
	}
	defer f.Close()
	return ecfft.ParseIsogenyTable[fp.Element, *fp.Element](f, fp.Limbs)
}
