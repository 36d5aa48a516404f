package ecfft

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"strconv"
)

// Parameter tables are whitespace-separated decimal 64-bit limbs, as emitted
// by the offline parameter generator. Each group of nbLimbs consecutive limbs
// encodes one field element's canonical big-integer representation, least
// significant limb first.

// ParseCosetTable reads a flat list of limb groups and returns the coset, in
// table order.
func ParseCosetTable[E any, ptE Element[E]](r io.Reader, nbLimbs int) ([]E, error) {
	elems, err := parseElements[E, ptE](r, nbLimbs)
	if err != nil {
		return nil, fmt.Errorf("coset table: %w", err)
	}
	return elems, nil
}

// ParseIsogenyTable reads limb groups in chunks of 5 elements per isogeny,
// level order: 3 numerator coefficients then 2 denominator coefficients.
func ParseIsogenyTable[E any, ptE Element[E]](r io.Reader, nbLimbs int) ([]Isogeny[E, ptE], error) {
	elems, err := parseElements[E, ptE](r, nbLimbs)
	if err != nil {
		return nil, fmt.Errorf("isogeny table: %w", err)
	}
	if len(elems)%5 != 0 {
		return nil, fmt.Errorf("%w: isogeny table has %d elements, expected a multiple of 5", ErrInvalidTable, len(elems))
	}
	isogenies := make([]Isogeny[E, ptE], len(elems)/5)
	for i := range isogenies {
		chunk := elems[5*i : 5*i+5]
		copy(isogenies[i].Numerator[:], chunk[:3])
		copy(isogenies[i].Denominator[:], chunk[3:])
	}
	return isogenies, nil
}

func parseElements[E any, ptE Element[E]](r io.Reader, nbLimbs int) ([]E, error) {
	if nbLimbs < 1 {
		return nil, fmt.Errorf("%w: limb count %d", ErrInvalidTable, nbLimbs)
	}
	limbs, err := parseLimbs(r)
	if err != nil {
		return nil, err
	}
	if len(limbs)%nbLimbs != 0 {
		return nil, fmt.Errorf("%w: %d limbs is not a multiple of the group size %d", ErrInvalidTable, len(limbs), nbLimbs)
	}

	var v, t big.Int
	elems := make([]E, len(limbs)/nbLimbs)
	for i := range elems {
		group := limbs[i*nbLimbs : (i+1)*nbLimbs]
		v.SetUint64(group[nbLimbs-1])
		for j := nbLimbs - 2; j >= 0; j-- {
			v.Lsh(&v, 64)
			v.Or(&v, t.SetUint64(group[j]))
		}
		ptE(&elems[i]).SetBigInt(&v)
	}
	return elems, nil
}

func parseLimbs(r io.Reader) ([]uint64, error) {
	var limbs []uint64
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		limb, err := strconv.ParseUint(scanner.Text(), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: limb %d: %v", ErrInvalidTable, len(limbs), err)
		}
		limbs = append(limbs, limb)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTable, err)
	}
	return limbs, nil
}
