package ecfft

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Building a precomputation is pure field arithmetic but not free; the tree
// can be serialized once and reloaded. The wire layout is a big-endian coset
// size followed by raw canonical element bytes: the coset, then for each step
// S, S′, Matrices (row major) and InverseMatrices. All lengths are implied by
// the coset size.

// WriteTo writes the precomputation to w. It implements io.WriterTo.
func (pre *CosetPrecomputation[E, ptE]) WriteTo(w io.Writer) (int64, error) {
	var written int64
	var header [8]byte
	binary.BigEndian.PutUint64(header[:], uint64(len(pre.coset)))
	n, err := w.Write(header[:])
	written += int64(n)
	if err != nil {
		return written, err
	}

	writeElems := func(es []E) error {
		for i := range es {
			n, err := w.Write(ptE(&es[i]).Marshal())
			written += int64(n)
			if err != nil {
				return err
			}
		}
		return nil
	}
	writeMatrices := func(ms []Matrix[E, ptE]) error {
		for i := range ms {
			for r := 0; r < 2; r++ {
				if err := writeElems(ms[i][r][:]); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := writeElems(pre.coset); err != nil {
		return written, err
	}
	for i := range pre.steps {
		step := &pre.steps[i]
		if err := writeElems(step.S); err != nil {
			return written, err
		}
		if err := writeElems(step.SPrime); err != nil {
			return written, err
		}
		if err := writeMatrices(step.Matrices); err != nil {
			return written, err
		}
		if err := writeMatrices(step.InverseMatrices); err != nil {
			return written, err
		}
	}
	return written, nil
}

// ReadFrom reads a precomputation written by WriteTo. It implements
// io.ReaderFrom.
func (pre *CosetPrecomputation[E, ptE]) ReadFrom(r io.Reader) (int64, error) {
	var read int64
	var header [8]byte
	n, err := io.ReadFull(r, header[:])
	read += int64(n)
	if err != nil {
		return read, err
	}
	size := binary.BigEndian.Uint64(header[:])
	if size == 0 || size > 1<<40 || !isPowerOfTwo(int(size)) {
		return read, fmt.Errorf("%w: coset size %d", ErrInvalidTable, size)
	}

	var zero E
	buf := make([]byte, len(ptE(&zero).Marshal()))
	readElems := func(es []E) error {
		for i := range es {
			n, err := io.ReadFull(r, buf)
			read += int64(n)
			if err != nil {
				return err
			}
			ptE(&es[i]).SetBytes(buf)
		}
		return nil
	}
	readMatrices := func(ms []Matrix[E, ptE]) error {
		for i := range ms {
			for row := 0; row < 2; row++ {
				if err := readElems(ms[i][row][:]); err != nil {
					return err
				}
			}
		}
		return nil
	}

	pre.coset = make([]E, size)
	if err := readElems(pre.coset); err != nil {
		return read, err
	}
	logN := log2(int(size))
	pre.steps = make([]PrecomputationStep[E, ptE], 0, logN)
	for i := logN - 1; i >= 1; i-- {
		step := PrecomputationStep[E, ptE]{
			S:               make([]E, 1<<i),
			SPrime:          make([]E, 1<<i),
			Matrices:        make([]Matrix[E, ptE], 1<<(i-1)),
			InverseMatrices: make([]Matrix[E, ptE], 1<<(i-1)),
		}
		if err := readElems(step.S); err != nil {
			return read, err
		}
		if err := readElems(step.SPrime); err != nil {
			return read, err
		}
		if err := readMatrices(step.Matrices); err != nil {
			return read, err
		}
		if err := readMatrices(step.InverseMatrices); err != nil {
			return read, err
		}
		pre.steps = append(pre.steps, step)
	}
	return read, nil
}
