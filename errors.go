package ecfft

import "errors"

var (
	// ErrDivisionByZero is returned when a rational map denominator or a
	// matrix determinant is the field's zero element. On a correctly
	// generated parameter table this never happens; it indicates the table
	// is malformed and the error is not retryable.
	ErrDivisionByZero = errors.New("ecfft: division by zero")

	// ErrLengthMismatch is returned when a value or coefficient sequence
	// disagrees with the expected coset size (wrong length, or not a power
	// of two).
	ErrLengthMismatch = errors.New("ecfft: length mismatch")

	// ErrDegreeTooLarge is returned when a coefficient sequence exceeds the
	// size of the evaluation domain.
	ErrDegreeTooLarge = errors.New("ecfft: degree too large")

	// ErrInvalidTable is returned when a parameter table is malformed:
	// unparseable integers, wrong limb-group counts, or coset/isogeny data
	// that does not satisfy the 2-to-1 fold contract.
	ErrInvalidTable = errors.New("ecfft: invalid parameter table")
)
