package ecfft

import "math/big"

// Element is the constraint satisfied by pointers to gnark-crypto generated
// prime field elements (e.g. ecc/bls12-381/fp.Element, field/babybear.Element).
// E is the element value type; elements are held by value everywhere and all
// arithmetic goes through methods on *E.
//
// Note Inverse follows the gnark-crypto convention of mapping zero to zero;
// callers that need a division-by-zero signal must check IsZero first.
type Element[E any] interface {
	*E

	Set(*E) *E
	SetOne() *E
	SetUint64(uint64) *E
	SetBigInt(*big.Int) *E

	Add(*E, *E) *E
	Sub(*E, *E) *E
	Mul(*E, *E) *E
	Square(*E) *E
	Neg(*E) *E
	Inverse(*E) *E

	IsZero() bool
	Equal(*E) bool

	Marshal() []byte
	SetBytes([]byte) *E
	String() string
}
