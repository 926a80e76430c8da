package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/internal/crypto/primality"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// FiniteField represents the integers modulo a prime order.
// It is immutable once constructed.
type FiniteField struct {
	order *big.Int
}

// NewFiniteField returns the field of integers modulo order.
// The order must pass the Miller-Rabin test.
func NewFiniteField(order *big.Int) (*FiniteField, error) {
	if order == nil || !primality.IsProbablePrime(order) {
		return nil, ecc.MakeError(ecc.ErrInvalidFieldOrder,
			fmt.Sprintf("field order %v is not prime", order))
	}
	return &FiniteField{order: new(big.Int).Set(order)}, nil
}

// Order returns a copy of the field order.
func (f *FiniteField) Order() *big.Int {
	return new(big.Int).Set(f.order)
}

// ByteLen is the number of bytes needed to hold any element of the field.
func (f *FiniteField) ByteLen() int {
	return (f.order.BitLen() + 7) / 8
}

// Equal reports whether both fields have the same order.
func (f *FiniteField) Equal(o *FiniteField) bool {
	if f == o {
		return true
	}
	if f == nil || o == nil {
		return false
	}
	return f.order.Cmp(o.order) == 0
}

func (f *FiniteField) String() string {
	return fmt.Sprintf("Finite field of order %s", f.order)
}

// NewElement is shorthand for NewFieldElement(v, f).
func (f *FiniteField) NewElement(v *big.Int) (*FieldElement, error) {
	return NewFieldElement(v, f)
}

// Reduce maps any integer, including negative ones, into the field.
func (f *FiniteField) Reduce(v *big.Int) *FieldElement {
	r := new(big.Int).Mod(v, f.order)
	return &FieldElement{value: r, field: f}
}

// Int64 is Reduce for small constants.
func (f *FiniteField) Int64(v int64) *FieldElement {
	return f.Reduce(big.NewInt(v))
}

// Zero returns the additive identity.
func (f *FiniteField) Zero() *FieldElement {
	return &FieldElement{value: new(big.Int), field: f}
}

// One returns the multiplicative identity.
func (f *FiniteField) One() *FieldElement {
	return f.Int64(1)
}
