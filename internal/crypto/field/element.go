package field

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// FieldElement is a value in [0, order) bound to its FiniteField.
// Operations never mutate the receiver.
type FieldElement struct {
	value *big.Int
	field *FiniteField
}

// NewFieldElement binds v to the field f. v must lie in [0, order).
func NewFieldElement(v *big.Int, f *FiniteField) (*FieldElement, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(f.order) >= 0 {
		return nil, ecc.MakeError(ecc.ErrOutOfRange,
			fmt.Sprintf("value %v not in range [0, %s)", v, f.order))
	}
	return &FieldElement{value: new(big.Int).Set(v), field: f}, nil
}

// Value returns a copy of the element's integer value.
func (e *FieldElement) Value() *big.Int {
	return new(big.Int).Set(e.value)
}

// Field returns the field the element belongs to.
func (e *FieldElement) Field() *FiniteField {
	return e.field
}

// IsZero reports whether the element is the additive identity.
func (e *FieldElement) IsZero() bool {
	return e.value.Sign() == 0
}

// IsOdd reports whether the element's integer value is odd.
func (e *FieldElement) IsOdd() bool {
	return e.value.Bit(0) == 1
}

// Equal reports whether both elements share a field and a value.
func (e *FieldElement) Equal(o *FieldElement) bool {
	if e == nil || o == nil {
		return e == o
	}
	return e.field.Equal(o.field) && e.value.Cmp(o.value) == 0
}

// Bytes returns the big-endian value left-padded to the field's byte length.
func (e *FieldElement) Bytes() []byte {
	return e.value.FillBytes(make([]byte, e.field.ByteLen()))
}

func (e *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%s(%s)", e.field.order, e.value)
}

func (e *FieldElement) sameField(o *FieldElement) error {
	if !e.field.Equal(o.field) {
		return ecc.MakeError(ecc.ErrFieldMismatch,
			fmt.Sprintf("cannot combine elements of order %s and %s", e.field.order, o.field.order))
	}
	return nil
}

// Add returns e + o.
func (e *FieldElement) Add(o *FieldElement) (*FieldElement, error) {
	if err := e.sameField(o); err != nil {
		return nil, err
	}
	return e.field.Reduce(new(big.Int).Add(e.value, o.value)), nil
}

// Sub returns e - o.
func (e *FieldElement) Sub(o *FieldElement) (*FieldElement, error) {
	if err := e.sameField(o); err != nil {
		return nil, err
	}
	return e.field.Reduce(new(big.Int).Sub(e.value, o.value)), nil
}

// Mul returns e * o.
func (e *FieldElement) Mul(o *FieldElement) (*FieldElement, error) {
	if err := e.sameField(o); err != nil {
		return nil, err
	}
	return e.field.Reduce(new(big.Int).Mul(e.value, o.value)), nil
}

// Div returns e * o^-1, with the inverse taken by Fermat's little theorem.
func (e *FieldElement) Div(o *FieldElement) (*FieldElement, error) {
	if err := e.sameField(o); err != nil {
		return nil, err
	}
	inv, err := o.Inverse()
	if err != nil {
		return nil, err
	}
	return e.Mul(inv)
}

// Inverse returns e^(order-2), the multiplicative inverse of e.
func (e *FieldElement) Inverse() (*FieldElement, error) {
	if e.IsZero() {
		return nil, ecc.MakeError(ecc.ErrDivisionByZero, "zero has no multiplicative inverse")
	}
	exp := new(big.Int).Sub(e.field.order, two)
	return e.Pow(exp), nil
}

// Neg returns the additive inverse of e.
func (e *FieldElement) Neg() *FieldElement {
	return e.field.Reduce(new(big.Int).Neg(e.value))
}

// Pow returns e^exp. A negative exponent is reduced modulo order-1, which is
// only meaningful for non-zero e.
func (e *FieldElement) Pow(exp *big.Int) *FieldElement {
	x := new(big.Int).Set(exp)
	if x.Sign() < 0 {
		x.Mod(x, new(big.Int).Sub(e.field.order, one))
	}
	return &FieldElement{
		value: new(big.Int).Exp(e.value, x, e.field.order),
		field: e.field,
	}
}

// Sqrt returns e^((order+1)/4). The result is a square root of e only when
// order = 3 mod 4 and e is a quadratic residue; callers that cannot rule out a
// non-residue must square the result and compare.
func (e *FieldElement) Sqrt() *FieldElement {
	exp := new(big.Int).Add(e.field.order, one)
	exp.Div(exp, four)
	return e.Pow(exp)
}
