package curves

import (
	"fmt"

	"github.com/smallyu/go-btc-ecc/internal/crypto/field"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// EllipticCurve is the short Weierstrass curve y^2 = x^3 + a*x + b over the
// field shared by a and b.
type EllipticCurve struct {
	a *field.FieldElement
	b *field.FieldElement
}

// NewEllipticCurve returns the curve with coefficients a and b.
func NewEllipticCurve(a, b *field.FieldElement) (*EllipticCurve, error) {
	if !a.Field().Equal(b.Field()) {
		return nil, ecc.MakeError(ecc.ErrFieldMismatch, "curve coefficients belong to different fields")
	}
	return &EllipticCurve{a: a, b: b}, nil
}

// A returns the linear coefficient.
func (c *EllipticCurve) A() *field.FieldElement { return c.a }

// B returns the constant coefficient.
func (c *EllipticCurve) B() *field.FieldElement { return c.b }

// Field returns the field the curve is defined over.
func (c *EllipticCurve) Field() *field.FiniteField { return c.a.Field() }

// Equal reports whether both curves have the same coefficients over the same
// field.
func (c *EllipticCurve) Equal(o *EllipticCurve) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

func (c *EllipticCurve) String() string {
	return fmt.Sprintf("EllipticCurve(a=%s, b=%s) over %s", c.a.Value(), c.b.Value(), c.Field())
}

// Infinity returns the identity element of the curve's group.
func (c *EllipticCurve) Infinity() Point {
	return Infinity{curve: c}
}

// Contains reports whether (x, y) satisfies y^2 = x^3 + a*x + b.
func (c *EllipticCurve) Contains(x, y *field.FieldElement) bool {
	var ar arith
	lhs := ar.mul(y, y)
	rhs := ar.add(ar.add(ar.mul(ar.mul(x, x), x), ar.mul(c.a, x)), c.b)
	if ar.err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// NewPoint returns the affine point (x, y). Both coordinates must belong to
// the curve's field and satisfy the curve equation.
func (c *EllipticCurve) NewPoint(x, y *field.FieldElement) (*Affine, error) {
	if !x.Field().Equal(c.Field()) || !y.Field().Equal(c.Field()) {
		return nil, ecc.MakeError(ecc.ErrFieldMismatch, "point coordinates are not in the curve field")
	}
	if !c.Contains(x, y) {
		return nil, ecc.MakeError(ecc.ErrPointNotOnCurve,
			fmt.Sprintf("(%s, %s) is not on the curve", x.Value(), y.Value()))
	}
	return &Affine{x: x, y: y, curve: c}, nil
}
