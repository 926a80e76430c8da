package curves

import (
	"fmt"

	"github.com/smallyu/go-btc-ecc/internal/crypto/field"
)

// Point is an element of an elliptic curve group. It is either Infinity or
// an *Affine point; callers switch on the concrete type.
type Point interface {
	// Curve returns the curve the point belongs to.
	Curve() *EllipticCurve

	// IsInfinity reports whether the point is the group identity.
	IsInfinity() bool

	// Equal reports whether both points are Infinity, or are affine
	// points with equal coordinates on the same curve.
	Equal(q Point) bool

	String() string

	point()
}

// Infinity is the additive identity of a curve's group.
type Infinity struct {
	curve *EllipticCurve
}

func (p Infinity) Curve() *EllipticCurve { return p.curve }
func (p Infinity) IsInfinity() bool       { return true }
func (p Infinity) String() string         { return "Point(infinity)" }
func (p Infinity) point()                 {}

func (p Infinity) Equal(q Point) bool {
	return q != nil && q.IsInfinity()
}

// Affine is a point (x, y) known to satisfy its curve's equation.
type Affine struct {
	x     *field.FieldElement
	y     *field.FieldElement
	curve *EllipticCurve
}

func (p *Affine) Curve() *EllipticCurve { return p.curve }
func (p *Affine) IsInfinity() bool       { return false }
func (p *Affine) point()                 {}

// X returns the x coordinate.
func (p *Affine) X() *field.FieldElement { return p.x }

// Y returns the y coordinate.
func (p *Affine) Y() *field.FieldElement { return p.y }

func (p *Affine) Equal(q Point) bool {
	o, ok := q.(*Affine)
	if !ok || o == nil {
		return false
	}
	return p.curve.Equal(o.curve) && p.x.Equal(o.x) && p.y.Equal(o.y)
}

func (p *Affine) String() string {
	return fmt.Sprintf("Point(%s, %s)_%s_%s FieldElement(%s)",
		p.x.Value(), p.y.Value(), p.curve.a.Value(), p.curve.b.Value(), p.curve.Field().Order())
}
