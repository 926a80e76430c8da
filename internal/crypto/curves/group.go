package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// Add returns p + q under the curve group law.
func Add(p, q Point) (Point, error) {
	// 1. Infinity is the identity
	pa, ok := p.(*Affine)
	if !ok {
		return q, nil
	}
	qa, ok := q.(*Affine)
	if !ok {
		return p, nil
	}

	// 2. Both points must live on the same curve
	if !pa.curve.Equal(qa.curve) {
		return nil, ecc.MakeError(ecc.ErrCurveMismatch,
			fmt.Sprintf("points %s and %s are not on the same curve", pa, qa))
	}

	if pa.x.Equal(qa.x) {
		// 3. Vertical line through additive inverses
		if !pa.y.Equal(qa.y) {
			return pa.curve.Infinity(), nil
		}
		// 5. Tangent line
		return double(pa)
	}

	// 4. Chord through two distinct points
	var ar arith
	slope := ar.div(ar.sub(qa.y, pa.y), ar.sub(qa.x, pa.x))
	x3 := ar.sub(ar.sub(ar.mul(slope, slope), pa.x), qa.x)
	y3 := ar.sub(ar.mul(slope, ar.sub(pa.x, x3)), pa.y)
	if ar.err != nil {
		return nil, ar.err
	}
	return pa.curve.NewPoint(x3, y3)
}

// Double returns p + p.
func Double(p Point) (Point, error) {
	pa, ok := p.(*Affine)
	if !ok {
		return p, nil
	}
	return double(pa)
}

func double(p *Affine) (Point, error) {
	// A point with y = 0 has order 2 and its tangent is vertical.
	if p.y.IsZero() {
		return p.curve.Infinity(), nil
	}

	f := p.curve.Field()
	var ar arith
	num := ar.add(ar.mul(f.Int64(3), ar.mul(p.x, p.x)), p.curve.a)
	slope := ar.div(num, ar.mul(f.Int64(2), p.y))
	x3 := ar.sub(ar.mul(slope, slope), ar.mul(f.Int64(2), p.x))
	y3 := ar.sub(ar.mul(slope, ar.sub(p.x, x3)), p.y)
	if ar.err != nil {
		return nil, ar.err
	}
	return p.curve.NewPoint(x3, y3)
}

// Neg returns the additive inverse of p.
func Neg(p Point) Point {
	pa, ok := p.(*Affine)
	if !ok {
		return p
	}
	return &Affine{x: pa.x, y: pa.y.Neg(), curve: pa.curve}
}

// ScalarMult returns k*p using double-and-add from the least significant bit
// of k. k must be non-negative.
func ScalarMult(p Point, k *big.Int) (Point, error) {
	if k == nil || k.Sign() < 0 {
		return nil, ecc.MakeError(ecc.ErrOutOfRange, "scalar must be non-negative")
	}

	current := p
	result := p.Curve().Infinity()
	bits := k.BitLen()
	for i := 0; i < bits; i++ {
		var err error
		if k.Bit(i) == 1 {
			if result, err = Add(result, current); err != nil {
				return nil, err
			}
		}
		// The doubling after the top bit is never used.
		if i == bits-1 {
			break
		}
		if current, err = Double(current); err != nil {
			return nil, err
		}
	}
	return result, nil
}
