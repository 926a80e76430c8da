package curves

import (
	"math/big"
	"sync"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-btc-ecc/internal/crypto/field"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// Recommended 256-bit elliptic curve domain parameters, SEC 2 section 2.4.1.
const (
	secp256k1P  = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	secp256k1N  = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	secp256k1Gx = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	secp256k1Gy = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
	secp256k1A  = 0
	secp256k1B  = 7
)

// Secp256k1 holds the secp256k1 domain parameters. The values are built once
// and shared read-only by every caller.
type Secp256k1 struct {
	p       *big.Int
	n       *big.Int
	halfN   *big.Int
	field   *field.FiniteField
	scalars *field.FiniteField
	curve   *EllipticCurve
	g       *Affine
}

var (
	s256Once sync.Once
	s256     *Secp256k1
)

// S256 returns the secp256k1 domain parameters.
func S256() *Secp256k1 {
	s256Once.Do(func() {
		s256 = newSecp256k1()
	})
	return s256
}

func newSecp256k1() *Secp256k1 {
	p := fromHex(secp256k1P)
	n := fromHex(secp256k1N)

	fp, err := field.NewFiniteField(p)
	if err != nil {
		panic("secp256k1: field prime rejected: " + err.Error())
	}
	fn, err := field.NewFiniteField(n)
	if err != nil {
		panic("secp256k1: group order rejected: " + err.Error())
	}
	curve, err := NewEllipticCurve(fp.Int64(secp256k1A), fp.Int64(secp256k1B))
	if err != nil {
		panic("secp256k1: " + err.Error())
	}
	gx, _ := fp.NewElement(fromHex(secp256k1Gx))
	gy, _ := fp.NewElement(fromHex(secp256k1Gy))
	g, err := curve.NewPoint(gx, gy)
	if err != nil {
		panic("secp256k1: generator rejected: " + err.Error())
	}

	return &Secp256k1{
		p:       p,
		n:       n,
		halfN:   new(big.Int).Rsh(n, 1),
		field:   fp,
		scalars: fn,
		curve:   curve,
		g:       g,
	}
}

func fromHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid hex in source file: " + s)
	}
	return v
}

// P returns the field prime.
func (c *Secp256k1) P() *big.Int { return new(big.Int).Set(c.p) }

// N returns the order of the generator.
func (c *Secp256k1) N() *big.Int { return new(big.Int).Set(c.n) }

// HalfN returns floor(N/2), the bound for low-S signatures.
func (c *Secp256k1) HalfN() *big.Int { return new(big.Int).Set(c.halfN) }

// Field returns the coordinate field F_p.
func (c *Secp256k1) Field() *field.FiniteField { return c.field }

// ScalarField returns the field of integers modulo N.
func (c *Secp256k1) ScalarField() *field.FiniteField { return c.scalars }

// Curve returns y^2 = x^3 + 7 over F_p.
func (c *Secp256k1) Curve() *EllipticCurve { return c.curve }

// G returns the generator point.
func (c *Secp256k1) G() *Affine { return c.g }

// ScalarBaseMult returns k*G.
func (c *Secp256k1) ScalarBaseMult(k *big.Int) (Point, error) {
	return ScalarMult(c.g, k)
}

// ToPubKey converts a secp256k1 point into the decred public key type.
func (c *Secp256k1) ToPubKey(p *Affine) (*secp256k1.PublicKey, error) {
	if !p.curve.Equal(c.curve) {
		return nil, ecc.MakeError(ecc.ErrCurveMismatch, "point is not on secp256k1")
	}
	var x, y secp256k1.FieldVal
	x.SetByteSlice(p.x.Bytes())
	y.SetByteSlice(p.y.Bytes())
	return secp256k1.NewPublicKey(&x, &y), nil
}

// FromPubKey converts a decred public key into a point.
func (c *Secp256k1) FromPubKey(pk *secp256k1.PublicKey) (*Affine, error) {
	return ParseSEC(pk.SerializeUncompressed())
}
