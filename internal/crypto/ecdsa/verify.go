package ecdsa

import (
	"math/big"

	"github.com/smallyu/go-btc-ecc/internal/crypto/curves"
)

// Verify reports whether sig is a valid signature of z under pub.
//
// It returns false for a public key that is Infinity or lies on another
// curve, for r or s outside [1, n), and when u·G + v·P is Infinity.
func Verify(pub curves.Point, z *big.Int, sig *Signature) bool {
	c := curves.S256()
	if sig == nil || !inScalarRange(sig.r) || !inScalarRange(sig.s) {
		return false
	}
	if checkMessage(z) != nil {
		return false
	}
	p, ok := pub.(*curves.Affine)
	if !ok || !p.Curve().Equal(c.Curve()) {
		return false
	}

	n := c.ScalarField()

	// 1. s^-1 = s^(n-2) mod n.
	sInv := n.Reduce(sig.s).Pow(new(big.Int).Sub(c.N(), big.NewInt(2)))

	// 2. u = z/s, v = r/s.
	u, err := n.Reduce(z).Mul(sInv)
	if err != nil {
		return false
	}
	v, err := n.Reduce(sig.r).Mul(sInv)
	if err != nil {
		return false
	}

	// 3. total = uG + vP.
	uG, err := c.ScalarBaseMult(u.Value())
	if err != nil {
		return false
	}
	vP, err := curves.ScalarMult(p, v.Value())
	if err != nil {
		return false
	}
	total, err := curves.Add(uG, vP)
	if err != nil {
		return false
	}

	// 4. total.x mod n == r.
	t, ok := total.(*curves.Affine)
	if !ok {
		return false
	}
	return n.Reduce(t.X().Value()).Value().Cmp(sig.r) == 0
}

// Verify reports whether sig is a valid signature of z under the key's
// public point.
func (k *PrivateKey) Verify(z *big.Int, sig *Signature) bool {
	return Verify(k.point, z, sig)
}
