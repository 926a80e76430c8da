package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/internal/crypto/curves"
	"github.com/smallyu/go-btc-ecc/internal/crypto/field"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// Sign produces a deterministic low-S signature of the message integer z.
// Signing the same z twice with the same key yields identical signatures.
func (k *PrivateKey) Sign(z *big.Int) (*Signature, error) {
	if err := checkMessage(z); err != nil {
		return nil, err
	}

	c := curves.S256()
	n := c.ScalarField()
	e := n.Reduce(z)
	d := n.Reduce(k.secret)

	for iteration := uint32(0); ; iteration++ {
		// 1. Derive the nonce.
		nonce := deterministicK(k.secret, z, iteration)

		// 2. R = kG, r = R.x mod n.
		p, err := c.ScalarBaseMult(nonce)
		if err != nil {
			return nil, err
		}
		rp, ok := p.(*curves.Affine)
		if !ok {
			return nil, ecc.MakeError(ecc.ErrSigningFailed, "nonce produced the point at infinity")
		}
		r := n.Reduce(rp.X().Value())
		if r.IsZero() {
			continue
		}

		// 3. k^-1 = k^(n-2) mod n.
		kInv := n.Reduce(nonce).Pow(new(big.Int).Sub(c.N(), big.NewInt(2)))

		// 4. s = (z + r*d) * k^-1 mod n.
		s, err := scalarS(e, r, d, kInv)
		if err != nil {
			return nil, fmt.Errorf("failed to compute s: %w", err)
		}
		if s.IsZero() {
			continue
		}

		// 5. Low-S.
		if s.Value().Cmp(c.HalfN()) > 0 {
			s = s.Neg()
		}

		return &Signature{r: r.Value(), s: s.Value()}, nil
	}
}

func scalarS(e, r, d, kInv *field.FieldElement) (*field.FieldElement, error) {
	rd, err := r.Mul(d)
	if err != nil {
		return nil, err
	}
	sum, err := e.Add(rd)
	if err != nil {
		return nil, err
	}
	return sum.Mul(kInv)
}
