package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/internal/crypto/curves"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// Signature is an ECDSA signature over secp256k1.
type Signature struct {
	r *big.Int
	s *big.Int
}

// NewSignature returns the signature (r, s). Both components must lie in
// [1, n).
func NewSignature(r, s *big.Int) (*Signature, error) {
	if !inScalarRange(r) {
		return nil, ecc.MakeError(ecc.ErrOutOfRange, "signature r must be in [1, n)")
	}
	if !inScalarRange(s) {
		return nil, ecc.MakeError(ecc.ErrOutOfRange, "signature s must be in [1, n)")
	}
	return &Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}, nil
}

// R returns a copy of r.
func (sig *Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns a copy of s.
func (sig *Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// IsLowS reports whether s <= n/2.
func (sig *Signature) IsLowS() bool {
	return sig.s.Cmp(curves.S256().HalfN()) <= 0
}

// Equal reports whether both signatures carry the same r and s.
func (sig *Signature) Equal(o *Signature) bool {
	return sig.r.Cmp(o.r) == 0 && sig.s.Cmp(o.s) == 0
}

func (sig *Signature) String() string {
	return fmt.Sprintf("Signature(%x,%x)", sig.r, sig.s)
}

func inScalarRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(curves.S256().N()) < 0
}

// checkMessage rejects message integers that do not fit in 32 bytes.
func checkMessage(z *big.Int) error {
	if z == nil || z.Sign() < 0 || z.BitLen() > 256 {
		return ecc.MakeError(ecc.ErrOutOfRange, "message hash must be in [0, 2^256)")
	}
	return nil
}
