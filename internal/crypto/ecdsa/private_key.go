package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/internal/crypto/curves"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// PrivateKey is a secp256k1 secret scalar together with its public point.
type PrivateKey struct {
	secret *big.Int
	point  *curves.Affine
}

// NewPrivateKey returns the key for secret, which must lie in [1, n).
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	c := curves.S256()
	if secret == nil || secret.Sign() <= 0 || secret.Cmp(c.N()) >= 0 {
		return nil, ecc.MakeError(ecc.ErrOutOfRange, "private key must be in [1, n)")
	}

	p, err := c.ScalarBaseMult(secret)
	if err != nil {
		return nil, err
	}
	pub, ok := p.(*curves.Affine)
	if !ok {
		// G has prime order n, so only multiples of n reach infinity.
		panic("ecdsa: secret in [1, n) produced the point at infinity")
	}

	return &PrivateKey{secret: new(big.Int).Set(secret), point: pub}, nil
}

// Secret returns a copy of the secret scalar.
func (k *PrivateKey) Secret() *big.Int {
	return new(big.Int).Set(k.secret)
}

// Bytes returns the secret as 32 big-endian bytes.
func (k *PrivateKey) Bytes() [32]byte {
	var b [32]byte
	k.secret.FillBytes(b[:])
	return b
}

// PublicKey returns secret·G.
func (k *PrivateKey) PublicKey() *curves.Affine {
	return k.point
}

func (k *PrivateKey) String() string {
	return fmt.Sprintf("%064x", k.secret)
}
