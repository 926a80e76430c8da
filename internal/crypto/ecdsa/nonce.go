package ecdsa

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-btc-ecc/internal/crypto/hash"
)

// deterministicK derives the RFC6979 nonce for signing z with secret. The
// message input to the HMAC-DRBG is sha256 of z as 32 big-endian bytes.
// iteration selects a later output of the same generator and is only
// non-zero when an earlier nonce produced r = 0 or s = 0.
func deterministicK(secret, z *big.Int, iteration uint32) *big.Int {
	var priv, msg [32]byte
	secret.FillBytes(priv[:])
	z.FillBytes(msg[:])
	digest := hash.Sha256(msg[:])

	k := secp256k1.NonceRFC6979(priv[:], digest[:], nil, nil, iteration)
	kb := k.Bytes()
	k.Zero()
	for i := range priv {
		priv[i] = 0
	}
	return new(big.Int).SetBytes(kb[:])
}
