// Package btc exposes the hooks the rest of a Bitcoin node calls into: the
// signature check behind the script interpreter's OP_CHECKSIG and the
// transaction identifier used by the transaction codec.
package btc

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg/chainhash"

	"github.com/smallyu/go-btc-ecc/internal/crypto/curves"
	"github.com/smallyu/go-btc-ecc/internal/crypto/ecdsa"
	"github.com/smallyu/go-btc-ecc/internal/crypto/hash"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// CheckSig parses a SEC public key and a DER signature and verifies the
// signature against the message integer z.
//
// Malformed sec or der input is reported as an error. A well-formed
// signature that does not verify yields false and a nil error.
func CheckSig(sec, der []byte, z *big.Int) (bool, error) {
	pub, err := curves.ParseSEC(sec)
	if err != nil {
		return false, fmt.Errorf("failed to parse public key: %w", err)
	}
	sig, err := ecdsa.ParseDER(der)
	if err != nil {
		return false, fmt.Errorf("failed to parse signature: %w", err)
	}
	return ecdsa.Verify(pub, z, sig), nil
}

// Checker implements ecc.SignatureChecker on top of CheckSig.
type Checker struct{}

var _ ecc.SignatureChecker = Checker{}

// CheckSig calls the package level CheckSig.
func (Checker) CheckSig(sec, der []byte, z *big.Int) (bool, error) {
	return CheckSig(sec, der, z)
}

// TxHash returns hash256 of a serialized transaction.
func TxHash(raw []byte) chainhash.Hash {
	return chainhash.Hash(hash.Hash256(raw))
}

// TxID returns the transaction identifier of raw: hash256 in the
// byte-reversed hex form Bitcoin displays.
func TxID(raw []byte) string {
	return TxHash(raw).String()
}
