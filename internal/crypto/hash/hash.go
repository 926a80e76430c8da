package hash

import (
	"crypto/sha256"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Sha256 returns SHA256(b).
func Sha256(b []byte) [32]byte {
	return sha256.Sum256(b)
}

// Hash256 returns SHA256(SHA256(b)).
func Hash256(b []byte) [32]byte {
	return chainhash.DoubleHashH(b)
}

// Hash160 returns RIPEMD160(SHA256(b)).
func Hash160(b []byte) [20]byte {
	sha := sha256.Sum256(b)
	rmd := ripemd160.New()
	rmd.Write(sha[:])

	var res [20]byte
	copy(res[:], rmd.Sum(nil))
	return res
}
