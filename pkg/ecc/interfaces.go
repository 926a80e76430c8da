package ecc

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg"
)

// SignatureChecker is the hook a script interpreter calls to implement its
// signature-check opcode.
type SignatureChecker interface {
	// CheckSig reports whether der is a valid signature of the message
	// integer z under the SEC-encoded public key sec.
	//
	// Malformed sec or der input yields a typed error.  A well-formed
	// signature that does not verify yields false and a nil error.
	CheckSig(sec, der []byte, z *big.Int) (bool, error)
}

// NetParams maps the testnet flag used throughout the encoders onto the
// matching chain parameters.
func NetParams(testnet bool) *chaincfg.Params {
	if testnet {
		return &chaincfg.TestNet3Params
	}
	return &chaincfg.MainNetParams
}

// NetworkByAddrID returns the chain parameters whose pay-to-pubkey-hash
// version byte is id.
func NetworkByAddrID(id byte) (*chaincfg.Params, error) {
	switch id {
	case chaincfg.MainNetParams.PubKeyHashAddrID:
		return &chaincfg.MainNetParams, nil
	case chaincfg.TestNet3Params.PubKeyHashAddrID:
		return &chaincfg.TestNet3Params, nil
	}
	return nil, MakeError(ErrUnknownVersion, "unknown address version byte")
}

// NetworkByPrivateKeyID returns the chain parameters whose WIF prefix is id.
func NetworkByPrivateKeyID(id byte) (*chaincfg.Params, error) {
	switch id {
	case chaincfg.MainNetParams.PrivateKeyID:
		return &chaincfg.MainNetParams, nil
	case chaincfg.TestNet3Params.PrivateKeyID:
		return &chaincfg.TestNet3Params, nil
	}
	return nil, MakeError(ErrUnknownVersion, "unknown private key version byte")
}
