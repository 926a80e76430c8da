// Package address encodes and decodes pay-to-pubkey-hash addresses.
package address

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/smallyu/go-btc-ecc/internal/crypto/base58check"
	"github.com/smallyu/go-btc-ecc/internal/crypto/curves"
	"github.com/smallyu/go-btc-ecc/internal/crypto/hash"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// HashLen is the length of the hash160 carried by a P2PKH address.
const HashLen = 20

// P2PKH returns base58check(version || hash160(sec(pub))) for net.
func P2PKH(pub curves.Point, compressed bool, net *chaincfg.Params) (string, error) {
	sec, err := curves.SerializeSEC(pub, compressed)
	if err != nil {
		return "", fmt.Errorf("failed to serialize public key: %w", err)
	}
	h := hash.Hash160(sec)
	return FromHash160(h, net), nil
}

// FromHash160 returns the P2PKH address of a precomputed hash160.
func FromHash160(h [HashLen]byte, net *chaincfg.Params) string {
	b := make([]byte, 0, 1+HashLen)
	b = append(b, net.PubKeyHashAddrID)
	b = append(b, h[:]...)
	return base58check.Encode(b)
}

// Decode returns the hash160 inside a P2PKH address and the network its
// version byte belongs to.
func Decode(addr string) ([HashLen]byte, *chaincfg.Params, error) {
	var h [HashLen]byte

	b, err := base58check.Decode(addr)
	if err != nil {
		return h, nil, fmt.Errorf("failed to decode address: %w", err)
	}
	if len(b) != 1+HashLen {
		return h, nil, ecc.MakeError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("address payload is %d bytes, want %d", len(b), 1+HashLen))
	}

	net, err := ecc.NetworkByAddrID(b[0])
	if err != nil {
		return h, nil, err
	}
	copy(h[:], b[1:])
	return h, net, nil
}
