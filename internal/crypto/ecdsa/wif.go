package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/chaincfg"

	"github.com/smallyu/go-btc-ecc/internal/crypto/base58check"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

const (
	// compressMagic marks a WIF whose public key is SEC-compressed.
	compressMagic = 0x01

	wifLenUncompressed = 1 + 32
	wifLenCompressed   = 1 + 32 + 1
)

// WIF returns the wallet import format of the key for net.
func (k *PrivateKey) WIF(compressed bool, net *chaincfg.Params) string {
	secret := k.Bytes()
	b := make([]byte, 0, wifLenCompressed)
	b = append(b, net.PrivateKeyID)
	b = append(b, secret[:]...)
	if compressed {
		b = append(b, compressMagic)
	}
	return base58check.Encode(b)
}

// ParseWIF decodes a WIF string into the key, its compression flag and the
// network its prefix belongs to.
func ParseWIF(s string) (*PrivateKey, bool, *chaincfg.Params, error) {
	b, err := base58check.Decode(s)
	if err != nil {
		return nil, false, nil, fmt.Errorf("failed to decode WIF: %w", err)
	}

	var compressed bool
	switch {
	case len(b) == wifLenCompressed && b[len(b)-1] == compressMagic:
		compressed = true
	case len(b) == wifLenUncompressed:
	default:
		return nil, false, nil, ecc.MakeError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("malformed WIF payload of %d bytes", len(b)))
	}

	net, err := ecc.NetworkByPrivateKeyID(b[0])
	if err != nil {
		return nil, false, nil, err
	}

	key, err := NewPrivateKey(new(big.Int).SetBytes(b[1:33]))
	if err != nil {
		return nil, false, nil, err
	}
	return key, compressed, net, nil
}
