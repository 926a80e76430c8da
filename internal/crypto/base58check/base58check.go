package base58check

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/btcsuite/btcd/btcutil/base58"

	"github.com/smallyu/go-btc-ecc/internal/crypto/hash"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

// Alphabet is the Bitcoin base58 alphabet. It omits 0, O, I and l.
const Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// ChecksumLen is the number of hash256 bytes appended by Encode.
const ChecksumLen = 4

// EncodeBase58 converts b to base58. Each leading zero byte becomes a
// leading '1' so that the length of the input survives the conversion.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase58 reverses EncodeBase58.
func DecodeBase58(s string) ([]byte, error) {
	if i := firstInvalid(s); i >= 0 {
		return nil, ecc.MakeError(ecc.ErrMalformedEncoding,
			fmt.Sprintf("invalid base58 character %q at offset %d", s[i], i))
	}
	return base58.Decode(s), nil
}

// Encode returns base58(payload || hash256(payload)[:4]).
func Encode(payload []byte) string {
	sum := checksum(payload)
	b := make([]byte, 0, len(payload)+ChecksumLen)
	b = append(b, payload...)
	b = append(b, sum[:]...)
	return EncodeBase58(b)
}

// Decode returns the payload of a Base58Check string after verifying its
// checksum.
func Decode(s string) ([]byte, error) {
	b, err := DecodeBase58(s)
	if err != nil {
		return nil, err
	}
	if len(b) < ChecksumLen {
		return nil, ecc.MakeError(ecc.ErrMalformedEncoding, "base58check string too short for checksum")
	}

	payload, sum := b[:len(b)-ChecksumLen], b[len(b)-ChecksumLen:]
	want := checksum(payload)
	if !bytes.Equal(sum, want[:]) {
		return nil, ecc.MakeError(ecc.ErrBadChecksum, "base58check checksum mismatch")
	}
	return payload, nil
}

func checksum(payload []byte) (sum [ChecksumLen]byte) {
	h := hash.Hash256(payload)
	copy(sum[:], h[:ChecksumLen])
	return
}

// firstInvalid returns the offset of the first byte outside the alphabet, or
// -1.
func firstInvalid(s string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(Alphabet, s[i]) < 0 {
			return i
		}
	}
	return -1
}
