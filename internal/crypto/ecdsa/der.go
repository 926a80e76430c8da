package ecdsa

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

const (
	// asn1SequenceID is the ASN.1 identifier for a sequence.
	asn1SequenceID = 0x30

	// asn1IntegerID is the ASN.1 identifier for an integer.
	asn1IntegerID = 0x02

	// minSigLen is the length of a DER signature whose R and S are one byte
	// each.
	minSigLen = 8

	// maxSigLen is the length of a DER signature whose R and S both need 33
	// bytes.
	maxSigLen = 72
)

// DER returns the signature as
//
//	0x30 <total length> 0x02 <len R> <R> 0x02 <len S> <S>
//
// where R and S are minimal big-endian integers, prefixed with 0x00 when
// their top bit is set.
func (sig *Signature) DER() []byte {
	r := canonicalInt(sig.r)
	s := canonicalInt(sig.s)

	totalLen := 6 + len(r) + len(s)
	b := make([]byte, 0, totalLen)
	b = append(b, asn1SequenceID, byte(totalLen-2))
	b = append(b, asn1IntegerID, byte(len(r)))
	b = append(b, r...)
	b = append(b, asn1IntegerID, byte(len(s)))
	b = append(b, s...)
	return b
}

func canonicalInt(v *big.Int) []byte {
	var buf [33]byte
	v.FillBytes(buf[1:])
	b := buf[:]
	for len(b) > 1 && b[0] == 0x00 && b[1]&0x80 == 0 {
		b = b[1:]
	}
	return b
}

// ParseDER parses a strict DER signature. Every layout violation is reported
// as ecc.ErrMalformedEncoding; R or S outside [1, n) as ecc.ErrOutOfRange.
func ParseDER(sig []byte) (*Signature, error) {
	sigLen := len(sig)
	if sigLen < minSigLen {
		return nil, malformed(fmt.Sprintf("too short: %d < %d", sigLen, minSigLen))
	}
	if sigLen > maxSigLen {
		return nil, malformed(fmt.Sprintf("too long: %d > %d", sigLen, maxSigLen))
	}
	if sig[0] != asn1SequenceID {
		return nil, malformed(fmt.Sprintf("wrong sequence tag %#x", sig[0]))
	}
	if int(sig[1]) != sigLen-2 {
		return nil, malformed(fmt.Sprintf("bad length: %d != %d", sig[1], sigLen-2))
	}

	r, rest, err := parseInt(sig[2:], "R")
	if err != nil {
		return nil, err
	}
	s, rest, err := parseInt(rest, "S")
	if err != nil {
		return nil, err
	}
	if len(rest) != 0 {
		return nil, malformed(fmt.Sprintf("%d trailing bytes", len(rest)))
	}

	return NewSignature(r, s)
}

// parseInt reads one ASN.1 integer from the front of b.
func parseInt(b []byte, name string) (*big.Int, []byte, error) {
	if len(b) < 2 {
		return nil, nil, malformed(name + " missing")
	}
	if b[0] != asn1IntegerID {
		return nil, nil, malformed(fmt.Sprintf("%s integer marker: %#x != %#x", name, b[0], asn1IntegerID))
	}
	n := int(b[1])
	if n == 0 {
		return nil, nil, malformed(name + " length is zero")
	}
	if len(b) < 2+n {
		return nil, nil, malformed(name + " length exceeds signature")
	}
	v := b[2 : 2+n]
	if v[0]&0x80 != 0 {
		return nil, nil, malformed(name + " is negative")
	}
	if n > 1 && v[0] == 0x00 && v[1]&0x80 == 0 {
		return nil, nil, malformed(name + " has too much padding")
	}
	return new(big.Int).SetBytes(v), b[2+n:], nil
}

func malformed(desc string) error {
	return ecc.MakeError(ecc.ErrMalformedEncoding, "malformed signature: "+desc)
}
