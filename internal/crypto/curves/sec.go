package curves

import (
	"fmt"
	"math/big"

	"github.com/smallyu/go-btc-ecc/internal/crypto/field"
	"github.com/smallyu/go-btc-ecc/pkg/ecc"
)

const (
	// PubKeyBytesLenCompressed is the length of a compressed SEC point.
	PubKeyBytesLenCompressed = 33

	// PubKeyBytesLenUncompressed is the length of an uncompressed SEC point.
	PubKeyBytesLenUncompressed = 65

	pubkeyCompressedEven byte = 0x02
	pubkeyCompressedOdd  byte = 0x03
	pubkeyUncompressed   byte = 0x04
)

// SerializeUncompressed returns 0x04 || X || Y with both coordinates
// big-endian and padded to the field width.
func (p *Affine) SerializeUncompressed() []byte {
	x, y := p.x.Bytes(), p.y.Bytes()
	b := make([]byte, 0, 1+len(x)+len(y))
	b = append(b, pubkeyUncompressed)
	b = append(b, x...)
	return append(b, y...)
}

// SerializeCompressed returns 0x02 || X for even Y and 0x03 || X for odd Y.
func (p *Affine) SerializeCompressed() []byte {
	x := p.x.Bytes()
	b := make([]byte, 0, 1+len(x))
	prefix := pubkeyCompressedEven
	if p.y.IsOdd() {
		prefix = pubkeyCompressedOdd
	}
	b = append(b, prefix)
	return append(b, x...)
}

// SerializeSEC encodes p in SEC format. Infinity has no SEC encoding.
func SerializeSEC(p Point, compressed bool) ([]byte, error) {
	a, ok := p.(*Affine)
	if !ok {
		return nil, ecc.MakeError(ecc.ErrMalformedEncoding, "the point at infinity has no SEC encoding")
	}
	if compressed {
		return a.SerializeCompressed(), nil
	}
	return a.SerializeUncompressed(), nil
}

// ParseSEC decodes a compressed or uncompressed SEC point on secp256k1.
func ParseSEC(b []byte) (*Affine, error) {
	s := S256()
	switch len(b) {
	case PubKeyBytesLenUncompressed:
		if b[0] != pubkeyUncompressed {
			return nil, ecc.MakeError(ecc.ErrMalformedEncoding,
				fmt.Sprintf("invalid uncompressed SEC prefix 0x%02x", b[0]))
		}
		x, err := s.field.NewElement(new(big.Int).SetBytes(b[1:33]))
		if err != nil {
			return nil, ecc.MakeError(ecc.ErrMalformedEncoding, "SEC x coordinate exceeds field prime")
		}
		y, err := s.field.NewElement(new(big.Int).SetBytes(b[33:65]))
		if err != nil {
			return nil, ecc.MakeError(ecc.ErrMalformedEncoding, "SEC y coordinate exceeds field prime")
		}
		return s.curve.NewPoint(x, y)

	case PubKeyBytesLenCompressed:
		if b[0] != pubkeyCompressedEven && b[0] != pubkeyCompressedOdd {
			return nil, ecc.MakeError(ecc.ErrMalformedEncoding,
				fmt.Sprintf("invalid compressed SEC prefix 0x%02x", b[0]))
		}
		x, err := s.field.NewElement(new(big.Int).SetBytes(b[1:33]))
		if err != nil {
			return nil, ecc.MakeError(ecc.ErrMalformedEncoding, "SEC x coordinate exceeds field prime")
		}
		y, err := decompressY(s.curve, x, b[0] == pubkeyCompressedOdd)
		if err != nil {
			return nil, err
		}
		return s.curve.NewPoint(x, y)
	}

	return nil, ecc.MakeError(ecc.ErrMalformedEncoding,
		fmt.Sprintf("SEC point must be %d or %d bytes, got %d",
			PubKeyBytesLenCompressed, PubKeyBytesLenUncompressed, len(b)))
}

// decompressY solves the curve equation for y and picks the root with the
// requested parity. The curve's field order must be 3 mod 4.
func decompressY(c *EllipticCurve, x *field.FieldElement, odd bool) (*field.FieldElement, error) {
	var ar arith
	alpha := ar.add(ar.add(ar.mul(ar.mul(x, x), x), ar.mul(c.a, x)), c.b)
	if ar.err != nil {
		return nil, ar.err
	}
	beta := alpha.Sqrt()
	if !ar.mul(beta, beta).Equal(alpha) {
		return nil, ecc.MakeError(ecc.ErrPointNotOnCurve,
			fmt.Sprintf("no point on the curve has x = %s", x.Value()))
	}
	if beta.IsOdd() != odd {
		beta = beta.Neg()
	}
	return beta, nil
}
