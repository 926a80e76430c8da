package ecc

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidFieldOrder, "ErrInvalidFieldOrder"},
		{ErrOutOfRange, "ErrOutOfRange"},
		{ErrFieldMismatch, "ErrFieldMismatch"},
		{ErrCurveMismatch, "ErrCurveMismatch"},
		{ErrDivisionByZero, "ErrDivisionByZero"},
		{ErrPointNotOnCurve, "ErrPointNotOnCurve"},
		{ErrMalformedEncoding, "ErrMalformedEncoding"},
		{ErrBadChecksum, "ErrBadChecksum"},
		{ErrUnknownVersion, "ErrUnknownVersion"},
		{ErrSigningFailed, "ErrSigningFailed"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		Error{Description: "human-readable error"},
		"human-readable error",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrOutOfRange == ErrOutOfRange",
		err:       ErrOutOfRange,
		target:    ErrOutOfRange,
		wantMatch: true,
		wantAs:    ErrOutOfRange,
	}, {
		name:      "Error.ErrOutOfRange == ErrOutOfRange",
		err:       MakeError(ErrOutOfRange, ""),
		target:    ErrOutOfRange,
		wantMatch: true,
		wantAs:    ErrOutOfRange,
	}, {
		name:      "Error.ErrOutOfRange == Error.ErrOutOfRange",
		err:       MakeError(ErrOutOfRange, ""),
		target:    MakeError(ErrOutOfRange, ""),
		wantMatch: true,
		wantAs:    ErrOutOfRange,
	}, {
		name:      "ErrFieldMismatch != ErrOutOfRange",
		err:       ErrFieldMismatch,
		target:    ErrOutOfRange,
		wantMatch: false,
		wantAs:    ErrFieldMismatch,
	}, {
		name:      "Error.ErrFieldMismatch != ErrOutOfRange",
		err:       MakeError(ErrFieldMismatch, ""),
		target:    ErrOutOfRange,
		wantMatch: false,
		wantAs:    ErrFieldMismatch,
	}, {
		name:      "Error.ErrMalformedEncoding != Error.ErrBadChecksum",
		err:       MakeError(ErrMalformedEncoding, ""),
		target:    MakeError(ErrBadChecksum, ""),
		wantMatch: false,
		wantAs:    ErrMalformedEncoding,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error code can be unwrapped and is the expected
		// code.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error code", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error code -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}

func TestNetworkLookup(t *testing.T) {
	if NetParams(false).PubKeyHashAddrID != 0x00 || NetParams(true).PubKeyHashAddrID != 0x6f {
		t.Fatal("unexpected address version bytes")
	}
	if NetParams(false).PrivateKeyID != 0x80 || NetParams(true).PrivateKeyID != 0xef {
		t.Fatal("unexpected private key version bytes")
	}

	net, err := NetworkByAddrID(0x6f)
	if err != nil || net != NetParams(true) {
		t.Fatalf("lookup of testnet address id failed: %v", err)
	}
	net, err = NetworkByPrivateKeyID(0x80)
	if err != nil || net != NetParams(false) {
		t.Fatalf("lookup of mainnet private key id failed: %v", err)
	}

	if _, err := NetworkByAddrID(0x05); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
	if _, err := NetworkByPrivateKeyID(0x00); !errors.Is(err, ErrUnknownVersion) {
		t.Fatalf("expected ErrUnknownVersion, got %v", err)
	}
}
