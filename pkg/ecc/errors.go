package ecc

// ErrorKind identifies a kind of error.  It has full support for errors.Is
// and errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidFieldOrder is returned when a finite field is constructed
	// with an order that is not prime.
	ErrInvalidFieldOrder = ErrorKind("ErrInvalidFieldOrder")

	// ErrOutOfRange is returned when a field element value falls outside
	// [0, order) or a scalar falls outside its permitted range.
	ErrOutOfRange = ErrorKind("ErrOutOfRange")

	// ErrFieldMismatch is returned when an operation combines elements of
	// two different fields.
	ErrFieldMismatch = ErrorKind("ErrFieldMismatch")

	// ErrCurveMismatch is returned when an operation combines points of two
	// different curves.
	ErrCurveMismatch = ErrorKind("ErrCurveMismatch")

	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrPointNotOnCurve is returned when coordinates do not satisfy the
	// curve equation, either at construction or while parsing.
	ErrPointNotOnCurve = ErrorKind("ErrPointNotOnCurve")

	// ErrMalformedEncoding is returned when SEC, DER, Base58 or Base58Check
	// input violates the expected byte layout.
	ErrMalformedEncoding = ErrorKind("ErrMalformedEncoding")

	// ErrBadChecksum is returned when a Base58Check payload does not match
	// its trailing checksum.
	ErrBadChecksum = ErrorKind("ErrBadChecksum")

	// ErrUnknownVersion is returned when a decoded address or WIF carries a
	// version prefix that belongs to no known network.
	ErrUnknownVersion = ErrorKind("ErrUnknownVersion")

	// ErrSigningFailed is returned when a nonce produces a degenerate
	// signature.
	ErrSigningFailed = ErrorKind("ErrSigningFailed")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to elliptic curve arithmetic or one of
// its encodings.  It has full support for errors.Is and errors.As, so the
// caller can ascertain the specific reason for the error by checking the
// underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// MakeError creates an Error given a set of arguments.
func MakeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
