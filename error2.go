// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// These constants are used to identify a specific Error.
const (
	// ErrDivisionByZero is returned when attempting to compute the
	// multiplicative inverse of the zero field element.
	ErrDivisionByZero = ErrorKind("ErrDivisionByZero")

	// ErrInvalidPoint is returned when the group law would require dividing by
	// a zero denominator outside of the explicitly handled P + (-P) case.  For
	// example, doubling an affine point with a y coordinate of zero.  No such
	// point exists on secp256k1, so this only happens for points that are not
	// on the curve.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrDegenerateInput is returned when a point is requested from a pair of
	// optional coordinates where exactly one of them is present.
	ErrDegenerateInput = ErrorKind("ErrDegenerateInput")

	// ErrInvalidHex is returned when a hex-encoded 256-bit value is malformed
	// or encodes more than 256 bits.
	ErrInvalidHex = ErrorKind("ErrInvalidHex")
)

// pointError creates an Error for a failed group operation.
func pointError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
