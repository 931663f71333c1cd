// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package secp256k1 implements secp256k1 finite field and elliptic curve group
arithmetic in pure Go.

The package provides the two layers of arithmetic that elliptic curve
cryptography over secp256k1 is built from.  See
https://www.secg.org/sec2-v2.pdf for details on the standard.

An overview of the features provided by this package are as follows:

  - FieldElement type for working modulo the secp256k1 field prime
    p = 2^256 - 2^32 - 977
  - Addition, subtraction, negation, multiplication, and squaring with results
    that are always fully reduced into [0, p)
  - Multiplicative inverse via Fermat's little theorem
  - Point type in affine coordinates with an explicit point at infinity
  - Point addition and doubling
  - Scalar multiplication with an arbitrary point
  - Curve membership testing
  - The secp256k1 base point (group generator)

Field elements, scalars, and points are immutable values.  Every operation
returns a new value and none of them retain or share mutable state, so they
may be freely used from multiple goroutines.

Operations that are mathematically undefined return an error rather than a
value.  Inverting zero returns ErrDivisionByZero and doubling an affine point
whose y coordinate is zero returns ErrInvalidPoint.  All errors can be
identified with errors.Is against the exported ErrorKind values.

The implementation favors clarity over speed.  In particular, points are kept
in affine coordinates, so every addition performs a field inversion, and scalar
multiplication is not constant time.  It must not be used with secret scalars.
*/
package secp256k1
