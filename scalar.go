// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "encoding/hex"

// scalarBits is the fixed number of bit positions processed by scalar
// multiplication.
const scalarBits = 256

// Scalar is a 256-bit unsigned integer used as the multiplier in scalar
// multiplication.  It is stored as 4 little-endian 64-bit limbs and is not
// reduced modulo the group order.  The zero value is the scalar 0.
type Scalar struct {
	n [4]uint64
}

// NewScalar returns the scalar with the passed little-endian 64-bit limbs.
func NewScalar(limbs [4]uint64) Scalar {
	return Scalar{n: limbs}
}

// ScalarFromUint64 returns the scalar for the passed integer.
func ScalarFromUint64(v uint64) Scalar {
	return Scalar{n: [4]uint64{v}}
}

// ScalarFromBytes interprets the passed 32 bytes as a big-endian 256-bit
// unsigned integer.
func ScalarFromBytes(b *[32]byte) Scalar {
	return Scalar{n: limbsFromBytes(b)}
}

// ScalarFromHex decodes a big-endian hex string of at most 64 digits.
func ScalarFromHex(s string) (Scalar, error) {
	b, err := decodeHex256(s)
	if err != nil {
		return Scalar{}, err
	}
	return ScalarFromBytes(b), nil
}

// Bit returns bit i of the scalar, where bit 0 is the least significant.
func (s Scalar) Bit(i int) uint64 {
	return (s.n[i/64] >> (uint(i) % 64)) & 1
}

// IsZero returns whether or not the scalar is zero.
func (s Scalar) IsZero() bool {
	return (s.n[0] | s.n[1] | s.n[2] | s.n[3]) == 0
}

// Bytes returns the scalar as a 32-byte big-endian value.
func (s Scalar) Bytes() [32]byte {
	return bytesFromLimbs(&s.n)
}

// String returns the scalar as a 64-digit big-endian hex string.
func (s Scalar) String() string {
	b := s.Bytes()
	return hex.EncodeToString(b[:])
}
