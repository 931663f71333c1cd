// Copyright (c) 2020-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import (
	"math/big"

	"github.com/decred/dcrd/chaincfg/chainhash"
)

// hashStream produces a deterministic sequence of 32-byte values by repeatedly
// hashing a seed.  It is used instead of a random source so that any failure
// is reproducible.
type hashStream struct {
	state []byte
}

// newHashStream returns a stream seeded with the passed label.
func newHashStream(seed string) *hashStream {
	return &hashStream{state: chainhash.HashB([]byte(seed))}
}

// next returns the next 32-byte value in the stream.
func (h *hashStream) next() [32]byte {
	h.state = chainhash.HashB(h.state)
	var b [32]byte
	copy(b[:], h.state)
	return b
}

// nextField returns the next value in the stream as a field element along with
// its reduced big integer equivalent.
func (h *hashStream) nextField() (FieldElement, *big.Int) {
	b := h.next()
	want := new(big.Int).SetBytes(b[:])
	want.Mod(want, Prime())
	return FieldElementFromBytes(&b), want
}

// fromHex converts the passed hex string into a field element and will panic
// if there is an error.  This is only provided for the hard-coded constants so
// errors in the source code can be detected.  It will only (and must only) be
// called with hard-coded values.
func fromHex(s string) FieldElement {
	f, err := FieldElementFromHex(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return f
}

// pointFromHex returns the affine point with the passed hex coordinates, or the
// point at infinity when both are "0".
func pointFromHex(x, y string) Point {
	if x == "0" && y == "0" {
		return Identity()
	}
	return NewPoint(fromHex(x), fromHex(y))
}

// interestingFieldValues returns field elements that sit on the edges of the
// limb and modulus boundaries.
func interestingFieldValues() []FieldElement {
	return []FieldElement{
		FieldElementFromUint64(0),
		FieldElementFromUint64(1),
		FieldElementFromUint64(2),
		FieldElementFromUint64(fieldReductionConst),
		FieldElementFromLimbs([4]uint64{^uint64(0), 0, 0, 0}),
		FieldElementFromLimbs([4]uint64{0, 1, 0, 0}),
		FieldElementFromLimbs([4]uint64{0, 0, 1, 0}),
		FieldElementFromLimbs([4]uint64{0, 0, 0, 1 << 63}),
		fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2e"),
		fromHex("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2d"),
		fromHex("7fffffffffffffffffffffffffffffffffffffffffffffffffffffff7ffffe17"),
	}
}
