// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/bits"

// wideInt is a 512-bit unsigned integer stored as 8 little-endian 64-bit limbs.
// It holds the full product of two field elements prior to reduction.
type wideInt [2 * fieldLimbs]uint64

// mul sets w to the full 512-bit product a * b using schoolbook
// multiplication.
//
// Each partial product hi:lo is at most (2^64-1)^2, so adding two further
// 64-bit values to it still fits in 128 bits and hi never overflows.
func (w *wideInt) mul(a, b *[fieldLimbs]uint64) {
	*w = wideInt{}
	for i := 0; i < fieldLimbs; i++ {
		var carry uint64
		for j := 0; j < fieldLimbs; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			var c uint64
			lo, c = bits.Add64(lo, w[i+j], 0)
			hi += c
			lo, c = bits.Add64(lo, carry, 0)
			hi += c
			w[i+j] = lo
			carry = hi
		}
		w[i+fieldLimbs] = carry
	}
}

// reduce returns the canonical representative of w modulo the field prime.
//
// Writing w = hi*2^256 + lo and using 2^256 = c (mod p) with c = 2^32 + 977:
//
//	w = lo + hi*c (mod p)
//
// hi*c is at most 289 bits, so the first fold leaves a value of at most 290
// bits whose fifth limb is tiny.  Folding that limb once more with the same
// identity leaves at most 256 bits plus a possible carry, and when that carry
// is set the low 256 bits are small enough that adding c cannot overflow
// again.  A final conditional subtraction brings the result into [0, p).
func (w *wideInt) reduce() [fieldLimbs]uint64 {
	var r [fieldLimbs + 1]uint64
	var carry uint64
	for i := 0; i < fieldLimbs; i++ {
		hi, lo := bits.Mul64(w[i+fieldLimbs], fieldReductionConst)
		var c uint64
		lo, c = bits.Add64(lo, w[i], 0)
		hi += c
		lo, c = bits.Add64(lo, carry, 0)
		hi += c
		r[i] = lo
		carry = hi
	}
	r[fieldLimbs] = carry

	// Fold the fifth limb (< 2^34) back in.
	hi, lo := bits.Mul64(r[fieldLimbs], fieldReductionConst)
	var s [fieldLimbs]uint64
	var c uint64
	s[0], c = bits.Add64(r[0], lo, 0)
	s[1], c = bits.Add64(r[1], hi, c)
	s[2], c = bits.Add64(r[2], 0, c)
	s[3], c = bits.Add64(r[3], 0, c)

	// Fold the 2^256 carry, if any.
	s[0], c = bits.Add64(s[0], fieldReductionConst&-c, 0)
	s[1], c = bits.Add64(s[1], 0, c)
	s[2], c = bits.Add64(s[2], 0, c)
	s[3], _ = bits.Add64(s[3], 0, c)

	return canonicalize(s)
}
