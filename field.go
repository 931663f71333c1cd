// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

// References:
//   [HAC]: Handbook of Applied Cryptography Menezes, van Oorschot, Vanstone.
//     http://cacr.uwaterloo.ca/hac/

// All elliptic curve operations for secp256k1 are done in a finite field
// characterized by a 256-bit prime.  This file implements fixed-precision
// arithmetic over that field using the most direct representation: an array of
// 4 uint64s (64 bits * 4 = 256 bits) in little-endian limb order.  The
// intermediate results of adding or multiplying two limbs are handled with the
// carry-aware primitives in math/bits.
//
// Every FieldElement is kept fully reduced, meaning the stored value is always
// in the range [0, p).  The secp256k1 prime has the special form
// p = 2^256 - c where c = 2^32 + 977, so 2^256 = c (mod p).  That allows any
// value that overflows 256 bits to be reduced by multiplying the overflow by c
// and folding it back into the low 256 bits, which is far cheaper than a
// general division.

import (
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math/big"
	"math/bits"
)

// Constants related to the field representation.
const (
	// fieldLimbs is the number of 64-bit words used to represent a 256-bit
	// value.
	fieldLimbs = 4

	// fieldReductionConst is 2^256 mod p = 2^32 + 977.
	fieldReductionConst = 0x1000003d1

	// These provide convenient access to each of the limbs of the secp256k1
	// prime to improve code readability.
	fieldPrimeLimbZero  = 0xfffffffefffffc2f
	fieldPrimeLimbOne   = 0xffffffffffffffff
	fieldPrimeLimbTwo   = 0xffffffffffffffff
	fieldPrimeLimbThree = 0xffffffffffffffff
)

// fieldPrimeMinusTwo is the exponent used to compute multiplicative inverses
// by Fermat's little theorem.
var fieldPrimeMinusTwo = [fieldLimbs]uint64{
	fieldPrimeLimbZero - 2, fieldPrimeLimbOne, fieldPrimeLimbTwo,
	fieldPrimeLimbThree,
}

// FieldElement is an element of the secp256k1 finite field, that is, an
// integer modulo
//
//	0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f.
//
// Field elements are immutable values.  All arithmetic methods return a new
// element and leave their operands untouched.  The zero value is the field
// element 0 and is ready to use.
type FieldElement struct {
	// n holds the canonical representative in [0, p) as 4 little-endian
	// 64-bit limbs.  Every constructor and method maintains that range.
	n [fieldLimbs]uint64
}

// FieldElementFromLimbs returns the field element congruent to the passed
// 256-bit value given as little-endian 64-bit limbs.  Any 256-bit value is
// accepted and reduced modulo the field prime.
func FieldElementFromLimbs(raw [4]uint64) FieldElement {
	return FieldElement{n: canonicalize(raw)}
}

// FieldElementFromUint64 returns the field element for the passed integer.
func FieldElementFromUint64(v uint64) FieldElement {
	return FieldElement{n: [fieldLimbs]uint64{v}}
}

// FieldElementFromBytes interprets the passed 32 bytes as a big-endian 256-bit
// unsigned integer and returns the field element congruent to it.
func FieldElementFromBytes(b *[32]byte) FieldElement {
	return FieldElementFromLimbs(limbsFromBytes(b))
}

// FieldElementFromHex decodes the passed big-endian hex string into a field
// element.  Strings shorter than 64 digits are treated as if they were
// zero-padded on the left, and values >= p are reduced.
func FieldElementFromHex(s string) (FieldElement, error) {
	b, err := decodeHex256(s)
	if err != nil {
		return FieldElement{}, err
	}
	return FieldElementFromBytes(b), nil
}

// limbsFromBytes unpacks a 32-byte big-endian value into little-endian limbs.
func limbsFromBytes(b *[32]byte) [fieldLimbs]uint64 {
	return [fieldLimbs]uint64{
		binary.BigEndian.Uint64(b[24:32]),
		binary.BigEndian.Uint64(b[16:24]),
		binary.BigEndian.Uint64(b[8:16]),
		binary.BigEndian.Uint64(b[0:8]),
	}
}

// bytesFromLimbs packs little-endian limbs into a 32-byte big-endian value.
func bytesFromLimbs(n *[fieldLimbs]uint64) [32]byte {
	var b [32]byte
	binary.BigEndian.PutUint64(b[0:8], n[3])
	binary.BigEndian.PutUint64(b[8:16], n[2])
	binary.BigEndian.PutUint64(b[16:24], n[1])
	binary.BigEndian.PutUint64(b[24:32], n[0])
	return b
}

// decodeHex256 decodes a big-endian hex string of at most 64 digits into a
// left-padded 32-byte array.
func decodeHex256(s string) (*[32]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	if len(s) > 64 {
		str := fmt.Sprintf("hex value %q exceeds 256 bits", s)
		return nil, makeError(ErrInvalidHex, str)
	}
	decoded, err := hex.DecodeString(s)
	if err != nil {
		str := fmt.Sprintf("malformed hex value %q: %v", s, err)
		return nil, makeError(ErrInvalidHex, str)
	}
	var b [32]byte
	copy(b[32-len(decoded):], decoded)
	return &b, nil
}

// selectLimbs returns a when flag is 1 and b when flag is 0 without
// branching on flag.
func selectLimbs(flag uint64, a, b *[fieldLimbs]uint64) [fieldLimbs]uint64 {
	mask := -flag
	return [fieldLimbs]uint64{
		(a[0] & mask) | (b[0] &^ mask),
		(a[1] & mask) | (b[1] &^ mask),
		(a[2] & mask) | (b[2] &^ mask),
		(a[3] & mask) | (b[3] &^ mask),
	}
}

// canonicalize reduces any 256-bit value into [0, p).
//
// Since 2^256 < 2p, at most one subtraction of p is ever needed.  Adding c to
// the value overflows 256 bits exactly when the value is >= p, and in that
// case the truncated sum is the value minus p.
func canonicalize(v [fieldLimbs]uint64) [fieldLimbs]uint64 {
	var t [fieldLimbs]uint64
	var carry uint64
	t[0], carry = bits.Add64(v[0], fieldReductionConst, 0)
	t[1], carry = bits.Add64(v[1], 0, carry)
	t[2], carry = bits.Add64(v[2], 0, carry)
	t[3], carry = bits.Add64(v[3], 0, carry)
	return selectLimbs(carry, &t, &v)
}

// Add returns f + val (mod p).
func (f FieldElement) Add(val FieldElement) FieldElement {
	var s [fieldLimbs]uint64
	var carry uint64
	s[0], carry = bits.Add64(f.n[0], val.n[0], 0)
	s[1], carry = bits.Add64(f.n[1], val.n[1], carry)
	s[2], carry = bits.Add64(f.n[2], val.n[2], carry)
	s[3], carry = bits.Add64(f.n[3], val.n[3], carry)

	// The full sum is s + carry*2^256 < 2p.  When the carry is set, the true
	// result is s + c which cannot overflow again.  Otherwise, s itself may
	// still be >= p, which adding c detects the same way canonicalize does.
	var t [fieldLimbs]uint64
	var overflow uint64
	t[0], overflow = bits.Add64(s[0], fieldReductionConst, 0)
	t[1], overflow = bits.Add64(s[1], 0, overflow)
	t[2], overflow = bits.Add64(s[2], 0, overflow)
	t[3], overflow = bits.Add64(s[3], 0, overflow)
	return FieldElement{n: selectLimbs(carry|overflow, &t, &s)}
}

// Sub returns f - val (mod p).
func (f FieldElement) Sub(val FieldElement) FieldElement {
	var d [fieldLimbs]uint64
	var borrow uint64
	d[0], borrow = bits.Sub64(f.n[0], val.n[0], 0)
	d[1], borrow = bits.Sub64(f.n[1], val.n[1], borrow)
	d[2], borrow = bits.Sub64(f.n[2], val.n[2], borrow)
	d[3], borrow = bits.Sub64(f.n[3], val.n[3], borrow)

	// A borrow means the difference wrapped to f - val + 2^256, so adding p
	// (and discarding the final carry) yields f - val + p which is in range.
	mask := -borrow
	var carry uint64
	d[0], carry = bits.Add64(d[0], fieldPrimeLimbZero&mask, 0)
	d[1], carry = bits.Add64(d[1], fieldPrimeLimbOne&mask, carry)
	d[2], carry = bits.Add64(d[2], fieldPrimeLimbTwo&mask, carry)
	d[3], _ = bits.Add64(d[3], fieldPrimeLimbThree&mask, carry)
	return FieldElement{n: d}
}

// Negate returns -f (mod p).  The negation of zero is zero.
func (f FieldElement) Negate() FieldElement {
	return FieldElement{}.Sub(f)
}

// Mul returns f * val (mod p).  The full 512-bit product is formed before it
// is reduced.
func (f FieldElement) Mul(val FieldElement) FieldElement {
	var w wideInt
	w.mul(&f.n, &val.n)
	return FieldElement{n: w.reduce()}
}

// Square returns f^2 (mod p).
func (f FieldElement) Square() FieldElement {
	return f.Mul(f)
}

// Inverse returns the multiplicative inverse of f, that is, the value f^-1 such
// that f * f^-1 = 1 (mod p).  ErrDivisionByZero is returned when f is zero.
func (f FieldElement) Inverse() (FieldElement, error) {
	if f.IsZero() {
		return FieldElement{}, makeError(ErrDivisionByZero,
			"the zero field element has no multiplicative inverse")
	}

	// Fermat's little theorem states that for a nonzero number a and prime p,
	// a^(p-1) = 1 (mod p).  Since the multiplicative inverse is
	// a*b = 1 (mod p), it follows that b = a^(p-2).
	return f.pow(&fieldPrimeMinusTwo), nil
}

// pow returns f^exp (mod p) using left-to-right binary exponentiation over all
// 256 bits of the exponent.  Every bit costs one squaring and set bits cost an
// additional multiplication.  There is no early exit on leading zero bits.
func (f FieldElement) pow(exp *[fieldLimbs]uint64) FieldElement {
	result := FieldElementFromUint64(1)
	for i := fieldLimbs*64 - 1; i >= 0; i-- {
		result = result.Square()
		if (exp[i/64]>>(uint(i)%64))&1 == 1 {
			result = result.Mul(f)
		}
	}
	return result
}

// IsZero returns whether or not the field element is equal to zero.
func (f FieldElement) IsZero() bool {
	return (f.n[0] | f.n[1] | f.n[2] | f.n[3]) == 0
}

// IsOne returns whether or not the field element is equal to one.
func (f FieldElement) IsOne() bool {
	return (f.n[0]^1)|f.n[1]|f.n[2]|f.n[3] == 0
}

// IsOdd returns whether or not the field element is an odd number.
func (f FieldElement) IsOdd() bool {
	return f.n[0]&1 == 1
}

// Equals returns whether or not the two field elements are the same.
func (f FieldElement) Equals(val FieldElement) bool {
	return f.n == val.n
}

// Limbs returns the canonical value of the field element as little-endian
// 64-bit limbs.
func (f FieldElement) Limbs() [4]uint64 {
	return f.n
}

// Bytes returns the canonical value of the field element as a 32-byte
// big-endian value.
func (f FieldElement) Bytes() [32]byte {
	return bytesFromLimbs(&f.n)
}

// Big returns the canonical value of the field element as a newly allocated
// big integer.
func (f FieldElement) Big() *big.Int {
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// String returns the field element as a 64-digit big-endian hex string.  It is
// intended for debugging and logging.
func (f FieldElement) String() string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}
