// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "math/big"

// The secp256k1 curve is y^2 = x^3 + ax + b over the field with a = 0 and
// b = 7.  See https://www.secg.org/sec2-v2.pdf for the parameters.
var (
	// curveB is the b coefficient of the curve equation.  The a coefficient
	// is zero, so the ax term drops out of every formula.
	curveB = FieldElementFromUint64(7)

	// generatorPoint is the base point G of the group.
	generatorPoint = Point{
		x: FieldElement{n: [fieldLimbs]uint64{
			0x59f2815b16f81798, 0x029bfcdb2dce28d9,
			0x55a06295ce870b07, 0x79be667ef9dcbbac,
		}},
		y: FieldElement{n: [fieldLimbs]uint64{
			0x9c47d08ffb10d4b8, 0xfd17b448a6855419,
			0x5da4fbfc0e1108a8, 0x483ada7726a3c465,
		}},
		affine: true,
	}
)

// Prime returns a newly allocated big integer set to the field prime
// p = 2^256 - 2^32 - 977.
func Prime() *big.Int {
	p := new(big.Int).Lsh(big.NewInt(1), 256)
	return p.Sub(p, big.NewInt(fieldReductionConst))
}

// Identity returns the point at infinity, which is the identity element of the
// group.
func Identity() Point {
	return Point{}
}

// Generator returns the secp256k1 base point G.
func Generator() Point {
	return generatorPoint
}
