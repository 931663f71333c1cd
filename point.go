// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package secp256k1

import "fmt"

// Point is an element of the secp256k1 group in affine coordinates.  A point
// is either the point at infinity, which is the identity element, or an affine
// pair (x, y) of field elements.  There is no way to represent a point with
// only one of its coordinates.
//
// Points are immutable values.  The zero value is the point at infinity.
//
// Affine points created with NewPoint are not checked against the curve
// equation.  Use IsOnCurve to validate points from untrusted sources.
type Point struct {
	x, y   FieldElement
	affine bool
}

// NewPoint returns the affine point (x, y).  The point is not validated.
func NewPoint(x, y FieldElement) Point {
	return Point{x: x, y: y, affine: true}
}

// PointFromCoordinates returns a point from a pair of optional coordinates.
// When both are nil the point at infinity is returned and when both are set
// the affine point (x, y) is returned.  Supplying exactly one coordinate is
// rejected with ErrDegenerateInput.
func PointFromCoordinates(x, y *FieldElement) (Point, error) {
	switch {
	case x == nil && y == nil:
		return Identity(), nil
	case x == nil:
		return Point{}, pointError(ErrDegenerateInput,
			"point has a y coordinate but no x coordinate")
	case y == nil:
		return Point{}, pointError(ErrDegenerateInput,
			"point has an x coordinate but no y coordinate")
	}
	return NewPoint(*x, *y), nil
}

// IsIdentity returns whether or not the point is the point at infinity.
func (p Point) IsIdentity() bool {
	return !p.affine
}

// Coordinates returns the affine coordinates of the point.  The final return
// value is false, and the coordinates are zero, for the point at infinity.
func (p Point) Coordinates() (x, y FieldElement, ok bool) {
	return p.x, p.y, p.affine
}

// Equals returns whether or not the two points are the same group element.
func (p Point) Equals(q Point) bool {
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Equals(q.x) && p.y.Equals(q.y)
}

// Negate returns -p, the point with the same x coordinate and the negated y
// coordinate.  The negation of the point at infinity is itself.
func (p Point) Negate() Point {
	if !p.affine {
		return p
	}
	return NewPoint(p.x, p.y.Negate())
}

// IsOnCurve returns whether or not the point satisfies the secp256k1 curve
// equation y^2 = x^3 + 7.  The point at infinity is considered to be on the
// curve.
func (p Point) IsOnCurve() bool {
	if !p.affine {
		return true
	}
	y2 := p.y.Square()
	x3 := p.x.Square().Mul(p.x)
	return y2.Equals(x3.Add(curveB))
}

// Add returns p + q under the group law.
//
// The cases are, in order:
//
//	∞ + Q = Q and P + ∞ = P
//	P + P = 2P (tangent slope 3x^2 / 2y)
//	P + (-P) = ∞ (same x, different y)
//	P + Q (chord slope (y2 - y1) / (x2 - x1))
//
// ErrInvalidPoint is returned when a slope denominator is zero, which only
// happens when doubling an affine point with y = 0.  No such point lies on
// secp256k1.
func (p Point) Add(q Point) (Point, error) {
	// ∞ + Q = Q and P + ∞ = P.
	if !p.affine {
		return q, nil
	}
	if !q.affine {
		return p, nil
	}

	if p.x.Equals(q.x) {
		// Equal x coordinates with different y coordinates means
		// y2 = -y1, so the points are inverses of each other.
		if !p.y.Equals(q.y) {
			return Identity(), nil
		}
		return p.double()
	}

	// λ = (y2 - y1) / (x2 - x1)
	inv, err := q.x.Sub(p.x).Inverse()
	if err != nil {
		str := fmt.Sprintf("cannot add %v and %v: %v", p, q, err)
		return Point{}, pointError(ErrInvalidPoint, str)
	}
	lambda := q.y.Sub(p.y).Mul(inv)
	return p.chord(q.x, lambda), nil
}

// Double returns 2p.  Doubling the point at infinity yields the point at
// infinity.
func (p Point) Double() (Point, error) {
	if !p.affine {
		return p, nil
	}
	return p.double()
}

// double returns 2p for an affine point p.
func (p Point) double() (Point, error) {
	// λ = 3x^2 / 2y, which is undefined for y = 0.
	if p.y.IsZero() {
		str := fmt.Sprintf("cannot double %v: tangent slope is undefined "+
			"for y = 0", p)
		return Point{}, pointError(ErrInvalidPoint, str)
	}
	twoY := p.y.Add(p.y)
	inv, err := twoY.Inverse()
	if err != nil {
		str := fmt.Sprintf("cannot double %v: %v", p, err)
		return Point{}, pointError(ErrInvalidPoint, str)
	}
	xSquared := p.x.Square()
	threeXSquared := xSquared.Add(xSquared).Add(xSquared)
	lambda := threeXSquared.Mul(inv)
	return p.chord(p.x, lambda), nil
}

// chord returns the third intersection point, reflected over the x axis, of
// the line through p with slope lambda that meets the curve again at x2:
//
//	x3 = λ^2 - x1 - x2
//	y3 = λ(x1 - x3) - y1
func (p Point) chord(x2, lambda FieldElement) Point {
	x3 := lambda.Square().Sub(p.x).Sub(x2)
	y3 := lambda.Mul(p.x.Sub(x3)).Sub(p.y)
	return NewPoint(x3, y3)
}

// ScalarMult returns k*p computed with left-to-right double-and-add over all
// 256 bits of k.  0*p is the point at infinity and 1*p is p.
//
// NOTE: The number of iterations does not depend on k, but the addition is
// only performed for set bits, so the running time still depends on the
// Hamming weight of k.  This must not be used with secret scalars.
func (p Point) ScalarMult(k Scalar) (Point, error) {
	result := Identity()
	for i := scalarBits - 1; i >= 0; i-- {
		var err error
		result, err = result.Double()
		if err != nil {
			return Point{}, err
		}
		if k.Bit(i) == 1 {
			result, err = result.Add(p)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}

// String returns the point as "(x, y)" with hex coordinates, or "infinity" for
// the point at infinity.  It is intended for debugging and logging.
func (p Point) String() string {
	if !p.affine {
		return "infinity"
	}
	return fmt.Sprintf("(%v, %v)", p.x, p.y)
}
