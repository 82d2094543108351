/*
Copyright © 2026 the Planar authors.
This file is part of Planar.

Planar is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Planar is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Planar.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package robust provides exact planar predicates: orientation of a
// point triple, point-on-segment tests, segment intersection
// classification, and convex hull construction. Predicates are
// evaluated with a filtered floating-point determinant that falls back
// to exact rational arithmetic when the result is within the rounding
// error bound, so the reported sign is always correct.
package robust

import (
	"math/big"

	"github.com/ctessum/geom"
)

// Orientation classifies the turn made by an ordered point triple.
type Orientation int

const (
	Clockwise        Orientation = -1
	Collinear        Orientation = 0
	Counterclockwise Orientation = 1
)

func (o Orientation) String() string {
	switch o {
	case Clockwise:
		return "clockwise"
	case Counterclockwise:
		return "counterclockwise"
	default:
		return "collinear"
	}
}

// epsilon is the floating-point unit roundoff (2^-53).
const epsilon = 1.0 / (1 << 53)

// errorBound is Shewchuk's static filter bound for the 2D orientation
// determinant: results with magnitude at least errorBound times the sum
// of the moduli of the two products have a reliable sign.
const errorBound = (3 + 16*epsilon) * epsilon

// Orient returns the orientation of the triple (p, q, r): the sign of
// the cross product (q-p) × (r-p).
func Orient(p, q, r geom.Point) Orientation {
	minuend := (q.X - p.X) * (r.Y - p.Y)
	subtrahend := (q.Y - p.Y) * (r.X - p.X)
	det := minuend - subtrahend

	var moduliSum float64
	switch {
	case minuend > 0:
		if subtrahend <= 0 {
			return sign(det)
		}
		moduliSum = minuend + subtrahend
	case minuend < 0:
		if subtrahend >= 0 {
			return sign(det)
		}
		moduliSum = -minuend - subtrahend
	default:
		return sign(det)
	}
	if det >= errorBound*moduliSum || -det >= errorBound*moduliSum {
		return sign(det)
	}
	return orientExact(p, q, r)
}

func sign(v float64) Orientation {
	switch {
	case v > 0:
		return Counterclockwise
	case v < 0:
		return Clockwise
	default:
		return Collinear
	}
}

// orientExact evaluates the orientation determinant in rational
// arithmetic. float64 coordinates convert to rationals exactly, so the
// result sign is exact.
func orientExact(p, q, r geom.Point) Orientation {
	px, py := new(big.Rat).SetFloat64(p.X), new(big.Rat).SetFloat64(p.Y)
	qx, qy := new(big.Rat).SetFloat64(q.X), new(big.Rat).SetFloat64(q.Y)
	rx, ry := new(big.Rat).SetFloat64(r.X), new(big.Rat).SetFloat64(r.Y)

	lhs := new(big.Rat).Mul(new(big.Rat).Sub(qx, px), new(big.Rat).Sub(ry, py))
	rhs := new(big.Rat).Mul(new(big.Rat).Sub(qy, py), new(big.Rat).Sub(rx, px))
	return Orientation(lhs.Cmp(rhs))
}
