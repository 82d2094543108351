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

package planar

// Relation classifies how the point set of one geometry stands to the
// point set of another. Relate(A, B) is read with A as subject:
// Encloses means A strictly contains B, Within means A lies strictly
// inside B. Relate(B, A) is always Relate(A, B).Complement().
type Relation int

const (
	// Disjoint: the point sets have no common point.
	Disjoint Relation = iota
	// Touch: the point sets meet, but their interiors do not.
	Touch
	// Cross: the interiors meet, neither contains the other, and the
	// common point set has strictly lower dimension than the higher-
	// dimensional operand.
	Cross
	// Overlap: the interiors meet in a region of the operands' own
	// dimension, and neither operand contains the other.
	Overlap
	// Cover: the subject contains the other, which touches the
	// subject's boundary.
	Cover
	// Encloses: the subject strictly contains the other, with no
	// contact between the other and the subject's boundary.
	Encloses
	// Composite: the other is a same-dimension part of the subject
	// (a sub-segment, a member polygon, a subset of points, or a piece
	// of the subject's boundary).
	Composite
	// Equal: identical point sets.
	Equal
	// Component: inverse of Composite.
	Component
	// Enclosed: inverse of Cover.
	Enclosed
	// Within: inverse of Encloses.
	Within
)

// Complement returns the relation seen from the other operand:
// Relate(B, A) == Relate(A, B).Complement(). Encloses pairs with
// Within, Cover with Enclosed, Composite with Component; the
// remaining relations are their own complement.
func (r Relation) Complement() Relation {
	switch r {
	case Encloses:
		return Within
	case Within:
		return Encloses
	case Cover:
		return Enclosed
	case Enclosed:
		return Cover
	case Composite:
		return Component
	case Component:
		return Composite
	}
	return r
}

func (r Relation) String() string {
	switch r {
	case Disjoint:
		return "disjoint"
	case Touch:
		return "touch"
	case Cross:
		return "cross"
	case Overlap:
		return "overlap"
	case Cover:
		return "cover"
	case Encloses:
		return "encloses"
	case Composite:
		return "composite"
	case Equal:
		return "equal"
	case Component:
		return "component"
	case Enclosed:
		return "enclosed"
	case Within:
		return "within"
	}
	return "unknown"
}

// SubsetOf reports whether every point of a belongs to b.
func SubsetOf(a, b Geometry) bool {
	switch Relate(a, b) {
	case Equal, Component, Enclosed, Within:
		return true
	}
	return a.Kind() == KindEmpty
}

// SupersetOf reports whether every point of b belongs to a.
func SupersetOf(a, b Geometry) bool {
	return SubsetOf(b, a)
}

// IsDisjoint reports whether a and b have no common point.
func IsDisjoint(a, b Geometry) bool {
	return Relate(a, b) == Disjoint
}
