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

import "testing"

func TestRelate(t *testing.T) {
	sq := square(0, 0, 4)
	cases := []struct {
		name string
		a, b Geometry
		want Relation
	}{
		{"equal squares", sq, square(0, 0, 4), Equal},
		{"touching squares", sq, square(4, 0, 4), Touch},
		{"corner touching squares", sq, square(4, 4, 4), Touch},
		{"overlapping squares", sq, square(2, 2, 4), Overlap},
		{"disjoint squares", sq, square(6, 0, 4), Disjoint},
		{"outer encloses inner", sq, square(1, 1, 2), Encloses},
		{"inner within outer", square(1, 1, 2), sq, Within},
		{"half shares boundary", sq, PolygonOf(ContourOf(XY(0, 0), XY(2, 0), XY(2, 4), XY(0, 4))), Cover},
		{"hole filler touches ring", PolygonOf(
			ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4)),
			ContourOf(XY(1, 1), XY(3, 1), XY(3, 3), XY(1, 3))), square(1, 1, 2), Touch},
		{"covers same-border holed polygon", sq, PolygonOf(
			ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4)),
			ContourOf(XY(1, 1), XY(3, 1), XY(3, 3), XY(1, 3))), Cover},
		{"point inside", sq, XY(2, 2), Encloses},
		{"point on boundary", sq, XY(0, 2), Composite},
		{"point outside", sq, XY(5, 5), Disjoint},
		{"contour is polygon boundary", ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4)), sq, Component},
		{"segment on boundary", SegmentOf(XY(1, 0), XY(3, 0)), sq, Component},
		{"segment inside", SegmentOf(XY(1, 1), XY(3, 3)), sq, Within},
		{"segment crossing", SegmentOf(XY(2, 2), XY(6, 2)), sq, Cross},
		{"segments crossing", SegmentOf(XY(0, 0), XY(2, 2)), SegmentOf(XY(0, 2), XY(2, 0)), Cross},
		{"segments touching", SegmentOf(XY(0, 0), XY(1, 1)), SegmentOf(XY(1, 1), XY(2, 0)), Touch},
		{"collinear overlap", SegmentOf(XY(0, 0), XY(2, 0)), SegmentOf(XY(1, 0), XY(3, 0)), Overlap},
		{"sub-segment", SegmentOf(XY(1, 0), XY(2, 0)), SegmentOf(XY(0, 0), XY(4, 0)), Component},
		{"shared points", MultipointOf(XY(0, 0), XY(1, 1)), MultipointOf(XY(1, 1), XY(2, 2)), Overlap},
		{"point subset", MultipointOf(XY(0, 0), XY(1, 1), XY(2, 2)), XY(1, 1), Composite},
		{"empty operand", sq, Nowhere, Disjoint},
		{"both empty", Nowhere, Nowhere, Equal},
	}
	for _, c := range cases {
		if have := Relate(c.a, c.b); have != c.want {
			t.Errorf("%s: want %v but have %v", c.name, c.want, have)
		}
		// The swapped relation must be the exact complement.
		if have := Relate(c.b, c.a); have != c.want.Complement() {
			t.Errorf("%s swapped: want %v but have %v", c.name, c.want.Complement(), have)
		}
	}
}

func TestRelateMultipointMixedPlacement(t *testing.T) {
	sq := square(0, 0, 4)
	cases := []struct {
		name string
		mp   Multipoint
		want Relation
	}{
		{"all interior", MultipointOf(XY(1, 1), XY(2, 2)), Within},
		{"interior and boundary", MultipointOf(XY(1, 1), XY(0, 2)), Enclosed},
		{"all boundary", MultipointOf(XY(0, 0), XY(0, 2)), Component},
		{"boundary and outside", MultipointOf(XY(0, 2), XY(9, 9)), Touch},
		{"interior and outside", MultipointOf(XY(1, 1), XY(9, 9)), Cross},
		{"all outside", MultipointOf(XY(8, 8), XY(9, 9)), Disjoint},
	}
	for _, c := range cases {
		if have := Relate(c.mp, sq); have != c.want {
			t.Errorf("%s: want %v but have %v", c.name, c.want, have)
		}
	}
}

func TestSubsetOf(t *testing.T) {
	sq := square(0, 0, 4)
	if !SubsetOf(square(1, 1, 2), sq) {
		t.Error("want inner square to be subset of outer")
	}
	if SubsetOf(sq, square(1, 1, 2)) {
		t.Error("want outer square not to be subset of inner")
	}
	if !SupersetOf(sq, XY(2, 2)) {
		t.Error("want square to be superset of interior point")
	}
	if !SubsetOf(Nowhere, sq) {
		t.Error("want Empty to be subset of anything")
	}
	if !IsDisjoint(sq, square(6, 0, 4)) {
		t.Error("want separated squares to be disjoint")
	}
}
