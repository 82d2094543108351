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

import (
	"math"
	"testing"
)

func TestBooleanIdentities(t *testing.T) {
	sq := square(0, 0, 4)
	if u, err := Union(sq, Nowhere); err != nil || !u.Equals(sq) {
		t.Errorf("want sq ∪ Empty == sq but have %v (err %v)", u, err)
	}
	if i, err := Intersection(sq, Nowhere); err != nil || i.Kind() != KindEmpty {
		t.Errorf("want sq ∩ Empty == Empty but have %v (err %v)", i, err)
	}
	if d, err := Difference(sq, Nowhere); err != nil || !d.Equals(sq) {
		t.Errorf("want sq − Empty == sq but have %v (err %v)", d, err)
	}
	if x, err := SymmetricDifference(sq, Nowhere); err != nil || !x.Equals(sq) {
		t.Errorf("want sq ⊕ Empty == sq but have %v (err %v)", x, err)
	}
}

func TestBooleanIdempotence(t *testing.T) {
	sq := square(0, 0, 4)
	if u, err := Union(sq, sq); err != nil || !u.Equals(sq) {
		t.Errorf("want sq ∪ sq == sq but have %v (err %v)", u, err)
	}
	if i, err := Intersection(sq, sq); err != nil || !i.Equals(sq) {
		t.Errorf("want sq ∩ sq == sq but have %v (err %v)", i, err)
	}
	if d, err := Difference(sq, sq); err != nil || d.Kind() != KindEmpty {
		t.Errorf("want sq − sq == Empty but have %v (err %v)", d, err)
	}
	if x, err := SymmetricDifference(sq, sq); err != nil || x.Kind() != KindEmpty {
		t.Errorf("want sq ⊕ sq == Empty but have %v (err %v)", x, err)
	}
}

func TestTouchingSquaresIntersection(t *testing.T) {
	a, b := square(0, 0, 4), square(4, 0, 4)
	got, err := Intersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := SegmentOf(XY(4, 0), XY(4, 4))
	if !got.Equals(want) {
		t.Errorf("want shared edge %v but have %v", want, got)
	}
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Kind() != KindPolygon {
		t.Fatalf("want merged polygon but have %v", u.Kind())
	}
	if area := Area(u); area != 32 {
		t.Errorf("want merged area 32 but have %g", area)
	}
}

func TestNestedSquares(t *testing.T) {
	outer, inner := square(0, 0, 4), square(1, 1, 2)
	d, err := Difference(outer, inner)
	if err != nil {
		t.Fatal(err)
	}
	p, ok := d.(Polygon)
	if !ok {
		t.Fatalf("want a polygon but have %v", d.Kind())
	}
	if len(p.Holes()) != 1 {
		t.Fatalf("want 1 hole but have %d", len(p.Holes()))
	}
	if a := p.Area(); a != 12 {
		t.Errorf("want area 12 but have %g", a)
	}
	if i, err := Intersection(outer, inner); err != nil || !i.Equals(inner) {
		t.Errorf("want intersection == inner but have %v (err %v)", i, err)
	}
	if u, err := Union(outer, inner); err != nil || !u.Equals(outer) {
		t.Errorf("want union == outer but have %v (err %v)", u, err)
	}
}

func TestHoleFillerBooleans(t *testing.T) {
	annulus := PolygonOf(
		ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4)),
		ContourOf(XY(1, 1), XY(3, 1), XY(3, 3), XY(1, 3)))
	filler := square(1, 1, 2)

	u, err := Union(annulus, filler)
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equals(square(0, 0, 4)) {
		t.Errorf("want union to fill the hole but have %v", u)
	}

	i, err := Intersection(annulus, filler)
	if err != nil {
		t.Fatal(err)
	}
	ring := ContourOf(XY(1, 1), XY(3, 1), XY(3, 3), XY(1, 3))
	if !i.Equals(ring) {
		t.Errorf("want intersection == shared ring %v but have %v", ring, i)
	}

	if d, err := Difference(annulus, filler); err != nil || !d.Equals(annulus) {
		t.Errorf("want annulus − filler == annulus but have %v (err %v)", d, err)
	}
	if x, err := SymmetricDifference(annulus, filler); err != nil || !x.Equals(square(0, 0, 4)) {
		t.Errorf("want xor to fill the hole but have %v (err %v)", x, err)
	}
}

func TestSameBorderHoledPolygon(t *testing.T) {
	sq := square(0, 0, 4)
	holed := PolygonOf(
		ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4)),
		ContourOf(XY(1, 1), XY(3, 1), XY(3, 3), XY(1, 3)))

	if u, err := Union(sq, holed); err != nil || !u.Equals(sq) {
		t.Errorf("want union == square but have %v (err %v)", u, err)
	}
	if i, err := Intersection(sq, holed); err != nil || !i.Equals(holed) {
		t.Errorf("want intersection == holed polygon but have %v (err %v)", i, err)
	}
	d, err := Difference(sq, holed)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equals(square(1, 1, 2)) {
		t.Errorf("want difference == hole filler but have %v", d)
	}
}

func TestOverlappingSquares(t *testing.T) {
	a, b := square(0, 0, 4), square(2, 2, 4)
	i, err := Intersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !i.Equals(square(2, 2, 2)) {
		t.Errorf("want intersection %v but have %v", square(2, 2, 2), i)
	}
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if area := Area(u); area != 28 {
		t.Errorf("want union area 28 but have %g", area)
	}
	x, err := SymmetricDifference(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if area := Area(x); area != 24 {
		t.Errorf("want xor area 24 but have %g", area)
	}
}

func TestCrossingSegmentsIntersection(t *testing.T) {
	a := SegmentOf(XY(0, 0), XY(2, 2))
	b := SegmentOf(XY(0, 2), XY(2, 0))
	got, err := Intersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !got.Equals(XY(1, 1)) {
		t.Errorf("want crossing point (1, 1) but have %v", got)
	}
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if u.Kind() != KindMultisegment {
		t.Errorf("want multisegment union but have %v", u.Kind())
	}
}

func TestCollinearSegments(t *testing.T) {
	a := SegmentOf(XY(0, 0), XY(2, 0))
	b := SegmentOf(XY(1, 0), XY(3, 0))
	u, err := Union(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equals(SegmentOf(XY(0, 0), XY(3, 0))) {
		t.Errorf("want merged segment (0,0)-(3,0) but have %v", u)
	}
	i, err := Intersection(a, b)
	if err != nil {
		t.Fatal(err)
	}
	if !i.Equals(SegmentOf(XY(1, 0), XY(2, 0))) {
		t.Errorf("want shared span (1,0)-(2,0) but have %v", i)
	}
	x, err := SymmetricDifference(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := MultisegmentOf(SegmentOf(XY(0, 0), XY(1, 0)), SegmentOf(XY(2, 0), XY(3, 0)))
	if !x.Equals(want) {
		t.Errorf("want %v but have %v", want, x)
	}
}

func TestMixedDimensionResults(t *testing.T) {
	sq := square(0, 0, 4)
	seg := SegmentOf(XY(6, 0), XY(8, 0))
	u, err := Union(sq, seg)
	if err != nil {
		t.Fatal(err)
	}
	m, ok := u.(Mix)
	if !ok {
		t.Fatalf("want a mix but have %v", u.Kind())
	}
	if !m.Shaped().Equals(sq) || !m.Linear().Equals(seg) {
		t.Errorf("want mix of %v and %v but have %v", sq, seg, m)
	}
	// Removing the shaped part leaves the segment.
	d, err := Difference(u, sq)
	if err != nil {
		t.Fatal(err)
	}
	if !d.Equals(seg) {
		t.Errorf("want %v but have %v", seg, d)
	}
}

func TestSegmentAbsorbedByUnion(t *testing.T) {
	sq := square(0, 0, 4)
	seg := SegmentOf(XY(1, 1), XY(3, 3))
	u, err := Union(sq, seg)
	if err != nil {
		t.Fatal(err)
	}
	if !u.Equals(sq) {
		t.Errorf("want interior segment absorbed, union == square, but have %v", u)
	}
	d, err := Difference(seg, sq)
	if err != nil {
		t.Fatal(err)
	}
	if d.Kind() != KindEmpty {
		t.Errorf("want interior segment minus square to be Empty but have %v", d)
	}
}

func TestUnionCommutes(t *testing.T) {
	gs := []Geometry{
		square(0, 0, 4),
		square(2, 2, 4),
		SegmentOf(XY(-2, 0), XY(-1, 0)),
		MultipointOf(XY(9, 9), XY(10, 10)),
	}
	for i, a := range gs {
		for _, b := range gs[i+1:] {
			ab, err := Union(a, b)
			if err != nil {
				t.Fatal(err)
			}
			ba, err := Union(b, a)
			if err != nil {
				t.Fatal(err)
			}
			if !ab.Equals(ba) {
				t.Errorf("union not commutative: %v vs %v", ab, ba)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	cases := []struct {
		name string
		a, b Geometry
		want float64
	}{
		{"separated squares", square(0, 0, 4), square(6, 0, 4), 2},
		{"touching squares", square(0, 0, 4), square(4, 0, 4), 0},
		{"point to square", XY(7, 2), square(0, 0, 4), 3},
		{"point to point", XY(0, 0), XY(3, 4), 5},
		{"segment to segment", SegmentOf(XY(0, 0), XY(0, 4)), SegmentOf(XY(2, 0), XY(2, 4)), 2},
	}
	for _, c := range cases {
		if have := Distance(c.a, c.b); have != c.want {
			t.Errorf("%s: want %g but have %g", c.name, c.want, have)
		}
	}
	if d := Distance(Nowhere, square(0, 0, 4)); !math.IsInf(d, 1) {
		t.Errorf("want +Inf for empty operand but have %g", d)
	}
}
