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
	"reflect"
	"testing"
)

func square(x0, y0, size float64) Polygon {
	return PolygonOf(ContourOf(
		XY(x0, y0), XY(x0+size, y0), XY(x0+size, y0+size), XY(x0, y0+size)))
}

func TestSegmentCanonical(t *testing.T) {
	a := SegmentOf(XY(4, 4), XY(0, 0))
	b := SegmentOf(XY(0, 0), XY(4, 4))
	if !a.Equals(b) {
		t.Errorf("want %v to equal %v", a, b)
	}
	if a.Start != XY(0, 0) {
		t.Errorf("want start (0, 0) but have %v", a.Start)
	}
	if _, err := NewSegment(XY(1, 1), XY(1, 1)); err == nil {
		t.Error("want error for coincident endpoints but have nil")
	}
}

func TestMultipointCanonical(t *testing.T) {
	a := MultipointOf(XY(2, 2), XY(0, 0), XY(1, 1))
	b := MultipointOf(XY(0, 0), XY(1, 1), XY(2, 2))
	if !a.Equals(b) {
		t.Errorf("want %v to equal %v", a, b)
	}
	want := []Point{{0, 0}, {1, 1}, {2, 2}}
	if !reflect.DeepEqual(a.Points(), want) {
		t.Errorf("want points %v but have %v", want, a.Points())
	}
	if _, err := NewMultipoint(XY(0, 0), XY(0, 0)); err == nil {
		t.Error("want error for duplicate points but have nil")
	}
	if _, err := NewMultipoint(); err == nil {
		t.Error("want error for empty multipoint but have nil")
	}
}

func TestContourCanonical(t *testing.T) {
	a := ContourOf(XY(0, 0), XY(4, 0), XY(4, 4))
	b := ContourOf(XY(4, 4), XY(4, 0), XY(0, 0)) // reversed traversal
	c := ContourOf(XY(4, 0), XY(4, 4), XY(0, 0)) // rotated start
	if !a.Equals(b) || !a.Equals(c) {
		t.Errorf("want one canonical contour but have %v, %v, %v", a, b, c)
	}
	if a.Vertices()[0] != XY(0, 0) {
		t.Errorf("want canonical first vertex (0, 0) but have %v", a.Vertices()[0])
	}
	if a.Area() <= 0 {
		t.Errorf("want positive area but have %g", a.Area())
	}
}

func TestContourValidation(t *testing.T) {
	if _, err := NewContour(XY(0, 0), XY(1, 1)); err == nil {
		t.Error("want error for 2 vertices but have nil")
	}
	if _, err := NewContour(XY(0, 0), XY(0, 0), XY(1, 1)); err == nil {
		t.Error("want error for repeated vertex but have nil")
	}
	// Bowtie: edges (0,0)-(2,2) and (2,0)-(0,2) cross at (1,1).
	if _, err := NewContour(XY(0, 0), XY(2, 2), XY(2, 0), XY(0, 2)); err == nil {
		t.Error("want error for self-intersection but have nil")
	}
	if _, err := NewContour(XY(0, 0), XY(1, 1), XY(2, 2)); err == nil {
		t.Error("want error for zero area but have nil")
	}
}

func TestMultisegmentValidation(t *testing.T) {
	if _, err := NewMultisegment(
		SegmentOf(XY(0, 0), XY(2, 2)),
		SegmentOf(XY(0, 2), XY(2, 0))); err == nil {
		t.Error("want error for crossing segments but have nil")
	}
	if _, err := NewMultisegment(
		SegmentOf(XY(0, 0), XY(2, 0)),
		SegmentOf(XY(1, 0), XY(3, 0))); err == nil {
		t.Error("want error for overlapping segments but have nil")
	}
	// Touching at an endpoint is allowed.
	ms, err := NewMultisegment(
		SegmentOf(XY(0, 0), XY(1, 1)),
		SegmentOf(XY(1, 1), XY(2, 0)))
	if err != nil {
		t.Fatal(err)
	}
	if ms.Length() != 2*math.Sqrt2 {
		t.Errorf("want length %g but have %g", 2*math.Sqrt2, ms.Length())
	}
}

func TestPolygonValidation(t *testing.T) {
	border := ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4))
	if _, err := NewPolygon(border, ContourOf(XY(5, 5), XY(6, 5), XY(6, 6))); err == nil {
		t.Error("want error for hole outside border but have nil")
	}
	if _, err := NewPolygon(border, ContourOf(XY(2, 2), XY(6, 2), XY(6, 3))); err == nil {
		t.Error("want error for hole piercing border but have nil")
	}
	if _, err := NewPolygon(border,
		ContourOf(XY(1, 1), XY(2, 1), XY(2, 2), XY(1, 2)),
		ContourOf(XY(1.5, 1.5), XY(2.5, 1.5), XY(2.5, 2.5), XY(1.5, 2.5))); err == nil {
		t.Error("want error for overlapping holes but have nil")
	}
}

func TestPolygonLocate(t *testing.T) {
	p := PolygonOf(
		ContourOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4)),
		ContourOf(XY(1, 1), XY(3, 1), XY(3, 3), XY(1, 3)))
	cases := []struct {
		pt   Point
		want Location
	}{
		{XY(-1, -1), Exterior},
		{XY(0, 0), Boundary},
		{XY(2, 0), Boundary},
		{XY(0.5, 0.5), Interior},
		{XY(1, 2), Boundary}, // hole edge
		{XY(2, 2), Exterior}, // inside hole
	}
	for _, c := range cases {
		if have := p.Locate(c.pt); have != c.want {
			t.Errorf("Locate(%v): want %v but have %v", c.pt, c.want, have)
		}
	}
	if a := p.Area(); a != 12 {
		t.Errorf("want area 12 but have %g", a)
	}
	if l := p.Perimeter(); l != 24 {
		t.Errorf("want perimeter 24 but have %g", l)
	}
}

func TestIndexDoesNotChangeResults(t *testing.T) {
	p := square(0, 0, 4)
	pts := []Point{XY(-1, 0), XY(0, 0), XY(2, 2), XY(4, 2), XY(5, 5)}
	var before []Location
	for _, q := range pts {
		before = append(before, p.Locate(q))
	}
	p.BuildIndex()
	p.BuildIndex() // idempotent
	for i, q := range pts {
		if have := p.Locate(q); have != before[i] {
			t.Errorf("Locate(%v) after BuildIndex: want %v but have %v", q, before[i], have)
		}
	}
}

func TestMixValidation(t *testing.T) {
	sq := square(0, 0, 4)
	if _, err := NewMix(XY(9, 9), Nowhere, Nowhere); err == nil {
		t.Error("want error for single-part mix but have nil")
	}
	if _, err := NewMix(XY(2, 2), Nowhere, sq); err == nil {
		t.Error("want error for point inside shaped part but have nil")
	}
	if _, err := NewMix(Nowhere, SegmentOf(XY(1, 1), XY(3, 3)), sq); err == nil {
		t.Error("want error for segment inside shaped part but have nil")
	}
	m, err := NewMix(XY(9, 9), SegmentOf(XY(5, 0), XY(7, 0)), sq)
	if err != nil {
		t.Fatal(err)
	}
	if m.Locate(XY(9, 9)) != Boundary || m.Locate(XY(2, 2)) != Interior {
		t.Error("mix locate does not agree with its parts")
	}
}

func TestSquareMeasures(t *testing.T) {
	sq := square(0, 0, 4)
	if sq.Area() != 16 {
		t.Errorf("want area 16 but have %g", sq.Area())
	}
	if !sq.Contains(XY(0, 0)) {
		t.Error("want corner (0, 0) to be contained")
	}
	c, err := Centroid(sq)
	if err != nil {
		t.Fatal(err)
	}
	if c != XY(2, 2) {
		t.Errorf("want centroid (2, 2) but have %v", c)
	}
}

func TestConvexHull(t *testing.T) {
	g := MultipointOf(XY(0, 0), XY(4, 0), XY(4, 4), XY(0, 4), XY(2, 2))
	hull := ConvexHull(g)
	if !hull.Equals(square(0, 0, 4)) {
		t.Errorf("want hull %v but have %v", square(0, 0, 4), hull)
	}
	if h := ConvexHull(MultipointOf(XY(0, 0), XY(1, 1), XY(2, 2))); h.Kind() != KindSegment {
		t.Errorf("want collinear hull to be a segment but have %v", h.Kind())
	}
	if h := ConvexHull(XY(3, 3)); !h.Equals(XY(3, 3)) {
		t.Errorf("want point hull %v but have %v", XY(3, 3), h)
	}
}
