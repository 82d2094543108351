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

package triangulate

import (
	"math"
	"testing"

	"github.com/ctessum/geom"
)

func triArea(t [3]geom.Point) float64 {
	return math.Abs((t[1].X-t[0].X)*(t[2].Y-t[0].Y)-(t[2].X-t[0].X)*(t[1].Y-t[0].Y)) / 2
}

func totalArea(tr *Triangulation) float64 {
	var sum float64
	for {
		tri, ok := tr.Next()
		if !ok {
			break
		}
		sum += triArea(tri)
	}
	return sum
}

func TestSquare(t *testing.T) {
	border := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	tr, err := New(border)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Len() != 2 {
		t.Errorf("triangle count: want 2 but have %d", tr.Len())
	}
	if a := totalArea(tr); math.Abs(a-16) > 1e-9 {
		t.Errorf("total area: want 16 but have %g", a)
	}
}

func TestSquareWithHole(t *testing.T) {
	border := []geom.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	hole := []geom.Point{{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 1}}
	tr, err := New(border, hole)
	if err != nil {
		t.Fatal(err)
	}
	if a := totalArea(tr); math.Abs(a-12) > 1e-9 {
		t.Errorf("total area: want 12 but have %g", a)
	}
	for _, tri := range tr.tris {
		c := geom.Point{
			X: (tri[0].X + tri[1].X + tri[2].X) / 3,
			Y: (tri[0].Y + tri[1].Y + tri[2].Y) / 3,
		}
		if inRing(hole, c) {
			t.Errorf("triangle centroid %v lies inside the hole", c)
		}
	}
}

func TestNextReset(t *testing.T) {
	border := []geom.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}}
	tr, err := New(border)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tr.Next(); !ok {
		t.Fatal("want one triangle")
	}
	if _, ok := tr.Next(); ok {
		t.Error("iterator should be exhausted")
	}
	tr.Reset()
	if _, ok := tr.Next(); !ok {
		t.Error("iterator should restart after Reset")
	}
}

func TestDegenerate(t *testing.T) {
	if _, err := New([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}); err == nil {
		t.Error("two vertices: want an error but have nil")
	}
	collinear := []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}}
	if _, err := New(collinear); err == nil {
		t.Error("collinear ring: want an error but have nil")
	}
}
