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
	"sort"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/op"
)

// clipShaped runs the polygon clipping kernel on the shaped parts of
// the two operands and normalizes the output rings back into
// canonical polygons. Empty sides are resolved without the kernel.
func clipShaped(operation op.Op, a, b []Polygon) ([]Polygon, error) {
	switch {
	case len(a) == 0 && len(b) == 0:
		return nil, nil
	case len(b) == 0:
		if operation == op.INTERSECTION {
			return nil, nil
		}
		return a, nil
	case len(a) == 0:
		if operation == op.INTERSECTION || operation == op.DIFFERENCE {
			return nil, nil
		}
		return b, nil
	case polysEqual(a, b):
		// The clipping kernel handles identical inputs poorly; they
		// resolve without it.
		if operation == op.UNION || operation == op.INTERSECTION {
			return a, nil
		}
		return nil, nil
	}
	subject, clipping := polysToGeom(a), polysToGeom(b)
	var res geom.Polygonal
	switch operation {
	case op.UNION:
		res = subject.Union(clipping)
	case op.INTERSECTION:
		res = subject.Intersection(clipping)
	case op.DIFFERENCE:
		res = subject.Difference(clipping)
	default:
		res = subject.XOr(clipping)
	}
	return normalizeRings(res)
}

func polysEqual(a, b []Polygon) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

// polysToGeom flattens polygons into a single multi-contour kernel
// polygon, holes wound opposite to borders.
func polysToGeom(ps []Polygon) geom.Polygon {
	var out geom.Polygon
	for _, p := range ps {
		out = append(out, p.ToGeom().(geom.Polygon)...)
	}
	return out
}

// normalizeRings turns raw kernel output into canonical polygons:
// degenerate rings are dropped, collinear vertices removed, and each
// remaining ring classified as border or hole by even-odd containment
// depth.
func normalizeRings(g geom.Geom) ([]Polygon, error) {
	var raw [][]Point
	switch t := g.(type) {
	case geom.Polygon:
		raw = ringsOf(t)
	case geom.MultiPolygon:
		for _, p := range t {
			raw = append(raw, ringsOf(p)...)
		}
	case nil:
		return nil, nil
	default:
		return nil, geometryErrorf(KindPolygon, "unexpected kernel output %T", g)
	}
	var rings [][]Point
	for _, r := range raw {
		if cleaned := cleanRing(r); cleaned != nil {
			rings = append(rings, cleaned)
		}
	}
	if len(rings) == 0 {
		return nil, nil
	}
	depth := make([]int, len(rings))
	parent := make([]int, len(rings))
	for i := range rings {
		parent[i] = -1
		for j := range rings {
			if i == j {
				continue
			}
			if ringEnclosesRing(rings[j], rings[i]) {
				depth[i]++
				if parent[i] < 0 || ringEnclosesRing(rings[parent[i]], rings[j]) {
					parent[i] = j
				}
			}
		}
	}
	polyOf := make(map[int]*Polygon)
	var order []int
	for i, r := range rings {
		if depth[i]%2 != 0 {
			continue
		}
		c, err := NewContour(r...)
		if err != nil {
			return nil, err
		}
		polyOf[i] = &Polygon{border: c, idx: &edgeIndex{}}
		order = append(order, i)
	}
	for i, r := range rings {
		if depth[i]%2 == 0 {
			continue
		}
		c, err := NewContour(r...)
		if err != nil {
			return nil, err
		}
		p, ok := polyOf[parent[i]]
		if !ok {
			return nil, geometryErrorf(KindPolygon, "hole ring without a border ring")
		}
		p.holes = append(p.holes, c)
	}
	out := make([]Polygon, 0, len(order))
	for _, i := range order {
		p := *polyOf[i]
		sort.Slice(p.holes, func(x, y int) bool {
			return pointLess(p.holes[x].vertices[0], p.holes[y].vertices[0])
		})
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		return pointLess(out[i].border.vertices[0], out[j].border.vertices[0])
	})
	return out, nil
}

func ringsOf(p geom.Polygon) [][]Point {
	out := make([][]Point, 0, len(p))
	for _, r := range p {
		ring := make([]Point, 0, len(r))
		for _, v := range r {
			ring = append(ring, Point{X: v.X, Y: v.Y})
		}
		out = append(out, ring)
	}
	return out
}

// cleanRing strips the duplicate closing vertex, repeated vertices,
// and collinear interior vertices, returning nil for rings that
// degenerate to zero area.
func cleanRing(r []Point) []Point {
	for len(r) > 1 && r[0] == r[len(r)-1] {
		r = r[:len(r)-1]
	}
	out := make([]Point, 0, len(r))
	for _, v := range r {
		if len(out) == 0 || v != out[len(out)-1] {
			out = append(out, v)
		}
	}
	for {
		n := len(out)
		if n < 3 {
			return nil
		}
		dropped := false
		for i := 0; i < len(out); i++ {
			prev := out[(i+len(out)-1)%len(out)]
			next := out[(i+1)%len(out)]
			if prev == next || Orient(prev, out[i], next) == Collinear {
				out = append(out[:i], out[i+1:]...)
				dropped = true
				break
			}
		}
		if !dropped {
			break
		}
	}
	if len(out) < 3 || signedArea(out) == 0 {
		return nil
	}
	return out
}

// ringEnclosesRing reports whether inner lies inside outer, testing
// vertices until one is clear of outer's boundary.
func ringEnclosesRing(outer, inner []Point) bool {
	for _, v := range inner {
		on := false
		for _, e := range ringEdges(outer) {
			if e.Locate(v) != Exterior {
				on = true
				break
			}
		}
		if !on {
			return ringContains(outer, v)
		}
	}
	return false
}
