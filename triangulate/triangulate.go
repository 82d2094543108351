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

// Package triangulate decomposes simple polygons, with or without
// holes, into triangles by ear clipping. Holes are first joined to
// the outer ring with bridge edges, then ears are clipped from the
// resulting single ring.
package triangulate

import (
	"errors"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/planar/robust"
)

var errDegenerate = errors.New("triangulate: degenerate polygon")

// Triangulation iterates over the triangles of one polygon. It can be
// rewound with Reset and walked again.
type Triangulation struct {
	tris [][3]geom.Point
	next int
}

// New triangulates the polygon with the given outer ring and holes.
// The outer ring must be counterclockwise and the holes clockwise,
// without duplicate closing vertices.
func New(border []geom.Point, holes ...[]geom.Point) (*Triangulation, error) {
	if len(border) < 3 {
		return nil, errDegenerate
	}
	ring := append([]geom.Point{}, border...)
	for _, h := range holes {
		var err error
		ring, err = splice(ring, h)
		if err != nil {
			return nil, err
		}
	}
	tris := earClip(ring)
	if tris == nil {
		return nil, errDegenerate
	}
	return &Triangulation{tris: tris}, nil
}

// Len returns the number of triangles.
func (t *Triangulation) Len() int { return len(t.tris) }

// Next returns the next triangle, and false once all triangles have
// been returned.
func (t *Triangulation) Next() ([3]geom.Point, bool) {
	if t.next >= len(t.tris) {
		return [3]geom.Point{}, false
	}
	tri := t.tris[t.next]
	t.next++
	return tri, true
}

// Reset rewinds the iteration to the first triangle.
func (t *Triangulation) Reset() { t.next = 0 }

// splice joins a clockwise hole into the ring with a two-way bridge
// edge, producing one convertible ring with duplicated bridge
// vertices.
func splice(ring []geom.Point, hole []geom.Point) ([]geom.Point, error) {
	if len(hole) < 3 {
		return nil, errDegenerate
	}
	for hi, hv := range hole {
		for ri, rv := range ring {
			if !bridgeClear(hv, rv, ring, hole) {
				continue
			}
			// ring[:ri+1], hole[hi:], hole[:hi+1], ring[ri:]
			out := make([]geom.Point, 0, len(ring)+len(hole)+2)
			out = append(out, ring[:ri+1]...)
			out = append(out, hole[hi:]...)
			out = append(out, hole[:hi+1]...)
			out = append(out, ring[ri:]...)
			return out, nil
		}
	}
	return nil, errDegenerate
}

// bridgeClear reports whether the candidate bridge from hole vertex a
// to ring vertex b crosses no existing edge.
func bridgeClear(a, b geom.Point, ring, hole []geom.Point) bool {
	if a == b {
		return false
	}
	blocked := func(loop []geom.Point) bool {
		n := len(loop)
		for i, u := range loop {
			v := loop[(i+1)%n]
			k, p, _ := robust.SegmentIntersection(a, b, u, v)
			switch k {
			case robust.OverlapIntersection:
				return true
			case robust.PointIntersection:
				if p != a && p != b {
					return true
				}
			}
		}
		return false
	}
	if blocked(ring) || blocked(hole) {
		return false
	}
	// The bridge midpoint must lie inside the region: between the
	// outer ring and outside the hole.
	mid := geom.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
	return inRing(ring, mid) && !inRing(hole, mid)
}

func inRing(loop []geom.Point, q geom.Point) bool {
	inside := false
	n := len(loop)
	for i, u := range loop {
		v := loop[(i+1)%n]
		if (u.Y > q.Y) != (v.Y > q.Y) {
			x := u.X + (q.Y-u.Y)/(v.Y-u.Y)*(v.X-u.X)
			if q.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func earClip(ring []geom.Point) [][3]geom.Point {
	vs := append([]geom.Point{}, ring...)
	var tris [][3]geom.Point
	for len(vs) > 3 {
		clipped := false
		for i := range vs {
			p := vs[(i+len(vs)-1)%len(vs)]
			c := vs[i]
			n := vs[(i+1)%len(vs)]
			if robust.Orient(p, c, n) != robust.Counterclockwise {
				continue
			}
			if earBlocked(vs, p, c, n) {
				continue
			}
			tris = append(tris, [3]geom.Point{p, c, n})
			vs = append(vs[:i], vs[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil
		}
	}
	if robust.Orient(vs[0], vs[1], vs[2]) == robust.Counterclockwise {
		tris = append(tris, [3]geom.Point{vs[0], vs[1], vs[2]})
	}
	return tris
}

// earBlocked reports whether any remaining vertex other than the ear
// corners lies in the candidate ear.
func earBlocked(vs []geom.Point, p, c, n geom.Point) bool {
	for _, v := range vs {
		if v == p || v == c || v == n {
			continue
		}
		if robust.Orient(p, c, v) != robust.Clockwise &&
			robust.Orient(c, n, v) != robust.Clockwise &&
			robust.Orient(n, p, v) != robust.Clockwise {
			return true
		}
	}
	return false
}
