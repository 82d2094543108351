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

import "sort"

// Translate returns g shifted by (dx, dy).
func Translate(g Geometry, dx, dy float64) Geometry {
	return mapGeometry(g, func(p Point) Point {
		return Point{X: p.X + dx, Y: p.Y + dy}
	})
}

// Rotate returns g rotated about center by the angle whose cosine and
// sine are given. Passing cosine 1 and sine 0 is the identity.
func Rotate(g Geometry, cosine, sine float64, center Point) Geometry {
	return mapGeometry(g, func(p Point) Point {
		x, y := p.X-center.X, p.Y-center.Y
		return Point{
			X: center.X + cosine*x - sine*y,
			Y: center.Y + sine*x + cosine*y,
		}
	})
}

// Scale returns g scaled about the origin by the given factors. A
// zero factor collapses that dimension, so results may degrade to
// lower-dimensional geometries.
func Scale(g Geometry, fx, fy float64) Geometry {
	f := func(p Point) Point { return Point{X: p.X * fx, Y: p.Y * fy} }
	if fx != 0 && fy != 0 {
		return mapGeometry(g, f)
	}
	return collapseMap(g, f)
}

// mapGeometry applies a bijective affine map vertex by vertex,
// renormalizing canonical ordering and orientation, which reflections
// and rotations disturb.
func mapGeometry(g Geometry, f func(Point) Point) Geometry {
	switch t := g.(type) {
	case Empty:
		return t
	case Point:
		return f(t)
	case Multipoint:
		pts := make([]Point, len(t.points))
		for i, p := range t.points {
			pts[i] = f(p)
		}
		sort.Slice(pts, func(i, j int) bool { return pointLess(pts[i], pts[j]) })
		return Multipoint{points: pts}
	case Segment:
		return Segment{Start: f(t.Start), End: f(t.End)}.normalize()
	case Multisegment:
		ss := make([]Segment, len(t.segments))
		for i, s := range t.segments {
			ss[i] = Segment{Start: f(s.Start), End: f(s.End)}.normalize()
		}
		sort.Slice(ss, func(i, j int) bool { return segmentLess(ss[i], ss[j]) })
		return Multisegment{segments: ss, idx: &edgeIndex{}}
	case Contour:
		return mapContour(t, f)
	case Polygon:
		return mapPolygon(t, f)
	case Multipolygon:
		ps := make([]Polygon, len(t.polygons))
		for i, p := range t.polygons {
			ps[i] = mapPolygon(p, f)
		}
		sort.Slice(ps, func(i, j int) bool {
			return pointLess(ps[i].border.vertices[0], ps[j].border.vertices[0])
		})
		return Multipolygon{polygons: ps, idx: &edgeIndex{}}
	case Mix:
		return Mix{
			discrete: mapGeometry(t.Discrete(), f),
			linear:   mapGeometry(t.Linear(), f),
			shaped:   mapGeometry(t.Shaped(), f),
		}
	}
	return g
}

func mapContour(c Contour, f func(Point) Point) Contour {
	vs := make([]Point, len(c.vertices))
	for i, v := range c.vertices {
		vs[i] = f(v)
	}
	if signedArea(vs) < 0 {
		reverseRing(vs)
	}
	rotateRing(vs)
	return Contour{vertices: vs, idx: &edgeIndex{}}
}

func mapPolygon(p Polygon, f func(Point) Point) Polygon {
	hs := make([]Contour, len(p.holes))
	for i, h := range p.holes {
		hs[i] = mapContour(h, f)
	}
	sort.Slice(hs, func(i, j int) bool {
		return pointLess(hs[i].vertices[0], hs[j].vertices[0])
	})
	return Polygon{border: mapContour(p.border, f), holes: hs, idx: &edgeIndex{}}
}

// collapseMap applies a rank-deficient map: features flatten onto a
// line or a point, and the pieces are re-packed into the simplest
// geometry covering them.
func collapseMap(g Geometry, f func(Point) Point) Geometry {
	d := g.decompose()
	var out decomp
	for _, p := range d.points {
		out.points = append(out.points, f(p))
	}
	collapseSeg := func(a, b Point) {
		a, b = f(a), f(b)
		if a == b {
			out.points = append(out.points, a)
			return
		}
		out.segments = append(out.segments, Segment{Start: a, End: b}.normalize())
	}
	for _, s := range d.segments {
		collapseSeg(s.Start, s.End)
	}
	for _, pg := range d.polygons {
		vs := make([]Point, len(pg.border.vertices))
		for i, v := range pg.border.vertices {
			vs[i] = f(v)
		}
		lo, hi := vs[0], vs[0]
		for _, v := range vs[1:] {
			if pointLess(v, lo) {
				lo = v
			}
			if pointLess(hi, v) {
				hi = v
			}
		}
		if lo == hi {
			out.points = append(out.points, lo)
		} else {
			out.segments = append(out.segments, Segment{Start: lo, End: hi})
		}
	}
	return packParts(out)
}
