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
	"github.com/ctessum/geom"
)

// FromGeom converts a kernel geometry into a validated planar value,
// collapsing it to the simplest kind that represents the same point
// set. Closed linestrings become contours, two-point linestrings
// become segments.
func FromGeom(g geom.Geom) (Geometry, error) {
	switch t := g.(type) {
	case nil:
		return Nowhere, nil
	case geom.Point:
		return Point{X: t.X, Y: t.Y}, nil
	case geom.MultiPoint:
		if len(t) == 1 {
			return Point{X: t[0].X, Y: t[0].Y}, nil
		}
		pts := make([]Point, len(t))
		for i, p := range t {
			pts[i] = Point{X: p.X, Y: p.Y}
		}
		return NewMultipoint(pts...)
	case geom.LineString:
		return fromLineString(t)
	case geom.MultiLineString:
		var segs []Segment
		for _, ls := range t {
			ss, err := pathSegments(ls)
			if err != nil {
				return nil, err
			}
			segs = append(segs, ss...)
		}
		if len(segs) == 1 {
			return segs[0], nil
		}
		return NewMultisegment(segs...)
	case geom.Polygon:
		return fromPolygon(t)
	case geom.MultiPolygon:
		if len(t) == 1 {
			return fromPolygon(t[0])
		}
		ps := make([]Polygon, len(t))
		for i, p := range t {
			pp, err := fromPolygon(p)
			if err != nil {
				return nil, err
			}
			ps[i] = pp
		}
		return NewMultipolygon(ps...)
	case geom.GeometryCollection:
		var out Geometry = Nowhere
		for _, member := range t {
			m, err := FromGeom(member)
			if err != nil {
				return nil, err
			}
			out, err = Union(out, m)
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return nil, geometryErrorf(KindMix, "unsupported geometry %T", g)
}

func fromLineString(ls geom.LineString) (Geometry, error) {
	if len(ls) >= 4 && ls[0] == ls[len(ls)-1] {
		vs := make([]Point, len(ls)-1)
		for i := 0; i < len(ls)-1; i++ {
			vs[i] = Point{X: ls[i].X, Y: ls[i].Y}
		}
		return NewContour(vs...)
	}
	segs, err := pathSegments(ls)
	if err != nil {
		return nil, err
	}
	if len(segs) == 1 {
		return segs[0], nil
	}
	return NewMultisegment(segs...)
}

func pathSegments(ls geom.LineString) ([]Segment, error) {
	if len(ls) < 2 {
		return nil, geometryErrorf(KindSegment, "linestring with %d points", len(ls))
	}
	segs := make([]Segment, 0, len(ls)-1)
	for i := 1; i < len(ls); i++ {
		s, err := NewSegment(
			Point{X: ls[i-1].X, Y: ls[i-1].Y},
			Point{X: ls[i].X, Y: ls[i].Y})
		if err != nil {
			return nil, err
		}
		segs = append(segs, s)
	}
	return segs, nil
}

func fromPolygon(p geom.Polygon) (Polygon, error) {
	if len(p) == 0 {
		return Polygon{}, geometryErrorf(KindPolygon, "polygon without rings")
	}
	rings := make([]Contour, 0, len(p))
	for _, r := range p {
		vs := make([]Point, 0, len(r))
		for i, v := range r {
			if i == len(r)-1 && len(r) > 1 && v == r[0] {
				break
			}
			vs = append(vs, Point{X: v.X, Y: v.Y})
		}
		c, err := NewContour(vs...)
		if err != nil {
			return Polygon{}, err
		}
		rings = append(rings, c)
	}
	return NewPolygon(rings[0], rings[1:]...)
}
