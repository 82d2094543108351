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

package robust

import "github.com/ctessum/geom"

// IntersectionKind describes how two segments meet.
type IntersectionKind int

const (
	// NoIntersection means the segments have no common point.
	NoIntersection IntersectionKind = iota
	// PointIntersection means the segments share exactly one point.
	PointIntersection
	// OverlapIntersection means the segments share a sub-segment of
	// positive length.
	OverlapIntersection
)

// OnSegment reports whether p lies on the closed segment from a to b.
func OnSegment(p, a, b geom.Point) bool {
	if Orient(a, b, p) != Collinear {
		return false
	}
	return inBox(p, a, b)
}

func inBox(p, a, b geom.Point) bool {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return minX <= p.X && p.X <= maxX && minY <= p.Y && p.Y <= maxY
}

// SegmentIntersection classifies the intersection of segments [a0,a1]
// and [b0,b1]. For PointIntersection the shared point is returned in
// p0; for OverlapIntersection the endpoints of the shared sub-segment
// are returned in p0 and p1, ordered lexicographically.
func SegmentIntersection(a0, a1, b0, b1 geom.Point) (kind IntersectionKind, p0, p1 geom.Point) {
	d1 := Orient(b0, b1, a0)
	d2 := Orient(b0, b1, a1)
	d3 := Orient(a0, a1, b0)
	d4 := Orient(a0, a1, b1)

	if d1 == Collinear && d2 == Collinear && d3 == Collinear && d4 == Collinear {
		return collinearOverlap(a0, a1, b0, b1)
	}
	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return PointIntersection, crossingPoint(a0, a1, b0, b1), geom.Point{}
	}
	switch {
	case d1 == Collinear && inBox(a0, b0, b1):
		return PointIntersection, a0, geom.Point{}
	case d2 == Collinear && inBox(a1, b0, b1):
		return PointIntersection, a1, geom.Point{}
	case d3 == Collinear && inBox(b0, a0, a1):
		return PointIntersection, b0, geom.Point{}
	case d4 == Collinear && inBox(b1, a0, a1):
		return PointIntersection, b1, geom.Point{}
	}
	return NoIntersection, geom.Point{}, geom.Point{}
}

// collinearOverlap resolves the intersection of two collinear segments
// by ordering their endpoints along the dominant axis of the line.
func collinearOverlap(a0, a1, b0, b1 geom.Point) (IntersectionKind, geom.Point, geom.Point) {
	lessEq := func(p, q geom.Point) bool {
		if p.X != q.X {
			return p.X < q.X
		}
		return p.Y <= q.Y
	}
	if lessEq(a1, a0) {
		a0, a1 = a1, a0
	}
	if lessEq(b1, b0) {
		b0, b1 = b1, b0
	}
	lo := a0
	if lessEq(lo, b0) {
		lo = b0
	}
	hi := a1
	if lessEq(b1, hi) {
		hi = b1
	}
	switch {
	case lessEq(hi, lo) && lessEq(lo, hi): // lo == hi
		return PointIntersection, lo, geom.Point{}
	case lessEq(lo, hi):
		return OverlapIntersection, lo, hi
	}
	return NoIntersection, geom.Point{}, geom.Point{}
}

// crossingPoint computes the proper crossing point of two segments
// known to intersect transversally.
func crossingPoint(a0, a1, b0, b1 geom.Point) geom.Point {
	den := (a1.X-a0.X)*(b1.Y-b0.Y) - (a1.Y-a0.Y)*(b1.X-b0.X)
	t := ((b0.X-a0.X)*(b1.Y-b0.Y) - (b0.Y-a0.Y)*(b1.X-b0.X)) / den
	return geom.Point{
		X: a0.X + t*(a1.X-a0.X),
		Y: a0.Y + t*(a1.Y-a0.Y),
	}
}
