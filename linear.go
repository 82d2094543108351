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

	"github.com/spatialmodel/planar/robust"
)

// span is a maximal piece of a segment that lies entirely in one
// location class relative to some other geometry.
type span struct {
	seg Segment
	loc Location
}

// cut is a split position along a segment: the parameter along the
// segment plus the exact split point, kept so reassembled spans reuse
// original vertex coordinates instead of re-derived ones.
type cut struct {
	t float64
	p Point
}

// splitSegment cuts s at every intersection with the other geometry's
// edges and classifies each resulting piece as Exterior, Boundary
// (along an edge of the other geometry), or Interior (inside a shaped
// region of the other geometry).
func splitSegment(s Segment, other decomp) []span {
	type interval struct{ lo, hi float64 }
	edges := other.edges()
	cuts := []cut{{0, s.Start}, {1, s.End}}
	var onEdge []interval
	for _, e := range edges {
		k, p0, p1 := robust.SegmentIntersection(
			s.Start.geom(), s.End.geom(), e.Start.geom(), e.End.geom())
		switch k {
		case robust.PointIntersection:
			p := Point{X: p0.X, Y: p0.Y}
			cuts = append(cuts, cut{segmentParam(s, p), p})
		case robust.OverlapIntersection:
			a := Point{X: p0.X, Y: p0.Y}
			b := Point{X: p1.X, Y: p1.Y}
			ta, tb := segmentParam(s, a), segmentParam(s, b)
			if ta > tb {
				ta, tb = tb, ta
				a, b = b, a
			}
			cuts = append(cuts, cut{ta, a}, cut{tb, b})
			onEdge = append(onEdge, interval{ta, tb})
		}
	}
	sort.Slice(cuts, func(i, j int) bool { return cuts[i].t < cuts[j].t })
	var spans []span
	for i := 1; i < len(cuts); i++ {
		lo, hi := cuts[i-1], cuts[i]
		if hi.t <= lo.t || lo.p == hi.p {
			continue
		}
		loc := Exterior
		for _, iv := range onEdge {
			if lo.t >= iv.lo && hi.t <= iv.hi {
				loc = Boundary
				break
			}
		}
		if loc == Exterior && len(other.polygons) > 0 {
			mid := Point{X: (lo.p.X + hi.p.X) / 2, Y: (lo.p.Y + hi.p.Y) / 2}
			for _, pg := range other.polygons {
				if pg.Locate(mid) == Interior {
					loc = Interior
					break
				}
			}
		}
		spans = append(spans, span{seg: Segment{Start: lo.p, End: hi.p}.normalize(), loc: loc})
	}
	return spans
}

func (s Segment) normalize() Segment {
	if pointLess(s.End, s.Start) {
		s.Start, s.End = s.End, s.Start
	}
	return s
}

// segmentParam returns the parameter of p along s, projecting on the
// segment's dominant axis to avoid dividing by a vanishing component.
func segmentParam(s Segment, p Point) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	if abs(dx) >= abs(dy) {
		return (p.X - s.Start.X) / dx
	}
	return (p.Y - s.Start.Y) / dy
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// linearClass groups the pieces of a linear feature set by where they
// lie relative to another geometry.
type linearClass struct {
	ext, bnd, inl []Segment
}

func classifySegments(segments []Segment, other decomp) linearClass {
	var lc linearClass
	for _, s := range segments {
		for _, sp := range splitSegment(s, other) {
			switch sp.loc {
			case Exterior:
				lc.ext = append(lc.ext, sp.seg)
			case Boundary:
				lc.bnd = append(lc.bnd, sp.seg)
			case Interior:
				lc.inl = append(lc.inl, sp.seg)
			}
		}
	}
	return lc
}

// crossingPoints returns the isolated points where segments of a meet
// segments of b, excluding collinear overlap spans: those are linear,
// not discrete, intersections.
func crossingPoints(a, b []Segment) []Point {
	var out []Point
	for _, sa := range a {
		for _, sb := range b {
			k, p, _ := robust.SegmentIntersection(
				sa.Start.geom(), sa.End.geom(), sb.Start.geom(), sb.End.geom())
			if k == robust.PointIntersection {
				out = append(out, Point{X: p.X, Y: p.Y})
			}
		}
	}
	return out
}

// edges returns all one-dimensional material of the decomposition:
// the free segments plus every polygon edge.
func (d decomp) edges() []Segment {
	out := make([]Segment, len(d.segments))
	copy(out, d.segments)
	for _, p := range d.polygons {
		out = append(out, p.edges()...)
	}
	return out
}
