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
	"sort"

	"github.com/ctessum/geom"

	"github.com/spatialmodel/planar/robust"
)

// Segment is a straight edge between two distinct endpoints. The
// endpoints are stored in lexicographic order, so a segment and its
// reversal are the same value.
type Segment struct {
	Start, End Point
}

// NewSegment builds the segment between a and b, rejecting coincident
// endpoints.
func NewSegment(a, b Point) (Segment, error) {
	if a == b {
		return Segment{}, geometryErrorf(KindSegment, "coincident endpoints %v", a)
	}
	if pointLess(b, a) {
		a, b = b, a
	}
	return Segment{Start: a, End: b}, nil
}

// SegmentOf is NewSegment for endpoints known to be distinct; it
// panics on invalid input.
func SegmentOf(a, b Point) Segment {
	s, err := NewSegment(a, b)
	if err != nil {
		panic(err)
	}
	return s
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return math.Hypot(s.End.X-s.Start.X, s.End.Y-s.Start.Y)
}

// Midpoint returns the point halfway between the endpoints.
func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

func (s Segment) Kind() Kind { return KindSegment }

func (s Segment) Bounds() *geom.Bounds {
	b := geom.NewBoundsPoint(s.Start.geom())
	b.Extend(geom.NewBoundsPoint(s.End.geom()))
	return b
}

// Locate reports Boundary for every point on the segment: as a planar
// point set a segment has no interior.
func (s Segment) Locate(q Point) Location {
	if robust.OnSegment(q.geom(), s.Start.geom(), s.End.geom()) {
		return Boundary
	}
	return Exterior
}

func (s Segment) Contains(q Point) bool { return s.Locate(q) != Exterior }

func (s Segment) Equals(other Geometry) bool {
	o, ok := other.(Segment)
	return ok && s == o
}

func (s Segment) ToGeom() geom.Geom {
	return geom.LineString{s.Start.geom(), s.End.geom()}
}

func (s Segment) decompose() decomp { return decomp{segments: []Segment{s}} }

func segmentLess(a, b Segment) bool {
	if a.Start != b.Start {
		return pointLess(a.Start, b.Start)
	}
	return pointLess(a.End, b.End)
}

// Multisegment is a finite set of at least one segment. Segments may
// touch at endpoints or in T-junctions but must not cross through one
// another's interiors or overlap.
type Multisegment struct {
	segments []Segment
	idx      *edgeIndex
}

// NewMultisegment builds a multisegment, rejecting duplicates,
// interior crossings, and overlapping members.
func NewMultisegment(segments ...Segment) (Multisegment, error) {
	if len(segments) == 0 {
		return Multisegment{}, geometryErrorf(KindMultisegment, "no segments")
	}
	ss := make([]Segment, len(segments))
	copy(ss, segments)
	sort.Slice(ss, func(i, j int) bool { return segmentLess(ss[i], ss[j]) })
	for i := 1; i < len(ss); i++ {
		if ss[i] == ss[i-1] {
			return Multisegment{}, geometryErrorf(KindMultisegment, "duplicate segment %v", ss[i])
		}
	}
	for i := 0; i < len(ss); i++ {
		for j := i + 1; j < len(ss); j++ {
			kind, p, _ := robust.SegmentIntersection(
				ss[i].Start.geom(), ss[i].End.geom(),
				ss[j].Start.geom(), ss[j].End.geom())
			switch kind {
			case robust.OverlapIntersection:
				return Multisegment{}, geometryErrorf(KindMultisegment,
					"segments %v and %v overlap", ss[i], ss[j])
			case robust.PointIntersection:
				pp := Point{X: p.X, Y: p.Y}
				if pp != ss[i].Start && pp != ss[i].End &&
					pp != ss[j].Start && pp != ss[j].End {
					return Multisegment{}, geometryErrorf(KindMultisegment,
						"segments %v and %v cross", ss[i], ss[j])
				}
			}
		}
	}
	return Multisegment{segments: ss, idx: &edgeIndex{}}, nil
}

// MultisegmentOf is NewMultisegment for inputs known to be valid; it
// panics on invalid input.
func MultisegmentOf(segments ...Segment) Multisegment {
	ms, err := NewMultisegment(segments...)
	if err != nil {
		panic(err)
	}
	return ms
}

// Segments returns the member segments in canonical order.
func (ms Multisegment) Segments() []Segment {
	out := make([]Segment, len(ms.segments))
	copy(out, ms.segments)
	return out
}

// Length returns the total length of the member segments.
func (ms Multisegment) Length() float64 {
	var l float64
	for _, s := range ms.segments {
		l += s.Length()
	}
	return l
}

func (ms Multisegment) Kind() Kind { return KindMultisegment }

func (ms Multisegment) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, s := range ms.segments {
		b.Extend(s.Bounds())
	}
	return b
}

func (ms Multisegment) Locate(q Point) Location {
	for _, s := range ms.idx.candidates(q, ms.segments) {
		if s.Locate(q) != Exterior {
			return Boundary
		}
	}
	return Exterior
}

func (ms Multisegment) Contains(q Point) bool { return ms.Locate(q) != Exterior }

func (ms Multisegment) Equals(other Geometry) bool {
	o, ok := other.(Multisegment)
	if !ok || len(o.segments) != len(ms.segments) {
		return false
	}
	for i, s := range ms.segments {
		if o.segments[i] != s {
			return false
		}
	}
	return true
}

func (ms Multisegment) ToGeom() geom.Geom {
	out := make(geom.MultiLineString, len(ms.segments))
	for i, s := range ms.segments {
		out[i] = geom.LineString{s.Start.geom(), s.End.geom()}
	}
	return out
}

func (ms Multisegment) decompose() decomp { return decomp{segments: ms.segments} }

// BuildIndex builds the spatial index over the member segments.
func (ms Multisegment) BuildIndex() { ms.idx.build(ms.segments) }
