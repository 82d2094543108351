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

	"github.com/spatialmodel/planar/robust"
)

// Mix is a point set spanning more than one dimension: up to one
// discrete part (Point or Multipoint), one linear part (Segment,
// Multisegment, or Contour), and one shaped part (Polygon or
// Multipolygon). At least two parts are non-empty, and no part is
// redundant: nothing in the discrete or linear part lies within the
// closure of the shaped part, and no discrete point lies on the
// linear part.
type Mix struct {
	discrete Geometry
	linear   Geometry
	shaped   Geometry
}

// NewMix builds a mix from its parts. Use Nowhere for a vacant slot.
func NewMix(discrete, linear, shaped Geometry) (Mix, error) {
	if discrete == nil {
		discrete = Nowhere
	}
	if linear == nil {
		linear = Nowhere
	}
	if shaped == nil {
		shaped = Nowhere
	}
	switch discrete.Kind() {
	case KindEmpty, KindPoint, KindMultipoint:
	default:
		return Mix{}, geometryErrorf(KindMix, "%v is not a discrete part", discrete.Kind())
	}
	switch linear.Kind() {
	case KindEmpty, KindSegment, KindMultisegment, KindContour:
	default:
		return Mix{}, geometryErrorf(KindMix, "%v is not a linear part", linear.Kind())
	}
	switch shaped.Kind() {
	case KindEmpty, KindPolygon, KindMultipolygon:
	default:
		return Mix{}, geometryErrorf(KindMix, "%v is not a shaped part", shaped.Kind())
	}
	parts := 0
	for _, g := range []Geometry{discrete, linear, shaped} {
		if g.Kind() != KindEmpty {
			parts++
		}
	}
	if parts < 2 {
		return Mix{}, geometryErrorf(KindMix, "%d non-empty parts, need at least 2", parts)
	}
	sd := shaped.decompose()
	for _, p := range discrete.decompose().points {
		if linear.Contains(p) {
			return Mix{}, geometryErrorf(KindMix, "point %v lies on the linear part", p)
		}
		if shaped.Contains(p) {
			return Mix{}, geometryErrorf(KindMix, "point %v lies within the shaped part", p)
		}
	}
	for _, s := range linear.decompose().segments {
		spans := splitSegment(s, sd)
		for _, sp := range spans {
			if sp.loc != Exterior {
				return Mix{}, geometryErrorf(KindMix,
					"linear feature %v lies within the shaped part", s)
			}
		}
	}
	return Mix{discrete: discrete, linear: linear, shaped: shaped}, nil
}

// MixOf is NewMix for parts known to be valid; it panics on invalid
// input.
func MixOf(discrete, linear, shaped Geometry) Mix {
	m, err := NewMix(discrete, linear, shaped)
	if err != nil {
		panic(err)
	}
	return m
}

// Discrete returns the zero-dimensional part, or Nowhere.
func (m Mix) Discrete() Geometry { return m.part(m.discrete) }

// Linear returns the one-dimensional part, or Nowhere.
func (m Mix) Linear() Geometry { return m.part(m.linear) }

// Shaped returns the two-dimensional part, or Nowhere.
func (m Mix) Shaped() Geometry { return m.part(m.shaped) }

func (m Mix) part(g Geometry) Geometry {
	if g == nil {
		return Nowhere
	}
	return g
}

// Parts returns the non-empty parts in ascending dimension order.
func (m Mix) Parts() []Geometry {
	var out []Geometry
	for _, g := range []Geometry{m.Discrete(), m.Linear(), m.Shaped()} {
		if g.Kind() != KindEmpty {
			out = append(out, g)
		}
	}
	return out
}

func (m Mix) Kind() Kind { return KindMix }

func (m Mix) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, g := range m.Parts() {
		b.Extend(g.Bounds())
	}
	return b
}

func (m Mix) Locate(q Point) Location {
	loc := m.Shaped().Locate(q)
	if loc != Exterior {
		return loc
	}
	if m.Linear().Locate(q) != Exterior || m.Discrete().Locate(q) != Exterior {
		return Boundary
	}
	return Exterior
}

func (m Mix) Contains(q Point) bool { return m.Locate(q) != Exterior }

func (m Mix) Equals(other Geometry) bool {
	o, ok := other.(Mix)
	return ok && o.Discrete().Equals(m.Discrete()) &&
		o.Linear().Equals(m.Linear()) && o.Shaped().Equals(m.Shaped())
}

func (m Mix) ToGeom() geom.Geom {
	parts := m.Parts()
	out := make(geom.GeometryCollection, len(parts))
	for i, g := range parts {
		out[i] = g.ToGeom()
	}
	return out
}

func (m Mix) decompose() decomp {
	var d decomp
	for _, g := range m.Parts() {
		pd := g.decompose()
		d.points = append(d.points, pd.points...)
		d.segments = append(d.segments, pd.segments...)
		d.polygons = append(d.polygons, pd.polygons...)
	}
	return d
}

// packParts assembles raw per-dimension results into the simplest
// geometry that represents their union as a point set: it prunes
// points and segments already covered by higher-dimensional parts,
// collapses each part to its minimal type, and wraps in a Mix only
// when two or more parts survive.
func packParts(d decomp) Geometry {
	shaped := packShaped(d.polygons)
	sd := shaped.decompose()

	segments := prunedSegments(d.segments, sd)
	linear := packLinear(segments)

	points := prunedPoints(d.points, segments, shaped)
	discrete := packDiscrete(points)

	parts := 0
	for _, g := range []Geometry{discrete, linear, shaped} {
		if g.Kind() != KindEmpty {
			parts++
		}
	}
	switch parts {
	case 0:
		return Nowhere
	case 1:
		if discrete.Kind() != KindEmpty {
			return discrete
		}
		if linear.Kind() != KindEmpty {
			return linear
		}
		return shaped
	}
	return Mix{discrete: discrete, linear: linear, shaped: shaped}
}

func packShaped(polygons []Polygon) Geometry {
	switch len(polygons) {
	case 0:
		return Nowhere
	case 1:
		return polygons[0]
	}
	ps := make([]Polygon, len(polygons))
	copy(ps, polygons)
	sort.Slice(ps, func(i, j int) bool {
		return pointLess(ps[i].border.vertices[0], ps[j].border.vertices[0])
	})
	return Multipolygon{polygons: ps, idx: &edgeIndex{}}
}

// prunedSegments keeps only the sub-spans of the given segments that
// lie strictly outside the shaped part's closure, then deduplicates,
// unions overlapping collinear spans, and merges collinear chains.
// Deduplication runs first: the same span can arrive once per operand.
func prunedSegments(segments []Segment, shaped decomp) []Segment {
	var kept []Segment
	for _, s := range segments {
		if shaped.empty() {
			kept = append(kept, s)
			continue
		}
		for _, sp := range splitSegment(s, shaped) {
			if sp.loc == Exterior {
				kept = append(kept, sp.seg)
			}
		}
	}
	kept = dedupeSegments(kept)
	kept = mergeOverlapping(kept)
	kept = mergeCollinear(kept)
	return dedupeSegments(kept)
}

func dedupeSegments(segments []Segment) []Segment {
	sort.Slice(segments, func(i, j int) bool {
		return segmentLess(segments[i], segments[j])
	})
	out := segments[:0]
	for i, s := range segments {
		if i == 0 || s != segments[i-1] {
			out = append(out, s)
		}
	}
	return out
}

// mergeOverlapping unions collinear segments sharing a positive-length
// sub-segment into their hull along the common line. Lexicographic
// order on points is a total order along any one line, so the hull is
// the pair of extreme endpoints.
func mergeOverlapping(segments []Segment) []Segment {
	for {
		merged := false
		for i := 0; i < len(segments) && !merged; i++ {
			for j := i + 1; j < len(segments); j++ {
				k, _, _ := robust.SegmentIntersection(
					segments[i].Start.geom(), segments[i].End.geom(),
					segments[j].Start.geom(), segments[j].End.geom())
				if k != robust.OverlapIntersection {
					continue
				}
				lo, hi := segments[i].Start, segments[i].Start
				for _, p := range []Point{segments[i].End, segments[j].Start, segments[j].End} {
					if pointLess(p, lo) {
						lo = p
					}
					if pointLess(hi, p) {
						hi = p
					}
				}
				ns := make([]Segment, 0, len(segments)-1)
				for id, s := range segments {
					if id != i && id != j {
						ns = append(ns, s)
					}
				}
				segments = append(ns, SegmentOf(lo, hi))
				merged = true
				break
			}
		}
		if !merged {
			return segments
		}
	}
}

func packLinear(segments []Segment) Geometry {
	switch len(segments) {
	case 0:
		return Nowhere
	case 1:
		return segments[0]
	}
	if c, ok := segmentsAsContour(segments); ok {
		return c
	}
	return Multisegment{segments: segments, idx: &edgeIndex{}}
}

// segmentsAsContour recognizes a segment set that forms one simple
// closed loop and collapses it to a Contour.
func segmentsAsContour(segments []Segment) (Contour, bool) {
	if len(segments) < 3 {
		return Contour{}, false
	}
	adj := make(map[Point][]Point, len(segments))
	for _, s := range segments {
		adj[s.Start] = append(adj[s.Start], s.End)
		adj[s.End] = append(adj[s.End], s.Start)
	}
	for _, ns := range adj {
		if len(ns) != 2 {
			return Contour{}, false
		}
	}
	start := segments[0].Start
	loop := []Point{start}
	prev, cur := start, adj[start][0]
	for cur != start {
		loop = append(loop, cur)
		ns := adj[cur]
		next := ns[0]
		if next == prev {
			next = ns[1]
		}
		prev, cur = cur, next
	}
	if len(loop) != len(segments) {
		return Contour{}, false
	}
	c, err := NewContour(loop...)
	if err != nil {
		return Contour{}, false
	}
	return c, true
}

// mergeCollinear glues pairs of collinear segments that meet at a
// point no third segment uses, so split artifacts from the clipping
// stage do not leak into results.
func mergeCollinear(segments []Segment) []Segment {
	for {
		use := make(map[Point][]int)
		for i, s := range segments {
			use[s.Start] = append(use[s.Start], i)
			use[s.End] = append(use[s.End], i)
		}
		merged := false
		for p, ids := range use {
			if len(ids) != 2 || ids[0] == ids[1] {
				continue
			}
			a, b := segments[ids[0]], segments[ids[1]]
			ea, eb := a.otherEnd(p), b.otherEnd(p)
			if Orient(ea, p, eb) != Collinear {
				continue
			}
			ns := make([]Segment, 0, len(segments)-1)
			for i, s := range segments {
				if i != ids[0] && i != ids[1] {
					ns = append(ns, s)
				}
			}
			segments = append(ns, SegmentOf(ea, eb))
			merged = true
			break
		}
		if !merged {
			return segments
		}
	}
}

func (s Segment) otherEnd(p Point) Point {
	if s.Start == p {
		return s.End
	}
	return s.Start
}

// prunedPoints keeps only the points not already covered by the
// linear or shaped parts, deduplicated and sorted.
func prunedPoints(points []Point, segments []Segment, shaped Geometry) []Point {
	var kept []Point
next:
	for _, p := range points {
		if shaped.Contains(p) {
			continue
		}
		for _, s := range segments {
			if s.Locate(p) != Exterior {
				continue next
			}
		}
		kept = append(kept, p)
	}
	sort.Slice(kept, func(i, j int) bool { return pointLess(kept[i], kept[j]) })
	out := kept[:0]
	for i, p := range kept {
		if i == 0 || p != kept[i-1] {
			out = append(out, p)
		}
	}
	return out
}

func packDiscrete(points []Point) Geometry {
	switch len(points) {
	case 0:
		return Nowhere
	case 1:
		return points[0]
	}
	return Multipoint{points: points}
}
