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

// Multipolygon is a finite set of at least one polygon with pairwise
// disjoint interiors. Members may touch at isolated points; polygons
// that share an edge must be merged into one polygon instead.
// Members are kept sorted by their border's canonical first vertex.
type Multipolygon struct {
	polygons []Polygon
	idx      *edgeIndex
}

// NewMultipolygon builds a multipolygon, rejecting members whose
// interiors overlap and members that share edge material.
func NewMultipolygon(polygons ...Polygon) (Multipolygon, error) {
	if len(polygons) == 0 {
		return Multipolygon{}, geometryErrorf(KindMultipolygon, "no polygons")
	}
	ps := make([]Polygon, len(polygons))
	copy(ps, polygons)
	sort.Slice(ps, func(i, j int) bool {
		return pointLess(ps[i].border.vertices[0], ps[j].border.vertices[0])
	})
	for _, p := range ps {
		if len(p.border.vertices) == 0 {
			return Multipolygon{}, geometryErrorf(KindMultipolygon, "empty member polygon")
		}
	}
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			if err := checkPolygonsDisjoint(ps[i], ps[j]); err != nil {
				return Multipolygon{}, err
			}
		}
	}
	return Multipolygon{polygons: ps, idx: &edgeIndex{}}, nil
}

// MultipolygonOf is NewMultipolygon for inputs known to be valid; it
// panics on invalid input.
func MultipolygonOf(polygons ...Polygon) Multipolygon {
	mp, err := NewMultipolygon(polygons...)
	if err != nil {
		panic(err)
	}
	return mp
}

// Polygons returns the member polygons in canonical order.
func (mp Multipolygon) Polygons() []Polygon {
	out := make([]Polygon, len(mp.polygons))
	copy(out, mp.polygons)
	return out
}

// Area returns the total area of the member polygons.
func (mp Multipolygon) Area() float64 {
	var a float64
	for _, p := range mp.polygons {
		a += p.Area()
	}
	return a
}

// Perimeter returns the total perimeter of the member polygons.
func (mp Multipolygon) Perimeter() float64 {
	var l float64
	for _, p := range mp.polygons {
		l += p.Perimeter()
	}
	return l
}

func (mp Multipolygon) Kind() Kind { return KindMultipolygon }

func (mp Multipolygon) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range mp.polygons {
		b.Extend(p.Bounds())
	}
	return b
}

func (mp Multipolygon) edges() []Segment {
	var out []Segment
	for _, p := range mp.polygons {
		out = append(out, p.edges()...)
	}
	return out
}

func (mp Multipolygon) Locate(q Point) Location {
	for _, e := range mp.idx.candidates(q, mp.edges()) {
		if e.Locate(q) != Exterior {
			return Boundary
		}
	}
	for _, p := range mp.polygons {
		if !ringContains(p.border.vertices, q) {
			continue
		}
		inHole := false
		for _, h := range p.holes {
			if ringContains(h.vertices, q) {
				inHole = true
				break
			}
		}
		if !inHole {
			return Interior
		}
	}
	return Exterior
}

func (mp Multipolygon) Contains(q Point) bool { return mp.Locate(q) != Exterior }

func (mp Multipolygon) Equals(other Geometry) bool {
	o, ok := other.(Multipolygon)
	if !ok || len(o.polygons) != len(mp.polygons) {
		return false
	}
	for i, p := range mp.polygons {
		if !o.polygons[i].Equals(p) {
			return false
		}
	}
	return true
}

func (mp Multipolygon) ToGeom() geom.Geom {
	out := make(geom.MultiPolygon, len(mp.polygons))
	for i, p := range mp.polygons {
		out[i] = p.ToGeom().(geom.Polygon)
	}
	return out
}

func (mp Multipolygon) decompose() decomp { return decomp{polygons: mp.polygons} }

// BuildIndex builds the spatial index over every member's edges.
func (mp Multipolygon) BuildIndex() { mp.idx.build(mp.edges()) }

// checkPolygonsDisjoint verifies two polygons have disjoint interiors
// and share no edge material. Isolated vertex touches are allowed, as
// is one polygon sitting inside a hole of the other.
func checkPolygonsDisjoint(a, b Polygon) error {
	for _, ae := range a.edges() {
		for _, be := range b.edges() {
			k, p, _ := robust.SegmentIntersection(
				ae.Start.geom(), ae.End.geom(), be.Start.geom(), be.End.geom())
			switch k {
			case robust.OverlapIntersection:
				return geometryErrorf(KindMultipolygon, "polygons share an edge near (%g, %g)", p.X, p.Y)
			case robust.PointIntersection:
				pp := Point{X: p.X, Y: p.Y}
				if pp != ae.Start && pp != ae.End && pp != be.Start && pp != be.End {
					return geometryErrorf(KindMultipolygon, "polygons cross near (%g, %g)", p.X, p.Y)
				}
			}
		}
	}
	for _, ae := range a.edges() {
		if b.Locate(ae.Midpoint()) == Interior {
			return geometryErrorf(KindMultipolygon, "polygon interiors overlap near %v", ae.Midpoint())
		}
	}
	for _, be := range b.edges() {
		if a.Locate(be.Midpoint()) == Interior {
			return geometryErrorf(KindMultipolygon, "polygon interiors overlap near %v", be.Midpoint())
		}
	}
	return nil
}
