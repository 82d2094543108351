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

// Polygon is the closed region bounded by a border contour, minus the
// regions bounded by its hole contours. Holes lie strictly inside the
// border; they may touch each other at isolated points but never
// cross, overlap, or nest. Holes are kept sorted by their canonical
// first vertex.
type Polygon struct {
	border Contour
	holes  []Contour
	idx    *edgeIndex
}

// NewPolygon builds a polygon from a border and optional holes.
func NewPolygon(border Contour, holes ...Contour) (Polygon, error) {
	if len(border.vertices) == 0 {
		return Polygon{}, geometryErrorf(KindPolygon, "empty border")
	}
	hs := make([]Contour, len(holes))
	copy(hs, holes)
	sort.Slice(hs, func(i, j int) bool {
		return pointLess(hs[i].vertices[0], hs[j].vertices[0])
	})
	for _, h := range hs {
		if len(h.vertices) == 0 {
			return Polygon{}, geometryErrorf(KindPolygon, "empty hole")
		}
		if err := checkHoleInBorder(border, h); err != nil {
			return Polygon{}, err
		}
	}
	for i := 0; i < len(hs); i++ {
		for j := i + 1; j < len(hs); j++ {
			if err := checkHolesDisjoint(hs[i], hs[j]); err != nil {
				return Polygon{}, err
			}
		}
	}
	return Polygon{border: border, holes: hs, idx: &edgeIndex{}}, nil
}

// PolygonOf is NewPolygon for inputs known to be valid; it panics on
// invalid input.
func PolygonOf(border Contour, holes ...Contour) Polygon {
	p, err := NewPolygon(border, holes...)
	if err != nil {
		panic(err)
	}
	return p
}

// Border returns the outer contour.
func (p Polygon) Border() Contour { return p.border }

// Holes returns the hole contours in canonical order.
func (p Polygon) Holes() []Contour {
	out := make([]Contour, len(p.holes))
	copy(out, p.holes)
	return out
}

// Area returns the area of the region: the border's area minus the
// holes' areas.
func (p Polygon) Area() float64 {
	a := p.border.Area()
	for _, h := range p.holes {
		a -= h.Area()
	}
	return a
}

// Perimeter returns the total length of the border and hole contours.
func (p Polygon) Perimeter() float64 {
	l := p.border.Length()
	for _, h := range p.holes {
		l += h.Length()
	}
	return l
}

func (p Polygon) Kind() Kind { return KindPolygon }

func (p Polygon) Bounds() *geom.Bounds { return p.border.Bounds() }

func (p Polygon) edges() []Segment {
	out := ringEdges(p.border.vertices)
	for _, h := range p.holes {
		out = append(out, ringEdges(h.vertices)...)
	}
	return out
}

// Locate reports where q lies relative to the region: on any border
// or hole curve it is Boundary, inside a hole it is Exterior.
func (p Polygon) Locate(q Point) Location {
	for _, e := range p.idx.candidates(q, p.edges()) {
		if e.Locate(q) != Exterior {
			return Boundary
		}
	}
	if !ringContains(p.border.vertices, q) {
		return Exterior
	}
	for _, h := range p.holes {
		if ringContains(h.vertices, q) {
			return Exterior
		}
	}
	return Interior
}

func (p Polygon) Contains(q Point) bool { return p.Locate(q) != Exterior }

func (p Polygon) Equals(other Geometry) bool {
	o, ok := other.(Polygon)
	if !ok || !o.border.Equals(p.border) || len(o.holes) != len(p.holes) {
		return false
	}
	for i, h := range p.holes {
		if !o.holes[i].Equals(h) {
			return false
		}
	}
	return true
}

// ToGeom returns the polygon with a counterclockwise outer ring and
// clockwise hole rings.
func (p Polygon) ToGeom() geom.Geom {
	out := make(geom.Polygon, 0, len(p.holes)+1)
	out = append(out, ringPath(p.border.vertices, false))
	for _, h := range p.holes {
		out = append(out, ringPath(h.vertices, true))
	}
	return out
}

func (p Polygon) decompose() decomp { return decomp{polygons: []Polygon{p}} }

// BuildIndex builds the spatial index over the border and hole edges.
func (p Polygon) BuildIndex() { p.idx.build(p.edges()) }

func ringPath(vs []Point, reversed bool) []geom.Point {
	out := make([]geom.Point, len(vs))
	for i, v := range vs {
		if reversed {
			out[len(vs)-1-i] = v.geom()
		} else {
			out[i] = v.geom()
		}
	}
	return out
}

// checkHoleInBorder verifies the hole lies strictly inside the
// border, with no edge contact at all.
func checkHoleInBorder(border, hole Contour) error {
	for _, be := range border.Edges() {
		for _, he := range hole.Edges() {
			k, _, _ := robust.SegmentIntersection(
				be.Start.geom(), be.End.geom(), he.Start.geom(), he.End.geom())
			if k != robust.NoIntersection {
				return geometryErrorf(KindPolygon, "hole touches border near %v", he.Start)
			}
		}
	}
	if border.enclosedLocate(hole.vertices[0]) != Interior {
		return geometryErrorf(KindPolygon, "hole vertex %v outside border", hole.vertices[0])
	}
	return nil
}

// checkHolesDisjoint verifies two holes bound disjoint regions. They
// may touch at isolated vertex points.
func checkHolesDisjoint(a, b Contour) error {
	for _, ae := range a.Edges() {
		for _, be := range b.Edges() {
			k, p, _ := robust.SegmentIntersection(
				ae.Start.geom(), ae.End.geom(), be.Start.geom(), be.End.geom())
			switch k {
			case robust.OverlapIntersection:
				return geometryErrorf(KindPolygon, "holes overlap near (%g, %g)", p.X, p.Y)
			case robust.PointIntersection:
				pp := Point{X: p.X, Y: p.Y}
				if pp != ae.Start && pp != ae.End && pp != be.Start && pp != be.End {
					return geometryErrorf(KindPolygon, "holes cross near (%g, %g)", p.X, p.Y)
				}
			}
		}
	}
	for _, ae := range a.Edges() {
		if b.enclosedLocate(ae.Midpoint()) == Interior {
			return geometryErrorf(KindPolygon, "nested holes near %v", ae.Midpoint())
		}
	}
	for _, be := range b.Edges() {
		if a.enclosedLocate(be.Midpoint()) == Interior {
			return geometryErrorf(KindPolygon, "nested holes near %v", be.Midpoint())
		}
	}
	return nil
}
