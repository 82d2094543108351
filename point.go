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
)

// Point is a single coordinate pair. Two points are equal iff their
// coordinates are equal.
type Point struct {
	X, Y float64
}

// XY returns the point with the given coordinates.
func XY(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) geom() geom.Point { return geom.Point{X: p.X, Y: p.Y} }

func (p Point) Kind() Kind { return KindPoint }

func (p Point) Bounds() *geom.Bounds { return geom.NewBoundsPoint(p.geom()) }

// Locate reports Boundary for the point itself and Exterior for every
// other point: a point set with no interior is its own boundary.
func (p Point) Locate(q Point) Location {
	if p == q {
		return Boundary
	}
	return Exterior
}

func (p Point) Contains(q Point) bool { return p == q }

func (p Point) Equals(other Geometry) bool {
	q, ok := other.(Point)
	return ok && p == q
}

func (p Point) ToGeom() geom.Geom { return p.geom() }

func (p Point) decompose() decomp { return decomp{points: []Point{p}} }

// pointLess is the lexicographic coordinate order used for canonical
// forms throughout the package.
func pointLess(a, b Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

// Multipoint is a finite set of at least one point, held in canonical
// (sorted, duplicate-free) order.
type Multipoint struct {
	points []Point
}

// NewMultipoint builds a multipoint from the given points. It rejects
// an empty slice and duplicate points.
func NewMultipoint(points ...Point) (Multipoint, error) {
	if len(points) == 0 {
		return Multipoint{}, geometryErrorf(KindMultipoint, "no points")
	}
	ps := make([]Point, len(points))
	copy(ps, points)
	sort.Slice(ps, func(i, j int) bool { return pointLess(ps[i], ps[j]) })
	for i := 1; i < len(ps); i++ {
		if ps[i] == ps[i-1] {
			return Multipoint{}, geometryErrorf(KindMultipoint, "duplicate point %v", ps[i])
		}
	}
	return Multipoint{points: ps}, nil
}

// MultipointOf is NewMultipoint for inputs known to be valid; it
// panics on invalid input.
func MultipointOf(points ...Point) Multipoint {
	mp, err := NewMultipoint(points...)
	if err != nil {
		panic(err)
	}
	return mp
}

// Points returns the member points in canonical order.
func (mp Multipoint) Points() []Point {
	out := make([]Point, len(mp.points))
	copy(out, mp.points)
	return out
}

func (mp Multipoint) Kind() Kind { return KindMultipoint }

func (mp Multipoint) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, p := range mp.points {
		b.Extend(p.Bounds())
	}
	return b
}

func (mp Multipoint) Locate(q Point) Location {
	for _, p := range mp.points {
		if p == q {
			return Boundary
		}
	}
	return Exterior
}

func (mp Multipoint) Contains(q Point) bool { return mp.Locate(q) != Exterior }

func (mp Multipoint) Equals(other Geometry) bool {
	o, ok := other.(Multipoint)
	if !ok || len(o.points) != len(mp.points) {
		return false
	}
	for i, p := range mp.points {
		if o.points[i] != p {
			return false
		}
	}
	return true
}

func (mp Multipoint) ToGeom() geom.Geom {
	out := make(geom.MultiPoint, len(mp.points))
	for i, p := range mp.points {
		out[i] = p.geom()
	}
	return out
}

func (mp Multipoint) decompose() decomp { return decomp{points: mp.points} }
