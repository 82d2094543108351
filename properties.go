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
	"github.com/ctessum/geom/op"

	"github.com/spatialmodel/planar/robust"
)

// Area returns the two-dimensional measure of g. Points, segments,
// and contours have zero area.
func Area(g Geometry) float64 {
	var a float64
	for _, p := range g.decompose().polygons {
		a += p.Area()
	}
	return a
}

// Length returns the one-dimensional measure of g: total segment and
// contour length plus the perimeters of shaped parts.
func Length(g Geometry) float64 {
	d := g.decompose()
	var l float64
	for _, s := range d.segments {
		l += s.Length()
	}
	for _, p := range d.polygons {
		l += p.Perimeter()
	}
	return l
}

// Centroid returns the center of mass of g, weighted by its
// highest-dimensional material.
func Centroid(g Geometry) (Point, error) {
	if g.Kind() == KindEmpty {
		return Point{}, geometryErrorf(KindEmpty, "no centroid")
	}
	c, err := op.Centroid(g.ToGeom())
	if err != nil {
		return Point{}, computationError("centroid", err)
	}
	return Point{X: c.X, Y: c.Y}, nil
}

// ConvexHull returns the convex hull of g's vertices as the simplest
// geometry that can hold it: a point, a segment, or a polygon.
func ConvexHull(g Geometry) Geometry {
	d := g.decompose()
	var raw []geom.Point
	for _, p := range d.points {
		raw = append(raw, p.geom())
	}
	for _, s := range d.edges() {
		raw = append(raw, s.Start.geom(), s.End.geom())
	}
	hull := robust.ConvexHull(raw)
	switch len(hull) {
	case 0:
		return Nowhere
	case 1:
		return Point{X: hull[0].X, Y: hull[0].Y}
	case 2:
		return SegmentOf(Point{X: hull[0].X, Y: hull[0].Y}, Point{X: hull[1].X, Y: hull[1].Y})
	}
	vs := make([]Point, len(hull))
	for i, p := range hull {
		vs[i] = Point{X: p.X, Y: p.Y}
	}
	rotateRing(vs)
	return Polygon{border: Contour{vertices: vs, idx: &edgeIndex{}}, idx: &edgeIndex{}}
}
