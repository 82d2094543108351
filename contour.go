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

	"github.com/spatialmodel/planar/robust"
)

// Contour is a simple closed polyline: at least three vertices, no
// repeated consecutive vertices, and no self-intersections. As a
// geometry it is the curve itself, not the region it bounds. Vertices
// are stored counterclockwise starting from the lexicographically
// smallest one, so equal curves compare equal regardless of how they
// were traversed at construction.
type Contour struct {
	vertices []Point
	idx      *edgeIndex
}

// NewContour builds a contour from the given vertex loop. The closing
// edge from the last vertex back to the first is implied.
func NewContour(vertices ...Point) (Contour, error) {
	if len(vertices) < 3 {
		return Contour{}, geometryErrorf(KindContour, "%d vertices, need at least 3", len(vertices))
	}
	vs := make([]Point, len(vertices))
	copy(vs, vertices)
	n := len(vs)
	for i, v := range vs {
		if v == vs[(i+1)%n] {
			return Contour{}, geometryErrorf(KindContour, "repeated vertex %v", v)
		}
	}
	if err := checkRingSimple(vs, KindContour); err != nil {
		return Contour{}, err
	}
	area := signedArea(vs)
	if area == 0 {
		return Contour{}, geometryErrorf(KindContour, "zero enclosed area")
	}
	if area < 0 {
		reverseRing(vs)
	}
	rotateRing(vs)
	return Contour{vertices: vs, idx: &edgeIndex{}}, nil
}

// ContourOf is NewContour for inputs known to be valid; it panics on
// invalid input.
func ContourOf(vertices ...Point) Contour {
	c, err := NewContour(vertices...)
	if err != nil {
		panic(err)
	}
	return c
}

// Vertices returns the vertex loop in canonical order.
func (c Contour) Vertices() []Point {
	out := make([]Point, len(c.vertices))
	copy(out, c.vertices)
	return out
}

// Edges returns the contour's edges, including the closing edge.
func (c Contour) Edges() []Segment {
	return ringEdges(c.vertices)
}

// Length returns the perimeter of the contour.
func (c Contour) Length() float64 {
	var l float64
	for _, e := range c.Edges() {
		l += e.Length()
	}
	return l
}

// Area returns the area of the region the contour bounds. The contour
// itself has zero measure; this is a property of the enclosed region.
func (c Contour) Area() float64 {
	return signedArea(c.vertices)
}

func (c Contour) Kind() Kind { return KindContour }

func (c Contour) Bounds() *geom.Bounds {
	b := geom.NewBounds()
	for _, v := range c.vertices {
		b.Extend(geom.NewBoundsPoint(v.geom()))
	}
	return b
}

// Locate reports Boundary for points on the curve and Exterior
// everywhere else, including inside the enclosed region.
func (c Contour) Locate(q Point) Location {
	for _, e := range c.idx.candidates(q, ringEdges(c.vertices)) {
		if e.Locate(q) != Exterior {
			return Boundary
		}
	}
	return Exterior
}

func (c Contour) Contains(q Point) bool { return c.Locate(q) != Exterior }

func (c Contour) Equals(other Geometry) bool {
	o, ok := other.(Contour)
	if !ok || len(o.vertices) != len(c.vertices) {
		return false
	}
	for i, v := range c.vertices {
		if o.vertices[i] != v {
			return false
		}
	}
	return true
}

func (c Contour) ToGeom() geom.Geom {
	ls := make(geom.LineString, 0, len(c.vertices)+1)
	for _, v := range c.vertices {
		ls = append(ls, v.geom())
	}
	ls = append(ls, c.vertices[0].geom())
	return ls
}

func (c Contour) decompose() decomp { return decomp{segments: ringEdges(c.vertices)} }

// BuildIndex builds the spatial index over the contour's edges.
func (c Contour) BuildIndex() { c.idx.build(ringEdges(c.vertices)) }

// enclosedLocate treats the contour as the boundary of a region: it
// reports Interior for points strictly inside. Polygon borders and
// holes are located this way.
func (c Contour) enclosedLocate(q Point) Location {
	if c.Locate(q) == Boundary {
		return Boundary
	}
	if ringContains(c.vertices, q) {
		return Interior
	}
	return Exterior
}

// signedArea returns the shoelace area of a vertex loop, positive for
// counterclockwise traversal.
func signedArea(vs []Point) float64 {
	var a float64
	n := len(vs)
	for i, v := range vs {
		w := vs[(i+1)%n]
		a += v.X*w.Y - w.X*v.Y
	}
	return a / 2
}

// ringContains reports whether q is strictly inside the loop, by
// crossing parity. Points on the loop must be screened out first.
func ringContains(vs []Point, q Point) bool {
	inside := false
	n := len(vs)
	for i, v := range vs {
		w := vs[(i+1)%n]
		if (v.Y > q.Y) != (w.Y > q.Y) {
			x := v.X + (q.Y-v.Y)/(w.Y-v.Y)*(w.X-v.X)
			if q.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func ringEdges(vs []Point) []Segment {
	n := len(vs)
	out := make([]Segment, n)
	for i, v := range vs {
		out[i] = SegmentOf(v, vs[(i+1)%n])
	}
	return out
}

// checkRingSimple rejects loops whose edges cross or overlap. Edges
// that share a loop vertex may meet only at that vertex.
func checkRingSimple(vs []Point, kind Kind) error {
	n := len(vs)
	for i := 0; i < n; i++ {
		a0, a1 := vs[i], vs[(i+1)%n]
		for j := i + 1; j < n; j++ {
			b0, b1 := vs[j], vs[(j+1)%n]
			k, p, _ := robust.SegmentIntersection(a0.geom(), a1.geom(), b0.geom(), b1.geom())
			if k == robust.NoIntersection {
				continue
			}
			adjacent := j == i+1 || (i == 0 && j == n-1)
			if !adjacent || k == robust.OverlapIntersection {
				return geometryErrorf(kind, "self-intersection near (%g, %g)", p.X, p.Y)
			}
			shared := a1
			if i == 0 && j == n-1 {
				shared = a0
			}
			if (Point{X: p.X, Y: p.Y}) != shared {
				return geometryErrorf(kind, "self-intersection near (%g, %g)", p.X, p.Y)
			}
		}
	}
	return nil
}

func reverseRing(vs []Point) {
	for i, j := 0, len(vs)-1; i < j; i, j = i+1, j-1 {
		vs[i], vs[j] = vs[j], vs[i]
	}
}

// rotateRing rotates the loop in place so that the lexicographically
// smallest vertex comes first.
func rotateRing(vs []Point) {
	min := 0
	for i := 1; i < len(vs); i++ {
		if pointLess(vs[i], vs[min]) {
			min = i
		}
	}
	if min == 0 {
		return
	}
	rotated := make([]Point, 0, len(vs))
	rotated = append(rotated, vs[min:]...)
	rotated = append(rotated, vs[:min]...)
	copy(vs, rotated)
}
