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

/*
Package planar is an algebra of planar point sets: points, segments,
contours, polygons, their multi- variants, and heterogeneous mixes.
Every value is immutable and structurally comparable; the algebra is
closed, so relating or combining any two values always yields another
value in the same lattice, collapsed to the simplest kind that can
represent the result.

Heavy geometric computation is delegated: polygon clipping and point
location to github.com/ctessum/geom, spatial indexing to its rtree
package, exact predicates to the robust subpackage, and triangulation
to the triangulate subpackage.
*/
package planar

import (
	"github.com/ctessum/geom"

	"github.com/spatialmodel/planar/robust"
)

// Kind identifies the concrete type of a Geometry.
type Kind int

const (
	KindEmpty Kind = iota
	KindPoint
	KindMultipoint
	KindSegment
	KindMultisegment
	KindContour
	KindPolygon
	KindMultipolygon
	KindMix
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "Empty"
	case KindPoint:
		return "Point"
	case KindMultipoint:
		return "Multipoint"
	case KindSegment:
		return "Segment"
	case KindMultisegment:
		return "Multisegment"
	case KindContour:
		return "Contour"
	case KindPolygon:
		return "Polygon"
	case KindMultipolygon:
		return "Multipolygon"
	case KindMix:
		return "Mix"
	}
	return "unknown"
}

// Location classifies a point relative to a geometry.
type Location int

const (
	Exterior Location = iota
	Boundary
	Interior
)

func (l Location) String() string {
	switch l {
	case Boundary:
		return "boundary"
	case Interior:
		return "interior"
	}
	return "exterior"
}

// Orientation classifies the turn of an ordered point triple. It is
// the orientation type of the robust predicate kernel.
type Orientation = robust.Orientation

const (
	Clockwise        = robust.Clockwise
	Collinear        = robust.Collinear
	Counterclockwise = robust.Counterclockwise
)

// Orient returns the exact orientation of the triple (p, q, r).
func Orient(p, q, r Point) Orientation {
	return robust.Orient(p.geom(), q.geom(), r.geom())
}

// Geometry is implemented by every value of the type lattice: Empty,
// Point, Multipoint, Segment, Multisegment, Contour, Polygon,
// Multipolygon, and Mix. Values are immutable; all methods are
// read-only. The set-algebra surface lives in the package-level
// functions Relate, Union, Intersection, Difference,
// SymmetricDifference, Distance, and the transform functions, which
// dispatch on the pair of concrete kinds.
type Geometry interface {
	// Kind reports the concrete kind of the geometry.
	Kind() Kind
	// Bounds returns the axis-aligned bounding box, or nil for Empty.
	Bounds() *geom.Bounds
	// Locate classifies p against the geometry's point set.
	Locate(p Point) Location
	// Contains reports whether p belongs to the geometry
	// (Locate(p) != Exterior).
	Contains(p Point) bool
	// Equals reports structural equality of canonical forms.
	Equals(other Geometry) bool
	// ToGeom converts the value to its github.com/ctessum/geom
	// counterpart, the raw-coordinate interchange representation.
	ToGeom() geom.Geom

	decompose() decomp
}

// Indexable is implemented by geometries that can carry a lazily built
// spatial index over their edges. Building the index is explicit and
// idempotent; once built it accelerates Locate without changing any
// result. The index is shared by copies of the value and is not part
// of its identity.
type Indexable interface {
	Geometry
	BuildIndex()
}

// decomp is the per-dimension decomposition every geometry reduces to:
// discrete points, linear segments (including contour edges), and
// shaped polygons. The relation classifier and the boolean-operation
// engine work on decompositions.
type decomp struct {
	points   []Point
	segments []Segment
	polygons []Polygon
}

func (d decomp) empty() bool {
	return len(d.points) == 0 && len(d.segments) == 0 && len(d.polygons) == 0
}

// dim is the highest dimension present: -1 for empty, 0, 1, or 2.
func (d decomp) dim() int {
	switch {
	case len(d.polygons) > 0:
		return 2
	case len(d.segments) > 0:
		return 1
	case len(d.points) > 0:
		return 0
	}
	return -1
}

// locate classifies p against the decomposition, shaped parts first so
// that a point inside a region reports Interior even when it also lies
// on a lower-dimensional feature.
func (d decomp) locate(p Point) Location {
	for _, pg := range d.polygons {
		if loc := pg.Locate(p); loc != Exterior {
			return loc
		}
	}
	for _, s := range d.segments {
		if robust.OnSegment(p.geom(), s.Start.geom(), s.End.geom()) {
			return Boundary
		}
	}
	for _, q := range d.points {
		if p == q {
			return Boundary
		}
	}
	return Exterior
}

// bounds returns the bounding box of the decomposition, or nil if it
// is empty.
func (d decomp) bounds() *geom.Bounds {
	if d.empty() {
		return nil
	}
	b := geom.NewBounds()
	for _, p := range d.points {
		b.Extend(p.Bounds())
	}
	for _, s := range d.segments {
		b.Extend(s.Bounds())
	}
	for _, pg := range d.polygons {
		b.Extend(pg.Bounds())
	}
	return b
}
