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

// sideFlags describes where one operand's material lies relative to
// the other operand.
type sideFlags struct {
	out    bool // material strictly outside the other operand
	bnd    bool // material shared with the other's boundary or lower-dimensional material
	inl    bool // material inside the other's two-dimensional interior
	polyIn bool // some of the operand's own boundary runs through the other's interior
}

// Relate classifies the point sets of a and b, read with a as
// subject: Relate(outer, inner) is Encloses for strict containment.
// It never fails: classification is done with exact predicates on the
// operands' own vertices, without constructing intersections.
func Relate(a, b Geometry) Relation {
	da, db := a.decompose(), b.decompose()
	if da.empty() || db.empty() {
		if da.empty() && db.empty() {
			return Equal
		}
		return Disjoint
	}
	if !da.bounds().Overlaps(db.bounds()) {
		return Disjoint
	}
	if a.Equals(b) {
		return Equal
	}

	fa := classifySide(da, db)
	fb := classifySide(db, da)
	touch := len(crossingPoints(da.edges(), db.edges())) > 0

	// Boundary material of one operand running through the other's
	// interior rules out containment in that direction.
	aSub := !fa.out && !fb.polyIn
	bSub := !fb.out && !fa.polyIn

	switch {
	case aSub && bSub:
		return Equal
	case aSub:
		return placement(fa, touch, Component, Enclosed, Within)
	case bSub:
		return placement(fb, touch, Composite, Cover, Encloses)
	}

	if fa.polyIn || fb.polyIn {
		return Overlap
	}
	dimA, dimB := da.dim(), db.dim()
	if dimA == dimB {
		switch dimA {
		case 0:
			if fa.bnd {
				return Overlap
			}
			return Disjoint
		case 1:
			if fa.bnd || fb.bnd {
				// Collinear shared spans were recorded as bnd by the
				// splitter; an isolated endpoint meeting is touch.
				if sharedSpans(da, db) {
					return Overlap
				}
			}
			if properLinearCross(da, db) {
				return Cross
			}
			if fa.bnd || fb.bnd || touch {
				return Touch
			}
			return Disjoint
		}
	}
	if fa.inl || fb.inl {
		return Cross
	}
	if fa.bnd || fb.bnd || touch {
		return Touch
	}
	return Disjoint
}

// placement refines a proper-subset relation by where the subset's
// material sits in the superset: entirely on the superset's own
// material, partly in its interior with boundary contact, or wholly
// in its interior.
func placement(f sideFlags, touch bool, on, contact, inside Relation) Relation {
	if !f.inl && !f.polyIn {
		return on
	}
	if f.bnd || touch {
		return contact
	}
	return inside
}

func classifySide(own, other decomp) sideFlags {
	var f sideFlags
	for _, p := range own.points {
		switch other.locate(p) {
		case Exterior:
			f.out = true
		case Boundary:
			f.bnd = true
		case Interior:
			f.inl = true
		}
	}
	merge := func(lc linearClass, boundary bool) {
		if len(lc.ext) > 0 {
			f.out = true
		}
		if len(lc.bnd) > 0 {
			f.bnd = true
		}
		if len(lc.inl) > 0 {
			f.inl = true
			if boundary {
				f.polyIn = true
			}
		}
	}
	merge(classifySegments(own.segments, other), false)
	for _, pg := range own.polygons {
		merge(classifySegments(pg.edges(), other), true)
		// Edges alone cannot tell a region from its complement when the
		// boundaries coincide, so sample the polygon's own interior too.
		if ip, ok := pg.interiorPoint(); ok {
			switch other.locate(ip) {
			case Exterior:
				f.out = true
			case Interior:
				f.inl = true
			}
		}
	}
	if len(own.polygons) > 0 && len(other.polygons) == 0 {
		f.out = true
	}
	return f
}

// sharedSpans reports whether the two linear materials share segments
// of positive length.
func sharedSpans(a, b decomp) bool {
	lc := classifySegments(a.segments, b)
	return len(lc.bnd) > 0
}

// properLinearCross reports whether two linear materials cross at a
// point interior to both, as opposed to meeting at free endpoints.
func properLinearCross(a, b decomp) bool {
	for _, p := range crossingPoints(a.segments, b.segments) {
		if linearRelInterior(a.segments, p) && linearRelInterior(b.segments, p) {
			return true
		}
	}
	return false
}

// linearRelInterior reports whether p is in the relative interior of
// the linear material: on some segment's open interior, or a vertex
// where two or more segments join.
func linearRelInterior(segments []Segment, p Point) bool {
	uses := 0
	for _, s := range segments {
		if p == s.Start || p == s.End {
			uses++
			continue
		}
		if s.Locate(p) != Exterior {
			return true
		}
	}
	return uses >= 2
}
