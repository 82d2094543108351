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
	"github.com/ctessum/geom/op"
)

// Union returns the point set belonging to a, to b, or to both,
// collapsed to the simplest representable geometry.
func Union(a, b Geometry) (Geometry, error) {
	if a.Kind() == KindEmpty {
		return b, nil
	}
	if b.Kind() == KindEmpty {
		return a, nil
	}
	switch Relate(a, b) {
	case Equal:
		return a, nil
	case Disjoint:
		return packParts(mergedDecomp(a, b)), nil
	case Within, Enclosed, Component:
		return b, nil
	case Encloses, Cover, Composite:
		return a, nil
	}
	da, db := a.decompose(), b.decompose()
	polys, err := clipShaped(op.UNION, da.polygons, db.polygons)
	if err != nil {
		return nil, computationError("union", err)
	}
	var segs []Segment
	for _, s := range da.segments {
		for _, sp := range splitSegment(s, db) {
			segs = append(segs, sp.seg)
		}
	}
	for _, s := range db.segments {
		for _, sp := range splitSegment(s, da) {
			if sp.loc != Boundary {
				segs = append(segs, sp.seg)
			}
		}
	}
	pts := append(append([]Point{}, da.points...), db.points...)
	return packParts(decomp{points: pts, segments: segs, polygons: polys}), nil
}

// Intersection returns the point set common to a and b.
func Intersection(a, b Geometry) (Geometry, error) {
	if a.Kind() == KindEmpty || b.Kind() == KindEmpty {
		return Nowhere, nil
	}
	switch Relate(a, b) {
	case Equal:
		return a, nil
	case Disjoint:
		return Nowhere, nil
	case Within, Enclosed, Component:
		return a, nil
	case Encloses, Cover, Composite:
		return b, nil
	}
	da, db := a.decompose(), b.decompose()
	polys, err := clipShaped(op.INTERSECTION, da.polygons, db.polygons)
	if err != nil {
		return nil, computationError("intersection", err)
	}
	var segs []Segment
	for _, s := range da.edges() {
		for _, sp := range splitSegment(s, db) {
			if sp.loc != Exterior {
				segs = append(segs, sp.seg)
			}
		}
	}
	for _, s := range db.edges() {
		for _, sp := range splitSegment(s, da) {
			if sp.loc != Exterior {
				segs = append(segs, sp.seg)
			}
		}
	}
	var pts []Point
	for _, p := range da.points {
		if db.locate(p) != Exterior {
			pts = append(pts, p)
		}
	}
	for _, p := range db.points {
		if da.locate(p) != Exterior {
			pts = append(pts, p)
		}
	}
	pts = append(pts, crossingPoints(da.edges(), db.edges())...)
	return packParts(decomp{points: pts, segments: segs, polygons: polys}), nil
}

// Difference returns the point set of a not belonging to b, taking
// the closure so the result stays in the type lattice.
func Difference(a, b Geometry) (Geometry, error) {
	if a.Kind() == KindEmpty {
		return Nowhere, nil
	}
	if b.Kind() == KindEmpty {
		return a, nil
	}
	switch Relate(a, b) {
	case Equal, Within, Enclosed, Component:
		return Nowhere, nil
	case Disjoint:
		return a, nil
	}
	da, db := a.decompose(), b.decompose()
	polys, err := clipShaped(op.DIFFERENCE, da.polygons, db.polygons)
	if err != nil {
		return nil, computationError("difference", err)
	}
	var segs []Segment
	for _, s := range da.segments {
		for _, sp := range splitSegment(s, db) {
			if sp.loc == Exterior {
				segs = append(segs, sp.seg)
			}
		}
	}
	var pts []Point
	for _, p := range da.points {
		if db.locate(p) == Exterior {
			pts = append(pts, p)
		}
	}
	return packParts(decomp{points: pts, segments: segs, polygons: polys}), nil
}

// SymmetricDifference returns the closure of the point set belonging
// to exactly one of a and b.
func SymmetricDifference(a, b Geometry) (Geometry, error) {
	if a.Kind() == KindEmpty {
		return b, nil
	}
	if b.Kind() == KindEmpty {
		return a, nil
	}
	switch Relate(a, b) {
	case Equal:
		return Nowhere, nil
	case Disjoint:
		return packParts(mergedDecomp(a, b)), nil
	}
	da, db := a.decompose(), b.decompose()
	polys, err := clipShaped(op.XOR, da.polygons, db.polygons)
	if err != nil {
		return nil, computationError("symmetric difference", err)
	}
	var segs []Segment
	for _, s := range da.segments {
		for _, sp := range splitSegment(s, db) {
			if sp.loc == Exterior {
				segs = append(segs, sp.seg)
			}
		}
	}
	for _, s := range db.segments {
		for _, sp := range splitSegment(s, da) {
			if sp.loc == Exterior {
				segs = append(segs, sp.seg)
			}
		}
	}
	var pts []Point
	for _, p := range da.points {
		if db.locate(p) == Exterior {
			pts = append(pts, p)
		}
	}
	for _, p := range db.points {
		if da.locate(p) == Exterior {
			pts = append(pts, p)
		}
	}
	return packParts(decomp{points: pts, segments: segs, polygons: polys}), nil
}

func mergedDecomp(a, b Geometry) decomp {
	da, db := a.decompose(), b.decompose()
	return decomp{
		points:   append(append([]Point{}, da.points...), db.points...),
		segments: append(append([]Segment{}, da.segments...), db.segments...),
		polygons: append(append([]Polygon{}, da.polygons...), db.polygons...),
	}
}
