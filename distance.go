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

	"gonum.org/v1/gonum/floats"
)

// Distance returns the minimum Euclidean distance between the two
// point sets: zero when they intersect, +Inf when either is empty.
func Distance(a, b Geometry) float64 {
	da, db := a.decompose(), b.decompose()
	if da.empty() || db.empty() {
		return math.Inf(1)
	}
	if Relate(a, b) != Disjoint {
		return 0
	}
	ea, eb := da.edges(), db.edges()
	ds := make([]float64, 0, len(da.points)*len(db.points)+len(ea)*len(eb))
	for _, p := range da.points {
		for _, q := range db.points {
			ds = append(ds, pointDist(p, q))
		}
		for _, s := range eb {
			ds = append(ds, pointSegDist(p, s))
		}
	}
	for _, s := range ea {
		for _, q := range db.points {
			ds = append(ds, pointSegDist(q, s))
		}
		for _, t := range eb {
			ds = append(ds, segSegDist(s, t))
		}
	}
	return floats.Min(ds)
}

func pointDist(p, q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

func pointSegDist(p Point, s Segment) float64 {
	dx := s.End.X - s.Start.X
	dy := s.End.Y - s.Start.Y
	t := ((p.X-s.Start.X)*dx + (p.Y-s.Start.Y)*dy) / (dx*dx + dy*dy)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return math.Hypot(p.X-(s.Start.X+t*dx), p.Y-(s.Start.Y+t*dy))
}

// segSegDist assumes the segments are disjoint, which Distance has
// already established for its operands.
func segSegDist(s, t Segment) float64 {
	return floats.Min([]float64{
		pointSegDist(s.Start, t),
		pointSegDist(s.End, t),
		pointSegDist(t.Start, s),
		pointSegDist(t.End, s),
	})
}
