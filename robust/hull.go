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

package robust

import (
	"sort"

	"github.com/ctessum/geom"
)

// ConvexHull returns the vertices of the convex hull of the given
// points in counterclockwise order, using Andrew's monotone chain with
// exact orientation tests. Collinear boundary points are omitted.
// Degenerate inputs yield fewer than three vertices: a single point
// for coincident inputs, two extreme points for collinear inputs.
func ConvexHull(points []geom.Point) []geom.Point {
	pts := make([]geom.Point, len(points))
	copy(pts, points)
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	// dedupe
	uniq := pts[:0]
	for i, p := range pts {
		if i == 0 || p != pts[i-1] {
			uniq = append(uniq, p)
		}
	}
	pts = uniq
	if len(pts) < 3 {
		return pts
	}

	var lower, upper []geom.Point
	for _, p := range pts {
		for len(lower) >= 2 && Orient(lower[len(lower)-2], lower[len(lower)-1], p) != Counterclockwise {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}
	for i := len(pts) - 1; i >= 0; i-- {
		p := pts[i]
		for len(upper) >= 2 && Orient(upper[len(upper)-2], upper[len(upper)-1], p) != Counterclockwise {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	if len(hull) < 3 {
		// all input points collinear
		return []geom.Point{pts[0], pts[len(pts)-1]}
	}
	return hull
}
