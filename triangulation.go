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

	"github.com/spatialmodel/planar/triangulate"
)

// Triangulate decomposes the polygon into triangles whose areas sum
// to the polygon's own area.
func (p Polygon) Triangulate() (*triangulate.Triangulation, error) {
	border := ringPath(p.border.vertices, false)
	holes := make([][]geom.Point, len(p.holes))
	for i, h := range p.holes {
		holes[i] = ringPath(h.vertices, true)
	}
	t, err := triangulate.New(border, holes...)
	if err != nil {
		return nil, computationError("triangulate", err)
	}
	return t, nil
}

// Triangles triangulates the polygon and collects the result.
func (p Polygon) Triangles() ([][3]Point, error) {
	t, err := p.Triangulate()
	if err != nil {
		return nil, err
	}
	out := make([][3]Point, 0, t.Len())
	for {
		tri, ok := t.Next()
		if !ok {
			break
		}
		out = append(out, [3]Point{
			{X: tri[0].X, Y: tri[0].Y},
			{X: tri[1].X, Y: tri[1].Y},
			{X: tri[2].X, Y: tri[2].Y},
		})
	}
	return out, nil
}

// interiorPoint returns a point strictly inside the polygon: the
// centroid of one triangle of its triangulation.
func (p Polygon) interiorPoint() (Point, bool) {
	tris, err := p.Triangles()
	if err != nil || len(tris) == 0 {
		return Point{}, false
	}
	t := tris[0]
	return Point{
		X: (t[0].X + t[1].X + t[2].X) / 3,
		Y: (t[0].Y + t[1].Y + t[2].Y) / 3,
	}, true
}
