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

import "github.com/ctessum/geom"

// Empty is the empty point set. It is the identity element of union
// and symmetric difference and the absorbing element of intersection.
type Empty struct{}

// Nowhere is the canonical Empty value.
var Nowhere = Empty{}

func (Empty) Kind() Kind { return KindEmpty }

func (Empty) Bounds() *geom.Bounds { return nil }

func (Empty) Locate(Point) Location { return Exterior }

func (Empty) Contains(Point) bool { return false }

func (Empty) Equals(other Geometry) bool { return other.Kind() == KindEmpty }

func (Empty) ToGeom() geom.Geom { return geom.GeometryCollection{} }

func (Empty) decompose() decomp { return decomp{} }
