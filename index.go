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
	"sync"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/index/rtree"
)

// edgeIndex is an optional R-tree over a geometry's edges. It hangs
// off composite geometries by pointer so that copies of a value share
// one index, and it never participates in equality. The zero value is
// usable; until build is called lookups fall back to a linear scan.
type edgeIndex struct {
	once sync.Once
	tree *rtree.Rtree
}

// indexedSegment satisfies geom.Geom through the embedded line string
// so that the tree can hold it, and carries the owning segment for
// retrieval.
type indexedSegment struct {
	geom.LineString
	segment Segment
}

func (e *edgeIndex) build(segments []Segment) {
	if e == nil {
		return
	}
	e.once.Do(func() {
		tree := rtree.NewTree(25, 50)
		for _, s := range segments {
			tree.Insert(indexedSegment{
				LineString: geom.LineString{s.Start.geom(), s.End.geom()},
				segment:    s,
			})
		}
		e.tree = tree
	})
}

// candidates returns the segments whose bounding boxes contain q, or
// all segments when no index has been built.
func (e *edgeIndex) candidates(q Point, all []Segment) []Segment {
	if e == nil || e.tree == nil {
		return all
	}
	hits := e.tree.SearchIntersect(geom.NewBoundsPoint(q.geom()))
	out := make([]Segment, len(hits))
	for i, h := range hits {
		out[i] = h.(indexedSegment).segment
	}
	return out
}
