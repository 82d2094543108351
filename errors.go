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

import "fmt"

// GeometryError reports a constructor rejecting input that violates an
// invariant of the requested kind, such as duplicate vertices or a
// self-intersecting contour. Values that exist are always valid.
type GeometryError struct {
	Kind Kind
	Msg  string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("planar: invalid %s: %s", e.Kind, e.Msg)
}

func geometryErrorf(kind Kind, format string, args ...interface{}) error {
	return &GeometryError{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// ComputationError reports a failure inside an external geometric
// kernel, such as the clipping engine refusing an input. It is
// distinct from GeometryError: the operands were valid, the
// computation itself failed.
type ComputationError struct {
	Op  string
	Err error
}

func (e *ComputationError) Error() string {
	return fmt.Sprintf("planar: %s: %v", e.Op, e.Err)
}

func (e *ComputationError) Unwrap() error { return e.Err }

func computationError(op string, err error) error {
	return &ComputationError{Op: op, Err: err}
}
