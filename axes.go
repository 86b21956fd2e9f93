// seehuhn.de/go/spider - interactive radar charts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package spider

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// AxisModel holds the end point of every axis, i.e. the position of
// MaxValue on that axis.  The end points depend only on the scale, not on
// the data, and are computed once per render.
type AxisModel struct {
	endpoints []vec.Vec2
}

// NewAxisModel computes the axis end points for the given scale.
func NewAxisModel(s Scale) *AxisModel {
	m := &AxisModel{endpoints: make([]vec.Vec2, s.Axes)}
	for i := range m.endpoints {
		m.endpoints[i] = s.ValueToPoint(s.MaxValue, i)
	}
	return m
}

// Len returns the number of axes.
func (m *AxisModel) Len() int {
	return len(m.endpoints)
}

// Endpoint returns the end point of axis i.
func (m *AxisModel) Endpoint(i int) vec.Vec2 {
	return m.endpoints[i]
}

// IsVertical reports whether axis i is treated as vertical.  For vertical
// axes, drag movement is projected onto the y-coordinate.
func (m *AxisModel) IsVertical(i int) bool {
	return isVertical(m.endpoints[i])
}

func isVertical(end vec.Vec2) bool {
	return math.Abs(end.X) < verticalEpsilon
}

// verticalEpsilon is the largest |x| of an axis end point for which the
// axis is treated as vertical.
const verticalEpsilon = 1e-6
