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

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Scale maps data values to chart coordinates.  The centre of the chart is
// at the origin, y grows downwards, axis 0 points up and the remaining
// axes follow clockwise.
//
// The radial scale is linear and shared by all models and all rings.
type Scale struct {
	MaxValue float64 // value at the outermost ring
	Radius   float64 // radius of the outermost ring
	Axes     int     // number of axes
}

// ValueToRadius maps a value in [0, MaxValue] to a distance from the centre
// in [0, Radius].
func (s Scale) ValueToRadius(v float64) float64 {
	return v / s.MaxValue * s.Radius
}

// RadiusToValue is the inverse of ValueToRadius.
func (s Scale) RadiusToValue(r float64) float64 {
	return r / s.Radius * s.MaxValue
}

// AxisAngle returns the angle of axis i, in radians.
// Axis 0 has angle -π/2.
func (s Scale) AxisAngle(i int) float64 {
	return float64(i)*s.slice() - math.Pi/2
}

// slice is the angle between neighbouring axes.
func (s Scale) slice() float64 {
	return 2 * math.Pi / float64(s.Axes)
}

// ValueToPoint returns the position of value v on axis i.
func (s Scale) ValueToPoint(v float64, i int) vec.Vec2 {
	r := s.ValueToRadius(v)
	a := s.AxisAngle(i)
	return vec.Vec2{X: r * math.Cos(a), Y: r * math.Sin(a)}
}

// ModelToPolygon returns the vertices of a model's polygon, one per axis.
// The polygon is closed: the last point connects back to the first.
func (s Scale) ModelToPolygon(model []float64) []vec.Vec2 {
	pts := make([]vec.Vec2, len(model))
	for i, v := range model {
		pts[i] = s.ValueToPoint(v, i)
	}
	return pts
}

// Rings returns the value rows for the background rings, outermost first.
// Ring k (counting from 1 at the centre) holds the value MaxValue*k/levels
// on every axis.
func (s Scale) Rings(levels int) [][]float64 {
	rings := make([][]float64, 0, max(levels, 0))
	for k := levels; k > 0; k-- {
		row := make([]float64, s.Axes)
		for j := range row {
			row[j] = s.MaxValue * float64(k) / float64(levels)
		}
		rings = append(rings, row)
	}
	return rings
}

// Polygon converts a list of vertices into a closed path.
func Polygon(pts []vec.Vec2) *path.Data {
	p := &path.Data{}
	for i, pt := range pts {
		if i == 0 {
			p.MoveTo(pt)
		} else {
			p.LineTo(pt)
		}
	}
	if len(pts) > 0 {
		p.Close()
	}
	return p
}

// ModelPath returns the closed outline of a model.
func (s Scale) ModelPath(model []float64) *path.Data {
	return Polygon(s.ModelToPolygon(model))
}
