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

package scene

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// contains reports whether the point p, given in the node's coordinates,
// lies inside the node's shape.  Only circles and paths can be hit.
func (n *Node) contains(p vec.Vec2) bool {
	switch n.Kind {
	case KindCircle:
		r := n.Radius
		if n.Style.Stroke != nil {
			r += n.Style.StrokeWidth / 2
		}
		return p.Sub(n.Center).Length() <= r
	case KindPath:
		return n.Path != nil && winding(n.Path, p) != 0
	default:
		return false
	}
}

// winding computes the winding number of the path around p.  Curves are
// replaced by the straight line to their end point, which is adequate for
// hit testing of the polygonal shapes used in charts.
func winding(p *path.Data, pt vec.Vec2) int {
	w := 0
	var current, start vec.Vec2
	edge := func(a, b vec.Vec2) {
		if a.Y <= pt.Y {
			if b.Y > pt.Y && cross(a, b, pt) > 0 {
				w++
			}
		} else if b.Y <= pt.Y && cross(a, b, pt) < 0 {
			w--
		}
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				edge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			edge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			edge(current, p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			edge(current, p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			edge(current, start)
			current = start
		}
	}
	if current != start {
		edge(current, start)
	}
	return w
}

// cross returns the z-component of (b-a)×(p-a).
func cross(a, b, p vec.Vec2) float64 {
	return (b.X-a.X)*(p.Y-a.Y) - (p.X-a.X)*(b.Y-a.Y)
}
