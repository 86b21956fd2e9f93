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
	"errors"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// ErrNoCanvas is returned by the output functions when the tree does not
// contain a canvas node.
var ErrNoCanvas = errors.New("scene: no canvas in subtree")

// FindCanvas returns n if n is a canvas, or otherwise the first canvas
// in the subtree rooted at n.  If there is no canvas, nil is returned.
func FindCanvas(n *Node) *Node {
	var canvas *Node
	n.Walk(func(m *Node, _ matrix.Matrix) {
		if canvas == nil && m.Kind == KindCanvas {
			canvas = m
		}
	})
	return canvas
}

// kappa is the distance of the control points for a quarter circle
// approximated by a cubic Bézier curve.
var kappa = 4 * (math.Sqrt2 - 1) / 3

// CirclePath returns a closed path which approximates the circle with the
// given center and radius by four cubic Bézier curves.
func CirclePath(center vec.Vec2, r float64) *path.Data {
	k := kappa * r
	cx, cy := center.X, center.Y
	p := &path.Data{}
	p.MoveTo(vec.Vec2{X: cx + r, Y: cy})
	p.CubeTo(vec.Vec2{X: cx + r, Y: cy + k}, vec.Vec2{X: cx + k, Y: cy + r}, vec.Vec2{X: cx, Y: cy + r})
	p.CubeTo(vec.Vec2{X: cx - k, Y: cy + r}, vec.Vec2{X: cx - r, Y: cy + k}, vec.Vec2{X: cx - r, Y: cy})
	p.CubeTo(vec.Vec2{X: cx - r, Y: cy - k}, vec.Vec2{X: cx - k, Y: cy - r}, vec.Vec2{X: cx, Y: cy - r})
	p.CubeTo(vec.Vec2{X: cx + k, Y: cy - r}, vec.Vec2{X: cx + r, Y: cy - k}, vec.Vec2{X: cx + r, Y: cy})
	return p.Close()
}

// Outline returns the geometry of a path, circle or line node as a path.
// For other node kinds, nil is returned.
func (n *Node) Outline() *path.Data {
	switch n.Kind {
	case KindPath:
		return n.Path
	case KindCircle:
		return CirclePath(n.Center, n.Radius)
	case KindLine:
		return (&path.Data{}).MoveTo(n.From).LineTo(n.To)
	default:
		return nil
	}
}

// Visible reports whether painting the node can change any pixels.
func (n *Node) Visible() bool {
	s := n.Style
	if s.Opacity <= 0 {
		return false
	}
	switch n.Kind {
	case KindText:
		return s.Fill != nil && s.FillOpacity > 0 && n.Text() != ""
	case KindPath, KindCircle, KindLine:
		fill := s.Fill != nil && s.FillOpacity > 0 && n.Kind != KindLine
		stroke := s.Stroke != nil && s.StrokeOpacity > 0 && s.StrokeWidth > 0
		return fill || stroke
	default:
		return true
	}
}
