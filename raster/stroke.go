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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// Stroke computes the coverage of the stroked outline of p, using Width,
// Cap, Join and MiterLimit.
//
// The outline is built from one quadrilateral per segment, plus join and
// cap polygons.  All polygons have the same orientation, so that filling
// them together with the nonzero rule gives their union.
func (r *Rasterizer) Stroke(p *path.Data, emit EmitFunc) {
	r.flatten(p)

	r.outline = r.outline[:0]
	r.outlineOffsets = r.outlineOffsets[:0]
	d := r.Width / 2
	for i := range r.pointsOffsets {
		pts := r.subpath(i)
		if len(pts) == 1 {
			// a zero-length subpath is only visible with round caps
			if r.Cap == graphics.LineCapRound {
				r.addCircle(pts[0], d)
			}
			continue
		}
		r.strokeSubpath(pts, r.closed[i], d)
	}

	r.edges = r.edges[:0]
	for i, start := range r.outlineOffsets {
		end := len(r.outline)
		if i+1 < len(r.outlineOffsets) {
			end = r.outlineOffsets[i+1]
		}
		poly := r.outline[start:end]
		for j := range poly {
			r.addEdge(poly[j], poly[(j+1)%len(poly)])
		}
	}
	r.scan(false, emit)
}

// flatten converts p into polylines in user space.  Consecutive duplicate
// points are dropped, so that every segment has a direction.
func (r *Rasterizer) flatten(p *path.Data) {
	r.points = r.points[:0]
	r.pointsOffsets = r.pointsOffsets[:0]
	r.closed = r.closed[:0]

	add := func(_, b vec.Vec2) {
		last := r.points[len(r.points)-1]
		if b.Sub(last).Length() >= zeroLengthThreshold {
			r.points = append(r.points, b)
		}
	}
	open := false
	var cur vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			r.pointsOffsets = append(r.pointsOffsets, len(r.points))
			r.closed = append(r.closed, false)
			r.points = append(r.points, pts[0])
			cur = pts[0]
			open = true
		case path.CmdLineTo:
			if open {
				add(cur, pts[0])
				cur = pts[0]
			}
		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(cur, pts[0], pts[1], add)
				cur = pts[1]
			}
		case path.CmdCubeTo:
			if open {
				r.flattenCubic(cur, pts[0], pts[1], pts[2], add)
				cur = pts[2]
			}
		case path.CmdClose:
			if open {
				r.closed[len(r.closed)-1] = true
				start := r.points[r.pointsOffsets[len(r.pointsOffsets)-1]]
				cur = start
				open = false
			}
		}
	}
}

func (r *Rasterizer) subpath(i int) []vec.Vec2 {
	end := len(r.points)
	if i+1 < len(r.pointsOffsets) {
		end = r.pointsOffsets[i+1]
	}
	pts := r.points[r.pointsOffsets[i]:end]
	if r.closed[i] && len(pts) > 1 && pts[len(pts)-1] == pts[0] {
		pts = pts[:len(pts)-1]
	}
	return pts
}

// strokeSubpath adds the outline polygons of one polyline.
func (r *Rasterizer) strokeSubpath(pts []vec.Vec2, closed bool, d float64) {
	n := len(pts)
	segs := n - 1
	if closed {
		segs = n
	}
	for i := range segs {
		a, b := pts[i], pts[(i+1)%n]
		nrm := normal(a, b).Mul(d)
		r.addPolygon(a.Add(nrm), b.Add(nrm), b.Sub(nrm), a.Sub(nrm))
	}

	for i := range n {
		if !closed && (i == 0 || i == n-1) {
			continue
		}
		prev := pts[(i+n-1)%n]
		next := pts[(i+1)%n]
		r.addJoin(prev, pts[i], next, d)
	}

	if !closed {
		r.addCap(pts[1], pts[0], d)
		r.addCap(pts[n-2], pts[n-1], d)
	}
}

// normal returns the unit normal of the segment from a to b.
func normal(a, b vec.Vec2) vec.Vec2 {
	t := b.Sub(a)
	t = t.Mul(1 / t.Length())
	return vec.Vec2{X: -t.Y, Y: t.X}
}

// addJoin adds the corner piece at p, between the segments coming from
// prev and going to next.
func (r *Rasterizer) addJoin(prev, p, next vec.Vec2, d float64) {
	n1 := normal(prev, p)
	n2 := normal(p, next)
	t1 := p.Sub(prev)
	t2 := next.Sub(p)
	turn := t1.X*t2.Y - t1.Y*t2.X
	if math.Abs(turn) < collinearityThreshold*t1.Length()*t2.Length() && t1.X*t2.X+t1.Y*t2.Y > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addCircle(p, d)
		return
	}

	// the outer side of the corner is opposite to the turning direction
	side := 1.0
	if turn > 0 {
		side = -1
	}
	a := p.Add(n1.Mul(side * d))
	b := p.Add(n2.Mul(side * d))

	if r.Join == graphics.LineJoinMiter {
		cos := n1.X*n2.X + n1.Y*n2.Y
		// the miter length, relative to the line width, is 1/cos(α/2)
		// where α is the angle between the two normals
		if ratio := math.Sqrt(2 / (1 + cos)); 1+cos > 1e-12 && ratio <= r.MiterLimit {
			m := n1.Add(n2).Mul(side * d / (1 + cos))
			r.addPolygon(p, a, p.Add(m), b)
			return
		}
	}
	r.addPolygon(p, a, b)
}

// addCap adds the cap at the end point p of a segment which starts at
// from.
func (r *Rasterizer) addCap(from, p vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addCircle(p, d)
	case graphics.LineCapSquare:
		t := p.Sub(from)
		t = t.Mul(d / t.Length())
		nrm := vec.Vec2{X: -t.Y, Y: t.X}
		r.addPolygon(p.Add(nrm), p.Add(nrm).Add(t), p.Sub(nrm).Add(t), p.Sub(nrm))
	}
}

// addCircle adds a polygon approximating the circle around c with radius d.
func (r *Rasterizer) addCircle(c vec.Vec2, d float64) {
	// the chord error of a regular n-gon with radius R is R(1-cos(π/n))
	rDev := max(r.linear(vec.Vec2{X: d}).Length(), r.linear(vec.Vec2{Y: d}).Length())
	n := minCircleSegments
	if rDev > r.Flatness {
		n = max(n, int(math.Ceil(math.Pi/math.Acos(1-r.Flatness/rDev))))
	}
	start := len(r.outline)
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.outline = append(r.outline, vec.Vec2{
			X: c.X + d*math.Cos(phi),
			Y: c.Y + d*math.Sin(phi),
		})
	}
	r.closePolygon(start)
}

// minCircleSegments is the smallest number of vertices used for round
// caps and joins.
const minCircleSegments = 32

// addPolygon appends a polygon to the stroke outline.
func (r *Rasterizer) addPolygon(pts ...vec.Vec2) {
	start := len(r.outline)
	r.outline = append(r.outline, pts...)
	r.closePolygon(start)
}

// closePolygon records the polygon which starts at index start of the
// outline buffer, normalised to positive orientation.  Degenerate polygons
// are discarded.
func (r *Rasterizer) closePolygon(start int) {
	poly := r.outline[start:]
	var area float64
	for i, p := range poly {
		q := poly[(i+1)%len(poly)]
		area += p.X*q.Y - q.X*p.Y
	}
	switch {
	case math.Abs(area) < zeroLengthThreshold:
		r.outline = r.outline[:start]
		return
	case area < 0:
		for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
			poly[i], poly[j] = poly[j], poly[i]
		}
	}
	r.outlineOffsets = append(r.outlineOffsets, start)
}
