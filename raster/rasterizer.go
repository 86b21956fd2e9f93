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

// Package raster paints scene trees into images.
//
// The Rasterizer computes anti-aliased pixel coverage for filled and
// stroked paths, using signed area accumulation per scanline.  The Painter
// walks a scene tree and composites the coverage of every node into an
// RGBA image.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// edge is a non-horizontal line segment in device coordinates, stored with
// y0 < y1.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64
	dir    float32 // +1 if the segment pointed down before normalisation
}

// EmitFunc receives the coverage of one pixel row.  coverage[i] is the
// coverage of pixel (xMin+i, y), between 0 and 1.  The slice is only valid
// for the duration of the call.
type EmitFunc func(y, xMin int, coverage []float32)

// Rasterizer converts paths to pixel coverage values.  Create one instance
// and reuse it for many paths; the internal buffers are kept between
// calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to this device-space rectangle.
	// The coordinates must be integers.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and the polygon which replaces it.
	Flatness float64

	// Width is the stroke width in user space.
	Width float64

	// Cap is the shape of the ends of open subpaths.
	Cap graphics.LineCapStyle

	// Join is the shape of the corners between stroke segments.
	Join graphics.LineJoinStyle

	// MiterLimit bounds the length of miter joins, relative to Width.
	MiterLimit float64

	edges  []edge
	active []int
	cover  []float32
	area   []float32

	// stroke outlines, all polygons stored back to back
	outline        []vec.Vec2
	outlineOffsets []int

	// flattened subpaths, used while stroking
	points        []vec.Vec2
	pointsOffsets []int
	closed        []bool
}

// NewRasterizer returns a rasterizer for the given clip rectangle, with
// default values for all other parameters.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is preserved.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
}

// FillNonZero computes the coverage of p under the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.addPathEdges(p)
	r.scan(false, emit)
}

// FillEvenOdd computes the coverage of p under the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.edges = r.edges[:0]
	r.addPathEdges(p)
	r.scan(true, emit)
}

// addPathEdges flattens p and appends its edges, in device space.
func (r *Rasterizer) addPathEdges(p *path.Data) {
	var cur, start vec.Vec2
	for cmd, pts := range p.Iter() {
		switch cmd {
		case path.CmdMoveTo:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur, start = pts[0], pts[0]
		case path.CmdLineTo:
			r.addEdge(cur, pts[0])
			cur = pts[0]
		case path.CmdQuadTo:
			r.flattenQuadratic(cur, pts[0], pts[1], r.addEdge)
			cur = pts[1]
		case path.CmdCubeTo:
			r.flattenCubic(cur, pts[0], pts[1], pts[2], r.addEdge)
			cur = pts[2]
		case path.CmdClose:
			if cur != start {
				r.addEdge(cur, start)
			}
			cur = start
		}
	}
	// fills close open subpaths implicitly
	if cur != start {
		r.addEdge(cur, start)
	}
}

func (r *Rasterizer) device(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// addEdge appends the user-space segment from a to b.
func (r *Rasterizer) addEdge(a, b vec.Vec2) {
	r.addDeviceEdge(r.device(a), r.device(b))
}

func (r *Rasterizer) addDeviceEdge(a, b vec.Vec2) {
	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	dir := float32(1)
	if dy < 0 {
		a, b = b, a
		dir = -1
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / (b.Y - a.Y),
		dir:  dir,
	})
}

// linear applies the linear part of the CTM to v.
func (r *Rasterizer) linear(v vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{X: m[0]*v.X + m[2]*v.Y, Y: m[1]*v.X + m[3]*v.Y}
}

func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(a, b vec.Vec2)) {
	dev := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length() / 4
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(a, b vec.Vec2)) {
	// Wang's formula
	d1 := r.linear(p0.Sub(p1.Mul(2)).Add(p2)).Length()
	d2 := r.linear(p1.Sub(p2.Mul(2)).Add(p3)).Length()
	n := max(1, int(math.Ceil(math.Sqrt(3*max(d1, d2)/(4*r.Flatness)))))
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// scan converts r.edges into coverage, one scanline at a time.
//
// For every pixel, cover holds the signed height of the edge pieces inside
// the pixel, and area holds the part of that height which lies to the
// right of the edge within the pixel.  Summing cover from the left edge of
// the row gives the winding number just left of a pixel; adding area gives
// the coverage of the pixel itself.
func (r *Rasterizer) scan(evenOdd bool, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := range r.edges {
		e := &r.edges[i]
		xMin = min(xMin, e.x0, e.x1)
		xMax = max(xMax, e.x0, e.x1)
		yMin = min(yMin, e.y0)
		yMax = max(yMax, e.y1)
	}
	x0 := max(int(math.Floor(xMin)), int(r.Clip.LLx))
	x1 := min(int(math.Floor(xMax))+1, int(r.Clip.URx))
	y0 := max(int(math.Floor(yMin)), int(r.Clip.LLy))
	y1 := min(int(math.Floor(yMax))+1, int(r.Clip.URy))
	if x0 >= x1 || y0 >= y1 {
		return
	}

	width := x1 - x0
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.y0, b.y0)
	})

	r.active = r.active[:0]
	next := 0
	for y := y0; y < y1; y++ {
		top, bot := float64(y), float64(y+1)
		for next < len(r.edges) && r.edges[next].y0 < bot {
			r.active = append(r.active, next)
			next++
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if e.y1 <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, top, bot, x0, x1) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		if evenOdd {
			integrateEvenOdd(r.cover, r.area)
		} else {
			integrateNonZero(r.cover, r.area)
		}
		if row, offs := trimZeros(r.cover); row != nil {
			emit(y, x0+offs, row)
		}
	}
}

// accumulate adds the part of e between the heights top and bot to the
// cover and area buffers, which start at device column x0.  It reports
// whether anything was added.
func (r *Rasterizer) accumulate(e *edge, top, bot float64, x0, x1 int) bool {
	top = max(top, e.y0)
	bot = min(bot, e.y1)
	if bot <= top {
		return false
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBot := e.x0 + e.dxdy*(bot-e.y0)
	colTop := int(math.Floor(xTop))
	colBot := int(math.Floor(xBot))

	if colTop == colBot {
		r.cell(colTop, (xTop+xBot)/2, e.dir*float32(bot-top), x0, x1)
		return true
	}

	// Split the piece where it crosses vertical pixel boundaries.  The
	// boundaries are visited in the order in which the edge meets them, so
	// the heights increase monotonically.
	step := 1
	if colBot < colTop {
		step = -1
	}
	yPrev, xPrev := top, xTop
	for col := colTop; col != colBot; col += step {
		bx := float64(col + 1)
		if step < 0 {
			bx = float64(col)
		}
		by := e.y0 + (bx-e.x0)/e.dxdy
		by = min(max(by, yPrev), bot)
		r.cell(col, (xPrev+bx)/2, e.dir*float32(by-yPrev), x0, x1)
		yPrev, xPrev = by, bx
	}
	r.cell(colBot, (xPrev+xBot)/2, e.dir*float32(bot-yPrev), x0, x1)
	return true
}

// cell adds the signed height h of an edge piece in column col, crossing
// the column at horizontal position x.
func (r *Rasterizer) cell(col int, x float64, h float32, x0, x1 int) {
	if h == 0 || col >= x1 {
		return
	}
	if col < x0 {
		// left of the clip region: only the winding number matters
		r.cover[0] += h
		r.area[0] += h
		return
	}
	frac := float32(x - float64(col))
	i := col - x0
	r.cover[i] += h
	r.area[i] += h * (1 - frac)
}

func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros strips zero coverage from both ends of a row.
func trimZeros(row []float32) ([]float32, int) {
	lo, hi := 0, len(row)
	for lo < hi && row[lo] == 0 {
		lo++
	}
	for hi > lo && row[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return row[lo:hi], lo
}

const (
	defaultFlatness   = 0.25
	defaultMiterLimit = 10.0

	horizontalEdgeThreshold = 1e-10
	zeroLengthThreshold     = 1e-10
	collinearityThreshold   = 1e-6
)
