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
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

func rectPath(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x0, y0)).
		LineTo(pt(x1, y0)).
		LineTo(pt(x1, y1)).
		LineTo(pt(x0, y1)).
		Close()
}

// collect returns a function which records coverage into a w×h grid.
func collect(w, h int) ([]float32, EmitFunc) {
	grid := make([]float32, w*h)
	return grid, func(y, xMin int, coverage []float32) {
		copy(grid[y*w+xMin:], coverage)
	}
}

func total(grid []float32) float64 {
	var sum float64
	for _, c := range grid {
		sum += float64(c)
	}
	return sum
}

// TestTriangleCoverage checks exact coverage values for a thin triangle.
// The diagonal edge y = x/10 leaves (2x+1)/20 of pixel x covered.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(pt(0, 0)).
		LineTo(pt(10, 0)).
		LineTo(pt(10, 1)).
		Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
	grid, emit := collect(10, 1)
	r.FillNonZero(triangle, emit)

	for x := range 10 {
		want := float64(2*x+1) / 20
		if got := float64(grid[x]); math.Abs(got-want) > 1e-6 {
			t.Errorf("pixel %d: got coverage %.4f, want %.4f", x, got, want)
		}
	}
}

func TestFillRect(t *testing.T) {
	cases := []struct {
		name string
		p    *path.Data
		ctm  matrix.Matrix
		want float64
	}{
		{"aligned", rectPath(2, 3, 12, 8), matrix.Identity, 50},
		{"half_pixels", rectPath(2.5, 3.5, 12.5, 8.5), matrix.Identity, 50},
		{"reversed", rectPath(12, 8, 2, 3), matrix.Identity, 50},
		{"scaled", rectPath(1, 1, 3, 2), matrix.Matrix{4, 0, 0, 3, 0, 0}, 24},
		{"clipped", rectPath(-5, -5, 5, 5), matrix.Identity, 25},
		{"outside", rectPath(30, 30, 40, 40), matrix.Identity, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
			r.CTM = tc.ctm
			grid, emit := collect(20, 20)
			r.FillNonZero(tc.p, emit)
			if got := total(grid); math.Abs(got-tc.want) > 1e-3 {
				t.Errorf("covered area %g, want %g", got, tc.want)
			}
			for i, c := range grid {
				if c < 0 || c > 1 {
					t.Fatalf("pixel %d has coverage %g", i, c)
				}
			}
		})
	}
}

func TestFillRules(t *testing.T) {
	// two nested squares with the same orientation
	p := rectPath(0, 0, 10, 10)
	p.MoveTo(pt(3, 3)).LineTo(pt(7, 3)).LineTo(pt(7, 7)).LineTo(pt(3, 7)).Close()

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	grid, emit := collect(10, 10)
	r.FillNonZero(p, emit)
	if got := total(grid); math.Abs(got-100) > 1e-3 {
		t.Errorf("nonzero: covered area %g, want 100", got)
	}

	grid, emit = collect(10, 10)
	r.FillEvenOdd(p, emit)
	if got := total(grid); math.Abs(got-84) > 1e-3 {
		t.Errorf("even-odd: covered area %g, want 84", got)
	}
	if grid[5*10+5] != 0 {
		t.Errorf("even-odd: hole has coverage %g", grid[5*10+5])
	}
}

func TestFillCircle(t *testing.T) {
	const radius = 8
	circle := (&path.Data{}).MoveTo(pt(10+radius, 10))
	for i := 1; i <= 64; i++ {
		phi := 2 * math.Pi * float64(i) / 64
		circle.LineTo(pt(10+radius*math.Cos(phi), 10+radius*math.Sin(phi)))
	}
	circle.Close()

	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	grid, emit := collect(20, 20)
	r.FillNonZero(circle, emit)

	// area of the regular 64-gon
	want := 0.5 * 64 * radius * radius * math.Sin(2*math.Pi/64)
	if got := total(grid); math.Abs(got-want) > 1e-3 {
		t.Errorf("covered area %g, want %g", got, want)
	}
}

func TestStrokeLine(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(2, 5)).LineTo(pt(18, 5))
	cases := []struct {
		cap  graphics.LineCapStyle
		want float64
		tol  float64
	}{
		{graphics.LineCapButt, 32, 1e-3},
		{graphics.LineCapSquare, 36, 1e-3},
		{graphics.LineCapRound, 32 + math.Pi, 0.1},
	}
	for _, tc := range cases {
		r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
		r.Width = 2
		r.Cap = tc.cap
		grid, emit := collect(20, 10)
		r.Stroke(line, emit)
		if got := total(grid); math.Abs(got-tc.want) > tc.tol {
			t.Errorf("cap %d: covered area %g, want %g", tc.cap, got, tc.want)
		}
	}
}

func TestStrokeJoins(t *testing.T) {
	square := rectPath(5, 5, 15, 15)
	cases := []struct {
		join graphics.LineJoinStyle
		want float64
		tol  float64
	}{
		{graphics.LineJoinMiter, 80, 1e-3},
		{graphics.LineJoinBevel, 78, 1e-3},
		{graphics.LineJoinRound, 80 - (4 - math.Pi), 0.1},
	}
	for _, tc := range cases {
		r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
		r.Width = 2
		r.Join = tc.join
		grid, emit := collect(20, 20)
		r.Stroke(square, emit)
		if got := total(grid); math.Abs(got-tc.want) > tc.tol {
			t.Errorf("join %d: covered area %g, want %g", tc.join, got, tc.want)
		}
	}

	// a miter limit below √2 turns the right angles into bevels
	r := NewRasterizer(rect.Rect{URx: 20, URy: 20})
	r.Width = 2
	r.MiterLimit = 1.2
	grid, emit := collect(20, 20)
	r.Stroke(square, emit)
	if got := total(grid); math.Abs(got-78) > 1e-3 {
		t.Errorf("miter limit: covered area %g, want 78", got)
	}
}

func TestStrokeDegenerate(t *testing.T) {
	dot := (&path.Data{}).MoveTo(pt(5, 5)).LineTo(pt(5, 5))

	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.Width = 4
	grid, emit := collect(10, 10)
	r.Stroke(dot, emit)
	if got := total(grid); got != 0 {
		t.Errorf("butt cap: covered area %g, want 0", got)
	}

	r.Cap = graphics.LineCapRound
	grid, emit = collect(10, 10)
	r.Stroke(dot, emit)
	if got := total(grid); math.Abs(got-4*math.Pi) > 0.2 {
		t.Errorf("round cap: covered area %g, want %g", got, 4*math.Pi)
	}
}

func TestReset(t *testing.T) {
	r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
	r.CTM = matrix.Matrix{2, 0, 0, 2, 1, 1}
	r.Width = 7
	r.Join = graphics.LineJoinRound

	clip := rect.Rect{URx: 5, URy: 5}
	r.Reset(clip)
	if r.CTM != matrix.Identity || r.Width != 1 || r.Join != graphics.LineJoinMiter || r.Clip != clip {
		t.Errorf("parameters not reset: %+v", r)
	}
}
