package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// webVertices returns the corners of a radar chart area with n axes,
// where the values alternate between 0.9 and 0.4 of the radius.
func webVertices(size, n int) []vec.Vec2 {
	c := float64(size) / 2
	res := make([]vec.Vec2, n)
	for i := range n {
		r := 0.45 * float64(size)
		if i%2 == 1 {
			r *= 0.45
		}
		phi := 2*math.Pi*float64(i)/float64(n) - math.Pi/2
		res[i] = vec.Vec2{X: c + r*math.Cos(phi), Y: c + r*math.Sin(phi)}
	}
	return res
}

func BenchmarkRasterizerWeb(b *testing.B) {
	for _, size := range []int{40, 400, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			clip := rect.Rect{URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			pts := webVertices(size, 12)
			p := (&path.Data{}).MoveTo(pts[0])
			for _, q := range pts[1:] {
				p.LineTo(q)
			}
			p.Close()

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(clip)
				r.FillNonZero(p, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

func BenchmarkVectorWeb(b *testing.B) {
	for _, size := range []int{40, 400, 2000} {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)
			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{A: 255})
			pts := webVertices(size, 12)

			b.ReportAllocs()
			for b.Loop() {
				r.Reset(size, size)
				r.MoveTo(float32(pts[0].X), float32(pts[0].Y))
				for _, q := range pts[1:] {
					r.LineTo(float32(q.X), float32(q.Y))
				}
				r.ClosePath()
				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}

func BenchmarkStrokeWeb(b *testing.B) {
	const size = 400
	clip := rect.Rect{URx: size, URy: size}
	r := NewRasterizer(clip)
	pts := webVertices(size, 12)
	p := (&path.Data{}).MoveTo(pts[0])
	for _, q := range pts[1:] {
		p.LineTo(q)
	}
	p.Close()

	b.ReportAllocs()
	for b.Loop() {
		r.Reset(clip)
		r.Width = 2
		r.Stroke(p, func(y, xMin int, coverage []float32) {})
	}
}
