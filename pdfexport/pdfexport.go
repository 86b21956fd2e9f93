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

// Package pdfexport writes the shapes of a scene tree as a single-page PDF
// file.
//
// One scene unit maps to one PDF point.  Text nodes are not written, and
// opacities are resolved against a white page background.
package pdfexport

import (
	stdcolor "image/color"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/spider/scene"
)

// Write writes the first canvas in the subtree rooted at n to the PDF
// file fname.
func Write(fname string, n *scene.Node) error {
	canvas := scene.FindCanvas(n)
	if canvas == nil {
		return scene.ErrNoCanvas
	}

	paper := &pdf.Rectangle{URx: canvas.Width, URy: canvas.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return err
	}

	// PDF has the origin in the bottom left corner, scenes in the top left
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, canvas.Height})
	page.SetLineCap(graphics.LineCapButt)
	page.SetLineJoin(graphics.LineJoinMiter)
	page.SetMiterLimit(4)

	w := &writer{page: page}
	w.node(canvas, matrix.Identity, 1)

	return page.Close()
}

type writer struct {
	page *document.Page
}

func (w *writer) node(n *scene.Node, outer matrix.Matrix, opacity float64) {
	opacity *= n.Style.Opacity
	if opacity <= 0 {
		return
	}
	ctm := outer
	if n.Transform != (matrix.Matrix{}) {
		ctm = scene.Concat(n.Transform, outer)
	}

	s := n.Style
	if outline := n.Outline(); outline != nil {
		if s.Fill != nil && n.Kind != scene.KindLine && s.FillOpacity > 0 {
			w.page.SetFillColor(flatten(s.Fill, s.FillOpacity*opacity))
			w.path(outline, ctm)
			w.page.Fill()
		}
		if s.Stroke != nil && s.StrokeWidth > 0 && s.StrokeOpacity > 0 {
			w.page.SetStrokeColor(flatten(s.Stroke, s.StrokeOpacity*opacity))
			w.page.SetLineWidth(s.StrokeWidth * math.Sqrt(math.Abs(ctm[0]*ctm[3]-ctm[1]*ctm[2])))
			w.path(outline, ctm)
			w.page.Stroke()
		}
	}

	for _, c := range n.Children() {
		w.node(c, ctm, opacity)
	}
}

// path emits the path construction operators for p, mapped through ctm.
func (w *writer) path(p *path.Data, ctm matrix.Matrix) {
	page := w.page
	for cmd, pts := range p.Iter().ToCubic() {
		switch cmd {
		case path.CmdMoveTo:
			q := scene.Apply(ctm, pts[0])
			page.MoveTo(q.X, q.Y)
		case path.CmdLineTo:
			q := scene.Apply(ctm, pts[0])
			page.LineTo(q.X, q.Y)
		case path.CmdCubeTo:
			a := scene.Apply(ctm, pts[0])
			b := scene.Apply(ctm, pts[1])
			c := scene.Apply(ctm, pts[2])
			page.CurveTo(a.X, a.Y, b.X, b.Y, c.X, c.Y)
		case path.CmdClose:
			page.ClosePath()
		}
	}
}

// flatten converts c, painted with the given opacity onto white, to an
// opaque PDF color.
func flatten(c stdcolor.Color, alpha float64) color.Color {
	r, g, b := overWhite(c, alpha)
	if r == g && g == b {
		return color.DeviceGray(r)
	}
	return color.DeviceRGB{r, g, b}
}

// overWhite returns the color components, between 0 and 1, of c painted
// with the given opacity onto a white background.
func overWhite(c stdcolor.Color, alpha float64) (r, g, b float64) {
	nc := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	a := min(alpha*float64(nc.A)/255, 1)
	mix := func(v uint8) float64 {
		return float64(v)/255*a + (1 - a)
	}
	return mix(nc.R), mix(nc.G), mix(nc.B)
}
