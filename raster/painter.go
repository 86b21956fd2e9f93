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
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/spider/scene"
)

// glowOpacity is the opacity of the wide stroke painted below a glowing
// outline.
const glowOpacity = 0.3

// Painter composites scene nodes into an RGBA image.
type Painter struct {
	// Img is the destination image.  Scene coordinates map to pixel
	// coordinates, with the origin at Img.Bounds().Min.
	Img *image.RGBA

	// Face is used for all text.  Text is drawn at the size of the face;
	// the font size of the nodes only affects line spacing.
	Face font.Face

	r *Rasterizer
}

// NewPainter returns a painter which draws into img.
func NewPainter(img *image.RGBA) *Painter {
	b := img.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X), LLy: float64(b.Min.Y),
		URx: float64(b.Max.X), URy: float64(b.Max.Y),
	}
	return &Painter{
		Img:  img,
		Face: basicfont.Face7x13,
		r:    NewRasterizer(clip),
	}
}

// Render paints the first canvas found in the subtree rooted at n into a
// new image of the canvas size.  If background is not nil, the image is
// filled with it first.
func Render(n *scene.Node, background color.Color) (*image.RGBA, error) {
	canvas := scene.FindCanvas(n)
	if canvas == nil {
		return nil, scene.ErrNoCanvas
	}
	w := int(math.Ceil(canvas.Width))
	h := int(math.Ceil(canvas.Height))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	}
	NewPainter(img).Paint(canvas)
	return img, nil
}

// WritePNG renders n on a white background and writes the result to w in
// PNG format.
func WritePNG(w io.Writer, n *scene.Node) error {
	img, err := Render(n, color.White)
	if err != nil {
		return err
	}
	return png.Encode(w, img)
}

// Paint draws the subtree rooted at n.  The transformation of n itself is
// applied, the transformations of its ancestors are not.
func (p *Painter) Paint(n *scene.Node) {
	b := p.Img.Bounds()
	origin := matrix.Matrix{1, 0, 0, 1, float64(b.Min.X), float64(b.Min.Y)}
	p.paint(n, origin, 1)
}

func (p *Painter) paint(n *scene.Node, outer matrix.Matrix, opacity float64) {
	opacity *= n.Style.Opacity
	if opacity <= 0 {
		return
	}
	ctm := outer
	if n.Transform != (matrix.Matrix{}) {
		ctm = scene.Concat(n.Transform, outer)
	}

	s := n.Style
	switch n.Kind {
	case scene.KindPath, scene.KindCircle, scene.KindLine:
		outline := n.Outline()
		if outline == nil {
			break
		}
		if s.Fill != nil && n.Kind != scene.KindLine {
			p.Fill(outline, ctm, s.Fill, s.FillOpacity*opacity)
		}
		if s.Stroke != nil && s.StrokeWidth > 0 {
			if s.Glow > 0 {
				p.Stroke(outline, ctm, s.StrokeWidth+2*s.Glow, s.Stroke, glowOpacity*s.StrokeOpacity*opacity)
			}
			p.Stroke(outline, ctm, s.StrokeWidth, s.Stroke, s.StrokeOpacity*opacity)
		}
	case scene.KindText:
		if s.Fill != nil {
			p.Text(n, ctm, s.FillOpacity*opacity)
		}
	}

	for _, c := range n.Children() {
		p.paint(c, ctm, opacity)
	}
}

// Fill paints the interior of outline, using the nonzero winding rule.
func (p *Painter) Fill(outline *path.Data, ctm matrix.Matrix, col color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	p.r.CTM = ctm
	p.r.FillNonZero(outline, p.blender(col, alpha))
}

// Stroke paints the outline with the given line width, in user space.
func (p *Painter) Stroke(outline *path.Data, ctm matrix.Matrix, width float64, col color.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	p.r.CTM = ctm
	p.r.Width = width
	p.r.Cap = graphics.LineCapButt
	p.r.Join = graphics.LineJoinMiter
	p.r.MiterLimit = 4
	p.r.Stroke(outline, p.blender(col, alpha))
}

// blender returns an EmitFunc which composites col over the image, scaled
// by the coverage and alpha.
func (p *Painter) blender(col color.Color, alpha float64) EmitFunc {
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	a0 := float32(alpha) * float32(c.A) / 255
	sr, sg, sb := float32(c.R), float32(c.G), float32(c.B)
	return func(y, xMin int, coverage []float32) {
		img := p.Img
		off := img.PixOffset(xMin, y)
		for i, cov := range coverage {
			a := cov * a0
			if a <= 0 {
				continue
			}
			px := img.Pix[off+4*i : off+4*i+4 : off+4*i+4]
			k := 1 - a
			px[0] = uint8(sr*a + float32(px[0])*k + 0.5)
			px[1] = uint8(sg*a + float32(px[1])*k + 0.5)
			px[2] = uint8(sb*a + float32(px[2])*k + 0.5)
			px[3] = uint8(255*a + float32(px[3])*k + 0.5)
		}
	}
}

// Text draws the lines of a text node.  Only the position of the text is
// transformed; glyphs are always drawn upright at the size of the face.
func (p *Painter) Text(n *scene.Node, ctm matrix.Matrix, alpha float64) {
	if alpha <= 0 {
		return
	}
	c := color.NRGBAModel.Convert(n.Style.Fill).(color.NRGBA)
	c.A = uint8(float64(c.A)*min(alpha, 1) + 0.5)
	d := &font.Drawer{
		Dst:  p.Img,
		Src:  image.NewUniform(c),
		Face: p.Face,
	}
	for _, l := range n.Lines {
		if l.Text == "" {
			continue
		}
		pos := scene.Apply(ctm, vec.Vec2{X: n.Pos.X, Y: n.Pos.Y + l.DY*n.Style.FontSize})
		w := float64(d.MeasureString(l.Text)) / 64
		switch n.Style.Anchor {
		case scene.AnchorMiddle:
			pos.X -= w / 2
		case scene.AnchorEnd:
			pos.X -= w
		}
		d.Dot = fixed.Point26_6{
			X: fixed.Int26_6(math.Round(pos.X * 64)),
			Y: fixed.Int26_6(math.Round(pos.Y * 64)),
		}
		d.DrawString(l.Text)
	}
}
