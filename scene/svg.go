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
	"bufio"
	"fmt"
	"html"
	"image/color"
	"io"
	"slices"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// WriteSVG serialises the subtree rooted at n as an SVG document.
// If n is not a canvas, the first canvas in the subtree is used.
func WriteSVG(w io.Writer, n *Node) error {
	canvas := FindCanvas(n)
	if canvas == nil {
		return ErrNoCanvas
	}

	sw := &svgWriter{w: bufio.NewWriter(w)}
	sw.printf("<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	sw.node(canvas, 0)
	if sw.err != nil {
		return sw.err
	}
	return sw.w.Flush()
}

type svgWriter struct {
	w   *bufio.Writer
	err error

	// glowIDs maps blur radii to the ids of their filters.
	glowIDs map[float64]string
}

func (sw *svgWriter) printf(format string, args ...any) {
	if sw.err != nil {
		return
	}
	_, sw.err = fmt.Fprintf(sw.w, format, args...)
}

func (sw *svgWriter) node(n *Node, depth int) {
	indent := strings.Repeat("  ", depth)
	attrs := sw.attrs(n)

	switch n.Kind {
	case KindCanvas:
		sw.printf("%s<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%s\" height=\"%s\"%s>\n",
			indent, num(n.Width), num(n.Height), attrs)
		radii := glowRadii(n)
		if len(radii) > 0 {
			sw.glowIDs = make(map[float64]string, len(radii))
			sw.printf("%s  <defs>\n", indent)
			for i, r := range radii {
				id := "glow"
				if i > 0 {
					id += strconv.Itoa(i)
				}
				sw.glowIDs[r] = id
				sw.printf("%s    <filter id=\"%s\"><feGaussianBlur stdDeviation=\"%s\" result=\"coloredBlur\"/>"+
					"<feMerge><feMergeNode in=\"coloredBlur\"/><feMergeNode in=\"SourceGraphic\"/></feMerge></filter>\n",
					indent, id, num(r))
			}
			sw.printf("%s  </defs>\n", indent)
		}
		sw.children(n, depth)
		sw.printf("%s</svg>\n", indent)
	case KindGroup:
		sw.printf("%s<g%s>\n", indent, attrs)
		sw.children(n, depth)
		sw.printf("%s</g>\n", indent)
	case KindPath:
		sw.printf("%s<path d=\"%s\"%s/>\n", indent, pathData(n.Path), attrs)
	case KindCircle:
		sw.printf("%s<circle cx=\"%s\" cy=\"%s\" r=\"%s\"%s/>\n",
			indent, num(n.Center.X), num(n.Center.Y), num(n.Radius), attrs)
	case KindLine:
		sw.printf("%s<line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\"%s/>\n",
			indent, num(n.From.X), num(n.From.Y), num(n.To.X), num(n.To.Y), attrs)
	case KindText:
		sw.printf("%s<text x=\"%s\" y=\"%s\"%s>", indent, num(n.Pos.X), num(n.Pos.Y), attrs)
		for _, l := range n.Lines {
			sw.printf("<tspan x=\"%s\" y=\"%s\" dy=\"%sem\">%s</tspan>",
				num(n.Pos.X), num(n.Pos.Y), num(l.DY), escape(l.Text))
		}
		sw.printf("</text>\n")
	}
}

func (sw *svgWriter) children(n *Node, depth int) {
	for _, c := range n.children {
		sw.node(c, depth+1)
	}
}

func (sw *svgWriter) attrs(n *Node) string {
	var b strings.Builder
	if n.ID != "" {
		fmt.Fprintf(&b, " id=\"%s\"", escape(n.ID))
	}
	if n.Class != "" {
		fmt.Fprintf(&b, " class=\"%s\"", escape(n.Class))
	}
	if n.Transform != (matrix.Matrix{}) && n.Transform != matrix.Identity {
		m := n.Transform
		fmt.Fprintf(&b, " transform=\"matrix(%s %s %s %s %s %s)\"",
			num(m[0]), num(m[1]), num(m[2]), num(m[3]), num(m[4]), num(m[5]))
	}

	s := n.Style
	var style []string
	switch n.Kind {
	case KindPath, KindCircle, KindText:
		style = append(style, "fill:"+colorString(s.Fill))
		if s.FillOpacity != 1 {
			style = append(style, "fill-opacity:"+num(s.FillOpacity))
		}
	}
	if n.Kind != KindGroup && n.Kind != KindCanvas && s.Stroke != nil {
		style = append(style, "stroke:"+colorString(s.Stroke))
		style = append(style, "stroke-width:"+num(s.StrokeWidth)+"px")
		if s.StrokeOpacity != 1 {
			style = append(style, "stroke-opacity:"+num(s.StrokeOpacity))
		}
	}
	if s.Opacity != 1 {
		style = append(style, "opacity:"+num(s.Opacity))
	}
	if id, ok := sw.glowIDs[s.Glow]; ok && s.Glow > 0 {
		style = append(style, "filter:url(#"+id+")")
	}
	if n.Kind == KindText {
		style = append(style, "font-size:"+num(s.FontSize)+"px")
		switch s.Anchor {
		case AnchorMiddle:
			style = append(style, "text-anchor:middle")
		case AnchorEnd:
			style = append(style, "text-anchor:end")
		}
	}
	if s.Cursor != "" {
		style = append(style, "cursor:"+s.Cursor)
	}
	if len(style) > 0 {
		fmt.Fprintf(&b, " style=\"%s\"", strings.Join(style, ";"))
	}
	return b.String()
}

// glowRadii lists the distinct glow radii used in the subtree, in document
// order.
func glowRadii(n *Node) []float64 {
	var radii []float64
	n.Walk(func(m *Node, _ matrix.Matrix) {
		if g := m.Style.Glow; g > 0 && !slices.Contains(radii, g) {
			radii = append(radii, g)
		}
	})
	return radii
}

func pathData(p *path.Data) string {
	if p == nil {
		return ""
	}
	var b strings.Builder
	k := 0
	pt := func(n int) {
		for i := range n {
			c := p.Coords[k+i]
			fmt.Fprintf(&b, " %s,%s", num(c.X), num(c.Y))
		}
		k += n
	}
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			b.WriteString("M")
			pt(1)
		case path.CmdLineTo:
			b.WriteString("L")
			pt(1)
		case path.CmdQuadTo:
			b.WriteString("Q")
			pt(2)
		case path.CmdCubeTo:
			b.WriteString("C")
			pt(3)
		case path.CmdClose:
			b.WriteString("Z")
		}
	}
	return b.String()
}

func colorString(c color.Color) string {
	if c == nil {
		return "none"
	}
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", nc.R, nc.G, nc.B)
}

func num(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func escape(s string) string {
	return html.EscapeString(s)
}
