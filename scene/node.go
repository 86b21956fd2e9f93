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

// Package scene implements a small retained-mode vector scene: a tree of
// groups, paths, circles, lines and text, with pointer event listeners.
// Scenes can be serialised as SVG, rasterised by package raster, or written
// to PDF by package pdfexport.
package scene

import (
	"image/color"
	"slices"
	"sync/atomic"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// Kind identifies the type of a node.
type Kind int

const (
	KindGroup Kind = iota
	KindCanvas
	KindPath
	KindCircle
	KindLine
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindGroup:
		return "g"
	case KindCanvas:
		return "svg"
	case KindPath:
		return "path"
	case KindCircle:
		return "circle"
	case KindLine:
		return "line"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Anchor is the horizontal alignment of text relative to its position.
type Anchor int

const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// Style holds the presentation attributes of a node.
// A nil color means "none".
type Style struct {
	Fill          color.Color
	FillOpacity   float64
	Stroke        color.Color
	StrokeOpacity float64
	StrokeWidth   float64

	// Opacity applies to the node and all of its descendants.
	Opacity float64

	// Glow is the blur radius of the glow filter, 0 disables the filter.
	Glow float64

	FontSize float64
	Anchor   Anchor
	Cursor   string
}

// DefaultStyle returns the initial style of a newly created node.
func DefaultStyle() Style {
	return Style{
		FillOpacity:   1,
		StrokeOpacity: 1,
		StrokeWidth:   1,
		Opacity:       1,
		FontSize:      12,
	}
}

// TextLine is one line of a multi-line text node.
type TextLine struct {
	Text string
	DY   float64 // baseline offset in em
}

// Node is an element of the scene tree.
//
// The geometry fields which are meaningful depend on Kind.  Code which
// changes a node after it has been attached to a tree should use the
// setter methods, so that the revision counter is updated.
type Node struct {
	ID    string
	Class string
	Kind  Kind
	Style Style

	// Transform maps the node's coordinates to the parent's coordinates.
	// The zero matrix is treated as the identity.
	Transform matrix.Matrix

	// Width and Height give the size of a canvas node.
	Width, Height float64

	Path *path.Data // KindPath

	Center vec.Vec2 // KindCircle
	Radius float64  // KindCircle

	From, To vec.Vec2 // KindLine

	Pos   vec.Vec2   // KindText: anchor point
	Lines []TextLine // KindText

	parent   *Node
	children []*Node
	handlers map[EventType][]Handler
	rev      uint64
}

// generation is shared by all nodes, so that revisions are totally ordered.
var generation atomic.Uint64

func newNode(kind Kind, class string) *Node {
	n := &Node{
		Kind:  kind,
		Class: class,
		Style: DefaultStyle(),
	}
	n.Touch()
	return n
}

// NewGroup returns a new group node.
func NewGroup(class string) *Node {
	return newNode(KindGroup, class)
}

// NewCanvas returns a new canvas node of the given size.
func NewCanvas(class string, width, height float64) *Node {
	n := newNode(KindCanvas, class)
	n.Width = width
	n.Height = height
	return n
}

// NewPath returns a new path node.
func NewPath(class string, p *path.Data) *Node {
	n := newNode(KindPath, class)
	n.Path = p
	return n
}

// NewCircle returns a new circle node.
func NewCircle(class string, center vec.Vec2, radius float64) *Node {
	n := newNode(KindCircle, class)
	n.Center = center
	n.Radius = radius
	return n
}

// NewLine returns a new line node.
func NewLine(class string, from, to vec.Vec2) *Node {
	n := newNode(KindLine, class)
	n.From = from
	n.To = to
	return n
}

// NewText returns a new single-line text node.
func NewText(class string, pos vec.Vec2, text string, dy float64) *Node {
	n := newNode(KindText, class)
	n.Style.Fill = color.Black
	n.Pos = pos
	n.Lines = []TextLine{{Text: text, DY: dy}}
	return n
}

// Touch marks the node as changed.
func (n *Node) Touch() {
	n.rev = generation.Add(1)
}

// Revision returns a value which increases every time the node changes.
func (n *Node) Revision() uint64 {
	return n.rev
}

// TreeRevision returns the largest revision in the subtree rooted at n.
func (n *Node) TreeRevision() uint64 {
	rev := n.rev
	for _, c := range n.children {
		rev = max(rev, c.TreeRevision())
	}
	return rev
}

// SetPath replaces the geometry of a path node.
func (n *Node) SetPath(p *path.Data) {
	n.Path = p
	n.Touch()
}

// SetCenter moves a circle node.
func (n *Node) SetCenter(c vec.Vec2) {
	n.Center = c
	n.Touch()
}

// SetPos moves a text node.
func (n *Node) SetPos(p vec.Vec2) {
	n.Pos = p
	n.Touch()
}

// SetText replaces the content of a text node by a single line.
func (n *Node) SetText(text string) {
	dy := 0.0
	if len(n.Lines) > 0 {
		dy = n.Lines[0].DY
	}
	n.Lines = []TextLine{{Text: text, DY: dy}}
	n.Touch()
}

// SetLines replaces the content of a text node.
func (n *Node) SetLines(lines []TextLine) {
	n.Lines = lines
	n.Touch()
}

// Text returns the content of a text node, with lines separated by spaces.
func (n *Node) Text() string {
	var s string
	for i, l := range n.Lines {
		if i > 0 {
			s += " "
		}
		s += l.Text
	}
	return s
}

// Restyle applies fn to the node's style.
func (n *Node) Restyle(fn func(*Style)) {
	fn(&n.Style)
	n.Touch()
}

// Parent returns the parent of n, or nil if n is not attached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the children of n in painting order.
// The returned slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Append attaches child as the last child of n and returns child.
// If child is attached elsewhere, it is moved.
func (n *Node) Append(child *Node) *Node {
	child.Remove()
	child.parent = n
	n.children = append(n.children, child)
	return child
}

// Remove detaches n from its parent.
func (n *Node) Remove() {
	p := n.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, n); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	n.parent = nil
}

// RaiseToTop moves n to the end of its parent's child list, so that it is
// painted above its siblings.
func (n *Node) RaiseToTop() {
	if p := n.parent; p != nil && p.children[len(p.children)-1] != n {
		p.Append(n)
	}
}

// FindID returns the first node in the subtree with the given ID.
func (n *Node) FindID(id string) *Node {
	if n.ID == id {
		return n
	}
	for _, c := range n.children {
		if found := c.FindID(id); found != nil {
			return found
		}
	}
	return nil
}

// SelectAll returns all descendants of n which have the given class,
// in document order.
func (n *Node) SelectAll(class string) []*Node {
	var res []*Node
	n.Walk(func(m *Node, _ matrix.Matrix) {
		if m != n && m.Class == class {
			res = append(res, m)
		}
	})
	return res
}

// Walk calls fn for every node in the subtree rooted at n, in document
// order.  The matrix passed to fn maps the node's coordinates to the
// coordinates of n's parent.
func (n *Node) Walk(fn func(m *Node, ctm matrix.Matrix)) {
	n.walk(matrix.Identity, fn)
}

func (n *Node) walk(outer matrix.Matrix, fn func(*Node, matrix.Matrix)) {
	ctm := Concat(n.localTransform(), outer)
	fn(n, ctm)
	for _, c := range n.children {
		c.walk(ctm, fn)
	}
}

// CTM returns the matrix which maps the node's coordinates to the
// coordinates of the tree root.
func (n *Node) CTM() matrix.Matrix {
	ctm := matrix.Identity
	for m := n; m != nil; m = m.parent {
		ctm = Concat(ctm, m.localTransform())
	}
	return ctm
}

func (n *Node) localTransform() matrix.Matrix {
	if n.Transform == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return n.Transform
}

// Translate returns a matrix which shifts by (dx, dy).
func Translate(dx, dy float64) matrix.Matrix {
	return matrix.Matrix{1, 0, 0, 1, dx, dy}
}

// Concat returns the matrix which first applies inner, then outer.
func Concat(inner, outer matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		inner[0]*outer[0] + inner[1]*outer[2],
		inner[0]*outer[1] + inner[1]*outer[3],
		inner[2]*outer[0] + inner[3]*outer[2],
		inner[2]*outer[1] + inner[3]*outer[3],
		inner[4]*outer[0] + inner[5]*outer[2] + outer[4],
		inner[4]*outer[1] + inner[5]*outer[3] + outer[5],
	}
}

// Apply maps p through the matrix m.
func Apply(m matrix.Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// invert returns the inverse of m.  The second return value is false if m
// is singular.
func invert(m matrix.Matrix) (matrix.Matrix, bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 {
		return matrix.Matrix{}, false
	}
	a := m[3] / det
	b := -m[1] / det
	c := -m[2] / det
	d := m[0] / det
	return matrix.Matrix{
		a, b, c, d,
		-(m[4]*a + m[5]*c),
		-(m[4]*b + m[5]*d),
	}, true
}
