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

// Package spider draws radar ("spider") charts which compare several
// models along a common set of axes.  The vertices of the last model can
// be dragged along their axes to edit the underlying values.
package spider

import (
	"fmt"
	"image/color"
	"log/slog"
	"slices"
	"strconv"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spider/scene"
)

// Chart is a radar chart mounted into a scene document.  It connects the
// scene nodes to the data matrix: drag events on the editable model's
// vertices are passed to a Controller, and the controller's changes are
// projected back onto the scene.
//
// The caller must not render a new chart into the same container while a
// drag gesture on the old chart is in progress.
type Chart struct {
	cfg   Config
	axes  []string
	data  [][]float64
	scale Scale
	model *AxisModel
	ctrl  *Controller
	log   *slog.Logger

	canvas   *scene.Node
	areas    []*scene.Node
	strokes  []*scene.Node
	vertices [][]*scene.Node
	tooltip  *scene.Node

	active *Gesture
}

// Styling constants which are not part of the configuration.
const (
	hoverOpacity     = 0.7 // fill opacity of the highlighted area
	dimmedOpacity    = 0.1 // fill opacity of the other areas while hovering
	vertexOpacity    = 0.8
	glowRadius       = 2.5
	tooltipOffset    = 10
	levelLabelSize   = 10
	axisLabelSize    = 11
	levelLabelOffset = 4
	levelLabelDY     = 0.4
	axisLabelDY      = 0.35
)

var (
	gridColor       = color.Gray{Y: 0x80}
	ringFillColor   = color.Gray{Y: 0xCD}
	axisColor       = color.Gray{Y: 0xEE}
	levelLabelColor = color.Gray{Y: 0x73}
)

// Render draws a radar chart into the host node of doc named by selector.
// Any chart previously rendered into the same host is removed first.
//
// The data matrix holds one row (model) per series and one column per
// axis.  The last row is the editable model; dragging its vertices changes
// the matrix in place, and onEdit (if non-nil) is called with the final
// value once a gesture ends.
func Render(doc *scene.Document, selector string, axes []string, data [][]float64, o *Overrides, onEdit EditFunc) (*Chart, error) {
	host := doc.Host(selector)
	if host == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoContainer, selector)
	}
	if len(axes) == 0 {
		return nil, ErrNoAxes
	}
	if len(data) == 0 {
		return nil, ErrNoModels
	}
	if err := checkShape(len(axes), data); err != nil {
		return nil, err
	}

	cfg, err := DefaultConfig().Apply(o)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = discardLogger
	}

	// remove whatever chart was mounted here before
	for _, c := range slices.Clone(host.Children()) {
		if c.Kind == scene.KindCanvas {
			c.Remove()
		}
	}

	s := Scale{MaxValue: cfg.MaxValue, Radius: cfg.Radius(), Axes: len(axes)}
	c := &Chart{
		cfg:   cfg,
		axes:  axes,
		data:  data,
		scale: s,
		model: NewAxisModel(s),
		log:   log,
	}
	c.ctrl = NewController(s, c.model, data, c, onEdit, log)
	c.build(host, selector)

	log.Debug("chart rendered",
		"container", selector,
		"axes", len(axes),
		"models", len(data),
		"levels", cfg.Levels)
	return c, nil
}

func (c *Chart) build(host *scene.Node, selector string) {
	cfg := c.cfg
	c.canvas = host.Append(scene.NewCanvas("spider"+selector,
		cfg.W+cfg.Margin.Left+cfg.Margin.Right,
		cfg.H+cfg.Margin.Top+cfg.Margin.Bottom))

	g := c.canvas.Append(scene.NewGroup(""))
	g.Transform = scene.Translate(cfg.W/2+cfg.Margin.Left, cfg.H/2+cfg.Margin.Top)

	grid := g.Append(scene.NewGroup("axisWrapper"))
	c.buildRings(grid)
	c.buildLevelLabels(grid)
	c.buildAxes(grid)

	for i := range c.data {
		c.buildModel(g, i)
	}

	c.tooltip = g.Append(scene.NewText("tooltip", vec.Vec2{}, "", 0))
	c.tooltip.Style.Opacity = 0
}

func (c *Chart) buildRings(grid *scene.Node) {
	for i, ring := range c.scale.Rings(c.cfg.Levels) {
		n := grid.Append(scene.NewPath("web", c.scale.ModelPath(ring)))
		n.Style.Fill = ringFillColor
		n.Style.FillOpacity = c.cfg.BackgroundOpacity
		n.Style.Stroke = gridColor
		n.Style.StrokeWidth = 1
		if i == 0 {
			n.Style.StrokeOpacity = 1
		} else {
			n.Style.StrokeOpacity = 0.5
		}
	}
}

func (c *Chart) buildLevelLabels(grid *scene.Node) {
	levels := c.cfg.Levels
	for k := levels; k > 0; k-- {
		pos := vec.Vec2{
			X: levelLabelOffset,
			Y: -float64(k) * c.scale.Radius / float64(levels),
		}
		text := FormatPercent(c.cfg.MaxValue * float64(k) / float64(levels))
		n := grid.Append(scene.NewText("axisLabel", pos, text, levelLabelDY))
		n.Style.FontSize = levelLabelSize
		n.Style.Fill = levelLabelColor
	}
}

func (c *Chart) buildAxes(grid *scene.Node) {
	measure := func(s string) float64 { return TextWidth(s, axisLabelSize) }
	for i, name := range c.axes {
		axis := grid.Append(scene.NewGroup("axis"))
		end := c.model.Endpoint(i)

		line := axis.Append(scene.NewLine("line", vec.Vec2{}, end))
		line.Style.Stroke = axisColor
		line.Style.StrokeWidth = 2

		pos := end.Mul(c.cfg.LabelPositionRatio)
		label := axis.Append(scene.NewText("legend", pos, "", 0))
		label.Style.FontSize = axisLabelSize
		label.Style.Anchor = scene.AnchorMiddle
		label.SetLines(WrapText(name, c.cfg.TextWrapWidth, axisLabelDY, measure))
	}
}

func (c *Chart) buildModel(g *scene.Node, i int) {
	col := c.cfg.Color(i)
	outline := c.scale.ModelPath(c.data[i])
	wrapper := g.Append(scene.NewGroup("spiderWrapper"))

	area := wrapper.Append(scene.NewPath("spiderArea", outline))
	area.ID = "spiderArea" + strconv.Itoa(i)
	area.Style.Fill = col
	area.Style.FillOpacity = c.cfg.AreaOpacity
	area.On(scene.PointerOver, func(e *scene.Event) { c.highlight(i) })
	area.On(scene.PointerOut, func(e *scene.Event) { c.highlight(-1) })
	c.areas = append(c.areas, area)

	stroke := wrapper.Append(scene.NewPath("spiderStroke", outline))
	stroke.ID = "spiderStroke" + strconv.Itoa(i)
	stroke.Style.Stroke = col
	stroke.Style.StrokeWidth = c.cfg.StrokeWidth
	stroke.Style.Glow = glowRadius
	c.strokes = append(c.strokes, stroke)

	vertices := make([]*scene.Node, len(c.axes))
	for j, v := range c.data[i] {
		n := wrapper.Append(scene.NewCircle("spiderVertex", c.scale.ValueToPoint(v, j), c.cfg.VertexRadius))
		n.Style.Fill = col
		n.Style.FillOpacity = vertexOpacity
		n.Style.Cursor = "pointer"
		n.On(scene.PointerOver, func(e *scene.Event) { c.showTooltip(i, j) })
		n.On(scene.PointerOut, func(e *scene.Event) { c.hideTooltip() })
		if i == c.ctrl.Editable() {
			c.wireDrag(n, i, j)
		}
		vertices[j] = n
	}
	c.vertices = append(c.vertices, vertices)
}

// wireDrag connects a vertex marker to the drag controller.
func (c *Chart) wireDrag(n *scene.Node, model, axis int) {
	n.On(scene.DragStart, func(e *scene.Event) {
		c.active, _ = c.BeginDrag(model, axis)
	})
	n.On(scene.Drag, func(e *scene.Event) {
		c.Drag(c.active, e.DX, e.DY)
	})
	n.On(scene.DragEnd, func(e *scene.Event) {
		c.EndDrag(c.active)
		c.active = nil
	})
}

// BeginDrag starts a gesture on the vertex of the given model and axis.
// It returns false if the vertex is not editable.
func (c *Chart) BeginDrag(model, axis int) (*Gesture, bool) {
	return c.ctrl.Begin(model, axis)
}

// Drag moves the vertex of an active gesture by (dx, dy), in chart
// coordinates.
func (c *Chart) Drag(g *Gesture, dx, dy float64) {
	c.ctrl.Move(g, dx, dy)
}

// EndDrag completes a gesture and calls the edit callback.
func (c *Chart) EndDrag(g *Gesture) {
	c.ctrl.End(g)
}

// DragTo performs a complete drag gesture which moves the vertex of the
// editable model on the given axis towards value.  The value is clamped
// to [0, MaxValue] like for pointer input.  The committed value is
// returned.
func (c *Chart) DragTo(axis int, value float64) (float64, error) {
	model := c.ctrl.Editable()
	g, ok := c.BeginDrag(model, axis)
	if !ok {
		return 0, fmt.Errorf("spider: axis %d out of range", axis)
	}
	d := c.scale.ValueToPoint(value, axis).Sub(g.Pos)
	c.Drag(g, d.X, d.Y)
	c.EndDrag(g)
	return c.data[model][axis], nil
}

// RedrawModel implements the View interface.
func (c *Chart) RedrawModel(model int) {
	outline := c.scale.ModelPath(c.data[model])
	c.areas[model].SetPath(outline)
	c.strokes[model].SetPath(outline)
}

// MoveVertex implements the View interface.
func (c *Chart) MoveVertex(model, axis int, pos vec.Vec2) {
	n := c.vertices[model][axis]
	n.RaiseToTop()
	n.SetCenter(pos)
}

// ShowValue implements the View interface.
func (c *Chart) ShowValue(pos vec.Vec2, value float64) {
	c.tooltip.SetPos(vec.Vec2{X: pos.X - tooltipOffset, Y: pos.Y - tooltipOffset})
	c.tooltip.SetText(FormatPercent(value))
	c.tooltip.Restyle(func(s *scene.Style) { s.Opacity = 1 })
}

func (c *Chart) showTooltip(model, axis int) {
	c.ShowValue(c.vertices[model][axis].Center, c.data[model][axis])
}

func (c *Chart) hideTooltip() {
	c.tooltip.Restyle(func(s *scene.Style) { s.Opacity = 0 })
}

// highlight emphasises the area of one model.  A negative index restores
// the normal appearance of all areas.
func (c *Chart) highlight(model int) {
	for i, a := range c.areas {
		op := c.cfg.AreaOpacity
		switch {
		case model < 0:
		case i == model:
			op = hoverOpacity
		default:
			op = dimmedOpacity
		}
		a.Restyle(func(s *scene.Style) { s.FillOpacity = op })
	}
}

// Data returns the data matrix shared with the caller.
func (c *Chart) Data() [][]float64 {
	return c.data
}

// Config returns the effective configuration of the chart.
func (c *Chart) Config() Config {
	return c.cfg
}

// Scale returns the mapping between values and chart coordinates.
func (c *Chart) Scale() Scale {
	return c.scale
}

// Axes returns the axis end points.
func (c *Chart) Axes() *AxisModel {
	return c.model
}

// AxisNames returns the axis labels, in axis order.
func (c *Chart) AxisNames() []string {
	return c.axes
}

// Root returns the canvas node of the chart.
func (c *Chart) Root() *scene.Node {
	return c.canvas
}

// Vertex returns the marker of the given model and axis.
func (c *Chart) Vertex(model, axis int) *scene.Node {
	return c.vertices[model][axis]
}

// Area returns the filled area of the given model.
func (c *Chart) Area(model int) *scene.Node {
	return c.areas[model]
}

// Outline returns the stroked outline of the given model.
func (c *Chart) Outline(model int) *scene.Node {
	return c.strokes[model]
}

// Tooltip returns the value label node.
func (c *Chart) Tooltip() *scene.Node {
	return c.tooltip
}

// DevicePoint converts a point in chart coordinates to document
// coordinates, e.g. for feeding synthetic pointer input.
func (c *Chart) DevicePoint(p vec.Vec2) vec.Vec2 {
	return scene.Apply(c.areas[0].CTM(), p)
}
