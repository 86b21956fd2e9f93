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

package spider

import (
	"log/slog"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Gesture is the state of one drag gesture on one vertex.  A gesture is
// created by Controller.Begin, updated by Controller.Move and discarded
// after Controller.End.
type Gesture struct {
	Model int // index of the model, always the editable one
	Axis  int // index of the axis the vertex lives on

	// Origin is the vertex position when the gesture started.
	Origin vec.Vec2

	// Pos is the current vertex position.  It is the source of truth for
	// the next movement step; the rendered marker only mirrors it.
	Pos vec.Vec2

	// Value is the value derived from Pos, rounded to ValuePrecision
	// decimal places.
	Value float64
}

// View is the part of the rendering bridge which the controller drives
// during a gesture.
type View interface {
	// RedrawModel recomputes the area and outline of one model from the
	// data matrix.
	RedrawModel(model int)

	// MoveVertex places the marker of one (model, axis) pair.
	MoveVertex(model, axis int, pos vec.Vec2)

	// ShowValue displays a transient label with the value near pos.
	ShowValue(pos vec.Vec2, value float64)
}

// EditFunc is called once for every completed gesture, with the final
// value of the edited axis.
type EditFunc func(axis int, value float64)

// Controller confines dragged vertices to their axes and writes the
// resulting values into the data matrix.  The controller is the only
// writer of the data matrix.
//
// Only the last model of the data matrix can be edited.  Gestures on other
// models are ignored.
type Controller struct {
	scale  Scale
	axes   *AxisModel
	data   [][]float64
	view   View
	onEdit EditFunc
	log    *slog.Logger
}

// NewController returns a controller which edits the last row of data.
// The data matrix is shared with the caller and modified in place.
// Both view and onEdit may be nil.
func NewController(s Scale, axes *AxisModel, data [][]float64, view View, onEdit EditFunc, log *slog.Logger) *Controller {
	if log == nil {
		log = discardLogger
	}
	return &Controller{
		scale:  s,
		axes:   axes,
		data:   data,
		view:   view,
		onEdit: onEdit,
		log:    log,
	}
}

// Editable returns the index of the editable model.
func (c *Controller) Editable() int {
	return len(c.data) - 1
}

// Begin starts a gesture on the vertex of the given model and axis.  If
// the model is not the editable one, or the indices are out of range, the
// second return value is false and no gesture is started.
func (c *Controller) Begin(model, axis int) (*Gesture, bool) {
	if model != c.Editable() || model < 0 || axis < 0 || axis >= c.axes.Len() {
		return nil, false
	}
	v := c.data[model][axis]
	pos := c.scale.ValueToPoint(v, axis)
	c.log.Debug("drag start", "model", model, "axis", axis, "value", v)
	return &Gesture{
		Model:  model,
		Axis:   axis,
		Origin: pos,
		Pos:    pos,
		Value:  v,
	}, true
}

// Move applies one pointer movement step to the gesture.  The vertex is
// moved along its axis, the new value is written to the data matrix and
// the view is updated.
func (c *Controller) Move(g *Gesture, dx, dy float64) {
	if g == nil || g.Model != c.Editable() {
		return
	}

	end := c.axes.Endpoint(g.Axis)
	pos, value := Constrain(end, g.Pos, dx, dy, c.scale.MaxValue)
	g.Pos = pos
	g.Value = value

	// update the data and all views of it in one step, so that the data
	// and the scene are consistent when the handler returns
	c.data[g.Model][g.Axis] = value
	if c.view != nil {
		c.view.MoveVertex(g.Model, g.Axis, pos)
		c.view.RedrawModel(g.Model)
		c.view.ShowValue(pos, value)
	}
}

// End completes the gesture and reports the committed value.
func (c *Controller) End(g *Gesture) {
	if g == nil || g.Model != c.Editable() {
		return
	}
	value := c.data[g.Model][g.Axis]
	c.log.Debug("drag end", "model", g.Model, "axis", g.Axis, "value", value)
	if c.onEdit != nil {
		c.onEdit(g.Axis, value)
	}
}

// Constrain moves a vertex from pos by (dx, dy), projected onto the axis
// from the origin to end.  It returns the new vertex position and the
// corresponding value in [0, maxValue], rounded to ValuePrecision decimal
// places.
//
// Movement is projected onto the x-coordinate, or onto the y-coordinate if
// the axis is vertical.  Positions beyond the end point are clamped to the
// end point; positions at or beyond the origin snap to the origin.
func Constrain(end, pos vec.Vec2, dx, dy, maxValue float64) (vec.Vec2, float64) {
	var newPos vec.Vec2
	var ratio float64
	if isVertical(end) {
		y := clampToAxis(pos.Y+dy, end.Y)
		newPos = vec.Vec2{X: 0, Y: y}
		ratio = y / end.Y
	} else {
		x := clampToAxis(pos.X+dx, end.X)
		newPos = vec.Vec2{X: x, Y: x * end.Y / end.X}
		ratio = x / end.X
	}
	// rounding must not push the value past the end of the axis
	return newPos, min(RoundValue(maxValue*ratio), maxValue)
}

// clampToAxis restricts the coordinate c to the segment between 0 and the
// axis end coordinate m.
func clampToAxis(c, m float64) float64 {
	if c*m <= 0 {
		return 0
	}
	if math.Abs(c) > math.Abs(m) {
		return m
	}
	return c
}

// ValuePrecision is the number of decimal places kept for edited values.
const ValuePrecision = 4

// RoundValue rounds v to ValuePrecision decimal places.
func RoundValue(v float64) float64 {
	const scale = 1e4
	v = math.Round(v*scale) / scale
	if v == 0 {
		return 0 // avoid negative zero
	}
	return v
}
