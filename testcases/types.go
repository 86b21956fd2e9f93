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

// Package testcases holds named radar chart fixtures, shared by the tests,
// the benchmarks and the reference image generator.
package testcases

import (
	"slices"

	"seehuhn.de/go/spider"
	"seehuhn.de/go/spider/scene"
)

// TestCase describes one chart.  Zero values for Levels, MaxValue, W and H
// mean that the default configuration is used.
type TestCase struct {
	Name string // lowercase a-z, 0-9 and _ only

	Axes []string
	Data [][]float64

	Levels   int
	MaxValue float64
	W, H     float64

	// Edit, if not nil, is a drag gesture which is applied to the
	// editable model after the chart has been rendered.
	Edit *Edit
}

// Edit moves the vertex of the editable model on one axis to a new value.
type Edit struct {
	Axis  int
	Value float64
}

// Clone returns a copy of the test case with its own data matrix, so that
// edits do not change the fixture.
func (tc TestCase) Clone() TestCase {
	tc.Data = slices.Clone(tc.Data)
	for i, row := range tc.Data {
		tc.Data[i] = slices.Clone(row)
	}
	return tc
}

// Overrides returns the chart options set by the test case.
func (tc TestCase) Overrides() *spider.Overrides {
	o := &spider.Overrides{}
	if tc.Levels > 0 {
		o.Levels = &tc.Levels
	}
	if tc.MaxValue > 0 {
		o.MaxValue = &tc.MaxValue
	}
	if tc.W > 0 {
		o.W = &tc.W
	}
	if tc.H > 0 {
		o.H = &tc.H
	}
	return o
}

// Render draws the test case into a new document and applies the edit, if
// any.  The fixture itself is not modified.
func (tc TestCase) Render(onEdit spider.EditFunc) (*spider.Chart, error) {
	tc = tc.Clone()
	doc := scene.NewDocument()
	doc.AddHost("#" + tc.Name)
	c, err := spider.Render(doc, "#"+tc.Name, tc.Axes, tc.Data, tc.Overrides(), onEdit)
	if err != nil {
		return nil, err
	}
	if tc.Edit != nil {
		if _, err := c.DragTo(tc.Edit.Axis, tc.Edit.Value); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// uniform returns a model with n copies of v.
func uniform(n int, v float64) []float64 {
	res := make([]float64, n)
	for i := range res {
		res[i] = v
	}
	return res
}
