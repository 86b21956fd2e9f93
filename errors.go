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
	"errors"
	"fmt"
	"log/slog"
)

var (
	// ErrNoAxes is returned when a chart is rendered without axes.
	ErrNoAxes = errors.New("spider: no axes")

	// ErrNoModels is returned when a chart is rendered without data.
	ErrNoModels = errors.New("spider: no models")

	// ErrNoContainer is returned when the container selector does not
	// name a host node of the document.
	ErrNoContainer = errors.New("spider: container not found")

	// ErrInvalidConfig is returned when chart options are out of range.
	ErrInvalidConfig = errors.New("spider: invalid configuration")
)

// ShapeMismatchError indicates that a model does not have exactly one
// value per axis.
type ShapeMismatchError struct {
	Model int // index of the offending model
	Got   int // number of values in the model
	Want  int // number of axes
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("spider: model %d has %d values, want %d", e.Model, e.Got, e.Want)
}

// checkShape verifies that every model has one value per axis.
func checkShape(axes int, data [][]float64) error {
	for i, row := range data {
		if len(row) != axes {
			return &ShapeMismatchError{Model: i, Got: len(row), Want: axes}
		}
	}
	return nil
}

var discardLogger = slog.New(slog.DiscardHandler)
