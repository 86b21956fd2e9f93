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

// Package chartfile reads chart descriptions from files.
//
// Two formats are supported.  A TOML file lists the axes, the models and
// optional chart options:
//
//	container = "#chart"
//	axes = ["Battery Life", "Brand", "Price"]
//	models = [
//	    [0.22, 0.28, 0.21],
//	    [0.27, 0.16, 0.35],
//	]
//
//	[options]
//	levels = 4
//	colors = ["#1f77b4", "#ff7f0e"]
//
// In an XLSX workbook, the first row of the first sheet holds the axis
// names and every following row holds one model.
package chartfile

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/xuri/excelize/v2"

	"seehuhn.de/go/spider"
)

// DefaultContainer is the container selector used when a file does not
// name one.
const DefaultContainer = "#chart"

// ErrFormat is returned for files with an unknown extension.
var ErrFormat = errors.New("chartfile: unknown file format")

// Chart is a chart description, as read from a file.
type Chart struct {
	Container string           `toml:"container"`
	Axes      []string         `toml:"axes"`
	Models    [][]float64      `toml:"models"`
	Options   spider.Overrides `toml:"options"`
}

// Load reads a chart description.  The format is chosen by the file name
// extension, ".toml" or ".xlsx".  If logger is not nil, keys in TOML files
// which are not understood are reported at debug level.
func Load(fname string, logger *slog.Logger) (*Chart, error) {
	switch strings.ToLower(filepath.Ext(fname)) {
	case ".toml":
		f, err := os.Open(fname)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return ReadTOML(f, logger)
	case ".xlsx":
		return LoadXLSX(fname)
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, fname)
	}
}

// ReadTOML reads a chart description in TOML format.
func ReadTOML(r io.Reader, logger *slog.Logger) (*Chart, error) {
	c := &Chart{}
	md, err := toml.NewDecoder(r).Decode(c)
	if err != nil {
		return nil, err
	}
	if logger != nil {
		for _, key := range md.Undecoded() {
			logger.Debug("ignoring unknown key", "key", key.String())
		}
	}
	if c.Container == "" {
		c.Container = DefaultContainer
	}
	return c, nil
}

// LoadOptions decodes a TOML file, which contains the fields of the
// [options] table at the top level, onto o.  Fields of o which are not
// mentioned in the file keep their values.
func LoadOptions(fname string, o *spider.Overrides, logger *slog.Logger) error {
	md, err := toml.DecodeFile(fname, o)
	if err != nil {
		return err
	}
	if logger != nil {
		for _, key := range md.Undecoded() {
			logger.Debug("ignoring unknown option", "key", key.String())
		}
	}
	return nil
}

// LoadXLSX reads the axes and models from the first sheet of an XLSX
// workbook.
func LoadXLSX(fname string) (*Chart, error) {
	f, err := excelize.OpenFile(fname)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: no sheets", fname)
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	return fromRows(rows)
}

// fromRows converts spreadsheet rows into a chart description.  Empty rows
// are skipped.
func fromRows(rows [][]string) (*Chart, error) {
	c := &Chart{Container: DefaultContainer}
	if len(rows) == 0 {
		return c, nil
	}

	for _, name := range rows[0] {
		c.Axes = append(c.Axes, strings.TrimSpace(name))
	}

	for i, row := range rows[1:] {
		if isBlank(row) {
			continue
		}
		model := make([]float64, len(c.Axes))
		for j := range model {
			cell, _ := excelize.CoordinatesToCellName(j+1, i+2)
			if j >= len(row) || strings.TrimSpace(row[j]) == "" {
				return nil, fmt.Errorf("cell %s: missing value", cell)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j]), 64)
			if err != nil {
				return nil, fmt.Errorf("cell %s: invalid number %q", cell, row[j])
			}
			model[j] = v
		}
		if len(row) > len(c.Axes) && !isBlank(row[len(c.Axes):]) {
			cell, _ := excelize.CoordinatesToCellName(len(c.Axes)+1, i+2)
			return nil, fmt.Errorf("cell %s: value without an axis", cell)
		}
		c.Models = append(c.Models, model)
	}
	return c, nil
}

func isBlank(row []string) bool {
	for _, s := range row {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	return true
}
