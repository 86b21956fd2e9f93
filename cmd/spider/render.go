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

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"seehuhn.de/go/spider/pdfexport"
	"seehuhn.de/go/spider/raster"
	"seehuhn.de/go/spider/scene"
)

var renderOut string

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Write a chart as PNG, SVG or PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, c, err := loadChart(args[0], nil)
		if err != nil {
			return err
		}
		return writeChart(renderOut, c.Root())
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "output", "o", "chart.svg", "output file")
	rootCmd.AddCommand(renderCmd)
}

// writeChart writes the scene tree n to fname, in the format given by the
// file name extension.
func writeChart(fname string, n *scene.Node) error {
	var err error
	switch ext := strings.ToLower(filepath.Ext(fname)); ext {
	case ".pdf":
		err = pdfexport.Write(fname, n)
	case ".png", ".svg":
		var f *os.File
		f, err = os.Create(fname)
		if err != nil {
			return err
		}
		if ext == ".png" {
			err = raster.WritePNG(f, n)
		} else {
			err = scene.WriteSVG(f, n)
		}
		if closeErr := f.Close(); err == nil {
			err = closeErr
		}
	default:
		return fmt.Errorf("%s: unsupported output format %q", fname, ext)
	}
	if err != nil {
		return fmt.Errorf("writing %s: %w", fname, err)
	}
	logger.Info("chart written", "file", fname)
	return nil
}
