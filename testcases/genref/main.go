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

// Command genref writes reference images for all chart fixtures.
// Every fixture is written as SVG, PNG and PDF, so that the output of the
// three back ends can be compared side by side.
package main

import (
	"flag"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/spider/pdfexport"
	"seehuhn.de/go/spider/raster"
	"seehuhn.de/go/spider/scene"
	"seehuhn.de/go/spider/testcases"
)

func main() {
	refDir := flag.String("o", "testdata/reference", "output directory")
	flag.Parse()

	if err := os.MkdirAll(*refDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := generate(tc, filepath.Join(*refDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func generate(tc testcases.TestCase, base string) error {
	c, err := tc.Render(nil)
	if err != nil {
		return err
	}
	root := c.Root()

	if err := pdfexport.Write(base+".pdf", root); err != nil {
		return err
	}
	if err := writeFile(base+".png", func(f *os.File) error {
		return raster.WritePNG(f, root)
	}); err != nil {
		return err
	}
	return writeFile(base+".svg", func(f *os.File) error {
		return scene.WriteSVG(f, root)
	})
}

func writeFile(fname string, write func(*os.File) error) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = write(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	return err
}
