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

// Command spider draws radar charts from TOML or XLSX files.
//
// Usage:
//
//	spider render FILE -o chart.png
//	spider drag FILE --axis 2 --value 0.8 -o chart.svg
//	spider view FILE
//
// The output format of render and drag is chosen by the file name
// extension: ".png", ".svg" or ".pdf".
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "spider:", err)
		os.Exit(1)
	}
}
