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
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"seehuhn.de/go/spider/scene"
)

// lineHeight is the distance between wrapped label lines, in em.
const lineHeight = 1.4

// TextWidth returns the width of s in pixels at the given font size.
// Widths are measured with the basic 7x13 font, scaled to the font size.
func TextWidth(s string, fontSize float64) float64 {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s)
	return float64(w) / 64 * fontSize / float64(face.Height)
}

// WrapText breaks text into lines no wider than width, measured by
// measure.  Words are never split, so a single word wider than width
// occupies a line by itself.  The first line has baseline offset dy, each
// following line is lineHeight em further down.
func WrapText(text string, width, dy float64, measure func(string) float64) []scene.TextLine {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []scene.TextLine{{DY: dy}}
	}

	var lines []scene.TextLine
	var line []string
	flush := func() {
		lines = append(lines, scene.TextLine{
			Text: strings.Join(line, " "),
			DY:   dy + float64(len(lines))*lineHeight,
		})
		line = line[:0]
	}
	for _, w := range words {
		line = append(line, w)
		if len(line) > 1 && measure(strings.Join(line, " ")) > width {
			line = line[:len(line)-1]
			flush()
			line = append(line, w)
		}
	}
	flush()
	return lines
}

// FormatPercent formats a fraction as a whole percentage, e.g. 0.5 as "50%".
func FormatPercent(v float64) string {
	p := math.Round(v * 100)
	if p == 0 {
		p = 0 // avoid "-0%"
	}
	return strconv.FormatFloat(p, 'f', 0, 64) + "%"
}

// FormatValue formats v with ValuePrecision decimal places.
func FormatValue(v float64) string {
	return strconv.FormatFloat(RoundValue(v), 'f', ValuePrecision, 64)
}
