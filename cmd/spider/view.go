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
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spider"
	"seehuhn.de/go/spider/raster"
	"seehuhn.de/go/spider/scene"
)

var viewScale float64

var viewCmd = &cobra.Command{
	Use:   "view FILE",
	Short: "Show a chart in a window and edit it with the mouse",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, c, err := loadChart(args[0], func(axis int, value float64) {
			logger.Info("edit", "axis", axis, "value", spider.FormatValue(value))
		})
		if err != nil {
			return err
		}

		root := c.Root()
		w := int(math.Ceil(root.Width))
		h := int(math.Ceil(root.Height))
		v := &viewer{
			doc:    doc,
			root:   root,
			frame:  ebiten.NewImage(w, h),
			width:  w,
			height: h,
		}

		ebiten.SetWindowTitle("spider: " + args[0])
		ebiten.SetWindowSize(int(float64(w)*viewScale), int(float64(h)*viewScale))
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		return ebiten.RunGame(v)
	},
}

func init() {
	viewCmd.Flags().Float64Var(&viewScale, "scale", 1.5, "initial window zoom")
	rootCmd.AddCommand(viewCmd)
}

// viewer feeds mouse input into a scene document and shows the rendered
// chart.  The chart is only rasterised again when the scene has changed.
type viewer struct {
	doc  *scene.Document
	root *scene.Node

	frame         *ebiten.Image
	width, height int
	drawn         bool
	revision      uint64

	pressed bool
}

func (v *viewer) Update() error {
	x, y := ebiten.CursorPosition()
	p := vec.Vec2{X: float64(x), Y: float64(y)}
	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	switch {
	case down && !v.pressed:
		v.doc.PointerDown(p)
	case !down && v.pressed:
		v.doc.PointerUp(p)
	default:
		v.doc.PointerMove(p)
	}
	v.pressed = down
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if rev := v.root.TreeRevision(); !v.drawn || rev != v.revision {
		img, err := raster.Render(v.root, color.White)
		if err != nil {
			logger.Error("cannot render chart", "error", err)
			return
		}
		v.frame.WritePixels(img.Pix)
		v.revision = rev
		v.drawn = true
	}
	screen.DrawImage(v.frame, nil)
}

// Layout keeps the logical screen at the size of the chart, so that cursor
// positions are in chart pixels whatever the size of the window.
func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return v.width, v.height
}

var _ ebiten.Game = (*viewer)(nil)
