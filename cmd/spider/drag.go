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

	"github.com/spf13/cobra"

	"seehuhn.de/go/spider"
)

var (
	dragAxis  int
	dragValue float64
	dragOut   string
)

var dragCmd = &cobra.Command{
	Use:   "drag FILE",
	Short: "Move a vertex of the editable model and print the result",
	Long: `Drag simulates a pointer gesture which moves the vertex of the last
model on the given axis towards a new value.  The value is clamped to the
range of the axis, exactly as for interactive input.  The committed edit is
printed, and the edited chart is written if an output file is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		_, c, err := loadChart(args[0], func(axis int, value float64) {
			logger.Debug("edit committed", "axis", axis, "value", value)
		})
		if err != nil {
			return err
		}

		names := c.AxisNames()
		if dragAxis < 0 || dragAxis >= len(names) {
			return fmt.Errorf("axis %d out of range 0..%d", dragAxis, len(names)-1)
		}
		model := len(c.Data()) - 1
		old := c.Data()[model][dragAxis]
		value, err := c.DragTo(dragAxis, dragValue)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s -> %s\n",
			names[dragAxis], spider.FormatValue(old), spider.FormatValue(value))

		if dragOut == "" {
			return nil
		}
		return writeChart(dragOut, c.Root())
	},
}

func init() {
	dragCmd.Flags().IntVar(&dragAxis, "axis", 0, "index of the axis")
	dragCmd.Flags().Float64Var(&dragValue, "value", 0, "target value")
	dragCmd.Flags().StringVarP(&dragOut, "output", "o", "", "write the edited chart to this file")
	dragCmd.MarkFlagRequired("value")
	rootCmd.AddCommand(dragCmd)
}
