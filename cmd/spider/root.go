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
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"seehuhn.de/go/spider"
	"seehuhn.de/go/spider/internal/chartfile"
	"seehuhn.de/go/spider/scene"
)

var (
	verbose     bool
	optionsPath string
	logger      *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "spider",
	Short:         "Draw and edit radar charts",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log chart construction and gestures")
	rootCmd.PersistentFlags().StringVar(&optionsPath, "options", "", "TOML file with chart options")
}

// loadChart reads a chart description and renders it into a new document.
func loadChart(fname string, onEdit spider.EditFunc) (*scene.Document, *spider.Chart, error) {
	desc, err := chartfile.Load(fname, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", fname, err)
	}
	if optionsPath != "" {
		err := chartfile.LoadOptions(optionsPath, &desc.Options, logger)
		if err != nil {
			return nil, nil, fmt.Errorf("loading options: %w", err)
		}
	}
	desc.Options.Logger = logger

	doc := scene.NewDocument()
	doc.AddHost(desc.Container)
	c, err := spider.Render(doc, desc.Container, desc.Axes, desc.Models, &desc.Options, onEdit)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", fname, err)
	}
	return doc, c, nil
}
