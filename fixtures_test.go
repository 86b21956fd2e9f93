package spider_test

import (
	"bytes"
	"maps"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/spider/scene"
	"seehuhn.de/go/spider/testcases"
)

// TestFixtures renders every named fixture and checks the invariants which
// hold for all charts.
func TestFixtures(t *testing.T) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				var edits int
				c, err := tc.Render(func(axis int, value float64) {
					edits++
				})
				if err != nil {
					t.Fatal(err)
				}

				cfg := c.Config()
				root := c.Root()
				if n := len(root.SelectAll("web")); n != cfg.Levels {
					t.Errorf("got %d rings, want %d", n, cfg.Levels)
				}
				if n := len(root.SelectAll("axis")); n != len(tc.Axes) {
					t.Errorf("got %d axes, want %d", n, len(tc.Axes))
				}
				if n := len(root.SelectAll("spiderVertex")); n != len(tc.Axes)*len(tc.Data) {
					t.Errorf("got %d vertices, want %d", n, len(tc.Axes)*len(tc.Data))
				}

				for i, row := range c.Data() {
					for j, v := range row {
						if v < 0 || v > cfg.MaxValue {
							t.Errorf("value [%d][%d] = %g is outside [0, %g]", i, j, v, cfg.MaxValue)
						}
					}
				}

				if tc.Edit != nil {
					if edits != 1 {
						t.Errorf("edit callback called %d times", edits)
					}
					got := c.Data()[len(tc.Data)-1][tc.Edit.Axis]
					want := math.Max(0, math.Min(tc.Edit.Value, cfg.MaxValue))
					if math.Abs(got-want) > 1e-4 {
						t.Errorf("edited value is %g, want %g", got, want)
					}
				}

				buf := &bytes.Buffer{}
				if err := scene.WriteSVG(buf, root); err != nil {
					t.Fatal(err)
				}
				if !strings.Contains(buf.String(), "<svg") {
					t.Error("no svg element in the output")
				}
			})
		}
	}
}

func TestFixturesUnchanged(t *testing.T) {
	tc := testcases.All["edit"][0]
	before := tc.Data[len(tc.Data)-1][tc.Edit.Axis]
	if _, err := tc.Render(nil); err != nil {
		t.Fatal(err)
	}
	if after := tc.Data[len(tc.Data)-1][tc.Edit.Axis]; after != before {
		t.Errorf("rendering changed the fixture from %g to %g", before, after)
	}
}
