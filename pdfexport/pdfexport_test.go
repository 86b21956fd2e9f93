package pdfexport

import (
	"bytes"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spider"
	"seehuhn.de/go/spider/scene"
)

func TestWriteChart(t *testing.T) {
	doc := scene.NewDocument()
	doc.AddHost("#chart")
	data := [][]float64{{0.4, 0.8, 0.6, 0.2}, {0.5, 0.5, 0.5, 0.5}}
	c, err := spider.Render(doc, "#chart", []string{"a", "b", "c", "d"}, data, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	fname := filepath.Join(t.TempDir(), "chart.pdf")
	if err := Write(fname, doc.Root()); err != nil {
		t.Fatal(err)
	}
	body, err := os.ReadFile(fname)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Errorf("output does not start with a PDF header: %q", body[:min(len(body), 10)])
	}
	if c.Root() == nil {
		t.Error("chart has no canvas")
	}
}

func TestWriteNoCanvas(t *testing.T) {
	g := scene.NewGroup("g")
	g.Append(scene.NewCircle("dot", vec.Vec2{X: 1, Y: 1}, 1))
	err := Write(filepath.Join(t.TempDir(), "x.pdf"), g)
	if !errors.Is(err, scene.ErrNoCanvas) {
		t.Errorf("got %v, want ErrNoCanvas", err)
	}
}

func TestOverWhite(t *testing.T) {
	cases := []struct {
		in      color.Color
		alpha   float64
		r, g, b float64
	}{
		{color.Black, 1, 0, 0, 0},
		{color.Black, 0.25, 0.75, 0.75, 0.75},
		{color.NRGBA{R: 255, A: 255}, 0.5, 1, 0.5, 0.5},
		{color.NRGBA{B: 255, A: 128}, 1, 127.0 / 255, 127.0 / 255, 1},
		{color.White, 0.1, 1, 1, 1},
	}
	for i, tc := range cases {
		r, g, b := overWhite(tc.in, tc.alpha)
		if !near(r, tc.r) || !near(g, tc.g) || !near(b, tc.b) {
			t.Errorf("%d: got (%.4f, %.4f, %.4f), want (%.4f, %.4f, %.4f)",
				i, r, g, b, tc.r, tc.g, tc.b)
		}
	}
}

func near(a, b float64) bool {
	return a-b < 1e-9 && b-a < 1e-9
}
