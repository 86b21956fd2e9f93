package spider

import (
	"errors"
	"math"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/spider/scene"
)

type edit struct {
	axis  int
	value float64
}

func newTestChart(t *testing.T, o *Overrides) (*scene.Document, *Chart, *[]edit) {
	t.Helper()
	doc := scene.NewDocument()
	doc.AddHost("#chart")
	data := [][]float64{
		{0.5, 0.5, 0.5},
		{0.2, 0.2, 0.2},
	}
	var edits []edit
	c, err := Render(doc, "#chart", []string{"A", "B", "C"}, data, o, func(axis int, value float64) {
		edits = append(edits, edit{axis, value})
	})
	if err != nil {
		t.Fatal(err)
	}
	return doc, c, &edits
}

func TestRenderErrors(t *testing.T) {
	doc := scene.NewDocument()
	doc.AddHost("#chart")
	axes := []string{"A", "B", "C"}
	data := [][]float64{{0.1, 0.2, 0.3}}

	_, err := Render(doc, "#other", axes, data, nil, nil)
	if !errors.Is(err, ErrNoContainer) {
		t.Errorf("unknown container: got %v", err)
	}
	_, err = Render(doc, "#chart", nil, data, nil, nil)
	if !errors.Is(err, ErrNoAxes) {
		t.Errorf("no axes: got %v", err)
	}
	_, err = Render(doc, "#chart", axes, nil, nil, nil)
	if !errors.Is(err, ErrNoModels) {
		t.Errorf("no models: got %v", err)
	}

	_, err = Render(doc, "#chart", axes, [][]float64{{1, 2, 3}, {1, 2}}, nil, nil)
	var shapeErr *ShapeMismatchError
	if !errors.As(err, &shapeErr) {
		t.Fatalf("ragged data: got %v", err)
	}
	if shapeErr.Model != 1 || shapeErr.Got != 2 || shapeErr.Want != 3 {
		t.Errorf("wrong error details: %+v", shapeErr)
	}

	if n := len(doc.Host("#chart").Children()); n != 0 {
		t.Errorf("failed renders left %d nodes behind", n)
	}
}

func TestRenderInvalidConfig(t *testing.T) {
	cases := []struct {
		name string
		o    *Overrides
	}{
		{"negative_levels", &Overrides{Levels: ptr(-1)}},
		{"zero_max_value", &Overrides{MaxValue: ptr(0.0)}},
		{"negative_max_value", &Overrides{MaxValue: ptr(-2.0)}},
		{"nan_max_value", &Overrides{MaxValue: ptr(math.NaN())}},
		{"zero_width", &Overrides{W: ptr(0.0)}},
		{"negative_height", &Overrides{H: ptr(-10.0)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doc := scene.NewDocument()
			host := doc.AddHost("#chart")
			_, err := Render(doc, "#chart", []string{"A", "B", "C"}, [][]float64{{0.1, 0.2, 0.3}}, tc.o, nil)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("got %v, want ErrInvalidConfig", err)
			}
			if len(host.Children()) != 0 {
				t.Error("a canvas was mounted for an invalid configuration")
			}
		})
	}
}

func TestRenderTwice(t *testing.T) {
	doc, _, _ := newTestChart(t, nil)
	data := [][]float64{{0.3, 0.6, 0.9}, {0.9, 0.6, 0.3}}
	c, err := Render(doc, "#chart", []string{"x", "y", "z"}, data, nil, nil)
	if err != nil {
		t.Fatal(err)
	}

	host := doc.Host("#chart")
	if n := len(host.Children()); n != 1 {
		t.Fatalf("host has %d children after re-rendering, want 1", n)
	}
	if host.Children()[0] != c.Root() {
		t.Error("host does not contain the new chart")
	}
	if n := len(host.SelectAll("spiderArea")); n != 2 {
		t.Errorf("found %d model areas, want 2", n)
	}
	if n := len(host.SelectAll("spiderVertex")); n != 6 {
		t.Errorf("found %d vertex markers, want 6", n)
	}
}

func TestRenderStructure(t *testing.T) {
	cases := []struct {
		levels *int
		want   int
	}{
		{nil, 5},
		{ptr(3), 3},
		{ptr(1), 1},
		{ptr(0), 0},
	}
	for _, tc := range cases {
		_, c, _ := newTestChart(t, &Overrides{Levels: tc.levels})
		root := c.Root()
		if n := len(root.SelectAll("web")); n != tc.want {
			t.Errorf("got %d rings, want %d", n, tc.want)
		}
		if n := len(root.SelectAll("axisLabel")); n != tc.want {
			t.Errorf("got %d level labels, want %d", n, tc.want)
		}
	}

	_, c, _ := newTestChart(t, nil)
	root := c.Root()
	if root.Class != "spider#chart" {
		t.Errorf("canvas has class %q", root.Class)
	}
	if root.Width != 420 || root.Height != 420 {
		t.Errorf("canvas size is %gx%g, want 420x420", root.Width, root.Height)
	}
	if n := len(root.SelectAll("axis")); n != 3 {
		t.Errorf("got %d axes, want 3", n)
	}
	labels := root.SelectAll("axisLabel")
	if labels[0].Text() != "100%" || labels[4].Text() != "20%" {
		t.Errorf("level labels are %q ... %q", labels[0].Text(), labels[4].Text())
	}
	for i, id := range []string{"spiderArea0", "spiderArea1", "spiderStroke1"} {
		if root.FindID(id) == nil {
			t.Errorf("%d: node %q not found", i, id)
		}
	}
}

func TestDragReadOnlyModel(t *testing.T) {
	_, c, edits := newTestChart(t, nil)

	if _, ok := c.BeginDrag(0, 1); ok {
		t.Fatal("drag started on a read-only model")
	}
	c.Drag(&Gesture{Model: 0, Axis: 1}, 100, 100)
	c.EndDrag(&Gesture{Model: 0, Axis: 1})

	if c.Data()[0][1] != 0.5 {
		t.Errorf("read-only value changed to %g", c.Data()[0][1])
	}
	if len(*edits) != 0 {
		t.Errorf("edit callback called: %v", *edits)
	}
	if c.Vertex(0, 0).Listens(scene.DragStart) {
		t.Error("read-only vertex accepts drag events")
	}
}

func TestDragToAxisEnd(t *testing.T) {
	_, c, edits := newTestChart(t, nil)

	g, ok := c.BeginDrag(1, 1)
	if !ok {
		t.Fatal("cannot drag the editable model")
	}
	c.Drag(g, 200, 0)
	c.EndDrag(g)

	if c.Data()[1][1] != 1 {
		t.Errorf("value is %g, want 1", c.Data()[1][1])
	}
	if len(*edits) != 1 || (*edits)[0] != (edit{1, 1}) {
		t.Errorf("got edits %v, want [{1 1}]", *edits)
	}

	end := c.Axes().Endpoint(1)
	if d := c.Vertex(1, 1).Center.Sub(end).Length(); d > 1e-9 {
		t.Errorf("vertex is %g away from the axis end", d)
	}
	if c.Tooltip().Text() != "100%" || c.Tooltip().Style.Opacity != 1 {
		t.Errorf("tooltip shows %q with opacity %g", c.Tooltip().Text(), c.Tooltip().Style.Opacity)
	}
}

func TestDragTo(t *testing.T) {
	cases := []struct {
		axis  int
		value float64
		want  float64
	}{
		{0, 0.7, 0.7},
		{1, 1, 1},
		{1, 5, 1},
		{2, -1, 0},
		{2, 0.33333, 0.3333},
	}
	for _, tc := range cases {
		_, c, edits := newTestChart(t, nil)
		got, err := c.DragTo(tc.axis, tc.value)
		if err != nil {
			t.Errorf("DragTo(%d, %g): %v", tc.axis, tc.value, err)
			continue
		}
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("DragTo(%d, %g) = %g, want %g", tc.axis, tc.value, got, tc.want)
		}
		if len(*edits) != 1 || (*edits)[0].axis != tc.axis {
			t.Errorf("DragTo(%d, %g): got edits %v", tc.axis, tc.value, *edits)
		}
		if c.Data()[0][tc.axis] != 0.5 {
			t.Errorf("DragTo(%d, %g) changed the read-only model", tc.axis, tc.value)
		}
	}

	_, c, _ := newTestChart(t, nil)
	for _, axis := range []int{-1, 3} {
		if _, err := c.DragTo(axis, 0.5); err == nil {
			t.Errorf("DragTo(%d, 0.5) did not fail", axis)
		}
	}
}

func TestPointerGesture(t *testing.T) {
	doc, c, edits := newTestChart(t, nil)

	start := c.DevicePoint(c.Vertex(1, 1).Center)
	doc.PointerDown(start)
	if !doc.Dragging() {
		t.Fatal("pointer down on the vertex did not start a gesture")
	}
	doc.PointerMove(start.Add(vec.Vec2{X: 30, Y: 0}))
	doc.PointerUp(start.Add(vec.Vec2{X: 50, Y: -20}))

	// x moves by 50 along an axis which ends at x = 75√3
	want := RoundValue(0.2 + 50/(75*math.Sqrt(3)))
	if got := c.Data()[1][1]; math.Abs(got-want) > 1e-9 {
		t.Errorf("value is %g, want %g", got, want)
	}
	if len(*edits) != 1 || (*edits)[0].axis != 1 || (*edits)[0].value != c.Data()[1][1] {
		t.Errorf("got edits %v", *edits)
	}
	for j, v := range c.Data()[1] {
		if j != 1 && v != 0.2 {
			t.Errorf("axis %d changed to %g", j, v)
		}
	}

	// the marker stays on the axis
	p := c.Vertex(1, 1).Center
	end := c.Axes().Endpoint(1)
	if math.Abs(p.X*end.Y-p.Y*end.X) > 1e-9 {
		t.Errorf("vertex %v left the axis towards %v", p, end)
	}
}

func TestPartialRedraw(t *testing.T) {
	_, c, _ := newTestChart(t, nil)

	before := make(map[*scene.Node]uint64)
	c.Root().Walk(func(n *scene.Node, _ matrix.Matrix) {
		before[n] = n.Revision()
	})

	g, _ := c.BeginDrag(1, 2)
	c.Drag(g, -10, 0)

	changed := make(map[*scene.Node]bool)
	c.Root().Walk(func(n *scene.Node, _ matrix.Matrix) {
		if n.Revision() != before[n] {
			changed[n] = true
		}
	})
	want := []*scene.Node{c.Area(1), c.Outline(1), c.Vertex(1, 2), c.Tooltip()}
	for _, n := range want {
		if !changed[n] {
			t.Errorf("node %s/%q was not updated", n.Kind, n.Class)
		}
		delete(changed, n)
	}
	for n := range changed {
		t.Errorf("unexpected update of %s/%q", n.Kind, n.Class)
	}

	// the dragged marker is painted last within its model
	siblings := c.Vertex(1, 2).Parent().Children()
	if siblings[len(siblings)-1] != c.Vertex(1, 2) {
		t.Error("dragged vertex was not raised")
	}
}

func TestHoverHighlight(t *testing.T) {
	doc, c, _ := newTestChart(t, nil)

	// a point inside model 0 (value 0.5) but outside model 1 (value 0.2)
	p := c.DevicePoint(c.Scale().ValueToPoint(0.4, 0))
	doc.PointerMove(p)
	if op := c.Area(0).Style.FillOpacity; op != hoverOpacity {
		t.Errorf("hovered area has opacity %g", op)
	}
	if op := c.Area(1).Style.FillOpacity; op != dimmedOpacity {
		t.Errorf("other area has opacity %g", op)
	}

	doc.PointerMove(vec.Vec2{X: 1, Y: 1})
	for i := range 2 {
		if op := c.Area(i).Style.FillOpacity; op != c.Config().AreaOpacity {
			t.Errorf("area %d has opacity %g after hover", i, op)
		}
	}
}

func TestVertexTooltip(t *testing.T) {
	doc, c, _ := newTestChart(t, nil)

	doc.PointerMove(c.DevicePoint(c.Vertex(0, 2).Center))
	tip := c.Tooltip()
	if tip.Style.Opacity != 1 || tip.Text() != "50%" {
		t.Errorf("tooltip shows %q with opacity %g", tip.Text(), tip.Style.Opacity)
	}
	want := c.Vertex(0, 2).Center.Sub(vec.Vec2{X: tooltipOffset, Y: tooltipOffset})
	if tip.Pos != want {
		t.Errorf("tooltip at %v, want %v", tip.Pos, want)
	}

	doc.PointerMove(vec.Vec2{X: 1, Y: 1})
	if tip.Style.Opacity != 0 {
		t.Error("tooltip still visible")
	}
}

func ptr[T any](v T) *T {
	return &v
}
