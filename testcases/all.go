package testcases

// All contains all test cases, grouped by category.
// The category name is used as a prefix in reference image filenames.
var All = map[string][]TestCase{
	"basic":      basicCases,
	"degenerate": degenerateCases,
	"scale":      scaleCases,
	"labels":     labelCases,
	"edit":       editCases,
}

var basicCases = []TestCase{
	{
		Name: "three_axes",
		Axes: []string{"A", "B", "C"},
		Data: [][]float64{
			{0.5, 0.5, 0.5},
			{0.2, 0.2, 0.2},
		},
	},
	{
		Name: "square",
		Axes: []string{"north", "east", "south", "west"},
		Data: [][]float64{
			{0.9, 0.3, 0.6, 0.4},
			{0.4, 0.8, 0.2, 0.7},
		},
	},
	{
		Name: "smartphones",
		Axes: []string{
			"Battery Life", "Brand", "Contract Cost", "Design And Quality",
			"Have Internet Connectivity", "Large Screen", "Price Of Device",
			"To Be A Smartphone",
		},
		Data: [][]float64{
			{0.22, 0.28, 0.29, 0.17, 0.22, 0.02, 0.21, 0.50},
			{0.27, 0.16, 0.35, 0.13, 0.20, 0.13, 0.35, 0.38},
			{0.26, 0.10, 0.30, 0.14, 0.22, 0.04, 0.41, 0.30},
		},
	},
	{
		Name: "many_models",
		Axes: []string{"a", "b", "c", "d", "e", "f"},
		Data: [][]float64{
			{0.1, 0.2, 0.3, 0.4, 0.5, 0.6},
			{0.6, 0.5, 0.4, 0.3, 0.2, 0.1},
			{0.9, 0.1, 0.9, 0.1, 0.9, 0.1},
			{0.3, 0.3, 0.3, 0.3, 0.3, 0.3},
			{1.0, 0.8, 0.6, 0.8, 1.0, 0.8},
			{0.5, 0.7, 0.5, 0.7, 0.5, 0.7},
			{0.2, 0.9, 0.2, 0.9, 0.2, 0.9},
			{0.7, 0.6, 0.5, 0.4, 0.3, 0.2},
			{0.4, 0.4, 0.8, 0.8, 0.4, 0.4},
			{0.8, 0.2, 0.4, 0.6, 0.8, 0.2},
			{0.5, 0.5, 0.5, 0.5, 0.5, 0.5},
		},
	},
}

var degenerateCases = []TestCase{
	{
		Name: "single_axis",
		Axes: []string{"only"},
		Data: [][]float64{{0.7}},
	},
	{
		Name: "two_axes",
		Axes: []string{"up", "down"},
		Data: [][]float64{{0.8, 0.4}, {0.3, 0.9}},
	},
	{
		Name: "all_zero",
		Axes: []string{"a", "b", "c", "d", "e"},
		Data: [][]float64{uniform(5, 0), uniform(5, 0)},
	},
	{
		Name: "all_max",
		Axes: []string{"a", "b", "c", "d", "e"},
		Data: [][]float64{uniform(5, 1)},
	},
	{
		Name: "many_axes",
		Axes: []string{
			"1", "2", "3", "4", "5", "6", "7", "8", "9", "10",
			"11", "12", "13", "14", "15", "16", "17", "18", "19", "20",
			"21", "22", "23", "24",
		},
		Data: [][]float64{uniform(24, 0.75), uniform(24, 0.25)},
	},
}

var scaleCases = []TestCase{
	{
		Name:     "max_ten",
		Axes:     []string{"speed", "power", "range", "comfort", "price"},
		Data:     [][]float64{{7, 4, 9, 3, 6}, {2, 8, 5, 6, 4}},
		MaxValue: 10,
		Levels:   10,
	},
	{
		Name:   "three_levels",
		Axes:   []string{"x", "y", "z", "w"},
		Data:   [][]float64{{0.5, 0.9, 0.1, 0.7}},
		Levels: 3,
	},
	{
		Name: "wide",
		Axes: []string{"a", "b", "c", "d", "e", "f"},
		Data: [][]float64{{0.5, 0.6, 0.7, 0.8, 0.9, 1.0}},
		W:    500,
		H:    200,
	},
	{
		Name: "small",
		Axes: []string{"a", "b", "c", "d", "e"},
		Data: [][]float64{{0.5, 0.6, 0.7, 0.8, 0.9}, {0.3, 0.3, 0.3, 0.3, 0.3}},
		W:    80,
		H:    80,
	},
}

var labelCases = []TestCase{
	{
		Name: "long_labels",
		Axes: []string{
			"A rather long axis label which has to be wrapped",
			"Short",
			"Supercalifragilisticexpialidocious",
			"Two words",
		},
		Data: [][]float64{{0.6, 0.6, 0.6, 0.6}},
	},
	{
		Name: "unicode",
		Axes: []string{"Größe", "Gewicht", "Ähnlichkeit"},
		Data: [][]float64{{0.3, 0.6, 0.9}},
	},
}

var editCases = []TestCase{
	{
		Name: "to_axis_end",
		Axes: []string{"A", "B", "C"},
		Data: [][]float64{{0.5, 0.5, 0.5}, {0.2, 0.2, 0.2}},
		Edit: &Edit{Axis: 1, Value: 1},
	},
	{
		Name: "to_origin",
		Axes: []string{"north", "east", "south", "west"},
		Data: [][]float64{{0.9, 0.3, 0.6, 0.4}, {0.4, 0.8, 0.2, 0.7}},
		Edit: &Edit{Axis: 0, Value: 0},
	},
	{
		Name:     "vertical_axis",
		Axes:     []string{"north", "east", "south", "west"},
		Data:     [][]float64{{5, 5, 5, 5}, {2, 4, 6, 8}},
		MaxValue: 10,
		Edit:     &Edit{Axis: 2, Value: 9.5},
	},
}
