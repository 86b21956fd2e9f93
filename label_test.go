package spider

import (
	"fmt"
	"testing"

	"seehuhn.de/go/spider/scene"
)

func TestWrapText(t *testing.T) {
	// every character is 1 unit wide
	measure := func(s string) float64 { return float64(len(s)) }

	cases := []struct {
		text  string
		width float64
		want  []string
	}{
		{"", 10, []string{""}},
		{"short", 10, []string{"short"}},
		{"one two three", 7, []string{"one two", "three"}},
		{"one two three", 100, []string{"one two three"}},
		{"a verylongword b", 5, []string{"a", "verylongword", "b"}},
		{"  spaced   out  ", 20, []string{"spaced out"}},
	}
	for _, tc := range cases {
		lines := WrapText(tc.text, tc.width, 0.35, measure)
		var got []string
		for _, l := range lines {
			got = append(got, l.Text)
		}
		if fmt.Sprint(got) != fmt.Sprint(tc.want) {
			t.Errorf("WrapText(%q, %g) = %q, want %q", tc.text, tc.width, got, tc.want)
		}
	}
}

func TestWrapTextOffsets(t *testing.T) {
	measure := func(s string) float64 { return float64(len(s)) }
	lines := WrapText("aa bb cc", 2, 0.35, measure)
	want := []scene.TextLine{
		{Text: "aa", DY: 0.35},
		{Text: "bb", DY: 1.75},
		{Text: "cc", DY: 3.15},
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i].Text != want[i].Text || !near(lines[i].DY, want[i].DY) {
			t.Errorf("line %d: got %v, want %v", i, lines[i], want[i])
		}
	}
}

func TestTextWidth(t *testing.T) {
	if w := TextWidth("abc", 13); w != 21 {
		t.Errorf("TextWidth(abc, 13) = %g, want 21", w)
	}
	if w := TextWidth("abc", 26); w != 42 {
		t.Errorf("TextWidth(abc, 26) = %g, want 42", w)
	}
	if w := TextWidth("", 11); w != 0 {
		t.Errorf("TextWidth of empty string is %g", w)
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		v       float64
		percent string
		value   string
	}{
		{0, "0%", "0.0000"},
		{0.5, "50%", "0.5000"},
		{1, "100%", "1.0000"},
		{0.2, "20%", "0.2000"},
		{0.33333, "33%", "0.3333"},
		{-0.0001, "0%", "-0.0001"},
		{2.5, "250%", "2.5000"},
	}
	for _, tc := range cases {
		if got := FormatPercent(tc.v); got != tc.percent {
			t.Errorf("FormatPercent(%g) = %q, want %q", tc.v, got, tc.percent)
		}
		if got := FormatValue(tc.v); got != tc.value {
			t.Errorf("FormatValue(%g) = %q, want %q", tc.v, got, tc.value)
		}
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
