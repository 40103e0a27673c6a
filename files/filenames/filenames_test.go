package filenames

import (
	"errors"
	"math"
	"regexp"
	"testing"
	"testing/fstest"
)

func mustCompile(t *testing.T, patterns ...string) []*regexp.Regexp {
	t.Helper()
	res, err := Compile(patterns...)
	if err != nil {
		t.Fatalf("Compile error: %v", err)
	}
	return res
}

func TestParseNumbers(t *testing.T) {
	res := mustCompile(t, `P(-?\d+)`, `F(-?\d+\.\d+)`, `T(\w+)`, `X(\d+)`, `\d+`)

	got := ParseNumbers("run_P300_F1.50_Tabc", res...)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}

	if !got[0].Valid || got[0].IsFloat || got[0].Int != 300 {
		t.Fatalf("P = %+v, want int 300", got[0])
	}
	if !got[1].Valid || !got[1].IsFloat || got[1].Float != 1.5 {
		t.Fatalf("F = %+v, want float 1.5", got[1])
	}
	if got[2].Valid {
		t.Fatalf("T = %+v, want invalid for non-numeric text", got[2])
	}
	if got[3].Valid {
		t.Fatalf("X = %+v, want invalid for missing match", got[3])
	}
	if !got[4].Valid || got[4].Int != 300 {
		t.Fatalf("group-less pattern = %+v, want whole match 300", got[4])
	}
}

func TestParseNumbersNegative(t *testing.T) {
	res := mustCompile(t, `V(-?\d+)`, `E(-?\d+\.\d+)`)

	got := ParseNumbers("V-12_E-0.25", res...)
	if got[0].Int != -12 || got[1].Float != -0.25 {
		t.Fatalf("got %+v", got)
	}
}

func TestNumberValueAndString(t *testing.T) {
	tests := []struct {
		n     Number
		value float64
		str   string
	}{
		{Number{Int: 7, Valid: true}, 7, "7"},
		{Number{Float: 2.5, IsFloat: true, Valid: true}, 2.5, "2.5"},
	}

	for _, tt := range tests {
		if got := tt.n.Value(); got != tt.value {
			t.Fatalf("Value() = %v, want %v", got, tt.value)
		}
		if got := tt.n.String(); got != tt.str {
			t.Fatalf("String() = %q, want %q", got, tt.str)
		}
	}

	if !math.IsNaN(Number{}.Value()) {
		t.Fatal("invalid Number must have NaN value")
	}
	if got := (Number{}).String(); got != "<none>" {
		t.Fatalf("String() = %q, want <none>", got)
	}
}

func TestCompileError(t *testing.T) {
	if _, err := Compile(`ok`, `(`); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestStem(t *testing.T) {
	tests := map[string]string{
		"data/run_10.csv":   "run_10",
		"run_10.tar.gz":     "run_10.tar",
		"noext":             "noext",
		"dir/sub/P1.5_a.h5": "P1.5_a",
	}

	for in, want := range tests {
		if got := Stem(in); got != want {
			t.Fatalf("Stem(%q) = %q, want %q", in, got, want)
		}
	}
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"spec_10.txt":     {},
		"spec_2.txt":      {},
		"spec_100.txt":    {},
		"spec_x.txt":      {},
		"spec_2.5.txt":    {},
		"notes.md":        {},
		"sub/spec_1.txt":  {},
		"image_P3_F2.png": {},
		"image_P1_F9.png": {},
		"image_P2_F2.png": {},
	}
}

func TestGlob(t *testing.T) {
	res := mustCompile(t, `_(\d+(?:\.\d+)?)$`)

	entries, err := Glob(testFS(), "*.txt", res...)
	if err != nil {
		t.Fatalf("Glob error: %v", err)
	}
	if len(entries) != 5 {
		t.Fatalf("len = %d, want 5: %+v", len(entries), entries)
	}

	// Matches are in lexical order.
	if entries[0].Path != "spec_10.txt" {
		t.Fatalf("first = %q, want spec_10.txt", entries[0].Path)
	}

	byPath := map[string]Number{}
	for _, e := range entries {
		byPath[e.Path] = e.Numbers[0]
	}
	if n := byPath["spec_2.5.txt"]; !n.IsFloat || n.Float != 2.5 {
		t.Fatalf("spec_2.5 = %+v", n)
	}
	if n := byPath["spec_x.txt"]; n.Valid {
		t.Fatalf("spec_x = %+v, want invalid", n)
	}
}

func TestGlobBadPattern(t *testing.T) {
	if _, err := Glob(testFS(), "["); err == nil {
		t.Fatal("expected error for malformed glob")
	}
}

func TestGlobRecursive(t *testing.T) {
	fsys := fstest.MapFS{
		"a/run_1.csv":     {},
		"a/b/run_2.csv":   {},
		"a/b/c/run_3.csv": {},
		"run_4.csv":       {},
		"a/notes.txt":     {},
	}
	res := mustCompile(t, `_(\d+)$`)

	tests := []struct {
		pattern string
		want    []string
	}{
		{pattern: "**/*.csv", want: []string{"a/b/c/run_3.csv", "a/b/run_2.csv", "a/run_1.csv", "run_4.csv"}},
		{pattern: "a/**/*.csv", want: []string{"a/b/c/run_3.csv", "a/b/run_2.csv", "a/run_1.csv"}},
		{pattern: "a/*.csv", want: []string{"a/run_1.csv"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			entries, err := Glob(fsys, tt.pattern, res...)
			if err != nil {
				t.Fatalf("Glob error: %v", err)
			}
			if len(entries) != len(tt.want) {
				t.Fatalf("got %+v, want %v", entries, tt.want)
			}
			for i, e := range entries {
				if e.Path != tt.want[i] {
					t.Fatalf("entry %d = %q, want %q", i, e.Path, tt.want[i])
				}
				if !e.Numbers[0].Valid {
					t.Fatalf("%s: no number parsed", e.Path)
				}
			}
		})
	}
}

func TestSortedGlob(t *testing.T) {
	res := mustCompile(t, `_(\d+(?:\.\d+)?)$`)

	entries, err := SortedGlob(testFS(), "*.txt", 0, res...)
	if err != nil {
		t.Fatalf("SortedGlob error: %v", err)
	}

	want := []string{"spec_2.txt", "spec_2.5.txt", "spec_10.txt", "spec_100.txt", "spec_x.txt"}
	for i, w := range want {
		if entries[i].Path != w {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].Path, w)
		}
	}
}

func TestSortedGlobSecondaryPattern(t *testing.T) {
	res := mustCompile(t, `P(\d+)`, `F(\d+)`)

	entries, err := SortedGlob(testFS(), "image_*.png", 1, res...)
	if err != nil {
		t.Fatalf("SortedGlob error: %v", err)
	}

	// Stable on ties: P2 and P3 share F2 and keep lexical order.
	want := []string{"image_P2_F2.png", "image_P3_F2.png", "image_P1_F9.png"}
	for i, w := range want {
		if entries[i].Path != w {
			t.Fatalf("entries[%d] = %q, want %q", i, entries[i].Path, w)
		}
	}
}

func TestSortedGlobIndexOutOfRange(t *testing.T) {
	res := mustCompile(t, `(\d+)`)

	for _, idx := range []int{-1, 1} {
		if _, err := SortedGlob(testFS(), "*.txt", idx, res...); !errors.Is(err, ErrSortIndex) {
			t.Fatalf("SortedGlob(%d) error = %v, want ErrSortIndex", idx, err)
		}
	}
}

func TestUniqueValues(t *testing.T) {
	fsys := fstest.MapFS{
		"a_3.dat":   {},
		"b_1.dat":   {},
		"c_3.dat":   {},
		"d_2.dat":   {},
		"e_1.dat":   {},
		"other.txt": {},
	}

	got, err := UniqueValues(fsys, regexp.MustCompile(`_(\d+)`), "*.dat")
	if err != nil {
		t.Fatalf("UniqueValues error: %v", err)
	}

	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUniqueValuesRecursive(t *testing.T) {
	fsys := fstest.MapFS{
		"day1/shot_7.dat":       {},
		"day1/shot_3.dat":       {},
		"day2/late/shot_7.dat":  {},
		"day2/late/shot_12.dat": {},
	}

	got, err := UniqueValues(fsys, regexp.MustCompile(`_(\d+)`), "**/*.dat")
	if err != nil {
		t.Fatalf("UniqueValues error: %v", err)
	}

	want := []int64{3, 7, 12}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestUniqueValuesErrors(t *testing.T) {
	re := regexp.MustCompile(`_(\d+(?:\.\d+)?)`)

	_, err := UniqueValues(fstest.MapFS{"a_1.5.dat": {}}, re, "*.dat")
	if !errors.Is(err, ErrNotInteger) {
		t.Fatalf("error = %v, want ErrNotInteger", err)
	}

	_, err = UniqueValues(fstest.MapFS{"plain.dat": {}}, re, "*.dat")
	if !errors.Is(err, ErrNoMatch) {
		t.Fatalf("error = %v, want ErrNoMatch", err)
	}

	got, err := UniqueValues(fstest.MapFS{}, re, "*.dat")
	if err != nil || len(got) != 0 {
		t.Fatalf("empty dir: %v, %v", got, err)
	}
}
