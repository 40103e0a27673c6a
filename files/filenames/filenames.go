// Package filenames locates data files and extracts the numbers encoded in
// their names, e.g. the power and flow of "run_P300_F1.5.csv".
//
// Patterns are regular expressions matched against the file stem (the base
// name without its final extension). The first capture group, or the whole
// match when the pattern has no group, must be an integer ("-?\d+") or a
// decimal ("-?\d+\.\d+") to yield a valid [Number].
package filenames

import (
	"cmp"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"path"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

var (
	// ErrSortIndex reports a sort pattern index outside the pattern list.
	ErrSortIndex = errors.New("filenames: sort index out of range")

	// ErrNoMatch reports a file stem that does not match a required pattern.
	ErrNoMatch = errors.New("filenames: no match")

	// ErrNotInteger reports a match that is not an integer.
	ErrNotInteger = errors.New("filenames: not an integer")
)

var (
	intPattern   = regexp.MustCompile(`^-?\d+$`)
	floatPattern = regexp.MustCompile(`^-?\d+\.\d+$`)
)

// Number is a value parsed from a file name.
type Number struct {
	Int     int64
	Float   float64
	IsFloat bool
	Valid   bool
}

// Value returns the number as float64, or NaN if it is not valid.
func (n Number) Value() float64 {
	switch {
	case !n.Valid:
		return math.NaN()
	case n.IsFloat:
		return n.Float
	default:
		return float64(n.Int)
	}
}

// String formats the number, or "<none>" if it is not valid.
func (n Number) String() string {
	switch {
	case !n.Valid:
		return "<none>"
	case n.IsFloat:
		return strconv.FormatFloat(n.Float, 'g', -1, 64)
	default:
		return strconv.FormatInt(n.Int, 10)
	}
}

// Compile compiles patterns in order.
func Compile(patterns ...string) ([]*regexp.Regexp, error) {
	out := make([]*regexp.Regexp, len(patterns))
	for i, p := range patterns {
		re, err := regexp.Compile(p)
		if err != nil {
			return nil, fmt.Errorf("filenames: pattern %d: %w", i, err)
		}
		out[i] = re
	}
	return out, nil
}

// ParseNumbers returns one Number per pattern, parsed from the first match
// of that pattern in s.
func ParseNumbers(s string, patterns ...*regexp.Regexp) []Number {
	out := make([]Number, len(patterns))
	for i, re := range patterns {
		if text, ok := firstMatch(re, s); ok {
			out[i] = parseNumber(text)
		}
	}
	return out
}

func firstMatch(re *regexp.Regexp, s string) (string, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	if len(m) > 1 {
		return m[1], true
	}
	return m[0], true
}

func parseNumber(text string) Number {
	switch {
	case intPattern.MatchString(text):
		v, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return Number{}
		}
		return Number{Int: v, Valid: true}
	case floatPattern.MatchString(text):
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return Number{}
		}
		return Number{Float: v, IsFloat: true, Valid: true}
	default:
		return Number{}
	}
}

// Stem returns the base name of p without its final extension.
func Stem(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Entry is a matched file and the numbers parsed from its stem.
type Entry struct {
	Path    string
	Numbers []Number
}

// Glob returns the files of fsys matching pattern in lexical order, with the
// numbers each of patterns extracts from the file stem. A "**" path element
// matches any number of directories.
func Glob(fsys fs.FS, pattern string, patterns ...*regexp.Regexp) ([]Entry, error) {
	matches, err := glob(fsys, pattern)
	if err != nil {
		return nil, err
	}

	out := make([]Entry, len(matches))
	for i, m := range matches {
		out[i] = Entry{Path: m, Numbers: ParseNumbers(Stem(m), patterns...)}
	}
	return out, nil
}

func glob(fsys fs.FS, pattern string) ([]string, error) {
	matches, err := doublestar.Glob(fsys, pattern)
	if err != nil {
		return nil, fmt.Errorf("filenames: glob %q: %w", pattern, err)
	}
	slices.Sort(matches)
	return matches, nil
}

// SortedGlob is Glob with the entries stably sorted by the number that
// patterns[sortBy] extracts. Entries without a valid sort number come last.
func SortedGlob(fsys fs.FS, pattern string, sortBy int, patterns ...*regexp.Regexp) ([]Entry, error) {
	if sortBy < 0 || sortBy >= len(patterns) {
		return nil, fmt.Errorf("%w: %d with %d patterns", ErrSortIndex, sortBy, len(patterns))
	}

	entries, err := Glob(fsys, pattern, patterns...)
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(entries, func(a, b Entry) int {
		na, nb := a.Numbers[sortBy], b.Numbers[sortBy]
		switch {
		case !na.Valid && !nb.Valid:
			return 0
		case !na.Valid:
			return 1
		case !nb.Valid:
			return -1
		}
		return cmp.Compare(na.Value(), nb.Value())
	})

	return entries, nil
}

// UniqueValues returns the sorted distinct integers that pattern extracts from
// the stems of the files matching filter. filter uses the same syntax as Glob.
//
// A stem that does not match returns an error wrapping [ErrNoMatch]; a match
// that is not an integer returns an error wrapping [ErrNotInteger].
func UniqueValues(fsys fs.FS, pattern *regexp.Regexp, filter string) ([]int64, error) {
	matches, err := glob(fsys, filter)
	if err != nil {
		return nil, err
	}

	vals := make([]int64, 0, len(matches))
	for _, m := range matches {
		text, ok := firstMatch(pattern, Stem(m))
		if !ok {
			return nil, fmt.Errorf("%w: %q in %s", ErrNoMatch, pattern, m)
		}

		n := parseNumber(text)
		if !n.Valid || n.IsFloat {
			return nil, fmt.Errorf("%w: %q in %s", ErrNotInteger, text, m)
		}
		vals = append(vals, n.Int)
	}

	slices.Sort(vals)
	return slices.Compact(vals), nil
}
