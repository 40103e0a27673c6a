package filenames_test

import (
	"fmt"
	"testing/fstest"

	"github.com/cwbudde/algo-plasma/files/filenames"
)

func ExampleSortedGlob() {
	fsys := fstest.MapFS{
		"spectrum_P300_F10.csv":  {},
		"spectrum_P50_F2.5.csv":  {},
		"spectrum_P1200_F10.csv": {},
	}

	patterns, err := filenames.Compile(`P(\d+)`, `F(\d+(?:\.\d+)?)`)
	if err != nil {
		panic(err)
	}

	entries, err := filenames.SortedGlob(fsys, "spectrum_*.csv", 0, patterns...)
	if err != nil {
		panic(err)
	}

	for _, e := range entries {
		fmt.Println(e.Path, e.Numbers)
	}

	// Output:
	// spectrum_P50_F2.5.csv [50 2.5]
	// spectrum_P300_F10.csv [300 10]
	// spectrum_P1200_F10.csv [1200 10]
}
