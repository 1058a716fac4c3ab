package deb822_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/mbrt/deb822repro/deb822"
	"github.com/mbrt/deb822repro/internal/testutil"
)

// roundTrip is the FormatFunc under test: parsing and immediately
// re-serializing a real-world-shaped debian/control or debian/copyright file
// must reproduce it byte for byte.
func roundTrip(input string) string {
	file, err := deb822.ParseFile(input)
	if err != nil {
		return err.Error()
	}
	return file.Text()
}

func TestGoldenControlFiles(t *testing.T) {
	_, filename, _, _ := runtime.Caller(0)
	testdataDir := filepath.Join(filepath.Dir(filename), "..", "testdata", "control")
	testutil.RunGoldenDir(t, testdataDir, roundTrip)
}

func TestGoldenCopyrightFiles(t *testing.T) {
	_, filename, _, _ := runtime.Caller(0)
	testdataDir := filepath.Join(filepath.Dir(filename), "..", "testdata", "copyright")
	testutil.RunGoldenDir(t, testdataDir, roundTrip)
}
