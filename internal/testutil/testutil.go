// Package testutil provides shared test infrastructure for the check-in
// simulator: customer file fixtures and float assertions for the sim,
// workload and command tests.
package testutil

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// WriteInput writes a customer file made of lines into a temporary
// directory and returns its path.
func WriteInput(t *testing.T, lines ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "customers.txt")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644); err != nil {
		t.Fatalf("Failed to write input file: %v", err)
	}
	return path
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
