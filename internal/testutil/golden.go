package testutil

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

// GoldenString compares got against testdata/<name>.golden.
// Setting GOLDEN_UPDATE rewrites the file instead.
func GoldenString(t *testing.T, name string, got string) {
	t.Helper()

	path := filepath.Join("testdata", name+".golden")

	if os.Getenv("GOLDEN_UPDATE") != "" {
		if err := os.MkdirAll("testdata", 0755); err != nil {
			t.Fatalf("failed to create testdata dir: %v", err)
		}
		if err := os.WriteFile(path, []byte(got), 0644); err != nil {
			t.Fatalf("failed to update golden file: %v", err)
		}
		return
	}

	want, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden file %s: %v\nGot:\n%s", path, err, got)
	}
	if bytes.Equal([]byte(got), want) {
		return
	}

	line, wantLine, gotLine := firstDiff(string(want), got)
	t.Errorf("%s differs at line %d\nwant: %q\ngot:  %q\nfull output:\n%s", name, line, wantLine, gotLine, got)
}

// firstDiff returns the 1-based number of the first line where a and b differ.
func firstDiff(a, b string) (int, string, string) {
	al := bytes.Split([]byte(a), []byte("\n"))
	bl := bytes.Split([]byte(b), []byte("\n"))
	for i := 0; i < len(al) || i < len(bl); i++ {
		var x, y string
		if i < len(al) {
			x = string(al[i])
		}
		if i < len(bl) {
			y = string(bl[i])
		}
		if x != y || i >= len(al) || i >= len(bl) {
			return i + 1, x, y
		}
	}
	return 0, "", ""
}
