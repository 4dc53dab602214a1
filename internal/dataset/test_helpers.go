package dataset

import (
	"path/filepath"
	"testing"
)

// GetFixturePath returns the absolute path to a fixture in the project's
// root testdata directory.
func GetFixturePath(t *testing.T, fixturePath string) string {
	t.Helper()

	absPath, err := filepath.Abs(filepath.Join("..", "..", "testdata", fixturePath))
	if err != nil {
		t.Fatalf("Failed to get absolute path to testdata/%s: %v", fixturePath, err)
	}

	return absPath
}
