// Package testutil provides fixture helpers shared by the tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteConfig writes a YAML configuration document into dir and returns
// the file's path.
func WriteConfig(t *testing.T, dir, document string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yml")
	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}

	return path
}

// LoadFixture loads a fixture file from the testdata directory.
// The path is relative to the testdata directory.
func LoadFixture(t *testing.T, path string) []byte {
	t.Helper()

	fullPath := filepath.Join("testdata", path)
	data, err := os.ReadFile(fullPath)
	if err != nil {
		t.Fatalf("failed to load fixture %s: %v", path, err)
	}

	return data
}

// LoadFixtureString loads a fixture file as a string.
func LoadFixtureString(t *testing.T, path string) string {
	t.Helper()
	return string(LoadFixture(t, path))
}
