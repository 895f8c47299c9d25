package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sheetlingo/internal/sheet"
)

// BuildTestTable creates a table with the two source columns and one row
// per value/formula pair
func BuildTestTable(t *testing.T, rows [][2]string) *sheet.Table {
	t.Helper()

	table, err := sheet.NewTable([]string{sheet.SourceValueColumn, sheet.SourceFormulaColumn})
	if err != nil {
		t.Fatalf("Failed to create test table: %v", err)
	}

	for _, row := range rows {
		if err := table.AppendStrings([]string{row[0], row[1]}); err != nil {
			t.Fatalf("Failed to append test row: %v", err)
		}
	}

	return table
}

// CreateTestCSV writes a CSV input file with the given value/formula rows
func CreateTestCSV(t *testing.T, path string, rows [][2]string) {
	t.Helper()

	table := BuildTestTable(t, rows)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test CSV: %v", err)
	}
	if err := table.WriteFile(path); err != nil {
		t.Fatalf("Failed to write test CSV %s: %v", path, err)
	}
}

// CreateTestFile creates a test file with content
func CreateTestFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
