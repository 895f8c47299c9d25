package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sheetlingo/internal/sheet"
)

// Kind distinguishes periodic snapshots from the one written at run end.
type Kind string

const (
	KindProgress Kind = "progress"
	KindFinal    Kind = "final"
)

// Writer writes snapshots of a record table to a directory. Content goes
// to a temporary file that is renamed into place, so a snapshot path
// never refers to a half-written file.
type Writer struct {
	dir       string
	lang      sheet.Language
	now       func() time.Time
	lastStamp time.Time
}

// NewWriter creates a writer that stores snapshots for lang under dir.
// The directory is created on the first write.
func NewWriter(dir string, lang sheet.Language) *Writer {
	return &Writer{dir: dir, lang: lang, now: time.Now}
}

// Write persists a snapshot of table and returns its path.
func (w *Writer) Write(table *sheet.Table, kind Kind, succeeded int) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create checkpoint directory: %w", err)
	}

	name := fmt.Sprintf("%s_%s_%d_%s.csv", kind, w.lang.Lower(), succeeded, w.nextStamp().Format("20060102_150405"))
	path := filepath.Join(w.dir, name)

	tmp, err := os.CreateTemp(w.dir, ".sheetlingo-*.tmp")
	if err != nil {
		return "", fmt.Errorf("failed to create checkpoint: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := table.Write(tmp); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write checkpoint: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write checkpoint: %w", err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return "", fmt.Errorf("failed to write checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("failed to write checkpoint: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("failed to finalize checkpoint: %w", err)
	}

	return path, nil
}

// nextStamp returns a timestamp strictly after the previous one at second
// resolution. Snapshot names embed the timestamp, so two writes landing
// in the same second must still produce distinct, ordered names.
func (w *Writer) nextStamp() time.Time {
	stamp := w.now().Truncate(time.Second)
	if !stamp.After(w.lastStamp) {
		stamp = w.lastStamp.Add(time.Second)
	}
	w.lastStamp = stamp
	return stamp
}

// Load reads a snapshot back into a record table.
func Load(path string) (*sheet.Table, error) {
	return sheet.ReadFile(path)
}
