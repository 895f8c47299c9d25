package checkpoint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"sheetlingo/internal/sheet"
)

// Info describes one snapshot file in a checkpoint directory.
type Info struct {
	Path      string
	Name      string
	Kind      Kind
	Language  string
	Succeeded int
	Timestamp time.Time
	Records   int
	Values    int
	Formulas  int
	ModTime   time.Time
	Size      int64
}

// List returns the snapshots in dir, newest first. Files whose names do
// not match the snapshot pattern are ignored, and a missing directory
// yields an empty list.
func List(dir string) ([]Info, error) {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}

	var infos []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, ok := parseName(entry.Name())
		if !ok {
			continue
		}
		info.Path = filepath.Join(dir, entry.Name())
		if fi, err := entry.Info(); err == nil {
			info.ModTime = fi.ModTime()
			info.Size = fi.Size()
		}
		countContents(&info)
		infos = append(infos, info)
	}

	sort.Slice(infos, func(i, j int) bool {
		if !infos[i].Timestamp.Equal(infos[j].Timestamp) {
			return infos[i].Timestamp.After(infos[j].Timestamp)
		}
		return infos[i].Name > infos[j].Name
	})
	return infos, nil
}

// parseName splits a snapshot file name of the form
// kind_language_succeeded_date_time.csv into its components.
func parseName(name string) (Info, bool) {
	if !strings.HasSuffix(name, ".csv") {
		return Info{}, false
	}
	parts := strings.Split(strings.TrimSuffix(name, ".csv"), "_")
	if len(parts) != 5 {
		return Info{}, false
	}

	kind := Kind(parts[0])
	if kind != KindProgress && kind != KindFinal {
		return Info{}, false
	}
	succeeded, err := strconv.Atoi(parts[2])
	if err != nil {
		return Info{}, false
	}
	stamp, err := time.ParseInLocation("20060102_150405", parts[3]+"_"+parts[4], time.Local)
	if err != nil {
		return Info{}, false
	}

	return Info{
		Name:      name,
		Kind:      kind,
		Language:  parts[1],
		Succeeded: succeeded,
		Timestamp: stamp,
	}, true
}

// countContents fills in the record and translation counts by loading the
// snapshot. Unreadable snapshots keep zero counts.
func countContents(info *Info) {
	table, err := sheet.ReadFile(info.Path)
	if err != nil {
		return
	}
	info.Records = table.Len()

	lang, err := sheet.ParseLanguage(info.Language)
	if err != nil {
		return
	}
	if col, ok := table.Column(lang.ValueColumn()); ok {
		info.Values = table.CountSet(col)
	}
	if col, ok := table.Column(lang.FormulaColumn()); ok {
		info.Formulas = table.CountSet(col)
	}
}
