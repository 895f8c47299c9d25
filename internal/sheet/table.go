package sheet

import (
	"fmt"
	"strings"
)

// Cell is a single table cell. Set distinguishes a written empty string
// from a cell that was never written.
type Cell struct {
	Value string
	Set   bool
}

// Table is an ordered collection of records addressed by row index and
// column name. Rows keep their load order; columns unknown to the
// pipeline are carried through untouched.
type Table struct {
	header []string
	index  map[string]int
	rows   [][]Cell
}

// NewTable creates an empty table with the given column names.
func NewTable(header []string) (*Table, error) {
	if len(header) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		if name == "" {
			return nil, fmt.Errorf("column %d has no name", i)
		}
		if _, dup := index[name]; dup {
			return nil, fmt.Errorf("duplicate column %q", name)
		}
		index[name] = i
	}

	return &Table{
		header: append([]string(nil), header...),
		index:  index,
	}, nil
}

// Header returns a copy of the column names in order.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Column returns the position of the named column.
func (t *Table) Column(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// EnsureColumn returns the position of the named column, appending it
// with unset cells when the table does not have it yet.
func (t *Table) EnsureColumn(name string) int {
	if i, ok := t.index[name]; ok {
		return i
	}
	i := len(t.header)
	t.header = append(t.header, name)
	t.index[name] = i
	for r := range t.rows {
		t.rows[r] = append(t.rows[r], Cell{})
	}
	return i
}

// AppendRow adds a row of cells. The row must match the header width.
func (t *Table) AppendRow(cells []Cell) error {
	if len(cells) != len(t.header) {
		return fmt.Errorf("row has %d cells, table has %d columns", len(cells), len(t.header))
	}
	t.rows = append(t.rows, append([]Cell(nil), cells...))
	return nil
}

// AppendStrings adds a row of raw values. An empty string loads as an
// unset cell, matching how the delimited file format round-trips.
func (t *Table) AppendStrings(values []string) error {
	cells := make([]Cell, len(values))
	for i, v := range values {
		cells[i] = Cell{Value: v, Set: v != ""}
	}
	return t.AppendRow(cells)
}

// At returns the cell at the given row and column.
func (t *Table) At(row, col int) Cell {
	return t.rows[row][col]
}

// SetCell writes a value at the given row and column and marks it set.
func (t *Table) SetCell(row, col int, value string) {
	t.rows[row][col] = Cell{Value: value, Set: true}
}

// CountSet returns how many rows have a written cell in the column.
func (t *Table) CountSet(col int) int {
	n := 0
	for _, row := range t.rows {
		if row[col].Set {
			n++
		}
	}
	return n
}

// Columns holds the resolved column positions for one target language.
// Resolving once up front avoids recomputing string keys on every access.
type Columns struct {
	SourceValue   int
	SourceFormula int
	TargetValue   int
	TargetFormula int
}

// Bind resolves the source and target columns for lang. The target
// columns are created with unset cells when missing; absent source
// columns are an error because the file is not a translation export.
func (t *Table) Bind(lang Language) (Columns, error) {
	if lang.IsZero() {
		return Columns{}, fmt.Errorf("no target language")
	}

	sv, ok := t.Column(SourceValueColumn)
	if !ok {
		return Columns{}, fmt.Errorf("input has no %s column", SourceValueColumn)
	}
	sf, ok := t.Column(SourceFormulaColumn)
	if !ok {
		return Columns{}, fmt.Errorf("input has no %s column", SourceFormulaColumn)
	}

	return Columns{
		SourceValue:   sv,
		SourceFormula: sf,
		TargetValue:   t.EnsureColumn(lang.ValueColumn()),
		TargetFormula: t.EnsureColumn(lang.FormulaColumn()),
	}, nil
}

// Record is a row projection over the bound columns. Source fields are
// trimmed of surrounding whitespace on the way out.
type Record struct {
	SourceValue   string
	SourceFormula string
	TargetValue   Cell
	TargetFormula Cell
}

// RecordAt projects the row at index through the bound columns.
func (t *Table) RecordAt(cols Columns, row int) Record {
	return Record{
		SourceValue:   strings.TrimSpace(t.rows[row][cols.SourceValue].Value),
		SourceFormula: strings.TrimSpace(t.rows[row][cols.SourceFormula].Value),
		TargetValue:   t.rows[row][cols.TargetValue],
		TargetFormula: t.rows[row][cols.TargetFormula],
	}
}

// SetTargetValue writes the translated value for the row.
func (t *Table) SetTargetValue(cols Columns, row int, value string) {
	t.SetCell(row, cols.TargetValue, value)
}

// SetTargetFormula writes the rewritten formula for the row.
func (t *Table) SetTargetFormula(cols Columns, row int, formula string) {
	t.SetCell(row, cols.TargetFormula, formula)
}
