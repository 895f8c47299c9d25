package sheet

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// utf8BOM is prepended to written files so spreadsheet tools detect the
// encoding, and stripped when reading files that carry it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Read parses a delimited table from r. A leading byte-order marker is
// stripped. The first row is the header; every following row must have
// the same number of fields.
func Read(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if lead, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(lead, utf8BOM) {
		if _, err := br.Discard(len(utf8BOM)); err != nil {
			return nil, fmt.Errorf("failed to skip byte-order marker: %w", err)
		}
	}

	cr := csv.NewReader(br)
	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("input is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	table, err := NewTable(header)
	if err != nil {
		return nil, err
	}

	for {
		values, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if err := table.AppendStrings(values); err != nil {
			return nil, err
		}
	}

	return table, nil
}

// ReadFile loads a delimited table from disk.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// Write serializes the table to w with a byte-order marker so the file
// opens correctly in spreadsheet tools. Unset cells become empty fields.
func (t *Table) Write(w io.Writer) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte-order marker: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(t.header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(t.header))
	for _, row := range t.rows {
		for i, cell := range row {
			record[i] = cell.Value
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile saves the table to disk, replacing any existing file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
