package sheet

import (
	"reflect"
	"testing"
)

func mustLanguage(t *testing.T, name string) Language {
	t.Helper()
	lang, err := ParseLanguage(name)
	if err != nil {
		t.Fatalf("ParseLanguage(%q) failed: %v", name, err)
	}
	return lang
}

func TestNewTable(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		wantErr bool
	}{
		{
			name:   "valid header",
			header: []string{SourceValueColumn, SourceFormulaColumn},
		},
		{
			name:    "empty header",
			header:  nil,
			wantErr: true,
		},
		{
			name:    "duplicate column",
			header:  []string{"A", "B", "A"},
			wantErr: true,
		},
		{
			name:    "unnamed column",
			header:  []string{"A", ""},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTable(tt.header)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewTable(%v) error = %v, wantErr %v", tt.header, err, tt.wantErr)
			}
		})
	}
}

func TestAppendStrings(t *testing.T) {
	table, err := NewTable([]string{"A", "B"})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}

	if err := table.AppendStrings([]string{"x", ""}); err != nil {
		t.Fatalf("AppendStrings failed: %v", err)
	}

	if table.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", table.Len())
	}

	// Non-empty loads as set, empty as unset.
	if got := table.At(0, 0); !got.Set || got.Value != "x" {
		t.Errorf("At(0,0) = %+v, want set cell with value x", got)
	}
	if got := table.At(0, 1); got.Set {
		t.Errorf("At(0,1) = %+v, want unset cell", got)
	}

	if err := table.AppendStrings([]string{"too", "many", "cells"}); err == nil {
		t.Error("Expected error for row wider than header")
	}
}

func TestEnsureColumn(t *testing.T) {
	table, err := NewTable([]string{"A"})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := table.AppendStrings([]string{"one"}); err != nil {
		t.Fatalf("AppendStrings failed: %v", err)
	}

	col := table.EnsureColumn("B")
	if col != 1 {
		t.Errorf("EnsureColumn(B) = %d, want 1", col)
	}

	// Existing rows are padded with unset cells.
	if got := table.At(0, col); got.Set || got.Value != "" {
		t.Errorf("padded cell = %+v, want unset empty cell", got)
	}

	// Asking again must not add a second column.
	if again := table.EnsureColumn("B"); again != col {
		t.Errorf("EnsureColumn(B) second call = %d, want %d", again, col)
	}
	if got := table.Header(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Errorf("Header() = %v, want [A B]", got)
	}
}

func TestBind(t *testing.T) {
	lang := mustLanguage(t, "Afrikaans")

	t.Run("creates missing target columns", func(t *testing.T) {
		table, err := NewTable([]string{SourceValueColumn, SourceFormulaColumn})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if err := table.AppendStrings([]string{"Total assets", `="Total assets"&X`}); err != nil {
			t.Fatalf("AppendStrings failed: %v", err)
		}

		cols, err := table.Bind(lang)
		if err != nil {
			t.Fatalf("Bind failed: %v", err)
		}

		want := []string{SourceValueColumn, SourceFormulaColumn, "CellValue_Afrikaans", "CellFormula_Afrikaans"}
		if got := table.Header(); !reflect.DeepEqual(got, want) {
			t.Errorf("Header() = %v, want %v", got, want)
		}
		if got := table.At(0, cols.TargetValue); got.Set {
			t.Errorf("new target value cell = %+v, want unset", got)
		}
	})

	t.Run("reuses existing target columns", func(t *testing.T) {
		table, err := NewTable([]string{SourceValueColumn, SourceFormulaColumn, "CellValue_Afrikaans", "CellFormula_Afrikaans"})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if err := table.AppendStrings([]string{"Total assets", "", "Totale bates", ""}); err != nil {
			t.Fatalf("AppendStrings failed: %v", err)
		}

		cols, err := table.Bind(lang)
		if err != nil {
			t.Fatalf("Bind failed: %v", err)
		}
		if len(table.Header()) != 4 {
			t.Errorf("Bind added columns to a table that already had them: %v", table.Header())
		}
		if got := table.At(0, cols.TargetValue); !got.Set || got.Value != "Totale bates" {
			t.Errorf("existing target value = %+v, want set cell Totale bates", got)
		}
	})

	t.Run("missing source columns", func(t *testing.T) {
		table, err := NewTable([]string{"Something", "Else"})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if _, err := table.Bind(lang); err == nil {
			t.Error("Expected error for table without source columns")
		}
	})

	t.Run("zero language", func(t *testing.T) {
		table, err := NewTable([]string{SourceValueColumn, SourceFormulaColumn})
		if err != nil {
			t.Fatalf("NewTable failed: %v", err)
		}
		if _, err := table.Bind(Language{}); err == nil {
			t.Error("Expected error for zero language")
		}
	})
}

func TestRecordAt(t *testing.T) {
	table, err := NewTable([]string{SourceValueColumn, SourceFormulaColumn})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	if err := table.AppendStrings([]string{"  Total assets  ", "\t=\"Total assets\"&X\n"}); err != nil {
		t.Fatalf("AppendStrings failed: %v", err)
	}

	cols, err := table.Bind(mustLanguage(t, "Afrikaans"))
	if err != nil {
		t.Fatalf("Bind failed: %v", err)
	}

	rec := table.RecordAt(cols, 0)
	if rec.SourceValue != "Total assets" {
		t.Errorf("SourceValue = %q, want trimmed %q", rec.SourceValue, "Total assets")
	}
	if rec.SourceFormula != `="Total assets"&X` {
		t.Errorf("SourceFormula = %q, want trimmed formula", rec.SourceFormula)
	}
	if rec.TargetValue.Set || rec.TargetFormula.Set {
		t.Error("fresh record should have unset target cells")
	}

	table.SetTargetValue(cols, 0, "Totale bates")
	table.SetTargetFormula(cols, 0, `'="Totale bates"&X`)

	rec = table.RecordAt(cols, 0)
	if !rec.TargetValue.Set || rec.TargetValue.Value != "Totale bates" {
		t.Errorf("TargetValue = %+v after write", rec.TargetValue)
	}
	if !rec.TargetFormula.Set || rec.TargetFormula.Value != `'="Totale bates"&X` {
		t.Errorf("TargetFormula = %+v after write", rec.TargetFormula)
	}
}

func TestCountSet(t *testing.T) {
	table, err := NewTable([]string{"A", "B"})
	if err != nil {
		t.Fatalf("NewTable failed: %v", err)
	}
	rows := [][]string{
		{"x", "y"},
		{"", "y"},
		{"x", ""},
	}
	for _, r := range rows {
		if err := table.AppendStrings(r); err != nil {
			t.Fatalf("AppendStrings failed: %v", err)
		}
	}

	colA, _ := table.Column("A")
	colB, _ := table.Column("B")
	if got := table.CountSet(colA); got != 2 {
		t.Errorf("CountSet(A) = %d, want 2", got)
	}
	if got := table.CountSet(colB); got != 2 {
		t.Errorf("CountSet(B) = %d, want 2", got)
	}
}
