package sheet

import (
	"fmt"
	"strings"
	"unicode"
)

// Column names of the source fields every input file must carry.
const (
	SourceValueColumn   = "CellValue_English"
	SourceFormulaColumn = "CellFormula_English"
)

// FormulaMarker is the leading character on a rewritten formula. It tells
// the consuming spreadsheet tool to treat the cell as literal text instead
// of evaluating it.
const FormulaMarker = "'"

// Language identifies a translation target. The name is normalized to a
// capitalized form ("afrikaans" becomes "Afrikaans") because the target
// column names embed it.
type Language struct {
	name string
}

// ParseLanguage normalizes and validates a target language name.
func ParseLanguage(name string) (Language, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return Language{}, fmt.Errorf("target language is empty")
	}
	if strings.ContainsAny(trimmed, "_,;/\\") {
		return Language{}, fmt.Errorf("invalid target language %q", name)
	}

	runes := []rune(strings.ToLower(trimmed))
	runes[0] = unicode.ToUpper(runes[0])
	return Language{name: string(runes)}, nil
}

// String returns the capitalized language name.
func (l Language) String() string { return l.name }

// Lower returns the lowercased language name, used in file names.
func (l Language) Lower() string { return strings.ToLower(l.name) }

// ValueColumn returns the name of the translated value column.
func (l Language) ValueColumn() string { return "CellValue_" + l.name }

// FormulaColumn returns the name of the rewritten formula column.
func (l Language) FormulaColumn() string { return "CellFormula_" + l.name }

// IsZero reports whether the language was never set.
func (l Language) IsZero() bool { return l.name == "" }
