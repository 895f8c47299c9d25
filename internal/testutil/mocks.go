package testutil

import (
	"context"
	"fmt"
	"strings"

	"sheetlingo/internal/sheet"
)

// MockTransformClient mocks the translation client driven by the record
// processor. Responses are keyed by the source text; unkeyed inputs get
// a deterministic default so tests only spell out what they assert on.
type MockTransformClient struct {
	Translations  map[string]string
	Rewrites      map[string]string
	ValueErrors   map[string]error
	RewriteErrors map[string]error
	Calls         []string
}

// TranslateValue mocks translating a plain value
func (m *MockTransformClient) TranslateValue(ctx context.Context, value string, lang sheet.Language) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("value: %s", value))

	if err, ok := m.ValueErrors[value]; ok {
		return "", err
	}

	if translation, ok := m.Translations[value]; ok {
		return translation, nil
	}

	// Default mock translation
	return fmt.Sprintf("mock translation of %s", value), nil
}

// RewriteFormula mocks rewriting a formula against the translated value
func (m *MockTransformClient) RewriteFormula(ctx context.Context, value, translated, formula string, lang sheet.Language) (string, error) {
	m.Calls = append(m.Calls, fmt.Sprintf("formula: %s", formula))

	if err, ok := m.RewriteErrors[formula]; ok {
		return "", err
	}

	if rewritten, ok := m.Rewrites[formula]; ok {
		return rewritten, nil
	}

	// Default: swap the quoted source text for the translated value
	if value != "" && translated != "" {
		return strings.ReplaceAll(formula, value, translated), nil
	}
	return formula, nil
}

// ValueCalls returns how many value translations were requested
func (m *MockTransformClient) ValueCalls() int {
	n := 0
	for _, call := range m.Calls {
		if strings.HasPrefix(call, "value: ") {
			n++
		}
	}
	return n
}

// FormulaCalls returns how many formula rewrites were requested
func (m *MockTransformClient) FormulaCalls() int {
	n := 0
	for _, call := range m.Calls {
		if strings.HasPrefix(call, "formula: ") {
			n++
		}
	}
	return n
}
