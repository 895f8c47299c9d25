package prompt

import (
	"fmt"
	"strings"
	"text/template"
)

// ValueData holds the template fields available when rendering a value
// translation prompt.
type ValueData struct {
	Language string
	Value    string
}

// FormulaData holds the template fields available when rendering a formula
// rewrite prompt.
type FormulaData struct {
	Language   string
	Value      string
	Translated string
	Formula    string
}

const valueUserTemplate = `Translate the following English sentence into {{.Language}}:

{{.Value}}`

const formulaUserTemplate = `Original English value: "{{.Value}}"
Translated {{.Language}} value: "{{.Translated}}"
Original Excel formula: {{.Formula}}

Instructions:
Update the Excel formula to reflect the {{.Language}} value where applicable.
ONLY translate hardcoded English words or phrases in quotation marks.
DO NOT change Excel functions (IF, UPPER, LEN, etc.) or named ranges (CompanyName, etc.).
DO NOT change any Excel syntax, operators, or structure.

Return ONLY the final Excel formula with a single apostrophe prefix.`

var (
	valueUserTmpl   = template.Must(template.New("value_user").Parse(valueUserTemplate))
	formulaUserTmpl = template.Must(template.New("formula_user").Parse(formulaUserTemplate))
)

// ValueMessages renders the system and user messages for translating a
// cell value.
func (c *Config) ValueMessages(d ValueData) (system, user string, err error) {
	sections := []promptSection{
		{"Identity", c.Value.Identity},
		{"Instructions", c.Value.Instructions},
		{"Examples", c.Value.Examples},
		{"Critical Rules", c.Value.CriticalRules},
		{"Additional Notes", c.Value.AdditionalNotes},
	}
	system, err = assemble(sections, d)
	if err != nil {
		return "", "", fmt.Errorf("failed to render value prompt: %w", err)
	}
	user, err = execute(valueUserTmpl, d)
	if err != nil {
		return "", "", fmt.Errorf("failed to render value prompt: %w", err)
	}
	return system, user, nil
}

// FormulaMessages renders the system and user messages for rewriting a
// cell formula against an already-translated value.
func (c *Config) FormulaMessages(d FormulaData) (system, user string, err error) {
	sections := []promptSection{
		{"Identity", c.Formula.Identity},
		{"CRITICAL RULES - DO NOT VIOLATE:", c.Formula.CriticalRules},
		{"Examples of CORRECT translations:", c.Formula.Examples},
		{"Instructions", c.Formula.Instructions},
		{"Additional Notes", c.Formula.AdditionalNotes},
	}
	system, err = assemble(sections, d)
	if err != nil {
		return "", "", fmt.Errorf("failed to render formula prompt: %w", err)
	}
	user, err = execute(formulaUserTmpl, d)
	if err != nil {
		return "", "", fmt.Errorf("failed to render formula prompt: %w", err)
	}
	return system, user, nil
}

type promptSection struct {
	header string
	body   string
}

// assemble renders each non-empty section body as a template and joins the
// sections under markdown-style headers.
func assemble(sections []promptSection, data interface{}) (string, error) {
	var b strings.Builder
	for _, s := range sections {
		if strings.TrimSpace(s.body) == "" {
			continue
		}
		tmpl, err := template.New(s.header).Parse(s.body)
		if err != nil {
			return "", fmt.Errorf("invalid %q section: %w", s.header, err)
		}
		body, err := execute(tmpl, data)
		if err != nil {
			return "", fmt.Errorf("invalid %q section: %w", s.header, err)
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString("# ")
		b.WriteString(s.header)
		b.WriteString("\n")
		b.WriteString(strings.TrimSpace(body))
	}
	return b.String(), nil
}

func execute(tmpl *template.Template, data interface{}) (string, error) {
	var buf strings.Builder
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
