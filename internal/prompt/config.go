package prompt

import "time"

// Spec holds the sections of a single prompt template. Identity and
// Instructions are always emitted; the remaining sections are skipped
// when empty.
type Spec struct {
	Identity        string `json:"identity"`
	Instructions    string `json:"instructions"`
	CriticalRules   string `json:"critical_rules,omitempty"`
	Examples        string `json:"examples,omitempty"`
	AdditionalNotes string `json:"additional_notes,omitempty"`
}

// Config is a complete prompt configuration: one template for translating
// cell values and one for rewriting cell formulas.
type Config struct {
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Value       Spec      `json:"value_prompt"`
	Formula     Spec      `json:"formula_prompt"`
	CreatedAt   time.Time `json:"created_at"`
	ModifiedAt  time.Time `json:"modified_at"`
}

// Default returns the built-in IFRS prompt configuration used when no
// active configuration has been saved yet.
func Default() *Config {
	return &Config{
		Name:        "Default IFRS Configuration",
		Description: "Standard prompt configuration for IFRS financial statement translations",
		Value: Spec{
			Identity: "You are a professional translator specializing in IFRS-compliant financial disclosures.",
			Instructions: `- Translate the provided English text into formal, professional {{.Language}} for use in financial statements.
- Maintain tone, meaning, and structure.
- Use proper grammar and consider singular/plural and gender forms.
- Do not translate variable names or placeholders if present.
- Return only the final translation: no headings, no commentary, no formatting.`,
		},
		Formula: Spec{
			Identity: "You are an expert Excel formula translator focused on localizing financial statement text without breaking Excel logic.",
			CriticalRules: `- DO NOT translate Excel functions like IF, UPPER, LEN, OR, AND, etc.
- DO NOT translate named ranges like CompanyName, Capitalisation, Director_is_are, etc.
- DO NOT translate cell references like A1, B2, etc.
- DO NOT translate operators like =, +, -, *, /, etc.
- DO NOT translate parentheses, commas, or other Excel syntax
- ONLY translate hardcoded English text in quotation marks`,
			Examples: `Example 1:
English value: "The company"
{{.Language}} value: "<translated>"
English formula: ="The company "&CompanyName
{{.Language}} formula: ="<translated>"&CompanyName

Example 2:
English value: "Total revenue"
{{.Language}} value: "<translated>"
English formula: =IF(TotalIncome>1000,"Total revenue exceeded","Within budget")
{{.Language}} formula: =IF(TotalIncome>1000,"<translated exceeded>","<translated within budget>")`,
			Instructions: `- You will receive a formula in Excel that contains dynamic named ranges and static text.
- Your task is to translate ONLY the hardcoded English text inside quotation marks to formal {{.Language}}.
- DO NOT modify Excel logic (e.g., IF, OR, LOWER) or named ranges (e.g., Director_is_are, AFS_Name).
- The translated formula MUST evaluate to the provided {{.Language}} sentence.
- Your response must be a valid Excel formula prefixed with a single apostrophe (') to prevent auto-evaluation.
- No additional text, no explanations; just return the formula as a single line.`,
		},
	}
}
