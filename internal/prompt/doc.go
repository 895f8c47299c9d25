// Package prompt manages the prompt configurations that drive translation
// requests. A configuration carries separate prompt templates for cell
// values and cell formulas, split into sections (identity, instructions,
// critical rules, examples, notes) that are assembled into the system
// message sent to the model. Configurations persist as JSON files in a
// config directory: one active configuration plus any number of named
// presets. Section texts may reference {{.Language}} and related template
// fields, which are resolved at render time.
package prompt
