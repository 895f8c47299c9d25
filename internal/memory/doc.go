// Package memory implements a persistent translation memory backed by
// SQLite. Model outputs are cached per source text, target language,
// request kind, and model name, so repeated and resumed runs skip API
// calls for text that has already been translated.
package memory
