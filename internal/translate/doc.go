// Package translate issues the OpenAI chat requests that turn English
// cell values and formulas into their target-language counterparts.
// Requests run behind a circuit breaker, and outputs are cached in an
// optional persistent translation memory.
package translate
