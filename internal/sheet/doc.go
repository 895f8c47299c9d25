// Package sheet provides the in-memory record table the translation
// pipeline operates on. It loads and saves delimited flat files with
// the column schema used by spreadsheet exports and keeps track of
// which cells have been written, so an empty translation can be told
// apart from a record that was never processed.
package sheet
