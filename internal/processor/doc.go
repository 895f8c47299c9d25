// Package processor contains the core business logic for translating
// spreadsheet records. It walks a loaded table record by record, drives
// the two dependent transform calls each record needs, writes periodic
// checkpoints, and tracks throughput. This package serves as the main
// coordinator between all other components.
package processor
