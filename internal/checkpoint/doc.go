// Package checkpoint persists point-in-time snapshots of a record table
// and loads them back to resume an interrupted run. Snapshot names embed
// the kind, target language, success count, and a timestamp, so a
// checkpoint directory reads as an ordered history of a run.
package checkpoint
