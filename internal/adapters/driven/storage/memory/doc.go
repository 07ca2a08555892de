// Package memory provides in-memory implementations of driven port interfaces.
//
// RecordStore holds the loaded dataset for the lifetime of the process.
// ConfigStore is a non-persistent ConfigStore used by tests and by runs
// that pass every setting on the command line.
package memory
