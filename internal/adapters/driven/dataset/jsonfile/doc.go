// Package jsonfile loads the organization dataset from a JSON file.
//
// The file holds a JSON array of objects. The id may be a string or a
// number; records without one get a deterministic key so the detail view
// can still address them.
package jsonfile
