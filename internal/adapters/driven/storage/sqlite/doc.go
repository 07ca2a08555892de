// Package sqlite stores the organization dataset as a SQLite bundle.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation.
//
// A bundle is written once with NewStore and Import, then shipped and opened
// with OpenReadOnly, where the Store acts as a driven.DatasetLoader.
//
// # Schema
//
// The schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files. Records keep their dataset order in organizations.position and
// their tag order in organization_tags.position.
package sqlite
