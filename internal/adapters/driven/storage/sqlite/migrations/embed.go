// Package migrations holds the schema of the SQLite dataset bundle.
package migrations

import "embed"

// FS holds the numbered up/down files NewStore applies in order.
//
//go:embed *.sql
var FS embed.FS
