// Package driving declares what the CLI, TUI and MCP server may ask of the
// core: directory queries, view snapshots, record actions, settings and
// bundling. internal/core/services satisfies every interface here.
package driving
