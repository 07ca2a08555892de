// Package mcp provides an MCP (Model Context Protocol) server adapter for reliefdir.
// It lets AI assistants search the relief directory and read organization records.
package mcp

import "errors"

// ErrMissingDirectoryService is returned when the directory service is not provided.
var ErrMissingDirectoryService = errors.New("mcp: directory service is required")
