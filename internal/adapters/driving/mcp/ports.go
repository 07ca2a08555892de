package mcp

import (
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
)

// Ports holds what the tools and resources read from.
type Ports struct {
	// Directory exposes the loaded organizations.
	Directory driving.DirectoryService
}

// Validate reports ErrMissingDirectoryService when no directory is wired.
func (p *Ports) Validate() error {
	if p == nil || p.Directory == nil {
		return ErrMissingDirectoryService
	}
	return nil
}
