// Package tui provides an interactive terminal user interface for reliefdir.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/reliefdir/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// View derives snapshots from the session's view state.
	View driving.ViewEngine

	// Actions copies contact text and opens source URLs.
	Actions driving.RecordActionService

	// Settings provides display settings. Optional; defaults apply when nil.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	view driving.ViewEngine,
	actions driving.RecordActionService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		View:     view,
		Actions:  actions,
		Settings: settings,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.View == nil {
		return ErrMissingViewEngine
	}
	if p.Actions == nil {
		return ErrMissingActionService
	}
	return nil
}
