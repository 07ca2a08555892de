// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// EventDispatched carries a view-state event to the app reducer from
// outside the views, for example through tea.Program.Send.
type EventDispatched struct {
	Event domain.Event
}

// SnapshotReady carries a derived snapshot back to the app.
type SnapshotReady struct {
	Snapshot *domain.Snapshot
	Err      error
}

// SettingsLoaded carries application settings to the app.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// Action identifies an action on the open record.
type Action string

const (
	// ActionCopyContact copies the contact text to the clipboard.
	ActionCopyContact Action = "copy_contact"
	// ActionOpenSource opens the source URL in a browser.
	ActionOpenSource Action = "open_source"
)

// SuccessMessage returns the status text shown when the action succeeds.
func (a Action) SuccessMessage() string {
	switch a {
	case ActionCopyContact:
		return "Contact copied to clipboard"
	case ActionOpenSource:
		return "Opened source in browser"
	default:
		return "Done"
	}
}

// ActionRequested is sent when the user triggers a record action.
type ActionRequested struct {
	Action       Action
	Organization *domain.Organization
}

// ActionCompleted reports the outcome of a record action.
type ActionCompleted struct {
	Action Action
	Err    error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewDirectory is the searchable organization list.
	ViewDirectory ViewType = iota
	// ViewDetail shows every field of one organization.
	ViewDetail
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewDirectory:
		return "directory"
	case ViewDetail:
		return "detail"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ErrorOccurred is sent when an error occurs.
type ErrorOccurred struct {
	Err error
}

// Quit is sent to exit the application.
type Quit struct{}
