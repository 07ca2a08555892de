package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/views/detail"
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/views/directory"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// The App owns the session's domain.ViewState. Views never change it
// directly: they return events from Update, the App reduces each one
// before reading the next message and asks the view engine for a fresh
// snapshot. Only the snapshot is derived off the update loop.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	// keymap holds the keybindings.
	keymap *keymap.KeyMap

	// directoryView is the searchable organization list.
	directoryView *directory.View

	// detailView shows the open organization.
	detailView *detail.View

	// statusBar shows counts, notices and key hints.
	statusBar *status.Bar

	// state is the current view state.
	state domain.ViewState

	// snapshot is the last snapshot derived from state.
	snapshot *domain.Snapshot

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	return NewAppWithClock(ports, time.Now)
}

// NewAppWithClock creates an app whose "Last Updated" header reads now.
func NewAppWithClock(ports *Ports, now func() time.Time) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:         ports,
		ctx:           context.Background(),
		styles:        s,
		keymap:        km,
		directoryView: directory.NewView(s, km, now),
		detailView:    detail.NewView(s, km),
		statusBar:     status.NewBar(s, km),
		state:         domain.NewViewState(),
		currentView:   messages.ViewDirectory,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("reliefdir - Wildfire Support Directory"),
		a.loadSettings(),
		a.requestSnapshot(a.state),
		a.directoryView.Init(),
	)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocyclo // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)

	case messages.EventDispatched:
		return a, a.reduce(msg.Event)

	case messages.SnapshotReady:
		a.applySnapshot(msg)
		return a, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			a.showError(msg.Err)
			return a, nil
		}
		a.directoryView.SetSettings(msg.Settings)
		return a, nil

	case messages.ActionRequested:
		return a, a.runAction(msg)

	case messages.ActionCompleted:
		if msg.Err != nil {
			a.showError(msg.Err)
			return a, nil
		}
		a.statusBar.SetState(status.StateNotice)
		a.statusBar.SetMessage(msg.Action.SuccessMessage())
		return a, nil

	case messages.ViewChanged:
		a.currentView = msg.View
		a.syncStatus()
		return a, nil

	case messages.ErrorOccurred:
		a.showError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages (cursor blinks) to the active view
	if a.currentView == messages.ViewDirectory {
		a.directoryView, cmd, _ = a.directoryView.Update(msg)
	}
	return a, cmd
}

// handleKey routes key input to the active view after global bindings.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var ev domain.Event
	keyStr := msg.String()

	if keymap.Matches(keyStr, a.keymap.ForceQuit) {
		return a, tea.Quit
	}

	// Any key dismisses a notice or error
	if s := a.statusBar.State(); s == status.StateNotice || s == status.StateError {
		a.syncStatus()
	}

	switch a.currentView {
	case messages.ViewHelp:
		if keymap.Matches(keyStr, a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(keyStr, a.keymap.Back) || keymap.Matches(keyStr, a.keymap.Help) {
			a.currentView = a.viewForState()
			a.syncStatus()
		}
		return a, nil

	case messages.ViewDetail:
		if keymap.Matches(keyStr, a.keymap.Quit) {
			return a, tea.Quit
		}
		if keymap.Matches(keyStr, a.keymap.Help) {
			a.currentView = messages.ViewHelp
			a.syncStatus()
			return a, nil
		}
		a.detailView, cmd, ev = a.detailView.Update(msg)
		return a, tea.Batch(cmd, a.reduce(ev))

	case messages.ViewDirectory:
		if !a.directoryView.Capturing() {
			if keymap.Matches(keyStr, a.keymap.Quit) {
				return a, tea.Quit
			}
			if keymap.Matches(keyStr, a.keymap.Help) {
				a.currentView = messages.ViewHelp
				a.syncStatus()
				return a, nil
			}
		}
		a.directoryView, cmd, ev = a.directoryView.Update(msg)
		return a, tea.Batch(cmd, a.reduce(ev))
	}
	return a, nil
}

// reduce applies ev to the view state and requests the matching snapshot.
// The directory controls follow the new selection at once, so the next key
// works from it rather than from the last snapshot.
func (a *App) reduce(ev domain.Event) tea.Cmd {
	if ev == nil {
		return nil
	}
	a.state = domain.Reduce(a.state, ev)
	a.directoryView.SetSelection(a.state.Selection)
	return a.requestSnapshot(a.state)
}

// requestSnapshot derives a snapshot for state off the update loop.
func (a *App) requestSnapshot(state domain.ViewState) tea.Cmd {
	ctx := a.ctx
	engine := a.ports.View
	return func() tea.Msg {
		snap, err := engine.Snapshot(ctx, state)
		return messages.SnapshotReady{Snapshot: snap, Err: err}
	}
}

// applySnapshot renders a snapshot if it still matches the current state.
func (a *App) applySnapshot(msg messages.SnapshotReady) {
	if msg.Err != nil {
		a.showError(msg.Err)
		return
	}
	snap := msg.Snapshot
	if snap == nil || snap.State != a.state {
		// Superseded by a later event
		return
	}

	a.snapshot = snap
	a.err = nil
	a.directoryView.SetSnapshot(snap)
	a.detailView.SetOrganization(snap.Detail)

	if snap.Detail == nil && a.state.Detail.IsOpen() {
		// Unknown id: treat as closed
		a.state.Detail = a.state.Detail.Close()
		a.snapshot.State = a.state
	}
	if a.currentView != messages.ViewHelp {
		a.currentView = a.viewForState()
	}
	a.syncStatus()
}

// viewForState picks the directory or detail view from the detail state.
func (a *App) viewForState() messages.ViewType {
	if a.state.Detail.IsOpen() && a.detailView.Organization() != nil {
		return messages.ViewDetail
	}
	return messages.ViewDirectory
}

// syncStatus resets the status bar to match the active view.
func (a *App) syncStatus() {
	a.statusBar.SetMessage("")
	shown, total := a.directoryView.Count()
	a.statusBar.SetCounts(shown, total)

	switch {
	case !a.directoryView.Loaded():
		a.statusBar.SetState(status.StateLoading)
	case a.currentView == messages.ViewHelp:
		a.statusBar.SetState(status.StateHelp)
	case a.currentView == messages.ViewDetail:
		a.statusBar.SetState(status.StateDetail)
	default:
		a.statusBar.SetState(status.StateReady)
	}
}

func (a *App) showError(err error) {
	a.err = err
	a.statusBar.SetState(status.StateError)
	a.statusBar.SetMessage(err.Error())
}

// loadSettings reads display settings. Without a settings port defaults apply.
func (a *App) loadSettings() tea.Cmd {
	settings := a.ports.Settings
	return func() tea.Msg {
		if settings == nil {
			defaults := domain.DefaultAppSettings()
			return messages.SettingsLoaded{Settings: &defaults}
		}
		s, err := settings.Get()
		return messages.SettingsLoaded{Settings: s, Err: err}
	}
}

// runAction executes a record action against the action service.
func (a *App) runAction(msg messages.ActionRequested) tea.Cmd {
	ctx := a.ctx
	actions := a.ports.Actions
	return func() tea.Msg {
		var err error
		switch msg.Action {
		case messages.ActionCopyContact:
			err = actions.CopyContact(ctx, msg.Organization)
		case messages.ActionOpenSource:
			err = actions.OpenSource(ctx, msg.Organization)
		default:
			err = fmt.Errorf("unknown action %q", msg.Action)
		}
		return messages.ActionCompleted{Action: msg.Action, Err: err}
	}
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewDetail:
		body = a.detailView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.directoryView.View()
	}
	return body + "\n" + a.statusBar.View()
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return `Help

Directory:
  (type)       Search names, details and types
  tab          Next field (search, filters, list)
  shift+tab    Previous field
  ←/→, h/l     Change the focused filter
  /            Focus search
  esc, enter   Leave search and focus the list
  j/k, ↑/↓     Navigate organizations
  enter        Show details
  1-9          Toggle a popular category
  x            Clear search and filters

Details:
  j/k, ↑/↓     Scroll
  c            Copy contact information
  o            View original source
  esc          Close

General:
  ?            Toggle help
  q            Quit (outside search)
  ctrl+c       Quit

[esc] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))
	_, err := p.Run()
	return err
}

// State returns the current view state.
func (a *App) State() domain.ViewState {
	return a.state
}

// Snapshot returns the last applied snapshot, or nil before the first one.
func (a *App) Snapshot() *domain.Snapshot {
	return a.snapshot
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// StatusBar returns the status bar component.
func (a *App) StatusBar() *status.Bar {
	return a.statusBar
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	// Leave a line for the status bar
	a.directoryView.SetDimensions(width, height-1)
	a.detailView.SetDimensions(width, height-1)
	a.statusBar.SetWidth(width)
}
