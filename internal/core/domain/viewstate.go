package domain

// ViewState is the complete ephemeral state of one directory session.
// It is never mutated in place; Reduce returns the next value.
type ViewState struct {
	Selection Selection
	Detail    DetailState
}

// NewViewState returns the initial state: no filters, detail closed.
func NewViewState() ViewState {
	return ViewState{Selection: NewSelection()}
}

// Event is a user action that moves the view to a new state.
type Event interface {
	apply(ViewState) ViewState
}

// SearchTermChanged replaces the free-text search.
type SearchTermChanged struct{ Term string }

// TypeSelected replaces the organization type filter.
type TypeSelected struct{ Value string }

// HelpTypeSelected replaces the help type filter.
type HelpTypeSelected struct{ Value string }

// StatusSelected replaces the status filter.
type StatusSelected struct{ Value string }

// TagSelected replaces the tag filter.
type TagSelected struct{ Value string }

// TagToggled selects a tag, or clears the tag filter if it is already selected.
type TagToggled struct{ Tag string }

// FiltersCleared resets the search text and all facet filters.
type FiltersCleared struct{}

// RecordSelected opens a record in the detail view. An empty ID closes it.
type RecordSelected struct{ ID string }

// DetailClosed closes the detail view.
type DetailClosed struct{}

func (e SearchTermChanged) apply(s ViewState) ViewState {
	s.Selection = s.Selection.WithSearchTerm(e.Term)
	return s
}

func (e TypeSelected) apply(s ViewState) ViewState {
	s.Selection = s.Selection.WithType(e.Value)
	return s
}

func (e HelpTypeSelected) apply(s ViewState) ViewState {
	s.Selection = s.Selection.WithHelpType(e.Value)
	return s
}

func (e StatusSelected) apply(s ViewState) ViewState {
	s.Selection = s.Selection.WithStatus(e.Value)
	return s
}

func (e TagSelected) apply(s ViewState) ViewState {
	s.Selection = s.Selection.WithTag(e.Value)
	return s
}

func (e TagToggled) apply(s ViewState) ViewState {
	s.Selection = s.Selection.ToggleTag(e.Tag)
	return s
}

func (FiltersCleared) apply(s ViewState) ViewState {
	s.Selection = NewSelection()
	return s
}

func (e RecordSelected) apply(s ViewState) ViewState {
	s.Detail = s.Detail.Select(e.ID)
	return s
}

func (DetailClosed) apply(s ViewState) ViewState {
	s.Detail = s.Detail.Close()
	return s
}

// Reduce applies event to state and returns the resulting state.
// A nil event leaves the state unchanged.
func Reduce(state ViewState, event Event) ViewState {
	if event == nil {
		return state
	}
	return event.apply(state)
}
