// Package input provides the directory search box.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/styles"
)

// Placeholder is shown while the search input is empty.
const Placeholder = "Search companies..."

const (
	label        = "Search: "
	defaultWidth = 50
	minWidth     = 20
	maxTermRunes = 256

	// chrome is the label, prompt, border and padding around the text.
	chrome = 16
)

// SearchInput is the free-text search box. Its text mirrors the
// selection's search term: edits are reported to the caller, and Sync
// pulls the term back in when the selection changes elsewhere.
type SearchInput struct {
	model  textinput.Model
	styles *styles.Styles
	width  int
}

// NewSearchInput creates the search box. It starts focused.
func NewSearchInput(s *styles.Styles) *SearchInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	m := textinput.New()
	m.Placeholder = Placeholder
	m.Prompt = "🔍 "
	m.CharLimit = maxTermRunes
	m.Focus()

	si := &SearchInput{model: m, styles: s}
	si.SetWidth(defaultWidth + chrome)
	si.width = defaultWidth
	return si
}

// Init starts the cursor blinking.
func (s *SearchInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update feeds msg to the text field. changed reports whether the search
// term differs afterwards, so cursor moves and blinks dispatch nothing.
func (s *SearchInput) Update(msg tea.Msg) (input *SearchInput, cmd tea.Cmd, changed bool) {
	before := s.model.Value()
	s.model, cmd = s.model.Update(msg)
	return s, cmd, s.model.Value() != before
}

// Sync replaces the text with term when they differ and reports whether
// it did. The cursor moves to the end.
func (s *SearchInput) Sync(term string) bool {
	if s.model.Value() == term {
		return false
	}
	s.model.SetValue(term)
	s.model.CursorEnd()
	return true
}

// View renders the label and the bordered field.
func (s *SearchInput) View() string {
	field := s.styles.InputField
	if s.model.Focused() {
		field = s.styles.FocusedField
	}
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.styles.Title.Render(label),
		field.Render(s.model.View()),
	)
}

// Value returns the current search term.
func (s *SearchInput) Value() string {
	return s.model.Value()
}

// Focus gives the field the cursor.
func (s *SearchInput) Focus() tea.Cmd {
	return s.model.Focus()
}

// Blur hides the cursor; key input is ignored until Focus.
func (s *SearchInput) Blur() {
	s.model.Blur()
}

// Focused reports whether the field holds the cursor.
func (s *SearchInput) Focused() bool {
	return s.model.Focused()
}

// SetWidth fits the field into width columns.
func (s *SearchInput) SetWidth(width int) {
	s.width = width
	s.model.Width = max(width-chrome, minWidth)
}

// Width returns the width last set.
func (s *SearchInput) Width() int {
	return s.width
}
