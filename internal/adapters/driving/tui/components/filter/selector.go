// Package filter provides the facet selector component for the TUI.
package filter

import (
	"github.com/custodia-labs/reliefdir/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// Selector cycles through "all" and the distinct values of one facet.
type Selector struct {
	allLabel string
	options  []string
	value    string
	focused  bool
	styles   *styles.Styles
}

// NewSelector creates a selector whose "all" option reads allLabel.
func NewSelector(allLabel string, s *styles.Styles) *Selector {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &Selector{
		allLabel: allLabel,
		value:    domain.All,
		styles:   s,
	}
}

// SetOptions replaces the facet values. The current value is kept as is,
// so a selection outside the options stays in effect until changed.
func (f *Selector) SetOptions(options []string) {
	f.options = options
}

// Options returns the facet values.
func (f *Selector) Options() []string {
	return f.options
}

// SetValue sets the displayed value. Empty means all.
func (f *Selector) SetValue(value string) {
	if value == "" {
		value = domain.All
	}
	f.value = value
}

// Value returns the current value, domain.All when unfiltered.
func (f *Selector) Value() string {
	return f.value
}

// Next returns the value after the current one, wrapping to all.
func (f *Selector) Next() string {
	return f.step(1)
}

// Prev returns the value before the current one, wrapping to the last option.
func (f *Selector) Prev() string {
	return f.step(-1)
}

// step moves through the cycle [all, options...] without changing the selector.
func (f *Selector) step(delta int) string {
	cycle := make([]string, 0, len(f.options)+1)
	cycle = append(cycle, domain.All)
	cycle = append(cycle, f.options...)

	current := 0
	for i, v := range cycle {
		if v == f.value {
			current = i
			break
		}
	}
	next := (current + delta + len(cycle)) % len(cycle)
	return cycle[next]
}

// Focus marks the selector as holding focus.
func (f *Selector) Focus() {
	f.focused = true
}

// Blur removes focus.
func (f *Selector) Blur() {
	f.focused = false
}

// Focused reports whether the selector holds focus.
func (f *Selector) Focused() bool {
	return f.focused
}

// Label returns the text shown for the current value.
func (f *Selector) Label() string {
	if f.value == domain.All {
		return f.allLabel
	}
	return f.value
}

// View renders the selector.
func (f *Selector) View() string {
	text := f.Label() + " ▾"
	if f.focused {
		return f.styles.FocusedField.Render("◂ " + text + " ▸")
	}
	if f.value != domain.All {
		return f.styles.InputField.Render(f.styles.Subtitle.Render(text))
	}
	return f.styles.InputField.Render(f.styles.Muted.Render(text))
}
