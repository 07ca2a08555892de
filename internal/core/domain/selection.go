package domain

// All is the sentinel filter value that disables a facet filter.
const All = "all"

// Selection holds the user's search text and facet filters.
// It is a value type: every With method returns a modified copy.
type Selection struct {
	// SearchTerm is matched case-insensitively against name, details and type.
	SearchTerm string

	// Type is an exact organization type, or All.
	Type string

	// HelpType is an exact help type, or All.
	HelpType string

	// Status is an exact status label, or All.
	Status string

	// Tag is an exact tag, or All.
	Tag string
}

// NewSelection returns a selection with no search text and every filter set to All.
func NewSelection() Selection {
	return Selection{
		Type:     All,
		HelpType: All,
		Status:   All,
		Tag:      All,
	}
}

// IsDefault reports whether the selection matches every record.
func (s Selection) IsDefault() bool {
	return s.SearchTerm == "" &&
		isAll(s.Type) && isAll(s.HelpType) && isAll(s.Status) && isAll(s.Tag)
}

// WithSearchTerm returns a copy with the search term replaced.
func (s Selection) WithSearchTerm(term string) Selection {
	s.SearchTerm = term
	return s
}

// WithType returns a copy with the type filter replaced.
func (s Selection) WithType(value string) Selection {
	s.Type = normaliseFilter(value)
	return s
}

// WithHelpType returns a copy with the help type filter replaced.
func (s Selection) WithHelpType(value string) Selection {
	s.HelpType = normaliseFilter(value)
	return s
}

// WithStatus returns a copy with the status filter replaced.
func (s Selection) WithStatus(value string) Selection {
	s.Status = normaliseFilter(value)
	return s
}

// WithTag returns a copy with the tag filter replaced.
func (s Selection) WithTag(value string) Selection {
	s.Tag = normaliseFilter(value)
	return s
}

// ToggleTag selects tag, or returns to All when tag is already selected.
func (s Selection) ToggleTag(tag string) Selection {
	if s.Tag == tag {
		return s.WithTag(All)
	}
	return s.WithTag(tag)
}

// normaliseFilter maps the empty string to All so zero values stay valid.
func normaliseFilter(value string) string {
	if value == "" {
		return All
	}
	return value
}

// isAll treats the zero value like All.
func isAll(value string) bool {
	return value == "" || value == All
}
