package domain

// Facets lists the distinct values available to each filter control.
// Every slice is sorted ascending.
type Facets struct {
	Types     []string `json:"types"`
	HelpTypes []string `json:"helpTypes"`
	Statuses  []string `json:"statuses"`
	Tags      []string `json:"tags"`
}

// FilterResult is the ordered subset of the dataset matching a Selection.
// A nil *FilterResult means "not yet filtered"; an empty one means no matches.
type FilterResult struct {
	// Records keeps the original dataset order.
	Records []Organization

	// Total is the size of the full dataset.
	Total int
}

// Count returns the number of matching records.
func (r *FilterResult) Count() int {
	if r == nil {
		return 0
	}
	return len(r.Records)
}

// IsEmpty reports whether filtering ran and matched nothing.
func (r *FilterResult) IsEmpty() bool {
	return r != nil && len(r.Records) == 0
}

// Messages shown when a filter matches nothing.
const (
	EmptyResultMessage = "No organizations found matching your criteria."
	EmptyResultHint    = "Try adjusting your search or filters."
)
