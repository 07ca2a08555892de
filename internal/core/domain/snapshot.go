package domain

// Snapshot is everything a presentation layer needs to render one frame.
type Snapshot struct {
	// State is the view state the snapshot was derived from.
	State ViewState

	// Facets populate the filter controls.
	Facets Facets

	// Result is the filtered record sequence.
	Result *FilterResult

	// Summary holds the three header figures.
	Summary Summary

	// Detail is the open record, or nil when the detail view is closed
	// or refers to an id that is not in the dataset.
	Detail *Organization

	// Link is the external reference shown alongside the directory.
	Link ExternalLink
}
