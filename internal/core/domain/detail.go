package domain

// DetailState tracks the record shown in the detail view.
// The zero value is closed. At most one record is open at a time.
type DetailState struct {
	recordID string
}

// Select opens the record with the given id, replacing any open record.
// An empty id closes the detail view.
func (d DetailState) Select(id string) DetailState {
	return DetailState{recordID: id}
}

// Close closes the detail view. Closing a closed view is a no-op.
func (d DetailState) Close() DetailState {
	return DetailState{}
}

// IsOpen reports whether a record is open.
func (d DetailState) IsOpen() bool {
	return d.recordID != ""
}

// RecordID returns the id of the open record, or "" when closed.
func (d DetailState) RecordID() string {
	return d.recordID
}
