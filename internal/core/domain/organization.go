package domain

// Well-known status labels. Any other value falls into StatusBucketOther.
const (
	StatusActive = "Active"
	StatusPaused = "Paused"
)

// Organization is one record of the relief directory.
// Records are loaded once from a static dataset and never modified.
type Organization struct {
	// ID is the stable key of the record, unique across the dataset.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Type is the category of organization, e.g. "NGO" or "Business".
	Type string `json:"type"`

	// HelpType is the category of assistance offered.
	HelpType string `json:"helpType"`

	// Status is a lifecycle label such as "Active" or "Paused".
	Status string `json:"status"`

	// Amount describes the support amount in free text.
	// It may contain a currency figure like "€50,000".
	Amount string `json:"amount"`

	// Contact is free-text contact information.
	Contact string `json:"contact"`

	// Details is a free-text description.
	Details string `json:"details"`

	// Date is a display-only date label. It is never parsed.
	Date string `json:"date"`

	// Tags are ordered labels. Nil and empty are equivalent.
	Tags []string `json:"tags"`

	// Source is the URL of the original information.
	Source string `json:"source"`
}

// HasTag reports whether the record carries tag exactly.
func (o *Organization) HasTag(tag string) bool {
	for _, t := range o.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// IsActive reports whether the record status is exactly "Active".
func (o *Organization) IsActive() bool {
	return o.Status == StatusActive
}

// VisibleTags returns at most limit tags and the number left out.
// A non-positive limit shows every tag.
func (o *Organization) VisibleTags(limit int) (shown []string, more int) {
	if limit <= 0 || len(o.Tags) <= limit {
		return o.Tags, 0
	}
	return o.Tags[:limit], len(o.Tags) - limit
}

// StatusBucket groups status labels for badge rendering.
type StatusBucket string

// Status buckets.
const (
	StatusBucketActive StatusBucket = "active"
	StatusBucketPaused StatusBucket = "paused"
	StatusBucketOther  StatusBucket = "other"
)

// StatusBucketOf maps a status label to its bucket.
func StatusBucketOf(status string) StatusBucket {
	switch status {
	case StatusActive:
		return StatusBucketActive
	case StatusPaused:
		return StatusBucketPaused
	default:
		return StatusBucketOther
	}
}

// String returns the string representation.
func (b StatusBucket) String() string {
	return string(b)
}
