package domain

// ExternalLink is a static outbound reference rendered verbatim.
type ExternalLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// DefaultExternalLink points at the comprehensive help provider directory.
func DefaultExternalLink() ExternalLink {
	return ExternalLink{
		Name: "FireSOS Cyprus - Comprehensive Help Providers Directory",
		URL:  "https://firesos.livenow.com.cy/",
	}
}

// IsZero reports whether the link is unset.
func (l ExternalLink) IsZero() bool {
	return l.URL == ""
}
