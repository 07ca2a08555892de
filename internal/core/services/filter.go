package services

import (
	"strings"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// Matches reports whether org satisfies every criterion of sel.
func Matches(sel domain.Selection, org *domain.Organization) bool {
	return matchesSearch(sel.SearchTerm, org) &&
		matchesExact(sel.Type, org.Type) &&
		matchesExact(sel.HelpType, org.HelpType) &&
		matchesExact(sel.Status, org.Status) &&
		matchesTag(sel.Tag, org)
}

// FilterRecords returns the records matching sel in their original order.
// The result is never nil, so an empty match stays distinguishable from
// "not filtered yet".
func FilterRecords(records []domain.Organization, sel domain.Selection) []domain.Organization {
	out := make([]domain.Organization, 0, len(records))
	for i := range records {
		if Matches(sel, &records[i]) {
			out = append(out, records[i])
		}
	}
	return out
}

// matchesSearch checks name, details and type only.
func matchesSearch(term string, org *domain.Organization) bool {
	if term == "" {
		return true
	}
	needle := strings.ToLower(term)
	return strings.Contains(strings.ToLower(org.Name), needle) ||
		strings.Contains(strings.ToLower(org.Details), needle) ||
		strings.Contains(strings.ToLower(org.Type), needle)
}

func matchesExact(selected, value string) bool {
	if selected == "" || selected == domain.All {
		return true
	}
	return selected == value
}

func matchesTag(selected string, org *domain.Organization) bool {
	if selected == "" || selected == domain.All {
		return true
	}
	return org.HasTag(selected)
}
