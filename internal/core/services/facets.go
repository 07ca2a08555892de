package services

import (
	"sort"

	"github.com/custodia-labs/reliefdir/internal/core/domain"
)

// ExtractFacets collects the distinct type, help type, status and tag values
// of records, each sorted ascending. Empty values are skipped.
func ExtractFacets(records []domain.Organization) domain.Facets {
	types := make(map[string]struct{})
	helpTypes := make(map[string]struct{})
	statuses := make(map[string]struct{})
	tags := make(map[string]struct{})

	for i := range records {
		addFacet(types, records[i].Type)
		addFacet(helpTypes, records[i].HelpType)
		addFacet(statuses, records[i].Status)
		for _, tag := range records[i].Tags {
			addFacet(tags, tag)
		}
	}

	return domain.Facets{
		Types:     sortedKeys(types),
		HelpTypes: sortedKeys(helpTypes),
		Statuses:  sortedKeys(statuses),
		Tags:      sortedKeys(tags),
	}
}

func addFacet(set map[string]struct{}, value string) {
	if value == "" {
		return
	}
	set[value] = struct{}{}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
