package catalog

import (
	"sort"
	"strings"
)

// Merge concatenates the base catalog and the custom products, base first,
// preserving insertion order within each source. Custom entries are
// re-tagged so provenance survives callers that built them by hand.
func Merge(base, custom []Product) []Product {
	merged := make([]Product, 0, len(base)+len(custom))
	for _, p := range base {
		if p.Source == "" {
			p.Source = SourceBase
		}
		merged = append(merged, p)
	}
	for _, p := range custom {
		p.Source = SourceCustom
		merged = append(merged, p)
	}
	return merged
}

// Categories returns the distinct category values across the catalog,
// sorted ascending.
func Categories(catalog []Product) []string {
	seen := map[string]struct{}{}
	out := make([]string, 0, len(catalog))
	for _, p := range catalog {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	sort.Strings(out)
	return out
}

// Filter applies the search query (case-insensitive substring over name and
// description) and the optional exact category match, then stable-partitions
// the result so every custom product precedes every base product. Relative
// order within each group is the input order, which for custom products is
// creation order. The input is never mutated.
func Filter(catalog []Product, query, category string) []Product {
	needle := strings.ToLower(query)

	customFirst := make([]Product, 0, len(catalog))
	base := make([]Product, 0, len(catalog))
	for _, p := range catalog {
		if !matches(p, needle, category) {
			continue
		}
		if p.IsCustom() {
			customFirst = append(customFirst, p)
		} else {
			base = append(base, p)
		}
	}
	return append(customFirst, base...)
}

func matches(p Product, needle, category string) bool {
	if needle != "" &&
		!strings.Contains(strings.ToLower(p.Name), needle) &&
		!strings.Contains(strings.ToLower(p.Description), needle) {
		return false
	}
	if category != "" && p.Category != category {
		return false
	}
	return true
}
