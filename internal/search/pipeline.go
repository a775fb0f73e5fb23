package search

import (
	"sort"
	"strings"

	"faqdesk/internal/domain"
)

// Result is one FAQ in a result list. Score is zero when the list was not
// ranked (query shorter than the minimum search length).
type Result struct {
	FAQ   domain.FAQ
	Score float64
}

// Evaluate filters records by category and query and ranks the survivors.
//
// records is never modified. When the trimmed query is shorter than
// minSearchLength the category-filtered records are returned in their
// original order. Otherwise only matching records are kept and sorted by
// descending Score; equal scores keep their original relative order.
func Evaluate(records []domain.FAQ, category, query string, minSearchLength int) []Result {
	results := make([]Result, 0, len(records))
	for _, faq := range records {
		if category != AllCategories && faq.Category != category {
			continue
		}
		results = append(results, Result{FAQ: faq})
	}

	if len(strings.TrimSpace(query)) < minSearchLength {
		return results
	}

	ranked := results[:0]
	for _, r := range results {
		if !Matches(r.FAQ, query) {
			continue
		}
		r.Score = Score(r.FAQ, query)
		ranked = append(ranked, r)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}

// Categories returns AllCategories followed by each distinct category in
// records, in order of first appearance
func Categories(records []domain.FAQ) []string {
	categories := []string{AllCategories}
	seen := map[string]bool{AllCategories: true}
	for _, faq := range records {
		if seen[faq.Category] {
			continue
		}
		seen[faq.Category] = true
		categories = append(categories, faq.Category)
	}
	return categories
}
