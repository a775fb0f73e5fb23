package search

import (
	"strings"

	"github.com/sahilm/fuzzy"

	"faqdesk/internal/domain"
)

// Suggest fuzzy-matches query against the questions in records and returns
// up to limit questions, best first. Queries shorter than minSearchLength
// produce no suggestions.
func Suggest(records []domain.FAQ, query string, minSearchLength, limit int) []string {
	query = strings.TrimSpace(query)
	if query == "" || len(query) < minSearchLength || limit <= 0 {
		return nil
	}

	questions := make([]string, len(records))
	for i, faq := range records {
		questions[i] = faq.Question
	}

	matches := fuzzy.Find(query, questions)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	suggestions := make([]string, 0, len(matches))
	for _, m := range matches {
		suggestions = append(suggestions, m.Str)
	}
	return suggestions
}
