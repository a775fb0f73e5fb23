package cli

import (
	"fmt"
	"strings"

	"faqdesk/internal/search"
)

// formatView renders a search view for the terminal.
//
//	2 results for "refund" in All
//	  1. [100.9] Refund status  (Orders)  #refund #payment
//	  2. [ 45.0] Return policy?  (Orders)  #returns #refund
func formatView(view search.View, limit int, answers bool) string {
	var sb strings.Builder

	switch {
	case view.CommittedQuery != "":
		fmt.Fprintf(&sb, "%d results for %q in %s\n", view.ResultCount, view.CommittedQuery, view.SelectedCategory)
	default:
		fmt.Fprintf(&sb, "%d FAQs in %s\n", view.ResultCount, view.SelectedCategory)
	}

	results := view.Results
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	for i, r := range results {
		fmt.Fprintf(&sb, "  %d. [%5.1f] %s  (%s)", i+1, r.Score, r.FAQ.Question, r.FAQ.Category)
		if len(r.FAQ.Tags) > 0 {
			sb.WriteString("  #" + strings.Join(r.FAQ.Tags, " #"))
		}
		sb.WriteString("\n")
		if answers && r.FAQ.Answer != "" {
			fmt.Fprintf(&sb, "       %s\n", r.FAQ.Answer)
		}
	}

	if hidden := len(view.Results) - len(results); hidden > 0 {
		fmt.Fprintf(&sb, "  … %d more\n", hidden)
	}
	return sb.String()
}
