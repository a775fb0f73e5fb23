package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqdesk/internal/domain"
	"faqdesk/internal/search"
)

func scenarioRecords() []domain.FAQ {
	return []domain.FAQ{
		{ID: 1, Category: "Orders", Question: "Return policy?", Tags: []string{"returns"}, Answer: "30 days", Helpful: 50},
		{ID: 2, Category: "Orders", Question: "Refund status", Tags: []string{"refund"}, Answer: "check email", Helpful: 0},
	}
}

func ids(results []search.Result) []int {
	out := make([]int, len(results))
	for i, r := range results {
		out[i] = r.FAQ.ID
	}
	return out
}

func TestEvaluateReturnScenario(t *testing.T) {
	results := search.Evaluate(scenarioRecords(), search.AllCategories, "return", 2)

	require.Len(t, results, 1)
	assert.Equal(t, 1, results[0].FAQ.ID)
	// question substring 50 + tag substring 20 ("returns") + popularity 5
	assert.InDelta(t, 75, results[0].Score, 1e-9)

	untagged := scenarioRecords()[0]
	untagged.Tags = nil
	assert.InDelta(t, 20, results[0].Score-search.Score(untagged, "return"), 1e-9,
		"the tag substring term counts on top of the question match")
}

func TestEvaluateShortQuerySkipsFiltering(t *testing.T) {
	records := scenarioRecords()

	for _, q := range []string{"", "r", " r ", "   "} {
		results := search.Evaluate(records, search.AllCategories, q, 2)
		assert.Equal(t, []int{1, 2}, ids(results), "query %q", q)
		for _, r := range results {
			assert.Zero(t, r.Score)
		}
	}
}

func TestEvaluateCategoryFilterIsExact(t *testing.T) {
	records := []domain.FAQ{
		{ID: 1, Category: "Repairs"},
		{ID: 2, Category: "repairs"},
		{ID: 3, Category: "Fabrics"},
		{ID: 4, Category: "Repairs"},
	}

	assert.Equal(t, []int{1, 4}, ids(search.Evaluate(records, "Repairs", "", 2)))
	assert.Empty(t, search.Evaluate(records, "Unknown", "", 2))
}

func TestEvaluateEveryResultMatches(t *testing.T) {
	records := []domain.FAQ{
		{ID: 1, Question: "How long does a hem take?"},
		{ID: 2, Question: "Zipper", Answer: "We replace zips"},
		{ID: 3, Question: "Fabrics", Tags: []string{"Linen"}},
		{ID: 4, Question: "Nothing relevant"},
	}

	for _, q := range []string{"hem", "zip", "LIN", "re"} {
		for _, r := range search.Evaluate(records, search.AllCategories, q, 2) {
			assert.True(t, search.Matches(r.FAQ, q), "record %d for %q", r.FAQ.ID, q)
		}
	}
}

func TestEvaluateRanksAndBreaksTiesByOriginalOrder(t *testing.T) {
	records := []domain.FAQ{
		{ID: 1, Question: "other", Answer: "about hem"},
		{ID: 2, Question: "hem"},
		{ID: 3, Question: "zip", Tags: []string{"hem"}},
		{ID: 4, Question: "another", Answer: "hem again"},
		{ID: 5, Question: "hem length?"},
	}

	results := search.Evaluate(records, search.AllCategories, "hem", 2)
	assert.Equal(t, []int{2, 5, 3, 1, 4}, ids(results))
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	records := []domain.FAQ{
		{ID: 1, Question: "b", Answer: "hem"},
		{ID: 2, Question: "hem"},
	}
	before := append([]domain.FAQ(nil), records...)

	search.Evaluate(records, search.AllCategories, "hem", 2)
	assert.Equal(t, before, records)
}

func TestCategories(t *testing.T) {
	records := []domain.FAQ{
		{Category: "Repairs"},
		{Category: "Fabrics"},
		{Category: "Repairs"},
		{Category: "Orders"},
		{Category: "All"},
		{Category: "Fabrics"},
	}

	assert.Equal(t, []string{"All", "Repairs", "Fabrics", "Orders"}, search.Categories(records))
	assert.Equal(t, []string{"All"}, search.Categories(nil))
}

func TestSuggest(t *testing.T) {
	records := []domain.FAQ{
		{Question: "Return policy?"},
		{Question: "Refund status"},
		{Question: "Zipper repair"},
	}

	got := search.Suggest(records, "etrn", 2, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, "Return policy?", got[0])

	assert.Nil(t, search.Suggest(records, "r", 2, 3))
	assert.Nil(t, search.Suggest(records, "etrn", 2, 0))
}
