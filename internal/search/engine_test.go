package search_test

import (
	"sync"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faqdesk/internal/domain"
	"faqdesk/internal/search"
	"faqdesk/internal/search/searchtest"
)

func newTestEngine(t *testing.T, records []domain.FAQ, opts ...search.Option) (*search.Engine, *searchtest.ManualScheduler) {
	t.Helper()
	sched := searchtest.NewManualScheduler()
	opts = append([]search.Option{search.WithScheduler(sched)}, opts...)
	e := search.New(records, opts...)
	t.Cleanup(e.Close)
	return e, sched
}

func TestEngineInitialView(t *testing.T) {
	e, _ := newTestEngine(t, scenarioRecords())

	v := e.View()
	assert.Equal(t, []int{1, 2}, ids(v.Results))
	assert.Equal(t, 2, v.ResultCount)
	assert.True(t, v.HasResults)
	assert.False(t, v.IsFiltered)
	assert.False(t, v.Searching)
	assert.Equal(t, search.AllCategories, v.SelectedCategory)
	assert.Equal(t, []string{"All", "Orders"}, v.Categories)
}

func TestEngineDebounceCommitsAfterQuietPeriod(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())

	e.SetQuery("return")
	v := e.View()
	assert.True(t, v.Searching)
	assert.True(t, v.IsFiltered)
	assert.Equal(t, "return", v.RawQuery)
	assert.Empty(t, v.CommittedQuery)
	assert.Len(t, v.Results, 2, "results follow the committed query only")

	sched.Advance(299 * time.Millisecond)
	assert.True(t, e.View().Searching)

	sched.Advance(time.Millisecond)
	v = e.View()
	assert.False(t, v.Searching)
	assert.Equal(t, "return", v.CommittedQuery)
	require.Len(t, v.Results, 1)
	assert.Equal(t, 1, v.Results[0].FAQ.ID)
	assert.InDelta(t, 75, v.Results[0].Score, 1e-9)
}

func TestEngineRapidInputCommitsOnlyLastValue(t *testing.T) {
	var mu sync.Mutex
	var commits []string
	var commitTimes []time.Duration

	var sched *searchtest.ManualScheduler
	e, sched := newTestEngine(t, scenarioRecords(), search.WithOnCommit(func(q string) {
		mu.Lock()
		defer mu.Unlock()
		commits = append(commits, q)
		commitTimes = append(commitTimes, sched.Now())
	}))

	e.SetQuery("abc")
	sched.Advance(100 * time.Millisecond)
	e.SetQuery("abcd")

	sched.Advance(299 * time.Millisecond)
	assert.Empty(t, commits)
	assert.Equal(t, 1, sched.Pending())

	sched.Advance(time.Second)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"abcd"}, commits)
	assert.Equal(t, []time.Duration{400 * time.Millisecond}, commitTimes)
	assert.Equal(t, "abcd", e.View().CommittedQuery)
	assert.Equal(t, 1, sched.Fired())
}

func TestEngineCustomDebounce(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords(), search.WithDebounce(50*time.Millisecond))

	e.SetQuery("refund")
	sched.Advance(50 * time.Millisecond)
	assert.Equal(t, "refund", e.View().CommittedQuery)
}

func TestEngineClearSearchIsImmediate(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())

	e.SetQuery("return")
	sched.Advance(300 * time.Millisecond)
	e.SetSelectedCategory("Orders")
	e.SetQuery("refund")

	e.ClearSearch()
	v := e.View()
	assert.Empty(t, v.RawQuery)
	assert.Empty(t, v.CommittedQuery)
	assert.Equal(t, search.AllCategories, v.SelectedCategory)
	assert.False(t, v.Searching)
	assert.False(t, v.IsFiltered)
	assert.Equal(t, []int{1, 2}, ids(v.Results))

	// the timer armed before the clear must not resurrect the query
	sched.Advance(time.Second)
	assert.Empty(t, e.View().CommittedQuery)
	assert.Equal(t, 0, sched.Pending())
}

func TestEngineCategorySelection(t *testing.T) {
	records := []domain.FAQ{
		{ID: 1, Category: "Repairs", Question: "Hem?"},
		{ID: 2, Category: "Orders", Question: "Return?"},
		{ID: 3, Category: "Repairs", Question: "Zipper?"},
	}
	e, _ := newTestEngine(t, records)

	e.SetSelectedCategory("Repairs")
	v := e.View()
	assert.Equal(t, []int{1, 3}, ids(v.Results))
	assert.True(t, v.IsFiltered)
	assert.Equal(t, []string{"All", "Repairs", "Orders"}, v.Categories, "categories ignore the filter")
}

func TestEngineShortQueryKeepsOriginalOrder(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())

	e.SetQuery("r")
	sched.Advance(300 * time.Millisecond)

	v := e.View()
	assert.Equal(t, "r", v.CommittedQuery)
	assert.Equal(t, []int{1, 2}, ids(v.Results))
	assert.True(t, v.IsFiltered)
}

func TestEngineMinSearchLengthOption(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords(), search.WithMinSearchLength(5))

	e.SetQuery("refu")
	sched.Advance(300 * time.Millisecond)
	assert.Len(t, e.View().Results, 2)

	e.SetQuery("refun")
	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, []int{2}, ids(e.View().Results))
}

func TestEngineNoResults(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())

	e.SetQuery("velvet")
	sched.Advance(300 * time.Millisecond)

	v := e.View()
	assert.Zero(t, v.ResultCount)
	assert.False(t, v.HasResults)
	assert.NotNil(t, v.Results)
}

func TestEngineCommitFlushesPending(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())

	assert.False(t, e.Commit())

	e.SetQuery("refund")
	assert.True(t, e.Commit())
	assert.Equal(t, "refund", e.View().CommittedQuery)
	assert.False(t, e.View().Searching)

	sched.Advance(time.Second)
	assert.Equal(t, 0, sched.Fired())
}

func TestEngineSetRecordsRecomputes(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())
	e.SetQuery("refund")
	sched.Advance(300 * time.Millisecond)
	require.Equal(t, []int{2}, ids(e.View().Results))

	e.SetRecords([]domain.FAQ{
		{ID: 10, Category: "Billing", Question: "Refund timing"},
		{ID: 11, Category: "Billing", Question: "Invoices", Tags: []string{"refund"}},
	})

	v := e.View()
	assert.Equal(t, []int{10, 11}, ids(v.Results))
	assert.Equal(t, []string{"All", "Billing"}, v.Categories)
}

func TestEngineDoesNotShareRecords(t *testing.T) {
	records := scenarioRecords()
	e, _ := newTestEngine(t, records)

	records[0].Question = "changed outside"
	v := e.View()
	assert.Equal(t, "Return policy?", v.Results[0].FAQ.Question)

	v.Results[0].FAQ.Question = "changed view"
	assert.Equal(t, "Return policy?", e.View().Results[0].FAQ.Question)
}

func TestEngineCloseCancelsPendingTimer(t *testing.T) {
	committed := false
	sched := searchtest.NewManualScheduler()
	e := search.New(scenarioRecords(),
		search.WithScheduler(sched),
		search.WithOnCommit(func(string) { committed = true }),
	)

	e.SetQuery("return")
	e.Close()
	sched.Advance(time.Second)

	assert.False(t, committed)
	assert.Empty(t, e.View().CommittedQuery)

	e.SetQuery("again")
	assert.Equal(t, "return", e.View().RawQuery, "input after Close is ignored")
	assert.Equal(t, 0, sched.Pending())
}

func TestEngineCacheDisabled(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords(), search.WithCacheSize(0))

	e.SetQuery("return")
	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, []int{1}, ids(e.View().Results))
	assert.Equal(t, []int{1}, ids(e.View().Results))
}

func TestEngineSuggestions(t *testing.T) {
	e, sched := newTestEngine(t, scenarioRecords())

	e.SetQuery("return")
	sched.Advance(300 * time.Millisecond)
	assert.Nil(t, e.Suggestions(3), "no suggestions while there are results")

	e.SetQuery("etrn")
	sched.Advance(300 * time.Millisecond)
	assert.Equal(t, []string{"Return policy?"}, e.Suggestions(3))
}

func TestClockSchedulerWithMockClock(t *testing.T) {
	mock := clock.NewMock()
	committed := make(chan string, 1)
	e := search.New(scenarioRecords(),
		search.WithScheduler(search.NewClockScheduler(mock)),
		search.WithOnCommit(func(q string) { committed <- q }),
	)
	defer e.Close()

	e.SetQuery("refund")
	mock.Add(300 * time.Millisecond)

	select {
	case q := <-committed:
		assert.Equal(t, "refund", q)
	case <-time.After(2 * time.Second):
		t.Fatal("debounce never fired")
	}
	assert.Equal(t, []int{2}, ids(e.View().Results))
}
