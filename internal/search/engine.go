package search

import (
	"log"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"faqdesk/internal/domain"
)

// View is a consistent snapshot of an engine's derived output
type View struct {
	Results          []Result
	ResultCount      int
	HasResults       bool
	IsFiltered       bool
	Categories       []string
	Searching        bool
	RawQuery         string
	CommittedQuery   string
	SelectedCategory string
}

type cacheKey struct {
	generation uint64
	category   string
	query      string
}

// Engine holds the search state of one view. All methods are safe for
// concurrent use; debounce timers fire on their own goroutine.
type Engine struct {
	opts Options

	mu         sync.Mutex
	records    []domain.FAQ
	categories []string
	generation uint64

	rawQuery         string
	committedQuery   string
	selectedCategory string
	pending          bool
	timer            Timer
	seq              uint64
	closed           bool

	cache *lru.Cache[cacheKey, []Result]
}

// New creates an engine bound to records. The slice is copied.
func New(records []domain.FAQ, opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &Engine{
		opts:             o,
		selectedCategory: AllCategories,
	}

	if o.CacheSize > 0 {
		cache, err := lru.New[cacheKey, []Result](o.CacheSize)
		if err != nil {
			log.Printf("Search cache disabled: %v", err)
		} else {
			e.cache = cache
		}
	}

	e.setRecordsLocked(records)
	return e
}

// SetQuery records raw input and restarts the debounce timer. Only the
// last call within a debounce window is committed.
func (e *Engine) SetQuery(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.rawQuery = text
	e.pending = true
	e.stopTimerLocked()

	seq := e.seq
	e.timer = e.opts.Scheduler.AfterFunc(e.opts.Debounce, func() {
		e.fire(seq)
	})
}

// fire commits the raw query unless the timer was superseded
func (e *Engine) fire(seq uint64) {
	e.mu.Lock()
	if e.closed || seq != e.seq {
		e.mu.Unlock()
		return
	}

	e.committedQuery = e.rawQuery
	e.pending = false
	e.timer = nil
	query := e.committedQuery
	hook := e.opts.OnCommit
	e.mu.Unlock()

	log.Printf("Search committed for '%s'", query)

	if hook != nil {
		hook(query)
	}
}

// Commit flushes a pending debounce immediately. It reports whether a
// pending query was committed.
func (e *Engine) Commit() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed || !e.pending {
		return false
	}

	e.stopTimerLocked()
	e.committedQuery = e.rawQuery
	e.pending = false
	return true
}

// SetSelectedCategory changes the category filter immediately
func (e *Engine) SetSelectedCategory(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.selectedCategory = name
}

// ClearSearch resets the raw and committed query and the category in one
// step, without waiting for the debounce delay
func (e *Engine) ClearSearch() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}

	e.stopTimerLocked()
	e.rawQuery = ""
	e.committedQuery = ""
	e.selectedCategory = AllCategories
	e.pending = false
}

// SetRecords replaces the record collection wholesale. The slice is copied.
func (e *Engine) SetRecords(records []domain.FAQ) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.setRecordsLocked(records)
}

func (e *Engine) setRecordsLocked(records []domain.FAQ) {
	e.records = make([]domain.FAQ, len(records))
	copy(e.records, records)
	e.categories = Categories(e.records)
	e.generation++
	if e.cache != nil {
		e.cache.Purge()
	}
}

// View returns the derived output for the current state
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	results := e.resultsLocked()
	out := make([]Result, len(results))
	copy(out, results)

	categories := make([]string, len(e.categories))
	copy(categories, e.categories)

	return View{
		Results:          out,
		ResultCount:      len(out),
		HasResults:       len(out) > 0,
		IsFiltered:       e.rawQuery != "" || e.selectedCategory != AllCategories,
		Categories:       categories,
		Searching:        e.pending,
		RawQuery:         e.rawQuery,
		CommittedQuery:   e.committedQuery,
		SelectedCategory: e.selectedCategory,
	}
}

func (e *Engine) resultsLocked() []Result {
	key := cacheKey{
		generation: e.generation,
		category:   e.selectedCategory,
		query:      e.committedQuery,
	}

	if e.cache != nil {
		if cached, ok := e.cache.Get(key); ok {
			return cached
		}
	}

	results := Evaluate(e.records, e.selectedCategory, e.committedQuery, e.opts.MinSearchLength)
	if e.cache != nil {
		e.cache.Add(key, results)
	}
	return results
}

// Suggestions proposes questions that loosely resemble the committed query.
// It returns nil unless the committed query produced no results.
func (e *Engine) Suggestions(limit int) []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.resultsLocked()) > 0 {
		return nil
	}
	return Suggest(e.records, e.committedQuery, e.opts.MinSearchLength, limit)
}

// Close cancels any pending debounce. Later commands are ignored.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.stopTimerLocked()
	e.pending = false
	e.closed = true
}

// stopTimerLocked cancels the pending timer and invalidates any fire that
// already started
func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	e.seq++
}
