package search

import (
	"time"

	"github.com/benbjohnson/clock"
)

// AllCategories is the category sentinel that disables category filtering.
const AllCategories = "All"

const (
	// DefaultDebounce is the quiet period before a query is committed.
	DefaultDebounce = 300 * time.Millisecond

	// DefaultMinSearchLength is the trimmed query length that enables filtering.
	DefaultMinSearchLength = 2

	// DefaultCacheSize is the number of memoized result lists kept per engine.
	DefaultCacheSize = 64
)

// Options configures an Engine. Use DefaultOptions() for default values.
type Options struct {
	// Debounce is how long input must be quiet before the raw query is committed.
	Debounce time.Duration

	// MinSearchLength is the minimum trimmed query length for substring
	// filtering. Shorter queries leave the category-filtered list untouched.
	MinSearchLength int

	// CacheSize bounds the memoized result lists. 0 disables the cache.
	CacheSize int

	// Scheduler creates debounce timers. Defaults to the wall clock.
	Scheduler Scheduler

	// OnCommit runs after a debounced commit, outside the engine lock and on
	// the timer's goroutine.
	OnCommit func(query string)
}

// Option mutates Options
type Option func(*Options)

// DefaultOptions returns the default engine options
func DefaultOptions() Options {
	return Options{
		Debounce:        DefaultDebounce,
		MinSearchLength: DefaultMinSearchLength,
		CacheSize:       DefaultCacheSize,
		Scheduler:       NewClockScheduler(clock.New()),
	}
}

// WithDebounce sets the debounce delay. Negative values are treated as zero.
func WithDebounce(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			d = 0
		}
		o.Debounce = d
	}
}

// WithMinSearchLength sets the trimmed length at which filtering starts.
func WithMinSearchLength(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.MinSearchLength = n
	}
}

// WithCacheSize sets how many result lists are memoized.
func WithCacheSize(n int) Option {
	return func(o *Options) {
		if n < 0 {
			n = 0
		}
		o.CacheSize = n
	}
}

// WithScheduler replaces the timer source, typically with a manual one in tests.
func WithScheduler(s Scheduler) Option {
	return func(o *Options) {
		if s != nil {
			o.Scheduler = s
		}
	}
}

// WithOnCommit registers a hook that runs after each debounced commit.
func WithOnCommit(fn func(query string)) Option {
	return func(o *Options) {
		o.OnCommit = fn
	}
}
