// Package usage records how people interact with FAQ results.
//
// The recorder is an append-only, in-memory log owned by the view that
// creates it. It never feeds back into search ranking.
package usage

import (
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/google/uuid"
)

// Kind identifies what the user did
type Kind string

const (
	KindView   Kind = "view"
	KindExpand Kind = "expand"
	KindVote   Kind = "vote"
	KindSearch Kind = "search"
)

// Event is one recorded interaction
type Event struct {
	ID          string
	Kind        Kind
	FAQID       int
	Helpful     bool
	Query       string
	ResultCount int
	Timestamp   time.Time
}

// Store is an append-only event log
type Store interface {
	Append(e Event)
	Events() []Event
}

// Sink receives a copy of every recorded event for diagnostics
type Sink interface {
	Emit(e Event)
}

// SinkFunc adapts a function to Sink
type SinkFunc func(Event)

func (f SinkFunc) Emit(e Event) { f(e) }

// MemoryStore keeps events in memory in recording order
type MemoryStore struct {
	mu     sync.RWMutex
	events []Event
}

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Append(e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
}

// Events returns a copy of the log
func (s *MemoryStore) Events() []Event {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Event, len(s.events))
	copy(out, s.events)
	return out
}

// Recorder appends timestamped events to a Store
type Recorder struct {
	store Store
	sink  Sink
	clock clock.Clock
}

// Option configures a Recorder
type Option func(*Recorder)

// WithSink forwards every event to sink after it is stored
func WithSink(sink Sink) Option {
	return func(r *Recorder) { r.sink = sink }
}

// WithClock sets the timestamp source
func WithClock(c clock.Clock) Option {
	return func(r *Recorder) { r.clock = c }
}

// NewRecorder creates a recorder writing to store. A nil store gets a
// fresh MemoryStore.
func NewRecorder(store Store, opts ...Option) *Recorder {
	if store == nil {
		store = NewMemoryStore()
	}
	r := &Recorder{
		store: store,
		clock: clock.New(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RecordView notes that a result was shown in detail
func (r *Recorder) RecordView(faqID int) {
	r.record(Event{Kind: KindView, FAQID: faqID})
}

// RecordExpand notes that a result was expanded
func (r *Recorder) RecordExpand(faqID int) {
	r.record(Event{Kind: KindExpand, FAQID: faqID})
}

// RecordVote notes a helpful or not-helpful vote
func (r *Recorder) RecordVote(faqID int, helpful bool) {
	r.record(Event{Kind: KindVote, FAQID: faqID, Helpful: helpful})
}

// RecordSearch notes a submitted search and how many results it produced
func (r *Recorder) RecordSearch(query string, resultCount int) {
	r.record(Event{Kind: KindSearch, Query: query, ResultCount: resultCount})
}

// Events returns the accumulated log
func (r *Recorder) Events() []Event {
	return r.store.Events()
}

func (r *Recorder) record(e Event) {
	e.ID = uuid.NewString()
	e.Timestamp = r.clock.Now()
	r.store.Append(e)
	if r.sink != nil {
		r.sink.Emit(e)
	}
}
