package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventCatalogLoaded   EventType = "CatalogLoaded"
	EventCatalogReloaded EventType = "CatalogReloaded"
	EventSearchCommitted EventType = "SearchCommitted"
	EventSearchCleared   EventType = "SearchCleared"
	EventUsageRecorded   EventType = "UsageRecorded"
	EventError           EventType = "Error"
	EventConfigLoaded    EventType = "ConfigLoaded"
	EventConfigSaved     EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// CatalogLoadedEvent is emitted once the initial catalog is available
type CatalogLoadedEvent struct {
	Source string
	Count  int
}

func (e CatalogLoadedEvent) Type() EventType { return EventCatalogLoaded }

// CatalogReloadedEvent is emitted when the catalog file changed on disk
// and was replaced wholesale
type CatalogReloadedEvent struct {
	Source  string
	Entries []FAQ
}

func (e CatalogReloadedEvent) Type() EventType { return EventCatalogReloaded }

// SearchCommittedEvent is emitted when a debounced query is committed
type SearchCommittedEvent struct {
	Query string
}

func (e SearchCommittedEvent) Type() EventType { return EventSearchCommitted }

// SearchClearedEvent is emitted when the search state is reset
type SearchClearedEvent struct{}

func (e SearchClearedEvent) Type() EventType { return EventSearchCleared }

// UsageRecordedEvent mirrors a usage event onto the bus for diagnostics
type UsageRecordedEvent struct {
	ID        string
	Kind      string
	FAQID     int
	Query     string
	Helpful   bool
	Timestamp time.Time
}

func (e UsageRecordedEvent) Type() EventType { return EventUsageRecorded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path        string
	CatalogPath string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
