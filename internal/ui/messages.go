package ui

import (
	"faqdesk/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchCommittedMsg is posted by the engine's commit hook from the timer goroutine
type searchCommittedMsg struct {
	query string
}
