package usage

import (
	"log"

	"faqdesk/internal/eventbus"
)

// BusSink publishes events on the event bus
type BusSink struct {
	bus eventbus.EventBus
}

// NewBusSink creates a sink that publishes UsageRecordedEvent
func NewBusSink(bus eventbus.EventBus) *BusSink {
	return &BusSink{bus: bus}
}

func (s *BusSink) Emit(e Event) {
	s.bus.Publish(eventbus.UsageRecordedEvent{
		ID:        e.ID,
		Kind:      string(e.Kind),
		FAQID:     e.FAQID,
		Query:     e.Query,
		Helpful:   e.Helpful,
		Timestamp: e.Timestamp,
	})
}

// LogUsage subscribes a logger to usage events. It returns the unsubscribe
// function.
func LogUsage(bus eventbus.EventBus) func() {
	return bus.Subscribe(eventbus.EventUsageRecorded, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.UsageRecordedEvent); ok {
			log.Printf("Usage: %s faq=%d query=%q helpful=%t at %s",
				ev.Kind, ev.FAQID, ev.Query, ev.Helpful, ev.Timestamp.Format("15:04:05.000"))
		}
	})
}
