package sink

import (
	"context"
	"sync"

	"session-signup/domain/event"
)

// Journal keeps consumed events in memory. Used by tests to assert which
// events a scenario produced.
type Journal struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func NewJournal() *Journal {
	return &Journal{}
}

func (j *Journal) Consume(_ context.Context, e event.DomainEvent) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.events = append(j.events, e)
	return nil
}

func (j *Journal) Events() []event.DomainEvent {
	j.mu.Lock()
	defer j.mu.Unlock()
	out := make([]event.DomainEvent, len(j.events))
	copy(out, j.events)
	return out
}
