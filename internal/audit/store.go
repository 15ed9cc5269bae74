package audit

import (
	"context"
	"sync"
)

// Store appends events and lists them back in emission order.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByAggregate(ctx context.Context, aggregate Aggregate, id string) ([]Event, error)
	ListAll(ctx context.Context) ([]Event, error)
}

type aggregateKey struct {
	aggregate Aggregate
	id        string
}

// InMemoryStore keeps the trail in process memory.
type InMemoryStore struct {
	mu     sync.RWMutex
	events []Event
	byKey  map[aggregateKey][]int
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byKey: make(map[aggregateKey][]int)}
}

func (s *InMemoryStore) Append(_ context.Context, event Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := aggregateKey{event.Aggregate, event.AggregateID}
	s.byKey[key] = append(s.byKey[key], len(s.events))
	s.events = append(s.events, event)
	return nil
}

func (s *InMemoryStore) ListByAggregate(_ context.Context, aggregate Aggregate, id string) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	positions := s.byKey[aggregateKey{aggregate, id}]
	out := make([]Event, 0, len(positions))
	for _, i := range positions {
		out = append(out, s.events[i])
	}
	return out, nil
}

// ListAll returns every event in emission order.
func (s *InMemoryStore) ListAll(_ context.Context) ([]Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]Event{}, s.events...), nil
}

// Clear drops every recorded event.
func (s *InMemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = nil
	s.byKey = make(map[aggregateKey][]int)
}
