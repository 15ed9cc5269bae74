package audit

import (
	"context"
	"time"
)

// Publisher captures structured audit events. It is append-only and uses the
// store for persistence so tests can swap sinks easily.
type Publisher struct {
	store Store
	now   func() time.Time
}

type PublisherOption func(*Publisher)

// WithClock overrides the time source used to stamp events.
func WithClock(now func() time.Time) PublisherOption {
	return func(p *Publisher) {
		p.now = now
	}
}

func NewPublisher(store Store, opts ...PublisherOption) *Publisher {
	p := &Publisher{store: store, now: time.Now}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Emit stamps events that carry no timestamp and appends them.
func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = p.now()
	}
	return p.store.Append(ctx, base)
}

func (p *Publisher) List(ctx context.Context, aggregate Aggregate, id string) ([]Event, error) {
	return p.store.ListByAggregate(ctx, aggregate, id)
}
