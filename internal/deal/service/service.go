package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EventPublisher

import (
	"context"
	"log/slog"
	"time"

	"realestate/internal/audit"
	booking "realestate/internal/booking/models"
	client "realestate/internal/client/models"
	"realestate/internal/deal/models"
	"realestate/internal/platform/metrics"
	property "realestate/internal/property/models"
	"realestate/pkg/attrs"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/requestcontext"
)

type EventPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Clock returns the time a service call happens at.
type Clock func(ctx context.Context) time.Time

// Service drives a deal from opening to the transfer of title.
type Service struct {
	logger    *slog.Logger
	publisher EventPublisher
	metrics   *metrics.Metrics
	clock     Clock
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithPublisher(publisher EventPublisher) Option {
	return func(s *Service) {
		s.publisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithClock(clock Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{clock: requestcontext.Now}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Open starts a deal for a client on a property. The booking is optional; when
// given it must be for the same client and property and not cancelled. A
// reserved property only accepts a deal through the booking holding it.
func (s *Service) Open(
	ctx context.Context,
	c *client.Client,
	p *property.Property,
	b *booking.Booking,
	details models.Details,
) (*models.Deal, error) {
	if c == nil {
		return nil, dErrors.Required("client")
	}
	if p == nil {
		return nil, dErrors.Required("property")
	}
	if p.Status() == property.StatusSold {
		return nil, dErrors.New(dErrors.CodeConflict, "property is already sold")
	}

	var bookingID *domain.BookingID
	if b != nil {
		if b.PropertyID() != p.ID() || b.ClientID() != c.ID() {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "booking belongs to another client or property")
		}
		if b.Status() == booking.StatusCancelled {
			return nil, dErrors.New(dErrors.CodeConflict, "booking is cancelled")
		}
		id := b.ID()
		bookingID = &id
	}
	if err := p.CheckHolder(bookingID); err != nil {
		return nil, err
	}

	d, err := models.NewDeal(c.ID(), p.ID(), bookingID, details, s.clock(ctx))
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, audit.AggregateDeal, d.ID().String(), audit.ActionDealOpened,
		"property_id", p.ID().String(), "client_id", c.ID().String())
	return d, nil
}

// Close completes the deal and transfers the property to buyer: the current
// owner's record is closed, a record for the buyer is appended, the property
// is marked sold and the completed deal is attached to the client. A deal
// opened through a booking must be closed with that booking, which must be
// confirmed and is completed along with the deal.
func (s *Service) Close(
	ctx context.Context,
	d *models.Deal,
	c *client.Client,
	p *property.Property,
	b *booking.Booking,
	buyer string,
	reason string,
) (*models.CompletedDeal, error) {
	if d == nil {
		return nil, dErrors.Required("deal")
	}
	if c == nil {
		return nil, dErrors.Required("client")
	}
	if p == nil {
		return nil, dErrors.Required("property")
	}
	if d.ClientID() != c.ID() || d.PropertyID() != p.ID() {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "deal belongs to another client or property")
	}
	if d.Status() == models.StatusCompleted || d.Status() == models.StatusCancelled {
		return nil, dErrors.New(dErrors.CodeConflict, "deal is already "+d.Status().String())
	}

	var bookingID *domain.BookingID
	if id, ok := d.BookingID(); ok {
		if b == nil {
			return nil, dErrors.Required("booking")
		}
		if b.ID() != id {
			return nil, dErrors.New(dErrors.CodeInvalidInput, "booking does not belong to the deal")
		}
		if err := b.CanComplete(); err != nil {
			return nil, err
		}
		bookingID = &id
	} else if b != nil {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "deal was opened without a booking")
	}
	if err := p.CheckHolder(bookingID); err != nil {
		return nil, err
	}
	if err := p.CanTransitionTo(property.StatusSold); err != nil {
		return nil, err
	}

	now := s.clock(ctx)
	record, err := property.NewOwnershipRecord(buyer, now, reason, nil)
	if err != nil {
		return nil, err
	}
	if current, ok := p.CurrentOwner(); ok && !now.After(current.StartDate()) {
		return nil, dErrors.New(dErrors.CodeInvariantViolation, "buyer ownership must start after the current owner's")
	}
	completed, err := models.CompletedDealFrom(d, now)
	if err != nil {
		return nil, err
	}

	d.Complete(now)
	if b != nil {
		b.ApplyComplete(now)
	}
	if err := p.TransferOwnership(record, now); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to transfer ownership")
	}
	if err := p.MarkSold(now); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to mark property sold")
	}
	if err := c.AddCompletedDeal(completed, now); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to attach completed deal")
	}

	s.logAudit(ctx, audit.AggregateDeal, d.ID().String(), audit.ActionDealCompleted,
		"detail", d.Details())
	if b != nil {
		s.logAudit(ctx, audit.AggregateBooking, b.ID().String(), audit.ActionBookingCompleted,
			"status", b.Status().String())
		s.metrics.ObserveBookingTransition(b.Status().String())
	}
	s.logAudit(ctx, audit.AggregateProperty, p.ID().String(), audit.ActionOwnershipTransfer,
		"detail", record.OwnerName())
	s.logAudit(ctx, audit.AggregateProperty, p.ID().String(), audit.ActionPropertySold,
		"detail", "deal "+d.ID().String())
	s.logAudit(ctx, audit.AggregateClient, c.ID().String(), audit.ActionCompletedDealAdded,
		"detail", completed.ID())
	s.metrics.IncrementDealsCompleted()
	s.metrics.IncrementOwnershipTransfers()
	return completed, nil
}

// Cancel abandons a deal that has not been completed.
func (s *Service) Cancel(ctx context.Context, d *models.Deal) error {
	if d == nil {
		return dErrors.Required("deal")
	}
	if d.Status() == models.StatusCompleted {
		return dErrors.New(dErrors.CodeConflict, "completed deal cannot be cancelled")
	}
	d.Cancel(s.clock(ctx))
	s.logAudit(ctx, audit.AggregateDeal, d.ID().String(), audit.ActionDealCancelled)
	return nil
}

func (s *Service) logAudit(ctx context.Context, aggregate audit.Aggregate, id string, action audit.Action, attributes ...any) {
	if requestID := requestcontext.RequestID(ctx); requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "aggregate", string(aggregate), "aggregate_id", id, "log_type", "audit")
	s.logger.InfoContext(ctx, string(action), args...)
	if s.publisher == nil {
		return
	}
	err := s.publisher.Emit(ctx, audit.Event{
		Timestamp:   s.clock(ctx),
		Aggregate:   aggregate,
		AggregateID: id,
		Action:      action,
		Detail:      attrs.ExtractString(attributes, "detail"),
	})
	if err != nil {
		s.logger.WarnContext(ctx, "failed to publish audit event", "action", string(action), "error", err)
	}
}
