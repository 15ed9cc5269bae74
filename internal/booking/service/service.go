package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks EventPublisher

import (
	"context"
	"log/slog"
	"time"

	agency "realestate/internal/agency/models"
	"realestate/internal/audit"
	"realestate/internal/booking/models"
	client "realestate/internal/client/models"
	"realestate/internal/platform/metrics"
	property "realestate/internal/property/models"
	"realestate/pkg/attrs"
	"realestate/pkg/domain"
	dErrors "realestate/pkg/domain-errors"
	"realestate/pkg/requestcontext"
)

// Rejection reasons reported to metrics.
const (
	rejectNotForSale = "not_for_sale"
	rejectNotListed  = "not_listed"
	rejectInvalid    = "invalid"
)

type EventPublisher interface {
	Emit(ctx context.Context, event audit.Event) error
}

// Clock returns the time a service call happens at.
type Clock func(ctx context.Context) time.Time

// Service coordinates a booking with the property it reserves and the client
// who holds it.
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

// Book reserves a listed property for a client. The property must be for sale
// and held by the agency, and the quoted price must match the listing.
func (s *Service) Book(
	ctx context.Context,
	c *client.Client,
	p *property.Property,
	a *agency.Agency,
	period domain.Period,
	totalPrice domain.Price,
) (*models.Booking, error) {
	now := s.clock(ctx)

	if p != nil && !p.IsForSale() {
		s.metrics.ObserveBookingRejection(rejectNotForSale)
		return nil, dErrors.New(dErrors.CodeConflict, "property is not for sale: status "+p.Status().String())
	}
	if p != nil && a != nil && !a.HasProperty(p.ID()) {
		s.metrics.ObserveBookingRejection(rejectNotListed)
		return nil, dErrors.New(dErrors.CodeConflict, "agency does not hold property "+p.ID().String())
	}

	b, err := models.NewBooking(c, p, a, period, totalPrice, now)
	if err != nil {
		s.metrics.ObserveBookingRejection(rejectInvalid)
		return nil, err
	}

	if err := p.Reserve(b.ID(), now); err != nil {
		return nil, err
	}
	if err := c.AddBookingID(b.ID(), now); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to link booking to client")
	}

	s.logAudit(ctx, audit.AggregateBooking, b.ID().String(), audit.ActionBookingCreated,
		"property_id", p.ID().String(), "client_id", c.ID().String())
	s.logAudit(ctx, audit.AggregateProperty, p.ID().String(), audit.ActionPropertyReserved,
		"detail", "booking "+b.ID().String())
	s.metrics.IncrementBookingsCreated()
	s.metrics.ObserveBookingTransition(string(models.StatusPending))
	return b, nil
}

// Confirm moves a pending booking to confirmed.
func (s *Service) Confirm(ctx context.Context, b *models.Booking) error {
	if b == nil {
		return dErrors.Required("booking")
	}
	if err := b.Confirm(s.clock(ctx)); err != nil {
		return err
	}
	s.recordTransition(ctx, b, audit.ActionBookingConfirmed)
	return nil
}

// Complete finishes a confirmed booking and marks its property sold.
func (s *Service) Complete(ctx context.Context, b *models.Booking, p *property.Property) error {
	if err := requireMatchingProperty(b, p); err != nil {
		return err
	}
	if err := b.CanComplete(); err != nil {
		return err
	}
	id := b.ID()
	if err := p.CheckHolder(&id); err != nil {
		return err
	}
	if err := p.CanTransitionTo(property.StatusSold); err != nil {
		return err
	}

	now := s.clock(ctx)
	b.ApplyComplete(now)
	if err := p.MarkSold(now); err != nil {
		return err
	}
	s.recordTransition(ctx, b, audit.ActionBookingCompleted)
	s.logAudit(ctx, audit.AggregateProperty, p.ID().String(), audit.ActionPropertySold,
		"detail", "booking "+b.ID().String())
	return nil
}

// Cancel cancels an open booking and puts the property back on the market when
// this booking holds the reservation.
func (s *Service) Cancel(ctx context.Context, b *models.Booking, p *property.Property) error {
	if err := requireMatchingProperty(b, p); err != nil {
		return err
	}
	if err := b.CanCancel(); err != nil {
		return err
	}

	now := s.clock(ctx)
	b.ApplyCancel(now)
	s.recordTransition(ctx, b, audit.ActionBookingCancelled)

	if held, ok := p.ReservedBy(); !ok || held != b.ID() {
		return nil
	}
	if err := p.Release(now); err != nil {
		return err
	}
	s.logAudit(ctx, audit.AggregateProperty, p.ID().String(), audit.ActionPropertyReleased,
		"detail", "booking "+b.ID().String())
	return nil
}

func requireMatchingProperty(b *models.Booking, p *property.Property) error {
	if b == nil {
		return dErrors.Required("booking")
	}
	if p == nil {
		return dErrors.Required("property")
	}
	if b.PropertyID() != p.ID() {
		return dErrors.New(dErrors.CodeInvalidInput, "booking does not belong to property "+p.ID().String())
	}
	return nil
}

func (s *Service) recordTransition(ctx context.Context, b *models.Booking, action audit.Action) {
	s.logAudit(ctx, audit.AggregateBooking, b.ID().String(), action, "status", b.Status().String())
	s.metrics.ObserveBookingTransition(b.Status().String())
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
