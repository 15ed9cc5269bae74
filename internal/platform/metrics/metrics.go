package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the brokerage counters shared by the booking and deal services.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	BookingsCreated    prometheus.Counter
	BookingTransitions *prometheus.CounterVec
	BookingRejections  *prometheus.CounterVec
	DealsCompleted     prometheus.Counter
	OwnershipTransfers prometheus.Counter
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		BookingsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_created_total",
			Help:      "Total number of bookings created",
		}),
		BookingTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking status transitions by target status",
		}, []string{"to"}),
		BookingRejections: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_rejections_total",
			Help:      "Booking requests rejected, by reason",
		}, []string{"reason"}),
		DealsCompleted: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deals_completed_total",
			Help:      "Total number of deals closed",
		}),
		OwnershipTransfers: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ownership_transfers_total",
			Help:      "Total number of ownership records appended by closed deals",
		}),
	}
}

// IncrementBookingsCreated records a successful booking.
func (m *Metrics) IncrementBookingsCreated() {
	if m == nil {
		return
	}
	m.BookingsCreated.Inc()
}

// ObserveBookingTransition records a booking moving to status.
func (m *Metrics) ObserveBookingTransition(status string) {
	if m == nil {
		return
	}
	m.BookingTransitions.WithLabelValues(status).Inc()
}

// ObserveBookingRejection records a refused booking request.
func (m *Metrics) ObserveBookingRejection(reason string) {
	if m == nil {
		return
	}
	m.BookingRejections.WithLabelValues(reason).Inc()
}

// IncrementDealsCompleted records a closed deal.
func (m *Metrics) IncrementDealsCompleted() {
	if m == nil {
		return
	}
	m.DealsCompleted.Inc()
}

// IncrementOwnershipTransfers records a change of owner.
func (m *Metrics) IncrementOwnershipTransfers() {
	if m == nil {
		return
	}
	m.OwnershipTransfers.Inc()
}
