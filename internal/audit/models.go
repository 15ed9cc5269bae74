package audit

import "time"

// Aggregate names the kind of entity an event is about.
type Aggregate string

const (
	AggregateProperty Aggregate = "property"
	AggregateBooking  Aggregate = "booking"
	AggregateDeal     Aggregate = "deal"
	AggregateClient   Aggregate = "client"
)

// Action names what happened.
type Action string

const (
	ActionBookingCreated     Action = "booking_created"
	ActionBookingConfirmed   Action = "booking_confirmed"
	ActionBookingCompleted   Action = "booking_completed"
	ActionBookingCancelled   Action = "booking_cancelled"
	ActionPropertyReserved   Action = "property_reserved"
	ActionPropertyReleased   Action = "property_released"
	ActionPropertySold       Action = "property_sold"
	ActionOwnershipTransfer  Action = "ownership_transferred"
	ActionDealOpened         Action = "deal_opened"
	ActionDealCompleted      Action = "deal_completed"
	ActionDealCancelled      Action = "deal_cancelled"
	ActionCompletedDealAdded Action = "completed_deal_added"
)

// Event is emitted by the services to capture key domain actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp   time.Time
	Aggregate   Aggregate
	AggregateID string
	Action      Action
	Detail      string
}
