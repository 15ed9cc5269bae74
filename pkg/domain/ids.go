package domain

import (
	"strings"

	"github.com/google/uuid"

	dErrors "realestate/pkg/domain-errors"
)

// Typed identifiers. Each aggregate gets its own named UUID type so an
// AgencyID can never be passed where a PropertyID is expected.
//
// Invariant: a constructed ID is never the nil UUID.
type (
	AgencyID        uuid.UUID
	PropertyID      uuid.UUID
	ClientID        uuid.UUID
	BookingID       uuid.UUID
	DealID          uuid.UUID
	CompletedDealID uuid.UUID
)

type typedID interface {
	~[16]byte
}

// maxIDLength bounds raw input before it reaches uuid.Parse.
const maxIDLength = 64

func parseID[T typedID](s, kind string) (T, error) {
	var zero T
	if strings.TrimSpace(s) == "" {
		return zero, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be empty")
	}
	if len(s) > maxIDLength {
		return zero, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" format")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return zero, dErrors.New(dErrors.CodeInvalidInput, "invalid "+kind+" format")
	}
	return idFrom[T](u, kind)
}

func idFrom[T typedID](u uuid.UUID, kind string) (T, error) {
	var zero T
	if u == uuid.Nil {
		return zero, dErrors.New(dErrors.CodeInvalidInput, kind+" cannot be nil")
	}
	return T(u), nil
}

func NewAgencyID() AgencyID { return AgencyID(uuid.New()) }
func NewPropertyID() PropertyID { return PropertyID(uuid.New()) }
func NewClientID() ClientID { return ClientID(uuid.New()) }
func NewBookingID() BookingID { return BookingID(uuid.New()) }
func NewDealID() DealID { return DealID(uuid.New()) }
func NewCompletedDealID() CompletedDealID { return CompletedDealID(uuid.New()) }

// ParseAgencyID parses an AgencyID at a trust boundary.
func ParseAgencyID(s string) (AgencyID, error) { return parseID[AgencyID](s, "agency id") }

func ParsePropertyID(s string) (PropertyID, error) { return parseID[PropertyID](s, "property id") }

func ParseClientID(s string) (ClientID, error) { return parseID[ClientID](s, "client id") }

func ParseBookingID(s string) (BookingID, error) { return parseID[BookingID](s, "booking id") }

func ParseDealID(s string) (DealID, error) { return parseID[DealID](s, "deal id") }

func ParseCompletedDealID(s string) (CompletedDealID, error) {
	return parseID[CompletedDealID](s, "completed deal id")
}

// AgencyIDFrom wraps an existing UUID, rejecting the nil UUID.
func AgencyIDFrom(u uuid.UUID) (AgencyID, error) { return idFrom[AgencyID](u, "agency id") }

func PropertyIDFrom(u uuid.UUID) (PropertyID, error) { return idFrom[PropertyID](u, "property id") }

func ClientIDFrom(u uuid.UUID) (ClientID, error) { return idFrom[ClientID](u, "client id") }

func BookingIDFrom(u uuid.UUID) (BookingID, error) { return idFrom[BookingID](u, "booking id") }

func DealIDFrom(u uuid.UUID) (DealID, error) { return idFrom[DealID](u, "deal id") }

func CompletedDealIDFrom(u uuid.UUID) (CompletedDealID, error) {
	return idFrom[CompletedDealID](u, "completed deal id")
}

func (id AgencyID) String() string { return uuid.UUID(id).String() }
func (id PropertyID) String() string { return uuid.UUID(id).String() }
func (id ClientID) String() string { return uuid.UUID(id).String() }
func (id BookingID) String() string { return uuid.UUID(id).String() }
func (id DealID) String() string { return uuid.UUID(id).String() }
func (id CompletedDealID) String() string { return uuid.UUID(id).String() }

func (id AgencyID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id PropertyID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id ClientID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id BookingID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id DealID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
func (id CompletedDealID) IsNil() bool { return uuid.UUID(id) == uuid.Nil }
