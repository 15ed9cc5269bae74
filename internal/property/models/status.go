package models

// Status is the listing state of a property.
type Status string

const (
	StatusForSale  Status = "for_sale"
	StatusReserved Status = "reserved"
	StatusSold     Status = "sold"
)

var statusTransitions = map[Status][]Status{
	StatusForSale:  {StatusReserved, StatusSold},
	StatusReserved: {StatusForSale, StatusSold},
}

func (s Status) IsValid() bool {
	return s == StatusForSale || s == StatusReserved || s == StatusSold
}

// CanTransitionTo reports whether a listing may move from s to next.
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return len(statusTransitions[s]) == 0
}

func (s Status) String() string {
	return string(s)
}

// DisplayName returns the Russian label used in listings.
func (s Status) DisplayName() string {
	switch s {
	case StatusForSale:
		return "В продаже"
	case StatusReserved:
		return "Забронирован"
	case StatusSold:
		return "Продан"
	default:
		return string(s)
	}
}
