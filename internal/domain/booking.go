package domain

import "time"

type BookingStatus string

const (
	BookingStatusWaiting  BookingStatus = "WAITING"
	BookingStatusApproved BookingStatus = "APPROVED"
	BookingStatusRejected BookingStatus = "REJECTED"
)

// BookingState is the query-time partition of bookings. ALL and the two
// terminal statuses are joined by the three time-window categories.
type BookingState string

const (
	BookingStateAll      BookingState = "ALL"
	BookingStateCurrent  BookingState = "CURRENT"
	BookingStatePast     BookingState = "PAST"
	BookingStateFuture   BookingState = "FUTURE"
	BookingStateWaiting  BookingState = "WAITING"
	BookingStateRejected BookingState = "REJECTED"
)

var knownStates = map[BookingState]struct{}{
	BookingStateAll:      {},
	BookingStateCurrent:  {},
	BookingStatePast:     {},
	BookingStateFuture:   {},
	BookingStateWaiting:  {},
	BookingStateRejected: {},
}

// ParseBookingState maps a query parameter to a BookingState. An empty value
// defaults to ALL; anything unrecognized is a validation error with the
// exact message clients depend on.
func ParseBookingState(s string) (BookingState, error) {
	if s == "" {
		return BookingStateAll, nil
	}
	state := BookingState(s)
	if _, ok := knownStates[state]; !ok {
		return "", NewValidationError("Unknown state: " + s)
	}
	return state, nil
}

type Booking struct {
	ID      int64         `json:"id"`
	Start   time.Time     `json:"start"`
	End     time.Time     `json:"end"`
	Status  BookingStatus `json:"status"`
	Booker  User          `json:"booker"`
	Item    Item          `json:"item"`
}

// BookingRef is the short form embedded in item details.
type BookingRef struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}
