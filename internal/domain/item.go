package domain

// Item is a thing a user has listed for sharing. RequestID links the item to
// the board request it fulfills, when there is one.
type Item struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   *bool  `json:"available"`
	OwnerID     int64  `json:"-"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemDetail is an item as seen on the detail and owner-listing endpoints:
// comments always, next/last bookings only for the owner.
type ItemDetail struct {
	Item
	NextBooking *BookingRef `json:"nextBooking"`
	LastBooking *BookingRef `json:"lastBooking"`
	Comments    []Comment   `json:"comments"`
}
