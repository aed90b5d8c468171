package domain

import "time"

// ItemRequest is a board post asking for an item nobody has listed yet.
// Immutable once created; items reference it when they fulfill it.
type ItemRequest struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	RequestorID int64     `json:"-"`
	Created     time.Time `json:"created"`
	Items       []Item    `json:"items"`
}
