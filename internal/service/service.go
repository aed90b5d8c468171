package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
)

// UserPatch carries the fields a partial user update may supply.
type UserPatch struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// ItemPatch carries the fields a partial item update may supply.
type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"requestId"`
}

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user *domain.User) (*domain.User, error)
	PatchUser(ctx context.Context, id int64, patch UserPatch) (*domain.User, error)
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type ItemService interface {
	CreateItem(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error)
	PatchItem(ctx context.Context, itemID, userID int64, patch ItemPatch) (*domain.Item, error)
	GetItem(ctx context.Context, itemID, userID int64) (*domain.ItemDetail, error)
	ListItemsForUser(ctx context.Context, userID int64, from, size int) ([]domain.ItemDetail, error)
	SearchItems(ctx context.Context, text string, from, size int) ([]domain.Item, error)
	AddComment(ctx context.Context, itemID, userID int64, text string) (*domain.Comment, error)
}

type RequestService interface {
	CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error)
	ListRequestsForUser(ctx context.Context, userID int64) ([]domain.ItemRequest, error)
	GetRequest(ctx context.Context, requestID, userID int64) (*domain.ItemRequest, error)
	ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]domain.ItemRequest, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error)
	ChangeStatus(ctx context.Context, bookingID, userID int64, approved bool) (*domain.Booking, error)
	GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error)
	ListForBooker(ctx context.Context, userID int64, state string, from, size int) ([]domain.Booking, error)
	ListForOwner(ctx context.Context, userID int64, state string, from, size int) ([]domain.Booking, error)
}

// checkPage validates the shared pagination parameters: from is a zero-based
// page number, size the page length.
func checkPage(from, size int) error {
	if size < 1 || from < 0 {
		return domain.NewValidationError("")
	}
	return nil
}
