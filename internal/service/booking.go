package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type bookingService struct {
	bookingRepo repository.BookingRepository
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		itemRepo:    itemRepo,
		userRepo:    userRepo,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, bookerID, itemID int64, start, end time.Time) (*domain.Booking, error) {
	booker, err := s.userRepo.GetByID(ctx, bookerID)
	if err != nil {
		return nil, err
	}
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item.Available == nil || !*item.Available {
		return nil, domain.NewValidationError("item is not available")
	}
	if start.IsZero() || end.IsZero() {
		return nil, domain.NewValidationError("")
	}
	now := time.Now()
	if !start.After(now) || !end.After(now) || !start.Before(end) {
		return nil, domain.NewValidationError("")
	}
	// Booking your own item reads as "not found", matching the observed
	// behavior; the item exists but is never bookable by its owner.
	if item.OwnerID == bookerID {
		return nil, domain.NewNotFoundError("")
	}

	booking := &domain.Booking{
		Start:  start,
		End:    end,
		Status: domain.BookingStatusWaiting,
		Booker: *booker,
		Item:   *item,
	}
	if err := s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ChangeStatus(ctx context.Context, bookingID, userID int64, approved bool) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Item.OwnerID != userID {
		return nil, domain.NewNotFoundError("")
	}
	// WAITING is the only state a decision can be made from.
	if booking.Status != domain.BookingStatusWaiting {
		return nil, domain.NewValidationError("")
	}

	if approved {
		booking.Status = domain.BookingStatusApproved
	} else {
		booking.Status = domain.BookingStatusRejected
	}
	if err := s.bookingRepo.UpdateStatus(ctx, booking.ID, booking.Status); err != nil {
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.Booker.ID != userID && booking.Item.OwnerID != userID {
		return nil, domain.NewNotFoundError("")
	}
	return booking, nil
}

func (s *bookingService) ListForBooker(ctx context.Context, userID int64, state string, from, size int) ([]domain.Booking, error) {
	parsed, err := s.checkListArgs(ctx, userID, state, from, size)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByBooker(ctx, userID, parsed, time.Now(), size, from*size)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) ListForOwner(ctx context.Context, userID int64, state string, from, size int) ([]domain.Booking, error) {
	parsed, err := s.checkListArgs(ctx, userID, state, from, size)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingRepo.ListByOwner(ctx, userID, parsed, time.Now(), size, from*size)
	if err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	return bookings, nil
}

func (s *bookingService) checkListArgs(ctx context.Context, userID int64, state string, from, size int) (domain.BookingState, error) {
	if err := checkPage(from, size); err != nil {
		return "", err
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return "", err
	}
	return domain.ParseBookingState(state)
}
