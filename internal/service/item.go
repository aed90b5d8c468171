package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type itemService struct {
	itemRepo    repository.ItemRepository
	userRepo    repository.UserRepository
	bookingRepo repository.BookingRepository
	commentRepo repository.CommentRepository
}

func NewItemService(
	itemRepo repository.ItemRepository,
	userRepo repository.UserRepository,
	bookingRepo repository.BookingRepository,
	commentRepo repository.CommentRepository,
) ItemService {
	return &itemService{
		itemRepo:    itemRepo,
		userRepo:    userRepo,
		bookingRepo: bookingRepo,
		commentRepo: commentRepo,
	}
}

func (s *itemService) CreateItem(ctx context.Context, ownerID int64, item *domain.Item) (*domain.Item, error) {
	if _, err := s.userRepo.GetByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if item.Name == "" {
		return nil, domain.NewValidationError("item name must not be empty")
	}
	if item.Description == "" {
		return nil, domain.NewValidationError("item description must not be empty")
	}
	if item.Available == nil {
		return nil, domain.NewValidationError("item availability must not be empty")
	}
	item.OwnerID = ownerID
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) PatchItem(ctx context.Context, itemID, userID int64, patch ItemPatch) (*domain.Item, error) {
	if patch.Name != nil && *patch.Name == "" {
		return nil, domain.NewValidationError("item name must not be empty")
	}
	if patch.Description != nil && *patch.Description == "" {
		return nil, domain.NewValidationError("item description must not be empty")
	}

	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	// Non-owners get "not found" rather than "forbidden".
	if item.OwnerID != userID {
		return nil, domain.NewNotFoundError("only the item owner can change it")
	}

	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Description != nil {
		item.Description = *patch.Description
	}
	if patch.Available != nil {
		item.Available = patch.Available
	}
	if patch.RequestID != nil {
		item.RequestID = patch.RequestID
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) GetItem(ctx context.Context, itemID, userID int64) (*domain.ItemDetail, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	return s.enrich(ctx, item, userID)
}

func (s *itemService) ListItemsForUser(ctx context.Context, userID int64, from, size int) ([]domain.ItemDetail, error) {
	if err := checkPage(from, size); err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByOwner(ctx, userID, size, from*size)
	if err != nil {
		return nil, err
	}
	details := make([]domain.ItemDetail, 0, len(items))
	for i := range items {
		detail, err := s.enrich(ctx, &items[i], userID)
		if err != nil {
			return nil, err
		}
		details = append(details, *detail)
	}
	return details, nil
}

func (s *itemService) SearchItems(ctx context.Context, text string, from, size int) ([]domain.Item, error) {
	if err := checkPage(from, size); err != nil {
		return nil, err
	}
	// Empty search text deliberately matches nothing, not everything.
	if text == "" {
		return []domain.Item{}, nil
	}
	items, err := s.itemRepo.Search(ctx, text, size, from*size)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	return items, nil
}

func (s *itemService) AddComment(ctx context.Context, itemID, userID int64, text string) (*domain.Comment, error) {
	if text == "" {
		return nil, domain.NewValidationError("")
	}
	if _, err := s.itemRepo.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	finished, err := s.bookingRepo.HasFinishedBooking(ctx, itemID, userID, time.Now())
	if err != nil {
		return nil, err
	}
	if !finished {
		return nil, domain.NewValidationError("commenting requires a finished booking of the item")
	}

	comment := &domain.Comment{
		Text:       text,
		ItemID:     itemID,
		AuthorID:   userID,
		AuthorName: author.Name,
		Created:    time.Now(),
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// enrich attaches comments to an item, and the neighbouring bookings when
// the requester owns it.
func (s *itemService) enrich(ctx context.Context, item *domain.Item, userID int64) (*domain.ItemDetail, error) {
	comments, err := s.commentRepo.ListByItem(ctx, item.ID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []domain.Comment{}
	}
	detail := &domain.ItemDetail{Item: *item, Comments: comments}

	if item.OwnerID != userID {
		return detail, nil
	}

	now := time.Now()
	detail.NextBooking, err = s.bookingRepo.NextForItem(ctx, item.ID, now)
	if err != nil {
		return nil, err
	}
	detail.LastBooking, err = s.bookingRepo.LastForItem(ctx, item.ID, now)
	if err != nil {
		return nil, err
	}
	return detail, nil
}
