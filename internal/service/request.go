package service

import (
	"context"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type requestService struct {
	requestRepo repository.RequestRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
}

func NewRequestService(
	requestRepo repository.RequestRepository,
	userRepo repository.UserRepository,
	itemRepo repository.ItemRepository,
) RequestService {
	return &requestService{
		requestRepo: requestRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

func (s *requestService) CreateRequest(ctx context.Context, userID int64, description string) (*domain.ItemRequest, error) {
	if description == "" {
		return nil, domain.NewValidationError("request description must not be empty")
	}
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	req := &domain.ItemRequest{
		Description: description,
		RequestorID: userID,
		Created:     time.Now(),
		Items:       []domain.Item{},
	}
	if err := s.requestRepo.Create(ctx, req); err != nil {
		return nil, err
	}
	return req, nil
}

func (s *requestService) ListRequestsForUser(ctx context.Context, userID int64) ([]domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListByRequestor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *requestService) GetRequest(ctx context.Context, requestID, userID int64) (*domain.ItemRequest, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	req, err := s.requestRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	items, err := s.itemRepo.ListByRequest(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []domain.Item{}
	}
	req.Items = items
	return req, nil
}

// ListOtherRequests pages through requests authored by anyone but the
// caller, newest first.
func (s *requestService) ListOtherRequests(ctx context.Context, userID int64, from, size int) ([]domain.ItemRequest, error) {
	if err := checkPage(from, size); err != nil {
		return nil, err
	}
	requests, err := s.requestRepo.ListOthers(ctx, userID, size, from*size)
	if err != nil {
		return nil, err
	}
	return s.attachItems(ctx, requests)
}

func (s *requestService) attachItems(ctx context.Context, requests []domain.ItemRequest) ([]domain.ItemRequest, error) {
	result := make([]domain.ItemRequest, 0, len(requests))
	for _, req := range requests {
		items, err := s.itemRepo.ListByRequest(ctx, req.ID)
		if err != nil {
			return nil, err
		}
		if items == nil {
			items = []domain.Item{}
		}
		req.Items = items
		result = append(result, req)
	}
	return result, nil
}
