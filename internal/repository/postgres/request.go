package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type requestRepository struct {
	db *sql.DB
}

func NewRequestRepository(db *sql.DB) repository.RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) Create(ctx context.Context, req *domain.ItemRequest) error {
	if req.Created.IsZero() {
		req.Created = time.Now()
	}
	query := `INSERT INTO requests (description, requestor_id, created) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, req.Description, req.RequestorID, req.Created).Scan(&req.ID)
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.ItemRequest, error) {
	req := &domain.ItemRequest{}
	query := `SELECT id, description, requestor_id, created FROM requests WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("request not found")
	}
	if err != nil {
		return nil, err
	}
	return req, nil
}

func (r *requestRepository) ListByRequestor(ctx context.Context, requestorID int64) ([]domain.ItemRequest, error) {
	query := `SELECT id, description, requestor_id, created FROM requests
	          WHERE requestor_id = $1 ORDER BY created DESC`
	rows, err := r.db.QueryContext(ctx, query, requestorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

// ListOthers returns requests not authored by the given user, newest first.
func (r *requestRepository) ListOthers(ctx context.Context, excludeRequestorID int64, limit, offset int) ([]domain.ItemRequest, error) {
	query := `SELECT id, description, requestor_id, created FROM requests
	          WHERE requestor_id <> $1 ORDER BY created DESC LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, excludeRequestorID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRequests(rows)
}

func collectRequests(rows *sql.Rows) ([]domain.ItemRequest, error) {
	var requests []domain.ItemRequest
	for rows.Next() {
		var req domain.ItemRequest
		if err := rows.Scan(&req.ID, &req.Description, &req.RequestorID, &req.Created); err != nil {
			return nil, err
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}
