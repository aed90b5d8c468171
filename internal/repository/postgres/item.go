package postgres

import (
	"context"
	"database/sql"
	"errors"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type itemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) repository.ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, name, description, available, owner_id, request_id`

func scanItem(row interface{ Scan(...any) error }) (*domain.Item, error) {
	it := &domain.Item{}
	var available bool
	err := row.Scan(&it.ID, &it.Name, &it.Description, &available, &it.OwnerID, &it.RequestID)
	if err != nil {
		return nil, err
	}
	it.Available = &available
	return it, nil
}

func (r *itemRepository) Create(ctx context.Context, it *domain.Item) error {
	query := `INSERT INTO items (name, description, available, owner_id, request_id)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, it.Name, it.Description, *it.Available, it.OwnerID, it.RequestID).Scan(&it.ID)
}

func (r *itemRepository) GetByID(ctx context.Context, id int64) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`
	it, err := scanItem(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("item not found")
	}
	if err != nil {
		return nil, err
	}
	return it, nil
}

func (r *itemRepository) Update(ctx context.Context, it *domain.Item) error {
	query := `UPDATE items SET name = $1, description = $2, available = $3, request_id = $4 WHERE id = $5`
	_, err := r.db.ExecContext(ctx, query, it.Name, it.Description, *it.Available, it.RequestID, it.ID)
	return err
}

func (r *itemRepository) ListByOwner(ctx context.Context, ownerID int64, limit, offset int) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE owner_id = $1 ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func (r *itemRepository) ListByRequest(ctx context.Context, requestID int64) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE request_id = $1 ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, requestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

// Search matches available items whose name or description contains the text,
// case-insensitively. The empty-text short circuit lives in the service.
func (r *itemRepository) Search(ctx context.Context, text string, limit, offset int) ([]domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items
	          WHERE available = true AND (name ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%')
	          ORDER BY id LIMIT $2 OFFSET $3`
	rows, err := r.db.QueryContext(ctx, query, text, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectItems(rows)
}

func collectItems(rows *sql.Rows) ([]domain.Item, error) {
	var items []domain.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}
