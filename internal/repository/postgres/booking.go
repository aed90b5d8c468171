package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"shareit-backend/internal/domain"
	"shareit-backend/internal/repository"
)

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

// statePredicate renders the WHERE fragment for one booking state, starting
// at the given placeholder index. The predicate is part of the query itself:
// pages are filtered first, then limited.
type statePredicate func(argIdx int, now time.Time) (string, []any)

var statePredicates = map[domain.BookingState]statePredicate{
	domain.BookingStateAll: func(int, time.Time) (string, []any) {
		return "", nil
	},
	domain.BookingStateCurrent: func(i int, now time.Time) (string, []any) {
		return fmt.Sprintf(" AND b.start_date <= $%d AND b.end_date >= $%d", i, i+1), []any{now, now}
	},
	domain.BookingStatePast: func(i int, now time.Time) (string, []any) {
		return fmt.Sprintf(" AND b.end_date < $%d", i), []any{now}
	},
	domain.BookingStateFuture: func(i int, now time.Time) (string, []any) {
		return fmt.Sprintf(" AND b.start_date > $%d", i), []any{now}
	},
	domain.BookingStateWaiting: func(i int, _ time.Time) (string, []any) {
		return fmt.Sprintf(" AND b.status = $%d", i), []any{domain.BookingStatusWaiting}
	},
	domain.BookingStateRejected: func(i int, _ time.Time) (string, []any) {
		return fmt.Sprintf(" AND b.status = $%d", i), []any{domain.BookingStatusRejected}
	},
}

const bookingColumns = `b.id, b.start_date, b.end_date, b.status,
	       u.id, u.name, u.email,
	       i.id, i.name, i.description, i.available, i.owner_id, i.request_id`

const bookingJoins = ` FROM bookings b
	       JOIN users u ON u.id = b.booker_id
	       JOIN items i ON i.id = b.item_id`

func scanBooking(row interface{ Scan(...any) error }) (*domain.Booking, error) {
	b := &domain.Booking{}
	var available bool
	err := row.Scan(
		&b.ID, &b.Start, &b.End, &b.Status,
		&b.Booker.ID, &b.Booker.Name, &b.Booker.Email,
		&b.Item.ID, &b.Item.Name, &b.Item.Description, &available, &b.Item.OwnerID, &b.Item.RequestID,
	)
	if err != nil {
		return nil, err
	}
	b.Item.Available = &available
	return b, nil
}

func (r *bookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	query := `INSERT INTO bookings (start_date, end_date, item_id, booker_id, status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, b.Start, b.End, b.Item.ID, b.Booker.ID, b.Status).Scan(&b.ID)
}

func (r *bookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.id = $1`
	b, err := scanBooking(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.NewNotFoundError("booking not found")
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	query := `UPDATE bookings SET status = $1 WHERE id = $2`
	_, err := r.db.ExecContext(ctx, query, status, id)
	return err
}

func (r *bookingRepository) ListByBooker(ctx context.Context, bookerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE b.booker_id = $1`
	args := []any{bookerID}
	return r.listFiltered(ctx, query, args, state, now, limit, offset)
}

func (r *bookingRepository) ListByOwner(ctx context.Context, ownerID int64, state domain.BookingState, now time.Time, limit, offset int) ([]domain.Booking, error) {
	query := `SELECT ` + bookingColumns + bookingJoins + ` WHERE i.owner_id = $1`
	args := []any{ownerID}
	return r.listFiltered(ctx, query, args, state, now, limit, offset)
}

func (r *bookingRepository) listFiltered(ctx context.Context, query string, args []any, state domain.BookingState, now time.Time, limit, offset int) ([]domain.Booking, error) {
	pred, ok := statePredicates[state]
	if !ok {
		return nil, domain.NewValidationError("Unknown state: " + string(state))
	}
	cond, condArgs := pred(len(args)+1, now)
	query += cond
	args = append(args, condArgs...)

	query += fmt.Sprintf(" ORDER BY b.start_date DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, *b)
	}
	return bookings, rows.Err()
}

// NextForItem returns the nearest future non-rejected booking of the item,
// or nil when there is none.
func (r *bookingRepository) NextForItem(ctx context.Context, itemID int64, now time.Time) (*domain.BookingRef, error) {
	query := `SELECT id, booker_id FROM bookings
	          WHERE item_id = $1 AND status <> $2 AND start_date > $3
	          ORDER BY start_date ASC LIMIT 1`
	return r.bookingRef(ctx, query, itemID, domain.BookingStatusRejected, now)
}

// LastForItem returns the nearest past-or-current non-rejected booking of
// the item, or nil when there is none.
func (r *bookingRepository) LastForItem(ctx context.Context, itemID int64, now time.Time) (*domain.BookingRef, error) {
	query := `SELECT id, booker_id FROM bookings
	          WHERE item_id = $1 AND status <> $2 AND start_date <= $3
	          ORDER BY start_date DESC LIMIT 1`
	return r.bookingRef(ctx, query, itemID, domain.BookingStatusRejected, now)
}

func (r *bookingRepository) bookingRef(ctx context.Context, query string, args ...any) (*domain.BookingRef, error) {
	ref := &domain.BookingRef{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&ref.ID, &ref.BookerID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ref, nil
}

// HasFinishedBooking reports whether the user has at least one booking on
// the item whose end time has already passed. Gates comment creation.
func (r *bookingRepository) HasFinishedBooking(ctx context.Context, itemID, bookerID int64, now time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bookings
	          WHERE item_id = $1 AND booker_id = $2 AND end_date < $3)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, itemID, bookerID, now).Scan(&exists)
	return exists, err
}
