package postgres

import (
	"database/sql"

	"shareit-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.ItemRepository
	repository.RequestRepository
	repository.BookingRepository
	repository.CommentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                db,
		UserRepository:    NewUserRepository(db),
		ItemRepository:    NewItemRepository(db),
		RequestRepository: NewRequestRepository(db),
		BookingRepository: NewBookingRepository(db),
		CommentRepository: NewCommentRepository(db),
	}
}
