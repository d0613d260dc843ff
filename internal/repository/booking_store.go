package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/bookingrpc/internal/domain"
)

var (
	ErrNotFound      = errors.New("booking not found")
	ErrAlreadyExists = errors.New("booking already exists")
)

// BookingStore maps booking ids to bookings. Each id is written at most once;
// there is no update or delete. Implementations are safe for concurrent use.
type BookingStore interface {
	// Put stores b under id and returns ErrAlreadyExists if id is taken.
	Put(ctx context.Context, id string, b domain.Booking) error
	// Get returns ErrNotFound if id was never stored.
	Get(ctx context.Context, id string) (domain.Booking, error)
}
