package repository

import (
	"context"
	"sync"

	"github.com/Domenick1991/bookingrpc/internal/domain"
)

type MemoryBookingStore struct {
	mu       sync.RWMutex
	bookings map[string]domain.Booking
}

func NewMemoryBookingStore() *MemoryBookingStore {
	return &MemoryBookingStore{bookings: make(map[string]domain.Booking)}
}

func (s *MemoryBookingStore) Put(_ context.Context, id string, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; ok {
		return ErrAlreadyExists
	}
	s.bookings[id] = b.Clone()
	return nil
}

func (s *MemoryBookingStore) Get(_ context.Context, id string) (domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if b, ok := s.bookings[id]; ok {
		return b.Clone(), nil
	}
	return domain.Booking{}, ErrNotFound
}

// Len returns the number of stored bookings.
func (s *MemoryBookingStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.bookings)
}

var _ BookingStore = (*MemoryBookingStore)(nil)
