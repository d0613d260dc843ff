package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/Domenick1991/bookingrpc/internal/domain"
)

type MemoryBookingStoreSuite struct {
	suite.Suite
	store *MemoryBookingStore
	ctx   context.Context
}

func (s *MemoryBookingStoreSuite) SetupTest() {
	s.store = NewMemoryBookingStore()
	s.ctx = context.Background()
}

func TestMemoryBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(MemoryBookingStoreSuite))
}

func newBooking() domain.Booking {
	dep := time.Date(2026, 7, 4, 6, 0, 0, 0, time.UTC)
	return domain.Booking{
		ID:        uuid.NewString(),
		Passenger: domain.Passenger{FirstName: "A", LastName: "B", Email: "x@y.com"},
		Segments: []domain.ItinerarySegment{
			{FlightNumber: "AC101", OriginCode: "YUL", DestinationCode: "YYZ", DepartureUTC: dep, ArrivalUTC: dep.Add(time.Hour)},
		},
		Fare:       domain.Fare{CurrencyCode: "CAD", BaseCents: 15000, TaxesCents: 3000, TotalCents: 18000},
		CreatedUTC: time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (s *MemoryBookingStoreSuite) TestPutAndGet() {
	s.Run("stores and returns a booking", func() {
		b := newBooking()
		s.Require().NoError(s.store.Put(s.ctx, b.ID, b))

		found, err := s.store.Get(s.ctx, b.ID)
		s.Require().NoError(err)
		s.Equal(b, found)
	})

	s.Run("returns ErrNotFound for unknown id", func() {
		_, err := s.store.Get(s.ctx, uuid.NewString())
		s.Require().ErrorIs(err, ErrNotFound)
	})
}

func (s *MemoryBookingStoreSuite) TestWriteOnce() {
	first := newBooking()
	s.Require().NoError(s.store.Put(s.ctx, first.ID, first))

	second := newBooking()
	second.Passenger.FirstName = "Z"
	err := s.store.Put(s.ctx, first.ID, second)
	s.Require().ErrorIs(err, ErrAlreadyExists)

	found, err := s.store.Get(s.ctx, first.ID)
	s.Require().NoError(err)
	s.Equal("A", found.Passenger.FirstName)
	s.Equal(1, s.store.Len())
}

func (s *MemoryBookingStoreSuite) TestIsolationFromCallerMutation() {
	b := newBooking()
	s.Require().NoError(s.store.Put(s.ctx, b.ID, b))

	b.Segments[0].FlightNumber = "XX999"

	found, err := s.store.Get(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal("AC101", found.Segments[0].FlightNumber)

	found.Segments[0].OriginCode = "ZZZ"
	again, err := s.store.Get(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal("YUL", again.Segments[0].OriginCode)
}

func (s *MemoryBookingStoreSuite) TestConcurrentAccess() {
	const writers = 32

	var wg sync.WaitGroup
	ids := make([]string, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			b := newBooking()
			b.Passenger.Email = fmt.Sprintf("p%d@example.com", i)
			ids[i] = b.ID
			s.NoError(s.store.Put(s.ctx, b.ID, b))
			_, err := s.store.Get(s.ctx, b.ID)
			s.NoError(err)
		}(i)
	}
	wg.Wait()

	s.Equal(writers, s.store.Len())
	for i, id := range ids {
		found, err := s.store.Get(s.ctx, id)
		s.Require().NoError(err)
		s.Equal(fmt.Sprintf("p%d@example.com", i), found.Passenger.Email)
	}
}

func (s *MemoryBookingStoreSuite) TestConcurrentPutSameID() {
	const racers = 16
	id := uuid.NewString()

	var wg sync.WaitGroup
	results := make(chan error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			b := newBooking()
			b.ID = id
			results <- s.store.Put(s.ctx, id, b)
		}()
	}
	wg.Wait()
	close(results)

	var wins int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		s.ErrorIs(err, ErrAlreadyExists)
	}
	s.Equal(1, wins)
}
