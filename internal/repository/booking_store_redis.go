package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/Domenick1991/bookingrpc/internal/domain"
	"github.com/Domenick1991/bookingrpc/internal/mapping"
	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

// RedisBookingStore keeps bookings in redis, encoded as booking.v1.Booking.
// SETNX provides the write-once guarantee across processes.
type RedisBookingStore struct {
	client *redis.Client
	prefix string
}

func NewRedisBookingStore(client *redis.Client, keyPrefix string) *RedisBookingStore {
	return &RedisBookingStore{client: client, prefix: keyPrefix}
}

func (s *RedisBookingStore) Put(ctx context.Context, id string, b domain.Booking) error {
	payload, err := mapping.BookingToWire(b).MarshalWire()
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", id, err)
	}
	ok, err := s.client.SetNX(ctx, s.key(id), payload, 0).Result()
	if err != nil {
		return fmt.Errorf("store booking %s: %w", id, err)
	}
	if !ok {
		return ErrAlreadyExists
	}
	return nil
}

func (s *RedisBookingStore) Get(ctx context.Context, id string) (domain.Booking, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.Booking{}, ErrNotFound
		}
		return domain.Booking{}, fmt.Errorf("load booking %s: %w", id, err)
	}

	var wire bookingv1.Booking
	if err := wire.UnmarshalWire(data); err != nil {
		return domain.Booking{}, fmt.Errorf("decode booking %s: %w", id, err)
	}
	return mapping.BookingToDomain(&wire), nil
}

func (s *RedisBookingStore) key(id string) string {
	return s.prefix + "booking:" + id
}

var _ BookingStore = (*RedisBookingStore)(nil)
