//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

type RedisBookingStoreSuite struct {
	suite.Suite
	container *tcredis.RedisContainer
	client    *redis.Client
	store     *RedisBookingStore
	ctx       context.Context
}

func TestRedisBookingStoreSuite(t *testing.T) {
	suite.Run(t, new(RedisBookingStoreSuite))
}

func (s *RedisBookingStoreSuite) SetupSuite() {
	s.ctx = context.Background()

	container, err := tcredis.Run(s.ctx, "redis:7-alpine")
	s.Require().NoError(err)
	s.container = container

	uri, err := container.ConnectionString(s.ctx)
	s.Require().NoError(err)
	opts, err := redis.ParseURL(uri)
	s.Require().NoError(err)

	s.client = redis.NewClient(opts)
	s.Require().NoError(s.client.Ping(s.ctx).Err())
}

func (s *RedisBookingStoreSuite) TearDownSuite() {
	if s.client != nil {
		_ = s.client.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(s.ctx)
	}
}

func (s *RedisBookingStoreSuite) SetupTest() {
	s.Require().NoError(s.client.FlushAll(s.ctx).Err())
	s.store = NewRedisBookingStore(s.client, "test:")
}

func (s *RedisBookingStoreSuite) TestPutAndGet() {
	b := newBooking()
	s.Require().NoError(s.store.Put(s.ctx, b.ID, b))

	found, err := s.store.Get(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(b, found)

	exists, err := s.client.Exists(s.ctx, "test:booking:"+b.ID).Result()
	s.Require().NoError(err)
	s.Equal(int64(1), exists)
}

func (s *RedisBookingStoreSuite) TestWriteOnce() {
	b := newBooking()
	s.Require().NoError(s.store.Put(s.ctx, b.ID, b))

	other := newBooking()
	s.Require().ErrorIs(s.store.Put(s.ctx, b.ID, other), ErrAlreadyExists)

	found, err := s.store.Get(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(b.CreatedUTC, found.CreatedUTC)
}

func (s *RedisBookingStoreSuite) TestGetUnknown() {
	_, err := s.store.Get(s.ctx, uuid.NewString())
	s.Require().ErrorIs(err, ErrNotFound)
}
