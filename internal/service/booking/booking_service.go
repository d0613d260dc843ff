package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Domenick1991/bookingrpc/internal/apperr"
	"github.com/Domenick1991/bookingrpc/internal/domain"
	"github.com/Domenick1991/bookingrpc/internal/kafka"
	"github.com/Domenick1991/bookingrpc/internal/repository"
)

const DefaultCurrency = "CAD"

type BookingUseCase interface {
	Quote(ctx context.Context, input ItineraryInput) (domain.Fare, error)
	Create(ctx context.Context, input ItineraryInput) (*domain.Booking, error)
	Retrieve(ctx context.Context, id string) (*domain.Booking, error)
}

type Metrics interface {
	IncrementBookingsCreated()
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// ItineraryInput is the validated input of Quote and Create. An empty
// CurrencyCode selects the service default.
type ItineraryInput struct {
	Passenger    domain.Passenger
	Segments     []domain.ItinerarySegment
	CurrencyCode string
}

type BookingService struct {
	bookings        repository.BookingStore
	producer        Producer
	bookingTopic    string
	defaultCurrency string
	now             func() time.Time
	newID           func() string
	logger          *zap.Logger
	metrics         Metrics
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.bookingTopic = topic
	}
}

func WithDefaultCurrency(code string) BookingServiceOption {
	return func(s *BookingService) {
		s.defaultCurrency = code
	}
}

func WithClock(now func() time.Time) BookingServiceOption {
	return func(s *BookingService) {
		s.now = now
	}
}

func WithIDGenerator(newID func() string) BookingServiceOption {
	return func(s *BookingService) {
		s.newID = newID
	}
}

func WithLogger(logger *zap.Logger) BookingServiceOption {
	return func(s *BookingService) {
		s.logger = logger
	}
}

func WithMetrics(metrics Metrics) BookingServiceOption {
	return func(s *BookingService) {
		s.metrics = metrics
	}
}

func NewBookingService(bookings repository.BookingStore, opts ...BookingServiceOption) *BookingService {
	service := &BookingService{
		bookings:        bookings,
		defaultCurrency: DefaultCurrency,
		now:             time.Now,
		newID:           uuid.NewString,
		logger:          zap.NewNop(),
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *BookingService) Quote(_ context.Context, input ItineraryInput) (domain.Fare, error) {
	return ComputeFare(s.currency(input), len(input.Segments))
}

func (s *BookingService) Create(ctx context.Context, input ItineraryInput) (*domain.Booking, error) {
	fare, err := ComputeFare(s.currency(input), len(input.Segments))
	if err != nil {
		return nil, err
	}

	booking := domain.Booking{
		ID:         s.newID(),
		Passenger:  input.Passenger,
		Segments:   append([]domain.ItinerarySegment(nil), input.Segments...),
		Fare:       fare,
		CreatedUTC: s.now().UTC(),
	}

	// Nothing has been written yet, so a cancelled request leaves no trace.
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.bookings.Put(ctx, booking.ID, booking); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return nil, apperr.Wrap(apperr.CodeInternal, "generated booking id collided", err)
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "store booking", err)
	}

	s.logger.Info("booking created",
		zap.String("booking_id", booking.ID),
		zap.Int("segments", len(booking.Segments)),
		zap.Int64("total_cents", booking.Fare.TotalCents),
		zap.String("currency", booking.Fare.CurrencyCode),
	)
	if s.metrics != nil {
		s.metrics.IncrementBookingsCreated()
	}
	if err := s.publish(ctx, "booking_created", &booking); err != nil {
		s.logger.Warn("failed to publish booking event", zap.String("booking_id", booking.ID), zap.Error(err))
	}
	return &booking, nil
}

func (s *BookingService) Retrieve(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookings.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperr.Newf(apperr.CodeNotFound, "booking %q not found", id)
		}
		return nil, apperr.Wrap(apperr.CodeInternal, "load booking", err)
	}
	return &booking, nil
}

func (s *BookingService) currency(input ItineraryInput) string {
	if input.CurrencyCode != "" {
		return input.CurrencyCode
	}
	return s.defaultCurrency
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking) error {
	if s.producer == nil || s.bookingTopic == "" {
		return nil
	}
	return s.producer.Publish(ctx, s.bookingTopic, booking.ID, kafka.NewBookingEvent(eventType, booking))
}

var _ BookingUseCase = (*BookingService)(nil)
