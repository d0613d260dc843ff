package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/Domenick1991/bookingrpc/internal/domain"
)

type BookingEvent struct {
	Type         string    `json:"type"`
	BookingID    string    `json:"booking_id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	Flights      []string  `json:"flights"`
	CurrencyCode string    `json:"currency_code"`
	TotalCents   int64     `json:"total_cents"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewBookingEvent(eventType string, b *domain.Booking) BookingEvent {
	flights := make([]string, 0, len(b.Segments))
	for _, s := range b.Segments {
		flights = append(flights, s.FlightNumber+" "+s.OriginCode+"-"+s.DestinationCode)
	}
	return BookingEvent{
		Type:         eventType,
		BookingID:    b.ID,
		FirstName:    b.Passenger.FirstName,
		LastName:     b.Passenger.LastName,
		Email:        b.Passenger.Email,
		Flights:      flights,
		CurrencyCode: b.Fare.CurrencyCode,
		TotalCents:   b.Fare.TotalCents,
		CreatedAt:    b.CreatedUTC,
	}
}

// Producer writes asynchronously: Publish hands the message to the writer's
// batch and returns; delivery failures are logged from the completion hook.
type Producer struct {
	brokers []string
	writer  *kafka.Writer
	logger  *zap.Logger
}

func NewProducer(brokers []string, logger *zap.Logger) *Producer {
	p := &Producer{
		brokers: brokers,
		logger:  logger,
	}
	p.writer = &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        true,
		Completion:   p.completed,
	}
	return p
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("failed to write message to Kafka: %w", err)
	}
	p.logger.Debug("queued kafka message", zap.String("topic", topic), zap.String("key", key))
	return nil
}

func (p *Producer) completed(messages []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, m := range messages {
		p.logger.Error("kafka delivery failed",
			zap.String("topic", m.Topic),
			zap.String("key", string(m.Key)),
			zap.Error(err),
		)
	}
}

// Close flushes pending messages.
func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}

func (p *Producer) CheckConnection(ctx context.Context) error {
	if len(p.brokers) == 0 {
		return fmt.Errorf("no kafka brokers configured")
	}
	conn, err := kafka.DialContext(ctx, "tcp", p.brokers[0])
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ReadPartitions(); err != nil {
		return fmt.Errorf("failed to read partitions: %w", err)
	}
	return nil
}
