package email

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Domenick1991/bookingrpc/internal/kafka"
)

// Sender delivers booking confirmations. Delivery is a structured log line;
// a mail gateway can replace it behind the same method.
type Sender struct {
	logger *zap.Logger
}

func NewSender(logger *zap.Logger) *Sender {
	return &Sender{logger: logger}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Email == "" {
		return fmt.Errorf("booking %s: no recipient", event.BookingID)
	}
	s.logger.Info("send booking confirmation",
		zap.String("to", event.Email),
		zap.String("subject", Subject(event)),
		zap.String("booking_id", event.BookingID),
		zap.String("itinerary", strings.Join(event.Flights, ", ")),
		zap.String("total", FormatAmount(event.TotalCents, event.CurrencyCode)),
	)
	return nil
}

func Subject(event kafka.BookingEvent) string {
	return fmt.Sprintf("Booking %s confirmed for %s %s", event.BookingID, event.FirstName, event.LastName)
}

// FormatAmount renders minor units with two decimals, e.g. "180.00 CAD".
func FormatAmount(cents int64, currency string) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, cents/100, cents%100, currency)
}
