package email

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/Domenick1991/bookingrpc/internal/kafka"
)

func TestSender_Send(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	sender := NewSender(zap.New(core))

	err := sender.Send(context.Background(), kafka.BookingEvent{
		Type:         "booking_created",
		BookingID:    "b-1",
		FirstName:    "A",
		LastName:     "B",
		Email:        "x@y.com",
		Flights:      []string{"AC101 YUL-YYZ"},
		CurrencyCode: "CAD",
		TotalCents:   18000,
	})
	require.NoError(t, err)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "x@y.com", fields["to"])
	assert.Equal(t, "180.00 CAD", fields["total"])
	assert.Equal(t, "Booking b-1 confirmed for A B", fields["subject"])
}

func TestSender_Send_NoRecipient(t *testing.T) {
	sender := NewSender(zap.NewNop())
	assert.Error(t, sender.Send(context.Background(), kafka.BookingEvent{BookingID: "b-1"}))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "0.05 USD", FormatAmount(5, "USD"))
	assert.Equal(t, "-12.30 CAD", FormatAmount(-1230, "CAD"))
}
