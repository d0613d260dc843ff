package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/bookingrpc/internal/domain"
)

func TestBookingEvent_EncodeDecode(t *testing.T) {
	created := time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		ID:        "b-1",
		Passenger: domain.Passenger{FirstName: "A", LastName: "B", Email: "x@y.com"},
		Segments: []domain.ItinerarySegment{
			{FlightNumber: "AC101", OriginCode: "YUL", DestinationCode: "YYZ"},
			{FlightNumber: "AC845", OriginCode: "YYZ", DestinationCode: "LHR"},
		},
		Fare:       domain.Fare{CurrencyCode: "CAD", BaseCents: 30000, TaxesCents: 6000, TotalCents: 36000},
		CreatedUTC: created,
	}

	event := NewBookingEvent("booking_created", b)
	assert.Equal(t, []string{"AC101 YUL-YYZ", "AC845 YYZ-LHR"}, event.Flights)

	data, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, err := DecodeBookingEvent(data)
	require.NoError(t, err)
	assert.Equal(t, event, decoded)
}

func TestDecodeBookingEvent_Invalid(t *testing.T) {
	_, err := DecodeBookingEvent([]byte("{not json"))
	assert.Error(t, err)
}
