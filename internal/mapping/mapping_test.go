package mapping

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Domenick1991/bookingrpc/internal/domain"
	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

func sampleBooking(segments int) domain.Booking {
	dep := time.Date(2026, 5, 17, 9, 15, 0, 0, time.UTC)
	b := domain.Booking{
		ID:         "6f1c3c0e-4a55-4d7b-9a8e-3f0c7d2b9e10",
		Passenger:  domain.Passenger{FirstName: "A", LastName: "B", Email: "x@y.com"},
		Fare:       domain.Fare{CurrencyCode: "CAD", BaseCents: 15000 * int64(segments), TaxesCents: 3000 * int64(segments), TotalCents: 18000 * int64(segments)},
		CreatedUTC: time.Date(2026, 5, 1, 12, 0, 0, 987654321, time.UTC),
	}
	for i := 0; i < segments; i++ {
		start := dep.Add(time.Duration(i) * 6 * time.Hour)
		b.Segments = append(b.Segments, domain.ItinerarySegment{
			FlightNumber:    "AC10" + string(rune('0'+i)),
			OriginCode:      "YUL",
			DestinationCode: "YYZ",
			DepartureUTC:    start,
			ArrivalUTC:      start.Add(70*time.Minute + 5*time.Nanosecond),
		})
	}
	return b
}

func TestBooking_RoundTrip(t *testing.T) {
	for n := domain.MinSegments; n <= domain.MaxSegments; n++ {
		b := sampleBooking(n)
		assert.Equal(t, b, BookingToDomain(BookingToWire(b)), "segments=%d", n)
	}
}

// The law has to survive the bytes too, not only the in-memory structs.
func TestBooking_RoundTripThroughWireBytes(t *testing.T) {
	b := sampleBooking(3)

	raw, err := BookingToWire(b).MarshalWire()
	require.NoError(t, err)

	var decoded bookingv1.Booking
	require.NoError(t, decoded.UnmarshalWire(raw))
	assert.Equal(t, b, BookingToDomain(&decoded))
}

func TestFare_PassesMinorUnitsThrough(t *testing.T) {
	f := domain.Fare{CurrencyCode: "JPY", BaseCents: 9007199254740993, TaxesCents: 1, TotalCents: 9007199254740994}

	wire := FareToWire(f)
	assert.Equal(t, int64(9007199254740993), wire.BaseCents)
	assert.Equal(t, f, FareToDomain(wire))
}

func TestSegment_TimesAreUTCInstants(t *testing.T) {
	montreal := time.FixedZone("EST", -5*60*60)
	local := time.Date(2026, 1, 10, 8, 0, 0, 0, montreal)

	got := SegmentToDomain(SegmentToWire(domain.ItinerarySegment{DepartureUTC: local, ArrivalUTC: local.Add(time.Hour)}))

	assert.Equal(t, time.UTC, got.DepartureUTC.Location())
	assert.True(t, got.DepartureUTC.Equal(local))
	assert.Equal(t, 13, got.DepartureUTC.Hour())
}

func TestNilWireMessagesMapToZeroValues(t *testing.T) {
	assert.Equal(t, domain.Passenger{}, PassengerToDomain(nil))
	assert.Equal(t, domain.Fare{}, FareToDomain(nil))
	assert.Equal(t, domain.ItinerarySegment{}, SegmentToDomain(nil))
	assert.True(t, TimeToDomain(nil).IsZero())
	assert.Nil(t, TimeToWire(time.Time{}))
}

func TestSegmentsToWire_PreservesOrder(t *testing.T) {
	b := sampleBooking(4)

	wire := SegmentsToWire(b.Segments)
	require.Len(t, wire, 4)
	for i, s := range wire {
		assert.Equal(t, b.Segments[i].FlightNumber, s.FlightNumber)
	}
}
