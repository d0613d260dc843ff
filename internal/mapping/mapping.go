// Package mapping converts between domain entities and booking.v1 wire
// messages. Every ToWire/ToDomain pair is an exact inverse for valid domain
// values. Instants travel as timestamppb.Timestamp and money as int64 minor
// units, never as formatted strings or floats.
package mapping

import (
	"time"

	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Domenick1991/bookingrpc/internal/domain"
	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

func PassengerToWire(p domain.Passenger) *bookingv1.Passenger {
	return &bookingv1.Passenger{
		FirstName: p.FirstName,
		LastName:  p.LastName,
		Email:     p.Email,
	}
}

func PassengerToDomain(p *bookingv1.Passenger) domain.Passenger {
	return domain.Passenger{
		FirstName: p.GetFirstName(),
		LastName:  p.GetLastName(),
		Email:     p.GetEmail(),
	}
}

func SegmentToWire(s domain.ItinerarySegment) *bookingv1.ItinerarySegment {
	return &bookingv1.ItinerarySegment{
		FlightNumber:    s.FlightNumber,
		OriginCode:      s.OriginCode,
		DestinationCode: s.DestinationCode,
		DepartureUtc:    TimeToWire(s.DepartureUTC),
		ArrivalUtc:      TimeToWire(s.ArrivalUTC),
	}
}

func SegmentToDomain(s *bookingv1.ItinerarySegment) domain.ItinerarySegment {
	return domain.ItinerarySegment{
		FlightNumber:    s.GetFlightNumber(),
		OriginCode:      s.GetOriginCode(),
		DestinationCode: s.GetDestinationCode(),
		DepartureUTC:    TimeToDomain(s.GetDepartureUtc()),
		ArrivalUTC:      TimeToDomain(s.GetArrivalUtc()),
	}
}

func SegmentsToWire(segments []domain.ItinerarySegment) []*bookingv1.ItinerarySegment {
	out := make([]*bookingv1.ItinerarySegment, 0, len(segments))
	for _, s := range segments {
		out = append(out, SegmentToWire(s))
	}
	return out
}

func SegmentsToDomain(segments []*bookingv1.ItinerarySegment) []domain.ItinerarySegment {
	out := make([]domain.ItinerarySegment, 0, len(segments))
	for _, s := range segments {
		out = append(out, SegmentToDomain(s))
	}
	return out
}

func FareToWire(f domain.Fare) *bookingv1.Fare {
	return &bookingv1.Fare{
		CurrencyCode: f.CurrencyCode,
		BaseCents:    f.BaseCents,
		TaxesCents:   f.TaxesCents,
		TotalCents:   f.TotalCents,
	}
}

func FareToDomain(f *bookingv1.Fare) domain.Fare {
	return domain.Fare{
		CurrencyCode: f.GetCurrencyCode(),
		BaseCents:    f.GetBaseCents(),
		TaxesCents:   f.GetTaxesCents(),
		TotalCents:   f.GetTotalCents(),
	}
}

func BookingToWire(b domain.Booking) *bookingv1.Booking {
	return &bookingv1.Booking{
		BookingId:  b.ID,
		Passenger:  PassengerToWire(b.Passenger),
		Segments:   SegmentsToWire(b.Segments),
		Fare:       FareToWire(b.Fare),
		CreatedUtc: TimeToWire(b.CreatedUTC),
	}
}

func BookingToDomain(b *bookingv1.Booking) domain.Booking {
	return domain.Booking{
		ID:         b.GetBookingId(),
		Passenger:  PassengerToDomain(b.GetPassenger()),
		Segments:   SegmentsToDomain(b.GetSegments()),
		Fare:       FareToDomain(b.GetFare()),
		CreatedUTC: TimeToDomain(b.GetCreatedUtc()),
	}
}

// TimeToWire maps the zero time to an absent timestamp.
func TimeToWire(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

// TimeToDomain maps an absent timestamp to the zero time and anything else
// to a UTC instant.
func TimeToDomain(ts *timestamppb.Timestamp) time.Time {
	if ts == nil {
		return time.Time{}
	}
	return ts.AsTime()
}
