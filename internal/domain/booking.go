package domain

import (
	"slices"
	"time"
)

const (
	MinSegments = 1
	MaxSegments = 6
)

type Passenger struct {
	FirstName string
	LastName  string
	Email     string
}

type ItinerarySegment struct {
	FlightNumber    string
	OriginCode      string
	DestinationCode string
	DepartureUTC    time.Time
	ArrivalUTC      time.Time
}

// Fare amounts are integer minor currency units; TotalCents is always
// BaseCents + TaxesCents.
type Fare struct {
	CurrencyCode string
	BaseCents    int64
	TaxesCents   int64
	TotalCents   int64
}

// Booking is written once at creation and never modified afterwards.
type Booking struct {
	ID         string
	Passenger  Passenger
	Segments   []ItinerarySegment
	Fare       Fare
	CreatedUTC time.Time
}

// Clone returns a copy that shares no memory with b.
func (b Booking) Clone() Booking {
	b.Segments = slices.Clone(b.Segments)
	return b
}
