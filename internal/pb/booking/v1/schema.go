// Package bookingv1 is the booking.v1 wire contract: field numbers, the
// reserved-field ledger, message types, the protobuf codec and the gRPC
// service descriptor. It mirrors api/booking/v1/booking.proto.
package bookingv1

import "google.golang.org/protobuf/encoding/protowire"

// Namespace is the versioned protobuf package of every message in this file.
const Namespace = "booking.v1"

// Fully-qualified message names.
const (
	PassengerName             = Namespace + ".Passenger"
	ItinerarySegmentName      = Namespace + ".ItinerarySegment"
	FareName                  = Namespace + ".Fare"
	BookingName               = Namespace + ".Booking"
	QuoteRequestName          = Namespace + ".QuoteRequest"
	QuoteResponseName         = Namespace + ".QuoteResponse"
	CreateBookingRequestName  = Namespace + ".CreateBookingRequest"
	CreateBookingResponseName = Namespace + ".CreateBookingResponse"
	GetBookingRequestName     = Namespace + ".GetBookingRequest"
	GetBookingResponseName    = Namespace + ".GetBookingResponse"
)

// Field numbers. Published numbers never change meaning and are never reused.
const (
	passengerFirstName protowire.Number = 1
	passengerLastName  protowire.Number = 2
	passengerEmail     protowire.Number = 3

	segmentFlightNumber    protowire.Number = 1
	segmentOriginCode      protowire.Number = 2
	segmentDestinationCode protowire.Number = 3
	segmentDepartureUTC    protowire.Number = 4
	segmentArrivalUTC      protowire.Number = 5

	fareCurrencyCode protowire.Number = 1
	fareBaseCents    protowire.Number = 2
	fareTaxesCents   protowire.Number = 3
	fareTotalCents   protowire.Number = 4

	bookingID         protowire.Number = 1
	bookingPassenger  protowire.Number = 2
	bookingSegments   protowire.Number = 3
	bookingFare       protowire.Number = 4
	bookingCreatedUTC protowire.Number = 5

	quoteReqPassenger    protowire.Number = 1
	quoteReqSegments     protowire.Number = 2
	quoteReqCurrencyCode protowire.Number = 3

	quoteRespFare protowire.Number = 1

	createReqPassenger    protowire.Number = 1
	createReqSegments     protowire.Number = 2
	createReqCurrencyCode protowire.Number = 3

	createRespBookingID protowire.Number = 1
	createRespFare      protowire.Number = 2

	getReqBookingID protowire.Number = 1

	getRespBooking protowire.Number = 1
)

// Kind is the declared protobuf type of a field.
type Kind string

const (
	KindString    Kind = "string"
	KindInt64     Kind = "int64"
	KindTimestamp Kind = "google.protobuf.Timestamp"
)

// MessageKind returns the Kind of a field holding the named message.
func MessageKind(fullName string) Kind {
	return Kind(fullName)
}

// Field describes one declared field.
type Field struct {
	Number   protowire.Number
	Name     string
	Kind     Kind
	Repeated bool
	// Optional marks explicit presence: unset, set to the zero value and set
	// to any other value are three distinct states.
	Optional bool
}

// Reserved is a retired field. Neither its number nor its name may be
// declared again in the same message.
type Reserved struct {
	Number protowire.Number
	Name   string
}

// Descriptor describes the declared and retired fields of a message.
type Descriptor struct {
	FullName string
	Fields   []Field
	Reserved []Reserved
}

// Schema is the booking.v1 contract as declared in booking.proto.
var Schema = []Descriptor{
	{
		FullName: PassengerName,
		Fields: []Field{
			{Number: passengerFirstName, Name: "first_name", Kind: KindString},
			{Number: passengerLastName, Name: "last_name", Kind: KindString},
			{Number: passengerEmail, Name: "email", Kind: KindString},
		},
		Reserved: []Reserved{{Number: 4, Name: "phone"}},
	},
	{
		FullName: ItinerarySegmentName,
		Fields: []Field{
			{Number: segmentFlightNumber, Name: "flight_number", Kind: KindString},
			{Number: segmentOriginCode, Name: "origin_code", Kind: KindString},
			{Number: segmentDestinationCode, Name: "destination_code", Kind: KindString},
			{Number: segmentDepartureUTC, Name: "departure_utc", Kind: KindTimestamp},
			{Number: segmentArrivalUTC, Name: "arrival_utc", Kind: KindTimestamp},
		},
	},
	{
		FullName: FareName,
		Fields: []Field{
			{Number: fareCurrencyCode, Name: "currency_code", Kind: KindString},
			{Number: fareBaseCents, Name: "base_cents", Kind: KindInt64},
			{Number: fareTaxesCents, Name: "taxes_cents", Kind: KindInt64},
			{Number: fareTotalCents, Name: "total_cents", Kind: KindInt64},
		},
		Reserved: []Reserved{{Number: 5, Name: "total_amount"}},
	},
	{
		FullName: BookingName,
		Fields: []Field{
			{Number: bookingID, Name: "booking_id", Kind: KindString},
			{Number: bookingPassenger, Name: "passenger", Kind: MessageKind(PassengerName)},
			{Number: bookingSegments, Name: "segments", Kind: MessageKind(ItinerarySegmentName), Repeated: true},
			{Number: bookingFare, Name: "fare", Kind: MessageKind(FareName)},
			{Number: bookingCreatedUTC, Name: "created_utc", Kind: KindTimestamp},
		},
	},
	{
		FullName: QuoteRequestName,
		Fields: []Field{
			{Number: quoteReqPassenger, Name: "passenger", Kind: MessageKind(PassengerName)},
			{Number: quoteReqSegments, Name: "segments", Kind: MessageKind(ItinerarySegmentName), Repeated: true},
			{Number: quoteReqCurrencyCode, Name: "currency_code", Kind: KindString, Optional: true},
		},
	},
	{
		FullName: QuoteResponseName,
		Fields: []Field{
			{Number: quoteRespFare, Name: "fare", Kind: MessageKind(FareName)},
		},
	},
	{
		FullName: CreateBookingRequestName,
		Fields: []Field{
			{Number: createReqPassenger, Name: "passenger", Kind: MessageKind(PassengerName)},
			{Number: createReqSegments, Name: "segments", Kind: MessageKind(ItinerarySegmentName), Repeated: true},
			{Number: createReqCurrencyCode, Name: "currency_code", Kind: KindString, Optional: true},
		},
	},
	{
		FullName: CreateBookingResponseName,
		Fields: []Field{
			{Number: createRespBookingID, Name: "booking_id", Kind: KindString},
			{Number: createRespFare, Name: "fare", Kind: MessageKind(FareName)},
		},
		Reserved: []Reserved{{Number: 3, Name: "status"}},
	},
	{
		FullName: GetBookingRequestName,
		Fields: []Field{
			{Number: getReqBookingID, Name: "booking_id", Kind: KindString},
		},
	},
	{
		FullName: GetBookingResponseName,
		Fields: []Field{
			{Number: getRespBooking, Name: "booking", Kind: MessageKind(BookingName)},
		},
	},
}

// Lookup returns the schema entry for a fully-qualified message name.
func Lookup(fullName string) (Descriptor, bool) {
	for _, m := range Schema {
		if m.FullName == fullName {
			return m, true
		}
	}
	return Descriptor{}, false
}

// IsReserved reports whether number or name is retired in the message.
func (m Descriptor) IsReserved(number protowire.Number, name string) bool {
	for _, r := range m.Reserved {
		if r.Number == number || (name != "" && r.Name == name) {
			return true
		}
	}
	return false
}
