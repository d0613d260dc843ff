package bookingv1

import (
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type Passenger struct {
	FirstName string
	LastName  string
	Email     string

	unknownFields []byte
}

func (m *Passenger) GetFirstName() string {
	if m != nil {
		return m.FirstName
	}
	return ""
}

func (m *Passenger) GetLastName() string {
	if m != nil {
		return m.LastName
	}
	return ""
}

func (m *Passenger) GetEmail() string {
	if m != nil {
		return m.Email
	}
	return ""
}

func (m *Passenger) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, passengerFirstName, m.FirstName)
	b = appendString(b, passengerLastName, m.LastName)
	b = appendString(b, passengerEmail, m.Email)
	return append(b, m.unknownFields...), nil
}

func (m *Passenger) UnmarshalWire(b []byte) error {
	*m = Passenger{}
	return m.mergeWire(b)
}

func (m *Passenger) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case passengerFirstName:
			return consumeString(typ, b, &m.FirstName)
		case passengerLastName:
			return consumeString(typ, b, &m.LastName)
		case passengerEmail:
			return consumeString(typ, b, &m.Email)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type ItinerarySegment struct {
	FlightNumber    string
	OriginCode      string
	DestinationCode string
	DepartureUtc    *timestamppb.Timestamp
	ArrivalUtc      *timestamppb.Timestamp

	unknownFields []byte
}

func (m *ItinerarySegment) GetFlightNumber() string {
	if m != nil {
		return m.FlightNumber
	}
	return ""
}

func (m *ItinerarySegment) GetOriginCode() string {
	if m != nil {
		return m.OriginCode
	}
	return ""
}

func (m *ItinerarySegment) GetDestinationCode() string {
	if m != nil {
		return m.DestinationCode
	}
	return ""
}

func (m *ItinerarySegment) GetDepartureUtc() *timestamppb.Timestamp {
	if m != nil {
		return m.DepartureUtc
	}
	return nil
}

func (m *ItinerarySegment) GetArrivalUtc() *timestamppb.Timestamp {
	if m != nil {
		return m.ArrivalUtc
	}
	return nil
}

func (m *ItinerarySegment) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, segmentFlightNumber, m.FlightNumber)
	b = appendString(b, segmentOriginCode, m.OriginCode)
	b = appendString(b, segmentDestinationCode, m.DestinationCode)
	if b, err = appendTimestamp(b, segmentDepartureUTC, m.DepartureUtc); err != nil {
		return nil, err
	}
	if b, err = appendTimestamp(b, segmentArrivalUTC, m.ArrivalUtc); err != nil {
		return nil, err
	}
	return append(b, m.unknownFields...), nil
}

func (m *ItinerarySegment) UnmarshalWire(b []byte) error {
	*m = ItinerarySegment{}
	return m.mergeWire(b)
}

func (m *ItinerarySegment) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case segmentFlightNumber:
			return consumeString(typ, b, &m.FlightNumber)
		case segmentOriginCode:
			return consumeString(typ, b, &m.OriginCode)
		case segmentDestinationCode:
			return consumeString(typ, b, &m.DestinationCode)
		case segmentDepartureUTC:
			return consumeTimestamp(typ, b, &m.DepartureUtc)
		case segmentArrivalUTC:
			return consumeTimestamp(typ, b, &m.ArrivalUtc)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

// Fare amounts are minor currency units.
type Fare struct {
	CurrencyCode string
	BaseCents    int64
	TaxesCents   int64
	TotalCents   int64

	unknownFields []byte
}

func (m *Fare) GetCurrencyCode() string {
	if m != nil {
		return m.CurrencyCode
	}
	return ""
}

func (m *Fare) GetBaseCents() int64 {
	if m != nil {
		return m.BaseCents
	}
	return 0
}

func (m *Fare) GetTaxesCents() int64 {
	if m != nil {
		return m.TaxesCents
	}
	return 0
}

func (m *Fare) GetTotalCents() int64 {
	if m != nil {
		return m.TotalCents
	}
	return 0
}

func (m *Fare) MarshalWire() ([]byte, error) {
	var b []byte
	b = appendString(b, fareCurrencyCode, m.CurrencyCode)
	b = appendInt64(b, fareBaseCents, m.BaseCents)
	b = appendInt64(b, fareTaxesCents, m.TaxesCents)
	b = appendInt64(b, fareTotalCents, m.TotalCents)
	return append(b, m.unknownFields...), nil
}

func (m *Fare) UnmarshalWire(b []byte) error {
	*m = Fare{}
	return m.mergeWire(b)
}

func (m *Fare) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		switch num {
		case fareCurrencyCode:
			return consumeString(typ, b, &m.CurrencyCode)
		case fareBaseCents:
			return consumeInt64(typ, b, &m.BaseCents)
		case fareTaxesCents:
			return consumeInt64(typ, b, &m.TaxesCents)
		case fareTotalCents:
			return consumeInt64(typ, b, &m.TotalCents)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type Booking struct {
	BookingId  string
	Passenger  *Passenger
	Segments   []*ItinerarySegment
	Fare       *Fare
	CreatedUtc *timestamppb.Timestamp

	unknownFields []byte
}

func (m *Booking) GetBookingId() string {
	if m != nil {
		return m.BookingId
	}
	return ""
}

func (m *Booking) GetPassenger() *Passenger {
	if m != nil {
		return m.Passenger
	}
	return nil
}

func (m *Booking) GetSegments() []*ItinerarySegment {
	if m != nil {
		return m.Segments
	}
	return nil
}

func (m *Booking) GetFare() *Fare {
	if m != nil {
		return m.Fare
	}
	return nil
}

func (m *Booking) GetCreatedUtc() *timestamppb.Timestamp {
	if m != nil {
		return m.CreatedUtc
	}
	return nil
}

func (m *Booking) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, bookingID, m.BookingId)
	if m.Passenger != nil {
		if b, err = appendMessage(b, bookingPassenger, m.Passenger); err != nil {
			return nil, err
		}
	}
	if b, err = appendSegments(b, bookingSegments, m.Segments); err != nil {
		return nil, err
	}
	if m.Fare != nil {
		if b, err = appendMessage(b, bookingFare, m.Fare); err != nil {
			return nil, err
		}
	}
	if b, err = appendTimestamp(b, bookingCreatedUTC, m.CreatedUtc); err != nil {
		return nil, err
	}
	return append(b, m.unknownFields...), nil
}

func (m *Booking) UnmarshalWire(b []byte) error {
	*m = Booking{}
	return m.mergeWire(b)
}

func (m *Booking) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if typ != protowire.BytesType {
			return 0, false, nil
		}
		switch num {
		case bookingID:
			return consumeString(typ, b, &m.BookingId)
		case bookingPassenger:
			if m.Passenger == nil {
				m.Passenger = new(Passenger)
			}
			return consumeMessage(typ, b, m.Passenger)
		case bookingSegments:
			return consumeSegment(typ, b, &m.Segments)
		case bookingFare:
			if m.Fare == nil {
				m.Fare = new(Fare)
			}
			return consumeMessage(typ, b, m.Fare)
		case bookingCreatedUTC:
			return consumeTimestamp(typ, b, &m.CreatedUtc)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type QuoteRequest struct {
	Passenger *Passenger
	Segments  []*ItinerarySegment
	// CurrencyCode is optional: nil means the caller did not choose one.
	CurrencyCode *string

	unknownFields []byte
}

func (m *QuoteRequest) GetPassenger() *Passenger {
	if m != nil {
		return m.Passenger
	}
	return nil
}

func (m *QuoteRequest) GetSegments() []*ItinerarySegment {
	if m != nil {
		return m.Segments
	}
	return nil
}

func (m *QuoteRequest) GetCurrencyCode() string {
	if m != nil && m.CurrencyCode != nil {
		return *m.CurrencyCode
	}
	return ""
}

func (m *QuoteRequest) HasCurrencyCode() bool {
	return m != nil && m.CurrencyCode != nil
}

func (m *QuoteRequest) MarshalWire() ([]byte, error) {
	b, err := appendItinerary(nil, quoteReqPassenger, quoteReqSegments, m.Passenger, m.Segments)
	if err != nil {
		return nil, err
	}
	b = appendOptionalString(b, quoteReqCurrencyCode, m.CurrencyCode)
	return append(b, m.unknownFields...), nil
}

func (m *QuoteRequest) UnmarshalWire(b []byte) error {
	*m = QuoteRequest{}
	return m.mergeWire(b)
}

func (m *QuoteRequest) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if typ != protowire.BytesType {
			return 0, false, nil
		}
		switch num {
		case quoteReqPassenger:
			if m.Passenger == nil {
				m.Passenger = new(Passenger)
			}
			return consumeMessage(typ, b, m.Passenger)
		case quoteReqSegments:
			return consumeSegment(typ, b, &m.Segments)
		case quoteReqCurrencyCode:
			return consumeOptionalString(typ, b, &m.CurrencyCode)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type QuoteResponse struct {
	Fare *Fare

	unknownFields []byte
}

func (m *QuoteResponse) GetFare() *Fare {
	if m != nil {
		return m.Fare
	}
	return nil
}

func (m *QuoteResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	if m.Fare != nil {
		if b, err = appendMessage(b, quoteRespFare, m.Fare); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknownFields...), nil
}

func (m *QuoteResponse) UnmarshalWire(b []byte) error {
	*m = QuoteResponse{}
	return m.mergeWire(b)
}

func (m *QuoteResponse) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == quoteRespFare && typ == protowire.BytesType {
			if m.Fare == nil {
				m.Fare = new(Fare)
			}
			return consumeMessage(typ, b, m.Fare)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type CreateBookingRequest struct {
	Passenger *Passenger
	Segments  []*ItinerarySegment
	// CurrencyCode is optional: nil means the caller did not choose one.
	CurrencyCode *string

	unknownFields []byte
}

func (m *CreateBookingRequest) GetPassenger() *Passenger {
	if m != nil {
		return m.Passenger
	}
	return nil
}

func (m *CreateBookingRequest) GetSegments() []*ItinerarySegment {
	if m != nil {
		return m.Segments
	}
	return nil
}

func (m *CreateBookingRequest) GetCurrencyCode() string {
	if m != nil && m.CurrencyCode != nil {
		return *m.CurrencyCode
	}
	return ""
}

func (m *CreateBookingRequest) HasCurrencyCode() bool {
	return m != nil && m.CurrencyCode != nil
}

func (m *CreateBookingRequest) MarshalWire() ([]byte, error) {
	b, err := appendItinerary(nil, createReqPassenger, createReqSegments, m.Passenger, m.Segments)
	if err != nil {
		return nil, err
	}
	b = appendOptionalString(b, createReqCurrencyCode, m.CurrencyCode)
	return append(b, m.unknownFields...), nil
}

func (m *CreateBookingRequest) UnmarshalWire(b []byte) error {
	*m = CreateBookingRequest{}
	return m.mergeWire(b)
}

func (m *CreateBookingRequest) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if typ != protowire.BytesType {
			return 0, false, nil
		}
		switch num {
		case createReqPassenger:
			if m.Passenger == nil {
				m.Passenger = new(Passenger)
			}
			return consumeMessage(typ, b, m.Passenger)
		case createReqSegments:
			return consumeSegment(typ, b, &m.Segments)
		case createReqCurrencyCode:
			return consumeOptionalString(typ, b, &m.CurrencyCode)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type CreateBookingResponse struct {
	BookingId string
	Fare      *Fare

	unknownFields []byte
}

func (m *CreateBookingResponse) GetBookingId() string {
	if m != nil {
		return m.BookingId
	}
	return ""
}

func (m *CreateBookingResponse) GetFare() *Fare {
	if m != nil {
		return m.Fare
	}
	return nil
}

func (m *CreateBookingResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	b = appendString(b, createRespBookingID, m.BookingId)
	if m.Fare != nil {
		if b, err = appendMessage(b, createRespFare, m.Fare); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknownFields...), nil
}

func (m *CreateBookingResponse) UnmarshalWire(b []byte) error {
	*m = CreateBookingResponse{}
	return m.mergeWire(b)
}

func (m *CreateBookingResponse) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if typ != protowire.BytesType {
			return 0, false, nil
		}
		switch num {
		case createRespBookingID:
			return consumeString(typ, b, &m.BookingId)
		case createRespFare:
			if m.Fare == nil {
				m.Fare = new(Fare)
			}
			return consumeMessage(typ, b, m.Fare)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type GetBookingRequest struct {
	BookingId string

	unknownFields []byte
}

func (m *GetBookingRequest) GetBookingId() string {
	if m != nil {
		return m.BookingId
	}
	return ""
}

func (m *GetBookingRequest) MarshalWire() ([]byte, error) {
	b := appendString(nil, getReqBookingID, m.BookingId)
	return append(b, m.unknownFields...), nil
}

func (m *GetBookingRequest) UnmarshalWire(b []byte) error {
	*m = GetBookingRequest{}
	return m.mergeWire(b)
}

func (m *GetBookingRequest) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == getReqBookingID {
			return consumeString(typ, b, &m.BookingId)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

type GetBookingResponse struct {
	Booking *Booking

	unknownFields []byte
}

func (m *GetBookingResponse) GetBooking() *Booking {
	if m != nil {
		return m.Booking
	}
	return nil
}

func (m *GetBookingResponse) MarshalWire() ([]byte, error) {
	var b []byte
	var err error
	if m.Booking != nil {
		if b, err = appendMessage(b, getRespBooking, m.Booking); err != nil {
			return nil, err
		}
	}
	return append(b, m.unknownFields...), nil
}

func (m *GetBookingResponse) UnmarshalWire(b []byte) error {
	*m = GetBookingResponse{}
	return m.mergeWire(b)
}

func (m *GetBookingResponse) mergeWire(b []byte) error {
	unknown, err := decodeFields(b, func(num protowire.Number, typ protowire.Type, b []byte) (int, bool, error) {
		if num == getRespBooking && typ == protowire.BytesType {
			if m.Booking == nil {
				m.Booking = new(Booking)
			}
			return consumeMessage(typ, b, m.Booking)
		}
		return 0, false, nil
	})
	m.unknownFields = append(m.unknownFields, unknown...)
	return err
}

func appendSegments(b []byte, num protowire.Number, segments []*ItinerarySegment) ([]byte, error) {
	var err error
	for _, s := range segments {
		if s == nil {
			s = &ItinerarySegment{}
		}
		if b, err = appendMessage(b, num, s); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func appendItinerary(b []byte, passengerNum, segmentsNum protowire.Number, p *Passenger, segments []*ItinerarySegment) ([]byte, error) {
	var err error
	if p != nil {
		if b, err = appendMessage(b, passengerNum, p); err != nil {
			return nil, err
		}
	}
	return appendSegments(b, segmentsNum, segments)
}

func consumeSegment(typ protowire.Type, b []byte, dst *[]*ItinerarySegment) (int, bool, error) {
	s := new(ItinerarySegment)
	n, ok, err := consumeMessage(typ, b, s)
	if ok && err == nil {
		*dst = append(*dst, s)
	}
	return n, ok, err
}

var (
	_ Message = (*Passenger)(nil)
	_ Message = (*ItinerarySegment)(nil)
	_ Message = (*Fare)(nil)
	_ Message = (*Booking)(nil)
	_ Message = (*QuoteRequest)(nil)
	_ Message = (*QuoteResponse)(nil)
	_ Message = (*CreateBookingRequest)(nil)
	_ Message = (*CreateBookingResponse)(nil)
	_ Message = (*GetBookingRequest)(nil)
	_ Message = (*GetBookingResponse)(nil)
)
