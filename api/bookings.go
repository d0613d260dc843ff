package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

// BookingHandler exposes booking.v1.BookingService as JSON over HTTP. It
// calls the same BookingServiceServer as the gRPC transport.
type BookingHandler struct {
	service bookingv1.BookingServiceServer
}

type passengerJSON struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type segmentJSON struct {
	FlightNumber    string    `json:"flightNumber"`
	OriginCode      string    `json:"originCode"`
	DestinationCode string    `json:"destinationCode"`
	DepartureUTC    time.Time `json:"departureUtc"`
	ArrivalUTC      time.Time `json:"arrivalUtc"`
}

type fareJSON struct {
	CurrencyCode string `json:"currencyCode"`
	BaseCents    int64  `json:"baseCents"`
	TaxesCents   int64  `json:"taxesCents"`
	TotalCents   int64  `json:"totalCents"`
}

type itineraryRequest struct {
	Passenger *passengerJSON `json:"passenger"`
	Segments  []segmentJSON  `json:"segments"`
	// CurrencyCode is omitted to use the service default.
	CurrencyCode *string `json:"currencyCode,omitempty"`
}

type quoteResponse struct {
	Fare fareJSON `json:"fare"`
}

type createBookingResponse struct {
	BookingID string   `json:"bookingId"`
	Fare      fareJSON `json:"fare"`
}

type bookingResponse struct {
	BookingID  string        `json:"bookingId"`
	Passenger  passengerJSON `json:"passenger"`
	Segments   []segmentJSON `json:"segments"`
	Fare       fareJSON      `json:"fare"`
	CreatedUTC time.Time     `json:"createdUtc"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

func NewBookingHandler(service bookingv1.BookingServiceServer) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/quotes", h.quote)
	router.POST("/bookings", h.create)
	router.GET("/bookings/:id", h.get)
}

func (h *BookingHandler) quote(c *gin.Context) {
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: "InvalidArgument", Message: err.Error()})
		return
	}

	resp, err := h.service.Quote(c.Request.Context(), &bookingv1.QuoteRequest{
		Passenger:    req.Passenger.toWire(),
		Segments:     segmentsToWire(req.Segments),
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, quoteResponse{Fare: fareFromWire(resp.GetFare())})
}

func (h *BookingHandler) create(c *gin.Context) {
	var req itineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Code: "InvalidArgument", Message: err.Error()})
		return
	}

	resp, err := h.service.CreateBooking(c.Request.Context(), &bookingv1.CreateBookingRequest{
		Passenger:    req.Passenger.toWire(),
		Segments:     segmentsToWire(req.Segments),
		CurrencyCode: req.CurrencyCode,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, createBookingResponse{
		BookingID: resp.GetBookingId(),
		Fare:      fareFromWire(resp.GetFare()),
	})
}

func (h *BookingHandler) get(c *gin.Context) {
	resp, err := h.service.GetBooking(c.Request.Context(), &bookingv1.GetBookingRequest{BookingId: c.Param("id")})
	if err != nil {
		writeError(c, err)
		return
	}

	b := resp.GetBooking()
	out := bookingResponse{
		BookingID: b.GetBookingId(),
		Passenger: passengerJSON{
			FirstName: b.GetPassenger().GetFirstName(),
			LastName:  b.GetPassenger().GetLastName(),
			Email:     b.GetPassenger().GetEmail(),
		},
		Segments:   make([]segmentJSON, 0, len(b.GetSegments())),
		Fare:       fareFromWire(b.GetFare()),
		CreatedUTC: b.GetCreatedUtc().AsTime(),
	}
	for _, s := range b.GetSegments() {
		out.Segments = append(out.Segments, segmentJSON{
			FlightNumber:    s.GetFlightNumber(),
			OriginCode:      s.GetOriginCode(),
			DestinationCode: s.GetDestinationCode(),
			DepartureUTC:    s.GetDepartureUtc().AsTime(),
			ArrivalUTC:      s.GetArrivalUtc().AsTime(),
		})
	}
	c.JSON(http.StatusOK, out)
}

func writeError(c *gin.Context, err error) {
	st := status.Convert(err)
	resp := errorResponse{Code: st.Code().String(), Message: st.Message()}
	for _, d := range st.Details() {
		if br, ok := d.(*errdetails.BadRequest); ok && len(br.GetFieldViolations()) > 0 {
			resp.Field = br.GetFieldViolations()[0].GetField()
		}
	}
	c.JSON(runtime.HTTPStatusFromCode(st.Code()), resp)
}

func (p *passengerJSON) toWire() *bookingv1.Passenger {
	if p == nil {
		return nil
	}
	return &bookingv1.Passenger{FirstName: p.FirstName, LastName: p.LastName, Email: p.Email}
}

// A time missing from the JSON body stays unset on the wire so validation
// reports it as missing.
func timeToWire(t time.Time) *timestamppb.Timestamp {
	if t.IsZero() {
		return nil
	}
	return timestamppb.New(t)
}

func segmentsToWire(segments []segmentJSON) []*bookingv1.ItinerarySegment {
	out := make([]*bookingv1.ItinerarySegment, 0, len(segments))
	for _, s := range segments {
		out = append(out, &bookingv1.ItinerarySegment{
			FlightNumber:    s.FlightNumber,
			OriginCode:      s.OriginCode,
			DestinationCode: s.DestinationCode,
			DepartureUtc:    timeToWire(s.DepartureUTC),
			ArrivalUtc:      timeToWire(s.ArrivalUTC),
		})
	}
	return out
}

func fareFromWire(f *bookingv1.Fare) fareJSON {
	return fareJSON{
		CurrencyCode: f.GetCurrencyCode(),
		BaseCents:    f.GetBaseCents(),
		TaxesCents:   f.GetTaxesCents(),
		TotalCents:   f.GetTotalCents(),
	}
}
