package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

// MockBookingServer is a mock implementation of bookingv1.BookingServiceServer
type MockBookingServer struct {
	mock.Mock
}

func (m *MockBookingServer) Quote(ctx context.Context, req *bookingv1.QuoteRequest) (*bookingv1.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingv1.QuoteResponse), args.Error(1)
}

func (m *MockBookingServer) CreateBooking(ctx context.Context, req *bookingv1.CreateBookingRequest) (*bookingv1.CreateBookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingv1.CreateBookingResponse), args.Error(1)
}

func (m *MockBookingServer) GetBooking(ctx context.Context, req *bookingv1.GetBookingRequest) (*bookingv1.GetBookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*bookingv1.GetBookingResponse), args.Error(1)
}

var departure = time.Date(2026, 8, 3, 16, 45, 0, 0, time.UTC)

func newRouter(server bookingv1.BookingServiceServer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(server).Register(router.Group("/v1"))
	return router
}

func doJSON(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func scenarioBody() map[string]any {
	return map[string]any{
		"passenger": map[string]any{"firstName": "A", "lastName": "B", "email": "x@y.com"},
		"segments": []map[string]any{{
			"flightNumber":    "AC101",
			"originCode":      "YUL",
			"destinationCode": "YYZ",
			"departureUtc":    departure.Format(time.RFC3339),
			"arrivalUtc":      departure.Add(time.Hour).Format(time.RFC3339),
		}},
	}
}

func TestBookingHandler_quote(t *testing.T) {
	mockServer := &MockBookingServer{}
	router := newRouter(mockServer)

	mockServer.On("Quote", mock.Anything, mock.MatchedBy(func(req *bookingv1.QuoteRequest) bool {
		s := req.GetSegments()
		return req.GetPassenger().GetEmail() == "x@y.com" &&
			!req.HasCurrencyCode() &&
			len(s) == 1 && s[0].GetFlightNumber() == "AC101" &&
			s[0].GetDepartureUtc().AsTime().Equal(departure)
	})).Return(&bookingv1.QuoteResponse{
		Fare: &bookingv1.Fare{CurrencyCode: "CAD", BaseCents: 15000, TaxesCents: 3000, TotalCents: 18000},
	}, nil).Once()

	w := doJSON(router, http.MethodPost, "/v1/quotes", scenarioBody())

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp quoteResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, fareJSON{CurrencyCode: "CAD", BaseCents: 15000, TaxesCents: 3000, TotalCents: 18000}, resp.Fare)
	mockServer.AssertExpectations(t)
}

func TestBookingHandler_create(t *testing.T) {
	mockServer := &MockBookingServer{}
	router := newRouter(mockServer)

	body := scenarioBody()
	body["currencyCode"] = "USD"

	mockServer.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req *bookingv1.CreateBookingRequest) bool {
		return req.HasCurrencyCode() && req.GetCurrencyCode() == "USD"
	})).Return(&bookingv1.CreateBookingResponse{
		BookingId: "b-1",
		Fare:      &bookingv1.Fare{CurrencyCode: "USD", BaseCents: 15000, TaxesCents: 3000, TotalCents: 18000},
	}, nil).Once()

	w := doJSON(router, http.MethodPost, "/v1/bookings", body)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp createBookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "USD", resp.Fare.CurrencyCode)
	mockServer.AssertExpectations(t)
}

func TestBookingHandler_create_MissingTimesStayUnset(t *testing.T) {
	mockServer := &MockBookingServer{}
	router := newRouter(mockServer)

	body := scenarioBody()
	body["segments"] = []map[string]any{{"flightNumber": "AC101", "originCode": "YUL", "destinationCode": "YYZ"}}

	mockServer.On("CreateBooking", mock.Anything, mock.MatchedBy(func(req *bookingv1.CreateBookingRequest) bool {
		return req.GetSegments()[0].GetDepartureUtc() == nil
	})).Return(nil, invalidField("segments[0].departure_utc")).Once()

	w := doJSON(router, http.MethodPost, "/v1/bookings", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "InvalidArgument", resp.Code)
	assert.Equal(t, "segments[0].departure_utc", resp.Field)
	mockServer.AssertExpectations(t)
}

func TestBookingHandler_create_MalformedJSON(t *testing.T) {
	mockServer := &MockBookingServer{}
	router := newRouter(mockServer)

	req := httptest.NewRequest(http.MethodPost, "/v1/bookings", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockServer.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything)
}

func TestBookingHandler_get(t *testing.T) {
	mockServer := &MockBookingServer{}
	router := newRouter(mockServer)

	created := departure.Add(-24 * time.Hour)
	mockServer.On("GetBooking", mock.Anything, &bookingv1.GetBookingRequest{BookingId: "b-1"}).Return(&bookingv1.GetBookingResponse{
		Booking: &bookingv1.Booking{
			BookingId: "b-1",
			Passenger: &bookingv1.Passenger{FirstName: "A", LastName: "B", Email: "x@y.com"},
			Segments: []*bookingv1.ItinerarySegment{{
				FlightNumber:    "AC101",
				OriginCode:      "YUL",
				DestinationCode: "YYZ",
				DepartureUtc:    timestamppb.New(departure),
				ArrivalUtc:      timestamppb.New(departure.Add(time.Hour)),
			}},
			Fare:       &bookingv1.Fare{CurrencyCode: "CAD", BaseCents: 15000, TaxesCents: 3000, TotalCents: 18000},
			CreatedUtc: timestamppb.New(created),
		},
	}, nil).Once()

	w := doJSON(router, http.MethodGet, "/v1/bookings/b-1", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp bookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "b-1", resp.BookingID)
	assert.Equal(t, "x@y.com", resp.Passenger.Email)
	require.Len(t, resp.Segments, 1)
	assert.True(t, resp.Segments[0].DepartureUTC.Equal(departure))
	assert.True(t, resp.CreatedUTC.Equal(created))
	assert.Equal(t, int64(18000), resp.Fare.TotalCents)
	mockServer.AssertExpectations(t)
}

func TestBookingHandler_get_Errors(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		wantHTTP int
		wantCode string
	}{
		{name: "not found", err: status.Error(codes.NotFound, "booking not found"), wantHTTP: http.StatusNotFound, wantCode: "NotFound"},
		{name: "internal", err: status.Error(codes.Internal, "internal error"), wantHTTP: http.StatusInternalServerError, wantCode: "Internal"},
		{name: "failed precondition", err: status.Error(codes.FailedPrecondition, "no"), wantHTTP: http.StatusBadRequest, wantCode: "FailedPrecondition"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockServer := &MockBookingServer{}
			router := newRouter(mockServer)
			mockServer.On("GetBooking", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			w := doJSON(router, http.MethodGet, "/v1/bookings/b-9", nil)

			assert.Equal(t, tc.wantHTTP, w.Code)
			var resp errorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tc.wantCode, resp.Code)
		})
	}
}

func invalidField(field string) error {
	st, _ := status.New(codes.InvalidArgument, field+": is required").WithDetails(&errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{Field: field, Description: "is required"}},
	})
	return st.Err()
}
