package bookings_service_api

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Domenick1991/bookingrpc/internal/apperr"
	"github.com/Domenick1991/bookingrpc/internal/mapping"
	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
	"github.com/Domenick1991/bookingrpc/internal/service/booking"
	"github.com/Domenick1991/bookingrpc/internal/validation"
)

const tracerName = "github.com/Domenick1991/bookingrpc/internal/api/bookings_service_api"

// Server implements bookingv1.BookingServiceServer: it validates wire
// requests, maps them into the domain, calls the booking use case and maps
// the result back. Every error leaving it is a gRPC status.
type Server struct {
	bookings booking.BookingUseCase
	logger   *zap.Logger
	tracer   trace.Tracer
}

func NewServer(bookings booking.BookingUseCase, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		bookings: bookings,
		logger:   logger,
		tracer:   otel.Tracer(tracerName),
	}
}

func (s *Server) Quote(ctx context.Context, req *bookingv1.QuoteRequest) (*bookingv1.QuoteResponse, error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.Quote")
	defer span.End()

	if err := validation.ValidateQuoteRequest(req); err != nil {
		return nil, s.fail(span, "Quote", err)
	}
	span.SetAttributes(attribute.Int("booking.segments", len(req.GetSegments())))

	fare, err := s.bookings.Quote(ctx, itineraryInput(req.GetPassenger(), req.GetSegments(), req.GetCurrencyCode()))
	if err != nil {
		return nil, s.fail(span, "Quote", err)
	}
	return &bookingv1.QuoteResponse{Fare: mapping.FareToWire(fare)}, nil
}

func (s *Server) CreateBooking(ctx context.Context, req *bookingv1.CreateBookingRequest) (*bookingv1.CreateBookingResponse, error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.CreateBooking")
	defer span.End()

	if err := validation.ValidateCreateBookingRequest(req); err != nil {
		return nil, s.fail(span, "CreateBooking", err)
	}
	span.SetAttributes(attribute.Int("booking.segments", len(req.GetSegments())))

	created, err := s.bookings.Create(ctx, itineraryInput(req.GetPassenger(), req.GetSegments(), req.GetCurrencyCode()))
	if err != nil {
		return nil, s.fail(span, "CreateBooking", err)
	}
	span.SetAttributes(attribute.String("booking.id", created.ID))

	return &bookingv1.CreateBookingResponse{
		BookingId: created.ID,
		Fare:      mapping.FareToWire(created.Fare),
	}, nil
}

func (s *Server) GetBooking(ctx context.Context, req *bookingv1.GetBookingRequest) (*bookingv1.GetBookingResponse, error) {
	ctx, span := s.tracer.Start(ctx, "BookingService.GetBooking")
	defer span.End()

	if err := validation.ValidateGetBookingRequest(req); err != nil {
		return nil, s.fail(span, "GetBooking", err)
	}
	span.SetAttributes(attribute.String("booking.id", req.GetBookingId()))

	found, err := s.bookings.Retrieve(ctx, req.GetBookingId())
	if err != nil {
		return nil, s.fail(span, "GetBooking", err)
	}
	return &bookingv1.GetBookingResponse{Booking: mapping.BookingToWire(*found)}, nil
}

func itineraryInput(p *bookingv1.Passenger, segments []*bookingv1.ItinerarySegment, currency string) booking.ItineraryInput {
	return booking.ItineraryInput{
		Passenger:    mapping.PassengerToDomain(p),
		Segments:     mapping.SegmentsToDomain(segments),
		CurrencyCode: currency,
	}
}

func (s *Server) fail(span trace.Span, method string, err error) error {
	st := ToStatus(err)
	span.SetStatus(otelcodes.Error, st.Code().String())
	if st.Code() == codes.Internal {
		span.RecordError(err)
		s.logger.Error("booking rpc failed", zap.String("method", method), zap.Error(err))
	}
	return st.Err()
}

// ToStatus translates an application error into a gRPC status. Internal
// failures get a generic message; their detail stays in the logs.
func ToStatus(err error) *status.Status {
	if st, ok := status.FromError(err); ok {
		return st
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return status.FromContextError(err)
	}

	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		return status.New(codes.Internal, "internal error")
	}

	switch appErr.Code {
	case apperr.CodeInvalidArgument:
		st := status.New(codes.InvalidArgument, appErr.Error())
		if appErr.Field == "" {
			return st
		}
		detailed, detailErr := st.WithDetails(&errdetails.BadRequest{
			FieldViolations: []*errdetails.BadRequest_FieldViolation{{
				Field:       appErr.Field,
				Description: appErr.Message,
			}},
		})
		if detailErr != nil {
			return st
		}
		return detailed
	case apperr.CodeNotFound:
		return status.New(codes.NotFound, appErr.Error())
	case apperr.CodeFailedPrecondition:
		return status.New(codes.FailedPrecondition, appErr.Error())
	default:
		return status.New(codes.Internal, "internal error")
	}
}

var _ bookingv1.BookingServiceServer = (*Server)(nil)
