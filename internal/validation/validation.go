// Package validation checks the shape of booking.v1 requests before any
// domain work happens. Checks are pure: they never touch the store and the
// first failing rule wins, in request field order.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Domenick1991/bookingrpc/internal/apperr"
	"github.com/Domenick1991/bookingrpc/internal/domain"
	bookingv1 "github.com/Domenick1991/bookingrpc/internal/pb/booking/v1"
)

// Rule structs mirror the wire requests. The json tag is the protobuf field
// name reported in error paths, e.g. "segments[2].origin_code".
type passengerRule struct {
	FirstName string `json:"first_name" validate:"notblank"`
	LastName  string `json:"last_name" validate:"notblank"`
	Email     string `json:"email" validate:"notblank"`
}

type segmentRule struct {
	FlightNumber    string                 `json:"flight_number" validate:"notblank"`
	OriginCode      string                 `json:"origin_code" validate:"notblank"`
	DestinationCode string                 `json:"destination_code" validate:"notblank"`
	DepartureUTC    *timestamppb.Timestamp `json:"departure_utc" validate:"required"`
	ArrivalUTC      *timestamppb.Timestamp `json:"arrival_utc" validate:"required"`
}

type itineraryRule struct {
	Passenger    *passengerRule `json:"passenger" validate:"required"`
	Segments     []*segmentRule `json:"segments" validate:"segmentcount,dive,required"`
	CurrencyCode *string        `json:"currency_code" validate:"omitnil,notblank,currency"`
}

type getBookingRule struct {
	BookingID string `json:"booking_id" validate:"notblank"`
}

const (
	tagTimestamp = "timestamp"
	tagNotBefore = "notbefore"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	}); err != nil {
		panic(err)
	}
	v.RegisterAlias("segmentcount", fmt.Sprintf("min=%d,max=%d", domain.MinSegments, domain.MaxSegments))
	v.RegisterAlias("currency", "len=3,alpha,uppercase")
	v.RegisterStructValidation(validateSegmentTimes, segmentRule{})
	return v
}

// validateSegmentTimes runs after the field rules of a segment, so a
// missing instant has already been reported.
func validateSegmentTimes(sl validator.StructLevel) {
	s := sl.Current().Interface().(segmentRule)
	if s.DepartureUTC == nil || s.ArrivalUTC == nil {
		return
	}
	if err := s.DepartureUTC.CheckValid(); err != nil {
		sl.ReportError(s.DepartureUTC, "departure_utc", "DepartureUTC", tagTimestamp, err.Error())
		return
	}
	if err := s.ArrivalUTC.CheckValid(); err != nil {
		sl.ReportError(s.ArrivalUTC, "arrival_utc", "ArrivalUTC", tagTimestamp, err.Error())
		return
	}
	if s.ArrivalUTC.AsTime().Before(s.DepartureUTC.AsTime()) {
		sl.ReportError(s.ArrivalUTC, "arrival_utc", "ArrivalUTC", tagNotBefore, "must not be before departure_utc")
	}
}

func ValidateQuoteRequest(req *bookingv1.QuoteRequest) error {
	return check(newItineraryRule(req.GetPassenger(), req.GetSegments(), optional(req.HasCurrencyCode(), req.GetCurrencyCode())))
}

func ValidateCreateBookingRequest(req *bookingv1.CreateBookingRequest) error {
	return check(newItineraryRule(req.GetPassenger(), req.GetSegments(), optional(req.HasCurrencyCode(), req.GetCurrencyCode())))
}

func ValidateGetBookingRequest(req *bookingv1.GetBookingRequest) error {
	return check(&getBookingRule{BookingID: req.GetBookingId()})
}

// ValidateItinerary checks the passenger first, then the segments.
func ValidateItinerary(p *bookingv1.Passenger, segments []*bookingv1.ItinerarySegment) error {
	return check(newItineraryRule(p, segments, nil))
}

// IsCurrencyCode reports whether code is three upper-case ASCII letters.
func IsCurrencyCode(code string) bool {
	return validate.Var(code, "currency") == nil
}

func optional(set bool, v string) *string {
	if !set {
		return nil
	}
	return &v
}

func newItineraryRule(p *bookingv1.Passenger, segments []*bookingv1.ItinerarySegment, currency *string) *itineraryRule {
	rule := &itineraryRule{CurrencyCode: currency}
	if p != nil {
		rule.Passenger = &passengerRule{FirstName: p.GetFirstName(), LastName: p.GetLastName(), Email: p.GetEmail()}
	}
	if segments != nil {
		rule.Segments = make([]*segmentRule, len(segments))
	}
	for i, s := range segments {
		if s == nil {
			continue
		}
		rule.Segments[i] = &segmentRule{
			FlightNumber:    s.GetFlightNumber(),
			OriginCode:      s.GetOriginCode(),
			DestinationCode: s.GetDestinationCode(),
			DepartureUTC:    s.GetDepartureUtc(),
			ArrivalUTC:      s.GetArrivalUtc(),
		}
	}
	return rule
}

func check(rule any) error {
	err := validate.Struct(rule)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperr.Wrap(apperr.CodeInternal, "validate request", err)
	}
	first := fieldErrs[0]
	return apperr.InvalidField(fieldPath(first), reason(first))
}

// fieldPath drops the rule struct name from the namespace.
func fieldPath(fe validator.FieldError) string {
	_, path, found := strings.Cut(fe.Namespace(), ".")
	if !found {
		return fe.Field()
	}
	return path
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		if fe.Field() == "currency_code" {
			return "must not be blank when set"
		}
		return "is required"
	case "segmentcount":
		if fe.ActualTag() == "min" {
			return "at least one segment is required"
		}
		return fmt.Sprintf("at most %d segments are allowed, got %d", domain.MaxSegments, reflect.ValueOf(fe.Value()).Len())
	case "currency":
		return fmt.Sprintf("%q is not a three-letter currency code", fe.Value())
	case tagTimestamp, tagNotBefore:
		return fe.Param()
	}
	return fmt.Sprintf("failed %s validation", fe.Tag())
}
