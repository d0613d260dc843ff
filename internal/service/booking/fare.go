package booking

import (
	"fmt"

	"github.com/Domenick1991/bookingrpc/internal/apperr"
	"github.com/Domenick1991/bookingrpc/internal/domain"
)

// Placeholder pricing: a flat amount per segment plus a percentage tax.
const (
	BaseFarePerSegmentCents int64 = 15000
	TaxRatePercent          int64 = 20
)

// ComputeFare prices an itinerary of segmentCount segments. Taxes are
// base × TaxRatePercent / 100 rounded half up, computed in integers.
func ComputeFare(currencyCode string, segmentCount int) (domain.Fare, error) {
	if segmentCount < domain.MinSegments || segmentCount > domain.MaxSegments {
		return domain.Fare{}, apperr.InvalidField("segments",
			fmt.Sprintf("segment count must be between %d and %d, got %d", domain.MinSegments, domain.MaxSegments, segmentCount))
	}
	base := BaseFarePerSegmentCents * int64(segmentCount)
	taxes := (base*TaxRatePercent + 50) / 100
	return domain.Fare{
		CurrencyCode: currencyCode,
		BaseCents:    base,
		TaxesCents:   taxes,
		TotalCents:   base + taxes,
	}, nil
}
