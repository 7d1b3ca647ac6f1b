package submit

import (
	"fmt"
	"time"

	"github.com/Kavesh2000/ERP/internal/domain"
)

// order_date on the wire is naive ISO 8601, date-only or with a time part.
var orderDateLayouts = []string{"2006-01-02", "2006-01-02T15:04:05"}

// Validate checks an order request against the counter rules before any
// state is created. Every failure wraps ErrBadPayload.
func Validate(req domain.OrderRequest, now time.Time) error {
	if req.ProductID <= 0 {
		return fmt.Errorf("%w: product is required", ErrBadPayload)
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("%w: quantity must be positive", ErrBadPayload)
	}
	switch req.PaymentMethod {
	case domain.PaymentCash, domain.PaymentMpesa:
	default:
		return fmt.Errorf("%w: payment method must be %s or %s",
			ErrBadPayload, domain.PaymentCash, domain.PaymentMpesa)
	}

	if req.OrderDate != "" {
		day, err := parseOrderDate(req.OrderDate)
		if err != nil {
			return fmt.Errorf("%w: order date must be ISO 8601", ErrBadPayload)
		}
		if calendarDay(day).After(calendarDay(now)) {
			return fmt.Errorf("%w: order date cannot be in the future", ErrBadPayload)
		}
	}

	if req.UseBottle && req.BottlesUsed <= 0 {
		return fmt.Errorf("%w: bottles used must be positive", ErrBadPayload)
	}
	if !req.UseBottle && (req.BottlesUsed != 0 || req.BottleSize != 0 || req.BottlePrice != 0) {
		return fmt.Errorf("%w: bottle fields require use_bottle", ErrBadPayload)
	}
	return nil
}

func parseOrderDate(s string) (time.Time, error) {
	var err error
	for _, layout := range orderDateLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}

// calendarDay truncates to the date so a today-dated order with a later
// wall-clock time is not flagged as future.
func calendarDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
