package cart

import (
	"errors"
	"strings"

	"domz/models"
)

var (
	// ErrNoCode means the input was blank after trimming. Callers treat
	// it as a no-op: it neither applies nor clears a coupon.
	ErrNoCode = errors.New("no coupon code provided")

	ErrCouponNotFound = errors.New("coupon not found")
)

// ResolveCoupon matches a user-entered code against the live coupons
// snapshot. Input is trimmed; the match itself is exact and
// case-sensitive. At most one coupon applies per checkout attempt, so
// callers replace any previously resolved coupon with this result.
func ResolveCoupon(code string, coupons []models.Coupon) (models.Coupon, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return models.Coupon{}, ErrNoCode
	}

	for _, c := range coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return models.Coupon{}, ErrCouponNotFound
}
