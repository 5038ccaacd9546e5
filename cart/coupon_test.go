package cart

import (
	"testing"

	"domz/models"
)

var couponSnapshot = []models.Coupon{
	{Code: "SALE50", DiscountAmount: 50},
	{Code: "WELCOME10", DiscountAmount: 50, OwnerName: "Asha", OwnerContact: "9999999999"},
}

func TestResolveCouponExactMatch(t *testing.T) {
	c, err := ResolveCoupon("SALE50", couponSnapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.DiscountAmount != 50 {
		t.Fatalf("expected discount 50, got %v", c.DiscountAmount)
	}
}

func TestResolveCouponTrimsInput(t *testing.T) {
	c, err := ResolveCoupon("  WELCOME10  ", couponSnapshot)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.OwnerContact != "9999999999" {
		t.Fatalf("expected owner contact, got %q", c.OwnerContact)
	}
}

func TestResolveCouponIsCaseSensitive(t *testing.T) {
	if _, err := ResolveCoupon("sale50", couponSnapshot); err != ErrCouponNotFound {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestResolveCouponUnknownCode(t *testing.T) {
	if _, err := ResolveCoupon("NOPE", couponSnapshot); err != ErrCouponNotFound {
		t.Fatalf("expected ErrCouponNotFound, got %v", err)
	}
}

func TestResolveCouponBlankIsNoOp(t *testing.T) {
	for _, input := range []string{"", "   ", "\t"} {
		if _, err := ResolveCoupon(input, couponSnapshot); err != ErrNoCode {
			t.Fatalf("input %q: expected ErrNoCode, got %v", input, err)
		}
	}
}
