package checkout

import (
	"strings"
	"testing"

	"domz/globals"
	"domz/models"
)

func sampleCart() models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{ProductID: "p1", Name: "Rose Oil", Price: 500, Quantity: 1},
	}}
}

func sampleShipping() models.ShippingDetails {
	return models.ShippingDetails{
		Name:    "Asha",
		Phone:   "1234567890",
		Address: "12 Lotus Lane",
		City:    "Pune",
		Zip:     "411001",
	}
}

func TestTotalsAppliesDiscount(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{{ProductID: "p1", Price: 100, Quantity: 2}}}
	coupon := &models.Coupon{Code: "SALE50", DiscountAmount: 50}

	subtotal, discount, total := Totals(c, coupon)
	if subtotal != 200 || discount != 50 || total != 150 {
		t.Fatalf("got subtotal=%v discount=%v total=%v", subtotal, discount, total)
	}
}

func TestTotalsNeverNegative(t *testing.T) {
	c := models.Cart{Lines: []models.CartLine{{ProductID: "p1", Price: 30, Quantity: 1}}}
	coupon := &models.Coupon{Code: "SALE50", DiscountAmount: 50}

	_, _, total := Totals(c, coupon)
	if total != 0 {
		t.Fatalf("expected total 0, got %v", total)
	}
}

func TestTotalsWithoutCoupon(t *testing.T) {
	subtotal, discount, total := Totals(sampleCart(), nil)
	if subtotal != 500 || discount != 0 || total != 500 {
		t.Fatalf("got subtotal=%v discount=%v total=%v", subtotal, discount, total)
	}
}

func TestComposeRoutesToCouponOwner(t *testing.T) {
	coupon := &models.Coupon{Code: "WELCOME10", DiscountAmount: 50, OwnerContact: "9999999999"}

	msg := Compose(sampleCart(), sampleShipping(), coupon)
	if msg.Contact != "9999999999" {
		t.Fatalf("expected coupon owner contact, got %q", msg.Contact)
	}
	if !strings.Contains(msg.Text, "*Total:* ₹450") {
		t.Fatalf("expected total 450 in message, got %q", msg.Text)
	}
}

func TestComposeDefaultsToStoreContact(t *testing.T) {
	msg := Compose(sampleCart(), sampleShipping(), nil)
	if msg.Contact != globals.DefaultStoreContact {
		t.Fatalf("expected store contact %q, got %q", globals.DefaultStoreContact, msg.Contact)
	}
}

func TestComposeSegmentOrder(t *testing.T) {
	coupon := &models.Coupon{Code: "WELCOME10", DiscountAmount: 50, OwnerContact: "9999999999"}
	msg := Compose(sampleCart(), sampleShipping(), coupon)

	segments := []string{
		"*New Order from Asha*",
		"*Items:*",
		"- Rose Oil (x1): ₹500",
		"*Subtotal:* ₹500",
		"Coupon Applied: WELCOME10 (-₹50)",
		"*Total:* ₹450",
		"*Shipping Details:*",
		"12 Lotus Lane, Pune - 411001",
		"Phone: 1234567890",
	}

	pos := -1
	for _, seg := range segments {
		idx := strings.Index(msg.Text, seg)
		if idx < 0 {
			t.Fatalf("segment %q missing from message %q", seg, msg.Text)
		}
		if idx < pos {
			t.Fatalf("segment %q out of order in message %q", seg, msg.Text)
		}
		pos = idx
	}
}

func TestComposeOmitsCouponBlockWithoutCoupon(t *testing.T) {
	msg := Compose(sampleCart(), sampleShipping(), nil)
	if strings.Contains(msg.Text, "Coupon Applied") {
		t.Fatalf("unexpected coupon block in message %q", msg.Text)
	}
}

func TestDeepLinkEncodesOnlyLineBreaks(t *testing.T) {
	msg := Compose(sampleCart(), sampleShipping(), nil)
	url := DeepLink(msg)

	if !strings.HasPrefix(url, "https://wa.me/"+globals.DefaultStoreContact+"?text=") {
		t.Fatalf("unexpected link prefix: %q", url)
	}
	if !strings.Contains(url, LineBreak) {
		t.Fatalf("expected %s line break tokens in link", LineBreak)
	}
	// free-text fields pass through unescaped, spaces included
	if !strings.Contains(url, "Rose Oil") {
		t.Fatalf("expected raw product name in link, got %q", url)
	}
}

func TestDeepLinkNormalizesLocalNumbers(t *testing.T) {
	url := DeepLink(models.OrderMessage{Text: "hi", Contact: "9999999999"})
	if !strings.HasPrefix(url, "https://wa.me/919999999999?") {
		t.Fatalf("expected 91-prefixed contact, got %q", url)
	}
}
