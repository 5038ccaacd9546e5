package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"domz/cart"
	"domz/catalog"
	"domz/models"
)

type memCartStore struct {
	carts map[string]models.Cart
	saves int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[string]models.Cart)}
}

func (m *memCartStore) Load(_ context.Context, sessionID string) (models.Cart, error) {
	return m.carts[sessionID], nil
}

func (m *memCartStore) Save(_ context.Context, sessionID string, c models.Cart) error {
	m.saves++
	m.carts[sessionID] = c
	return nil
}

type memShippingStore struct {
	records map[string]models.ShippingDetails
	saves   int
}

func newMemShippingStore() *memShippingStore {
	return &memShippingStore{records: make(map[string]models.ShippingDetails)}
}

func (m *memShippingStore) Load(_ context.Context, sessionID string) models.ShippingDetails {
	return m.records[sessionID]
}

func (m *memShippingStore) Save(_ context.Context, sessionID string, d models.ShippingDetails) {
	m.saves++
	m.records[sessionID] = d
}

func newTestHandlers() (*Handlers, *memCartStore, *memShippingStore) {
	store := newMemCartStore()
	shipping := newMemShippingStore()

	coupons := catalog.NewFeed[models.Coupon]()
	coupons.Publish([]models.Coupon{{Code: "SALE50", DiscountAmount: 50}})

	h := NewHandlers(cart.NewService(store, nil), coupons, shipping)
	return h, store, shipping
}

func postCheckout(h *Handlers, body map[string]any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", bytes.NewReader(raw))
	req.AddCookie(&http.Cookie{Name: "domz_session", Value: "s1"})

	rr := httptest.NewRecorder()
	h.Checkout(rr, req, nil)
	return rr
}

func validShippingBody() map[string]any {
	return map[string]any{
		"name":    "Asha",
		"phone":   "1234567890",
		"address": "12 Lotus Lane",
	}
}

func seededCart() models.Cart {
	return models.Cart{Lines: []models.CartLine{
		{ProductID: "p1", Name: "Rose Oil", Price: 500, Quantity: 1},
	}}
}

func TestCheckoutEmptyCartProducesNoHandOff(t *testing.T) {
	h, store, shipping := newTestHandlers()

	rr := postCheckout(h, validShippingBody())

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Cart is empty") {
		t.Fatalf("expected empty-cart notice, got %q", rr.Body.String())
	}
	if store.saves != 0 {
		t.Fatalf("empty-cart checkout must not touch the cart slot, got %d saves", store.saves)
	}
	if shipping.saves != 0 {
		t.Fatalf("empty-cart checkout must not persist shipping, got %d saves", shipping.saves)
	}
}

func TestCheckoutMissingRequiredFieldsBlocked(t *testing.T) {
	h, store, shipping := newTestHandlers()
	store.carts["s1"] = seededCart()

	rr := postCheckout(h, map[string]any{"phone": "1234567890"})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	for _, field := range []string{"name", "address"} {
		if !strings.Contains(rr.Body.String(), field) {
			t.Fatalf("expected %q named in notice, got %q", field, rr.Body.String())
		}
	}
	if store.saves != 0 {
		t.Fatalf("blocked checkout must not clear the cart, got %d saves", store.saves)
	}
	if shipping.saves != 0 {
		t.Fatalf("blocked checkout must not persist shipping, got %d saves", shipping.saves)
	}
	if len(store.carts["s1"].Lines) != 1 {
		t.Fatalf("cart must survive a blocked checkout, got %+v", store.carts["s1"].Lines)
	}
}

func TestCheckoutClearsCartAndSavesShipping(t *testing.T) {
	h, store, shipping := newTestHandlers()
	store.carts["s1"] = seededCart()

	body := validShippingBody()
	body["couponCode"] = "SALE50"
	rr := postCheckout(h, body)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	url, _ := resp["url"].(string)
	if !strings.HasPrefix(url, "https://wa.me/") {
		t.Fatalf("expected deep link, got %q", url)
	}
	if total, _ := resp["total"].(float64); total != 450 {
		t.Fatalf("expected total 450, got %v", resp["total"])
	}

	if !store.carts["s1"].Empty() {
		t.Fatalf("cart must be cleared after hand-off, got %+v", store.carts["s1"].Lines)
	}
	if shipping.records["s1"].Name != "Asha" {
		t.Fatalf("shipping prefill not persisted: %+v", shipping.records["s1"])
	}
}

func TestCheckoutUnknownCouponProceedsWithNotice(t *testing.T) {
	h, store, _ := newTestHandlers()
	store.carts["s1"] = seededCart()

	body := validShippingBody()
	body["couponCode"] = "NOPE"
	rr := postCheckout(h, body)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response JSON: %v", err)
	}
	if resp["couponNotice"] != "Invalid Coupon Code" {
		t.Fatalf("expected coupon notice, got %v", resp["couponNotice"])
	}
	if total, _ := resp["total"].(float64); total != 500 {
		t.Fatalf("expected undiscounted total 500, got %v", resp["total"])
	}
}
