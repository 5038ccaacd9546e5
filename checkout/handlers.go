package checkout

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"domz/cart"
	"domz/catalog"
	"domz/models"
	"domz/utils"

	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	Cart     *cart.Service
	Coupons  *catalog.Feed[models.Coupon]
	Shipping ShippingStore
}

func NewHandlers(cartSvc *cart.Service, coupons *catalog.Feed[models.Coupon], shipping ShippingStore) *Handlers {
	return &Handlers{Cart: cartSvc, Coupons: coupons, Shipping: shipping}
}

type checkoutRequest struct {
	models.ShippingDetails
	CouponCode string `json:"couponCode,omitempty"`
}

// Checkout composes the order message, persists the shipping prefill,
// clears the cart, and hands the deep link back for the client to
// open. The hand-off is fire-and-forget: the server never learns
// whether the link was actually followed.
func (h *Handlers) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("Checkout decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	c := h.Cart.Get(r.Context(), sid)
	if c.Empty() {
		utils.RespondWithError(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	if missing := missingShippingFields(req.ShippingDetails); len(missing) > 0 {
		utils.RespondWithError(w, http.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
		return
	}

	coupon, notice := h.resolveCoupon(req.CouponCode)

	msg := Compose(c, req.ShippingDetails, coupon)
	subtotal, discount, total := Totals(c, coupon)

	h.Shipping.Save(r.Context(), sid, req.ShippingDetails)
	h.Cart.Clear(r.Context(), sid)

	resp := utils.M{
		"url":      DeepLink(msg),
		"contact":  msg.Contact,
		"message":  msg.Text,
		"subtotal": subtotal,
		"discount": discount,
		"total":    total,
	}
	if notice != "" {
		resp["couponNotice"] = notice
	}
	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// GetShipping returns the prefill record, zero-valued when absent.
func (h *Handlers) GetShipping(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)
	utils.RespondWithJSON(w, http.StatusOK, h.Shipping.Load(r.Context(), sid))
}

// resolveCoupon turns a submitted code into an applied coupon. A blank
// code is a no-op; an unknown code is surfaced as a notice but never
// blocks checkout.
func (h *Handlers) resolveCoupon(code string) (*models.Coupon, string) {
	coupons, _ := h.Coupons.Latest()
	resolved, err := cart.ResolveCoupon(code, coupons)
	switch err {
	case nil:
		return &resolved, ""
	case cart.ErrNoCode:
		return nil, ""
	default:
		return nil, "Invalid Coupon Code"
	}
}

func missingShippingFields(d models.ShippingDetails) []string {
	var missing []string
	if strings.TrimSpace(d.Name) == "" {
		missing = append(missing, "name")
	}
	if strings.TrimSpace(d.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(d.Address) == "" {
		missing = append(missing, "address")
	}
	return missing
}
