package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"domz/catalog"
	"domz/models"
	"domz/mq"
	"domz/utils"
	"domz/websock"

	"github.com/julienschmidt/httprouter"
)

// RedisEvents publishes cart signals over Redis pub/sub so any
// presentation layer can react without the cart knowing about it.
type RedisEvents struct{}

func (RedisEvents) CartOpened(ctx context.Context, sessionID, productID string) {
	mq.Emit(ctx, mq.CartEvent{SessionID: sessionID, Action: "open", ProductID: productID})
}

type Handlers struct {
	Svc      *Service
	Products *catalog.Feed[models.Product]
}

func NewHandlers(svc *Service, products *catalog.Feed[models.Product]) *Handlers {
	return &Handlers{Svc: svc, Products: products}
}

func cartPayload(c models.Cart) utils.M {
	lines := c.Lines
	if lines == nil {
		lines = []models.CartLine{}
	}
	return utils.M{"lines": lines, "subtotal": c.Subtotal()}
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(h.Svc.Get(r.Context(), sid)))
}

// AddToCart snapshots the product out of the live catalog; the client
// only names the product id.
func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)

	var req struct {
		ProductID string `json:"productId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("AddToCart decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if req.ProductID == "" {
		http.Error(w, "Missing productId", http.StatusBadRequest)
		return
	}

	products, ready := h.Products.Latest()
	if !ready {
		http.Error(w, "Catalog not loaded yet", http.StatusServiceUnavailable)
		return
	}

	var product *models.Product
	for i := range products {
		if products[i].ProductID == req.ProductID {
			product = &products[i]
			break
		}
	}
	if product == nil {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	c := h.Svc.Add(r.Context(), sid, *product)
	utils.RespondWithJSON(w, http.StatusCreated, cartPayload(c))
}

func (h *Handlers) UpdateQuantity(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid := utils.SessionID(w, r)

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("UpdateQuantity decode error:", err)
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	c := h.Svc.UpdateQuantity(r.Context(), sid, ps.ByName("productid"), req.Delta)
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(c))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	sid := utils.SessionID(w, r)
	c := h.Svc.Remove(r.Context(), sid, ps.ByName("productid"))
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(c))
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)
	c := h.Svc.Clear(r.Context(), sid)
	utils.RespondWithJSON(w, http.StatusOK, cartPayload(c))
}

type CouponResponse struct {
	Valid          bool    `json:"valid"`
	DiscountAmount float64 `json:"discountAmount"`
	Message        string  `json:"message"`
}

// ValidateCoupon is an inline, non-blocking check. An unknown code
// never prevents checkout; it just comes back invalid.
func (h *Handlers) ValidateCoupon(coupons *catalog.Feed[models.Coupon]) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		var req struct {
			Code string `json:"code"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request", http.StatusBadRequest)
			return
		}

		snapshot, _ := coupons.Latest()
		coupon, err := ResolveCoupon(req.Code, snapshot)
		switch err {
		case nil:
			utils.RespondWithJSON(w, http.StatusOK, CouponResponse{
				Valid:          true,
				DiscountAmount: coupon.DiscountAmount,
				Message:        "Coupon applied successfully",
			})
		case ErrNoCode:
			utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "No coupon provided"})
		default:
			utils.RespondWithJSON(w, http.StatusOK, CouponResponse{Valid: false, Message: "Invalid Coupon Code"})
		}
	}
}

// CartWS lets the storefront listen for cart signals (drawer open) for
// its own session.
func (h *Handlers) CartWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)
	websock.Serve(w, r, "cart_"+sid, nil)
}
