package catalog

import (
	"encoding/json"
	"log"
	"net/http"

	"domz/models"
	"domz/utils"
	"domz/websock"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

type Handlers struct {
	Products *Feed[models.Product]
	Coupons  *Feed[models.Coupon]
}

func NewHandlers(s *Syncer) *Handlers {
	return &Handlers{Products: s.Products, Coupons: s.Coupons}
}

// GetProducts returns the latest products snapshot. Until the first
// snapshot arrives the response says loading, never an error.
func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	products, ready := h.Products.Latest()
	if products == nil {
		products = []models.Product{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"loading":  !ready,
		"products": products,
	})
}

func (h *Handlers) GetCoupons(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	coupons, ready := h.Coupons.Latest()
	if coupons == nil {
		coupons = []models.Coupon{}
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"loading": !ready,
		"coupons": coupons,
	})
}

const wsKey = "catalog"

// ProductsWS streams every products snapshot to the client, replaying
// the current one on connect. This is the storefront's live view of
// the catalog.
func (h *Handlers) ProductsWS(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	websock.Serve(w, r, wsKey, func(conn *websocket.Conn) {
		if products, ready := h.Products.Latest(); ready {
			if data, err := json.Marshal(products); err == nil {
				_ = conn.WriteMessage(websocket.TextMessage, data)
			}
		}
	})
}

// StartWSBridge forwards future snapshots to every catalog socket.
func (h *Handlers) StartWSBridge() {
	h.Products.Subscribe(func(products []models.Product) {
		data, err := json.Marshal(products)
		if err != nil {
			log.Println("catalog snapshot marshal error:", err)
			return
		}
		websock.Broadcast(wsKey, data)
	})
}
