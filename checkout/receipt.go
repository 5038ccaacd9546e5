package checkout

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"

	"domz/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
)

// Receipt renders the current cart as a PDF order summary the visitor
// can keep. Nothing is stored and the cart is left untouched; the
// actual hand-off still goes through Checkout.
func (h *Handlers) Receipt(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sid := utils.SessionID(w, r)

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
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

	coupon, _ := h.resolveCoupon(req.CouponCode)
	subtotal, discount, total := Totals(c, coupon)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Order Summary")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	for _, l := range c.Lines {
		pdf.Cell(0, 8, fmt.Sprintf("%s  x%d  Rs %s", l.Name, l.Quantity, fmtAmount(l.Price*float64(l.Quantity))))
		pdf.Ln(8)
	}
	pdf.Ln(4)

	pdf.Cell(0, 8, "Subtotal: Rs "+fmtAmount(subtotal))
	pdf.Ln(8)
	if coupon != nil {
		pdf.Cell(0, 8, fmt.Sprintf("Coupon %s: -Rs %s", coupon.Code, fmtAmount(discount)))
		pdf.Ln(8)
	}
	pdf.SetFont("Arial", "B", 12)
	pdf.Cell(0, 8, "Total: Rs "+fmtAmount(total))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, "Ship to: "+req.Name)
	pdf.Ln(8)
	pdf.Cell(0, 8, req.Address)
	pdf.Ln(8)
	if req.City != "" || req.Zip != "" {
		pdf.Cell(0, 8, req.City+" - "+req.Zip)
		pdf.Ln(8)
	}
	pdf.Cell(0, 8, "Phone: "+req.Phone)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="order-summary.pdf"`)
	if err := pdf.Output(w); err != nil {
		log.Println("Receipt PDF output error:", err)
	}
}
