package checkout

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/julienschmidt/httprouter"
	"github.com/skip2/go-qrcode"
)

// HandoffQR renders a previously composed deep link as a QR code, so
// the order can be handed off by scanning from another device.
func (h *Handlers) HandoffQR(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	if !strings.HasPrefix(req.URL, "https://wa.me/") {
		http.Error(w, "Not a checkout link", http.StatusBadRequest)
		return
	}

	png, err := qrcode.Encode(req.URL, qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}
