package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"domz/db"
	"domz/models"
	"domz/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func CreateCoupon(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var coupon models.Coupon
	if err := json.NewDecoder(r.Body).Decode(&coupon); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	coupon.Code = strings.TrimSpace(coupon.Code)
	if coupon.Code == "" || coupon.DiscountAmount < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Codes are exact-match keys, one coupon each.
	err := db.CouponsCollection.FindOne(ctx, bson.M{"code": coupon.Code}).Err()
	if err == nil {
		http.Error(w, "Coupon code already exists", http.StatusConflict)
		return
	}
	if err != mongo.ErrNoDocuments {
		http.Error(w, "Database error", http.StatusInternalServerError)
		return
	}

	coupon.CouponID = utils.GetUUID()
	coupon.CreatedAt = time.Now().UTC()

	if _, err := db.CouponsCollection.InsertOne(ctx, coupon); err != nil {
		log.Println("CreateCoupon InsertOne error:", err)
		http.Error(w, "Coupon creation failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, coupon)
}

func DeleteCoupon(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.CouponsCollection.DeleteOne(ctx, bson.M{"couponid": ps.ByName("couponid")})
	if err != nil {
		log.Println("DeleteCoupon DeleteOne error:", err)
		http.Error(w, "Coupon deletion failed", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Coupon not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
