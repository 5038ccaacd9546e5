package admin

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"domz/db"
	"domz/models"
	"domz/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// CreateProduct accepts a multipart form: a "product" JSON field plus
// an optional "photo" file that goes through the compression pipeline.
func CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "Unable to parse form", http.StatusBadRequest)
		return
	}

	if r.FormValue("product") == "" {
		http.Error(w, "Missing product data", http.StatusBadRequest)
		return
	}

	var product models.Product
	if err := json.Unmarshal([]byte(r.FormValue("product")), &product); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if product.Name == "" || product.Price < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	product.ProductID = utils.GetUUID()
	product.CreatedAt = time.Now().UTC()
	product.CreatedBy = utils.GetUserIDFromRequest(r)

	if file, header, err := r.FormFile("photo"); err == nil {
		defer file.Close()
		if !utils.ValidateImageFileType(w, header) {
			return
		}
		imagePath, err := processProductImage(header, product.ProductID)
		if err != nil {
			log.Println("CreateProduct image error:", err)
			http.Error(w, "Failed to process product photo", http.StatusInternalServerError)
			return
		}
		product.Image = imagePath
	} else if err != http.ErrMissingFile {
		http.Error(w, "Error retrieving photo file", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if _, err := db.ProductsCollection.InsertOne(ctx, product); err != nil {
		log.Println("CreateProduct InsertOne error:", err)
		http.Error(w, "Product creation failed", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, product)
}

// EditProduct updates display fields only. Carts that already hold the
// product keep their price snapshot.
func EditProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var input struct {
		Name        string  `json:"name"`
		Price       float64 `json:"price"`
		Description string  `json:"description"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}
	if input.Name == "" || input.Price < 0 {
		http.Error(w, "Missing or invalid fields", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductsCollection.UpdateOne(ctx,
		bson.M{"productid": ps.ByName("productid")},
		bson.M{"$set": bson.M{
			"name":        input.Name,
			"price":       input.Price,
			"description": input.Description,
		}},
	)
	if err != nil {
		log.Println("EditProduct UpdateOne error:", err)
		http.Error(w, "Product update failed", http.StatusInternalServerError)
		return
	}
	if res.MatchedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	res, err := db.ProductsCollection.DeleteOne(ctx, bson.M{"productid": ps.ByName("productid")})
	if err != nil {
		log.Println("DeleteProduct DeleteOne error:", err)
		http.Error(w, "Product deletion failed", http.StatusInternalServerError)
		return
	}
	if res.DeletedCount == 0 {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
