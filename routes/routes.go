package routes

import (
	"net/http"

	"domz/admin"
	"domz/auth"
	"domz/cart"
	"domz/catalog"
	"domz/checkout"
	"domz/middleware"
	"domz/models"
	"domz/ratelim"

	"github.com/julienschmidt/httprouter"
)

func AddStaticRoutes(router *httprouter.Router) {
	router.ServeFiles("/static/productpic/*filepath", http.Dir("static/productpic"))
}

func AddAuthRoutes(router *httprouter.Router) {
	router.POST("/api/auth/register", ratelim.RateLimit(auth.Register))
	router.POST("/api/auth/login", ratelim.RateLimit(auth.Login))
	router.POST("/api/auth/logout", middleware.Authenticate(auth.LogoutUser))
	router.POST("/api/auth/token/refresh", ratelim.RateLimit(auth.RefreshToken))
}

func AddCatalogRoutes(router *httprouter.Router, h *catalog.Handlers) {
	router.GET("/api/catalog/products", h.GetProducts)
	router.GET("/api/catalog/coupons", h.GetCoupons)
	router.GET("/ws/catalog", h.ProductsWS)
}

func AddCartRoutes(router *httprouter.Router, h *cart.Handlers, coupons *catalog.Feed[models.Coupon]) {
	router.GET("/api/cart", h.GetCart)
	router.POST("/api/cart", ratelim.RateLimit(h.AddToCart))
	router.PATCH("/api/cart/:productid", ratelim.RateLimit(h.UpdateQuantity))
	router.DELETE("/api/cart/:productid", ratelim.RateLimit(h.RemoveFromCart))
	router.DELETE("/api/cart", ratelim.RateLimit(h.ClearCart))
	router.POST("/api/cart/coupon", ratelim.RateLimit(h.ValidateCoupon(coupons)))
	router.GET("/ws/cart", h.CartWS)
}

func AddCheckoutRoutes(router *httprouter.Router, h *checkout.Handlers) {
	router.POST("/api/checkout", ratelim.RateLimit(h.Checkout))
	router.GET("/api/checkout/shipping", h.GetShipping)
	router.POST("/api/checkout/qr", ratelim.RateLimit(h.HandoffQR))
	router.POST("/api/checkout/receipt", ratelim.RateLimit(h.Receipt))
}

func AddAdminRoutes(router *httprouter.Router) {
	router.POST("/api/admin/products", ratelim.RateLimit(middleware.Authenticate(admin.CreateProduct)))
	router.PUT("/api/admin/products/:productid", ratelim.RateLimit(middleware.Authenticate(admin.EditProduct)))
	router.DELETE("/api/admin/products/:productid", ratelim.RateLimit(middleware.Authenticate(admin.DeleteProduct)))
	router.POST("/api/admin/coupons", ratelim.RateLimit(middleware.Authenticate(admin.CreateCoupon)))
	router.DELETE("/api/admin/coupons/:couponid", ratelim.RateLimit(middleware.Authenticate(admin.DeleteCoupon)))
}
