package models

import "time"

// Product is owned by the admin area; the storefront core never writes it.
type Product struct {
	ProductID   string    `json:"productid" bson:"productid"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Description string    `json:"description" bson:"description"`
	Image       string    `json:"image" bson:"image"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy   string    `json:"createdBy,omitempty" bson:"createdBy,omitempty"`
}

// Coupon grants a flat currency discount. OwnerContact, when set, also
// reroutes the composed order to the coupon owner instead of the store.
type Coupon struct {
	CouponID       string    `json:"couponid" bson:"couponid"`
	Code           string    `json:"code" bson:"code"`
	DiscountAmount float64   `json:"discountAmount" bson:"discountAmount"`
	OwnerName      string    `json:"ownerName,omitempty" bson:"ownerName,omitempty"`
	OwnerContact   string    `json:"ownerContact,omitempty" bson:"ownerContact,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
}

// CartLine holds the price snapshot taken when the line was created.
// A later catalog price change does not touch existing lines.
type CartLine struct {
	ProductID string  `json:"productId" bson:"productId"`
	Name      string  `json:"name" bson:"name"`
	Price     float64 `json:"price" bson:"price"`
	Image     string  `json:"image,omitempty" bson:"image,omitempty"`
	Quantity  int     `json:"qty" bson:"qty"`
}

// Cart is the ordered line list for one session. Insertion order is
// display order; every line present has Quantity >= 1.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// Subtotal is recomputed on every call, never cached.
func (c Cart) Subtotal() float64 {
	var sum float64
	for _, l := range c.Lines {
		sum += l.Price * float64(l.Quantity)
	}
	return sum
}

func (c Cart) Empty() bool {
	return len(c.Lines) == 0
}

// ShippingDetails prefills the next checkout attempt once submitted.
// Name, Phone and Address are required before an order can be composed.
type ShippingDetails struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city,omitempty"`
	Zip     string `json:"zip,omitempty"`
}

// OrderMessage is the composed outbound order: the message body and the
// contact it should be delivered to. It is transient and never stored.
type OrderMessage struct {
	Text    string `json:"text"`
	Contact string `json:"contact"`
}

// User is an admin account. The storefront itself needs no login.
type User struct {
	UserID        string    `json:"userid" bson:"userid"`
	Username      string    `json:"username" bson:"username"`
	Password      string    `json:"-" bson:"password"`
	Role          []string  `json:"role" bson:"role"`
	RefreshToken  string    `json:"-" bson:"refresh_token,omitempty"`
	RefreshExpiry time.Time `json:"-" bson:"refresh_expiry,omitempty"`
	LastLogin     time.Time `json:"-" bson:"last_login,omitempty"`
}
