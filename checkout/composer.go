package checkout

import (
	"strconv"
	"strings"

	"domz/globals"
	"domz/models"
)

// LineBreak is the fixed token separating message segments inside the
// deep link. It is the only encoding the message carries.
const LineBreak = "%0A"

// Compose builds the outbound order message and picks its destination.
// It assumes the caller has already validated the shipping fields and
// blocked empty carts; composition itself raises no errors.
//
// The destination is the store's own contact unless the coupon carries
// an owner contact, in which case the order is routed to the coupon
// owner — a coupon is both a discount and a routing token.
func Compose(c models.Cart, shipping models.ShippingDetails, coupon *models.Coupon) models.OrderMessage {
	subtotal, _, total := Totals(c, coupon)

	var b strings.Builder
	b.WriteString("*New Order from " + shipping.Name + "*")
	b.WriteString(LineBreak + LineBreak)

	b.WriteString("*Items:*" + LineBreak)
	items := make([]string, 0, len(c.Lines))
	for _, l := range c.Lines {
		items = append(items, "- "+l.Name+" (x"+strconv.Itoa(l.Quantity)+"): ₹"+fmtAmount(l.Price*float64(l.Quantity)))
	}
	b.WriteString(strings.Join(items, LineBreak))
	b.WriteString(LineBreak + LineBreak)

	b.WriteString("*Subtotal:* ₹" + fmtAmount(subtotal))
	if coupon != nil {
		b.WriteString(LineBreak + "----------")
		b.WriteString(LineBreak + "Coupon Applied: " + coupon.Code + " (-₹" + fmtAmount(coupon.DiscountAmount) + ")")
	}
	b.WriteString(LineBreak + "*Total:* ₹" + fmtAmount(total))
	b.WriteString(LineBreak + LineBreak)

	b.WriteString("*Shipping Details:*" + LineBreak)
	b.WriteString(shipping.Address + ", " + shipping.City + " - " + shipping.Zip)
	b.WriteString(LineBreak + "Phone: " + shipping.Phone)

	return models.OrderMessage{
		Text:    b.String(),
		Contact: routeContact(coupon),
	}
}

// Totals computes subtotal, applied discount, and the final total. The
// total never goes negative.
func Totals(c models.Cart, coupon *models.Coupon) (subtotal, discount, total float64) {
	subtotal = c.Subtotal()
	if coupon != nil {
		discount = coupon.DiscountAmount
	}
	total = subtotal - discount
	if total < 0 {
		total = 0
	}
	return subtotal, discount, total
}

func routeContact(coupon *models.Coupon) string {
	if coupon != nil && coupon.OwnerContact != "" {
		return digitsOnly(coupon.OwnerContact)
	}
	return globals.DefaultStoreContact
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func fmtAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
