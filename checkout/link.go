package checkout

import "domz/models"

// countryPrefix is applied to bare local numbers when building the
// deep link; wa.me only accepts international format.
const countryPrefix = "91"

// DeepLink builds the wa.me hand-off URI. Only line breaks are encoded
// (the %0A tokens already baked into the message); free-text fields
// such as product names or the shipping address are passed through
// untouched, so characters with query-string meaning can corrupt the
// message. Known interface fragility, kept as-is.
func DeepLink(m models.OrderMessage) string {
	contact := m.Contact
	if len(contact) == 10 {
		contact = countryPrefix + contact
	}
	return "https://wa.me/" + contact + "?text=" + m.Text
}
