// internal/domain/checkout/form.go
package checkout

import (
	"strings"

	"github.com/your-org/storefront-backend/internal/domain/payment"
)

// Form carries the shipping and payment fields of one checkout
// attempt. It is constructed fresh per attempt and discarded after the
// terminal outcome.
type Form struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`

	CardNumber string `json:"card_number"`
	ExpiryDate string `json:"expiry_date"`
	CVV        string `json:"cvv"`
}

// validate checks the form and returns the name of the first failing
// field. Validation short-circuits; it does not aggregate failures.
// Order: shipping fields (presence), email shape, then the three
// payment fields through the validator.
func (f *Form) validate() (field string, ok bool) {
	required := []struct {
		name  string
		value string
	}{
		{"firstName", f.FirstName},
		{"lastName", f.LastName},
		{"email", f.Email},
		{"phone", f.Phone},
		{"address", f.Address},
		{"city", f.City},
		{"postalCode", f.PostalCode},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			return field.name, false
		}
	}

	if !strings.Contains(f.Email, "@") {
		return "email", false
	}

	if !payment.ValidateCardNumber(f.CardNumber) {
		return "cardNumber", false
	}
	if !payment.ValidateExpiryDate(f.ExpiryDate) {
		return "expiryDate", false
	}
	if !payment.ValidateCVV(f.CVV) {
		return "cvv", false
	}

	return "", true
}
