// internal/domain/payment/validator.go
package payment

import (
	"strconv"
	"strings"
	"time"
)

// ValidateCardNumber checks a card number using the Luhn algorithm.
// Spaces and dashes are stripped before validation; the remaining
// string must be 13-19 decimal digits.
func ValidateCardNumber(number string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(number)

	if len(cleaned) < 13 || len(cleaned) > 19 {
		return false
	}
	if !isDigits(cleaned) {
		return false
	}

	// Luhn checksum: double every second digit from the right,
	// subtracting 9 when the doubled digit exceeds 9.
	sum := 0
	double := false
	for i := len(cleaned) - 1; i >= 0; i-- {
		digit := int(cleaned[i] - '0')
		if double {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}
		sum += digit
		double = !double
	}

	return sum%10 == 0
}

// ValidateExpiryDate checks an MM/YY expiry date against the current
// calendar date. The comparison uses two-digit years, matching what is
// printed on cards; dates after 2099 are ambiguous under this scheme
// and are not handled.
func ValidateExpiryDate(expiry string) bool {
	return validateExpiryDateAt(expiry, time.Now())
}

func validateExpiryDateAt(expiry string, now time.Time) bool {
	if len(expiry) != 5 || expiry[2] != '/' {
		return false
	}

	month := expiry[:2]
	year := expiry[3:]
	if !isDigits(month) || !isDigits(year) {
		return false
	}

	expMonth, _ := strconv.Atoi(month)
	expYear, _ := strconv.Atoi(year)

	if expMonth < 1 || expMonth > 12 {
		return false
	}

	currentYear := now.Year() % 100
	currentMonth := int(now.Month())

	if expYear < currentYear || (expYear == currentYear && expMonth < currentMonth) {
		return false
	}

	return true
}

// ValidateCVV checks that the CVV is exactly 3 or 4 decimal digits.
func ValidateCVV(cvv string) bool {
	if len(cvv) != 3 && len(cvv) != 4 {
		return false
	}
	return isDigits(cvv)
}

// FormatCardNumber strips non-digit characters and inserts a space
// after every group of 4 digits, for live input display. Validation
// re-strips separators, so formatting never affects it.
func FormatCardNumber(number string) string {
	digits := keepDigits(number)

	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// FormatExpiryDate strips non-digit characters and renders MM/YY once
// at least two digits are present, truncating to 4 digits total.
func FormatExpiryDate(date string) string {
	digits := keepDigits(date)

	if len(digits) >= 2 {
		rest := digits[2:]
		if len(rest) > 2 {
			rest = rest[:2]
		}
		return digits[:2] + "/" + rest
	}
	return digits
}

// isDigits accepts ASCII '0'-'9' only. Unicode digit classes are
// rejected so byte-length checks always count characters.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func keepDigits(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
