package payment

import (
	"errors"
	"regexp"
)

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{13,19}$`)
	expiryPattern     = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	cvvPattern        = regexp.MustCompile(`^[0-9]{3,4}$`)
)

// validateCardShape checks the card fields structurally, without contacting
// any issuer. A shape failure is a declined attempt, not a request error.
func validateCardShape(cardNumber, expiry, cvv string) error {
	if !cardNumberPattern.MatchString(cardNumber) {
		return errors.New("invalid card number")
	}
	if !luhnValid(cardNumber) {
		return errors.New("card number failed Luhn check")
	}
	if !expiryPattern.MatchString(expiry) {
		return errors.New("invalid expiry date")
	}
	if !cvvPattern.MatchString(cvv) {
		return errors.New("invalid CVV")
	}
	return nil
}

// luhnValid reports whether the card number passes the Luhn checksum.
func luhnValid(cardNumber string) bool {
	var sum int
	shouldDouble := false

	for i := len(cardNumber) - 1; i >= 0; i-- {
		digit := int(cardNumber[i] - '0')

		if shouldDouble {
			digit *= 2
			if digit > 9 {
				digit -= 9
			}
		}

		sum += digit
		shouldDouble = !shouldDouble
	}

	return sum%10 == 0
}

func lastFour(cardNumber string) string {
	if len(cardNumber) < 4 {
		return cardNumber
	}
	return cardNumber[len(cardNumber)-4:]
}
