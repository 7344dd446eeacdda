// Package validation holds the request-shape checks performed before any
// collaborator is contacted.
package validation

import (
	"regexp"
	"strings"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/services/keygen"
)

// paymentInfoPattern is the wire format of the payment field:
// 16-digit card number, MM/YY expiry and a 3-4 digit CVV, pipe-delimited.
var paymentInfoPattern = regexp.MustCompile(`^[0-9]{16}\|[0-9]{2}/[0-9]{2}\|[0-9]{3,4}$`)

// CardDetails is a parsed paymentInfo string.
type CardDetails struct {
	Number string
	Expiry string
	CVV    string
}

// ParsePaymentInfo validates and splits a "cardNumber|MM/YY|CVV" string.
func ParsePaymentInfo(info string) (CardDetails, error) {
	if !paymentInfoPattern.MatchString(info) {
		return CardDetails{}, domainErrors.ErrInvalidPaymentInfo
	}
	parts := strings.Split(info, "|")
	return CardDetails{
		Number: parts[0],
		Expiry: parts[1],
		CVV:    parts[2],
	}, nil
}

// ValidateQuantity enforces the ticket quantity bounds.
func ValidateQuantity(quantity int) error {
	if quantity < keygen.MinQuantity || quantity > keygen.MaxQuantity {
		return domainErrors.ErrInvalidQuantity
	}
	return nil
}
