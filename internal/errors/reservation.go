package errors

var (
	ErrInvalidBuyerProof = &DomainError{
		Code:    "INVALID_BUYER_PROOF",
		Message: "buyer proof does not match",
	}
	ErrInvalidQuantity = &DomainError{
		Code:    "INVALID_QUANTITY",
		Message: "quantity must be between 1 and 10000",
	}
	ErrInvalidPaymentInfo = &DomainError{
		Code:    "INVALID_PAYMENT_INFO",
		Message: "payment info must match cardNumber|MM/YY|CVV",
	}
	ErrOfferNotFound = &DomainError{
		Code:    "OFFER_NOT_FOUND",
		Message: "offer not found",
	}
	ErrOfferUnavailable = &DomainError{
		Code:    "OFFER_UNAVAILABLE",
		Message: "offer is not available",
	}
	ErrKeyspaceExhausted = &DomainError{
		Code:    "KEYSPACE_EXHAUSTED",
		Message: "could not generate a unique value within the attempt budget",
	}
)
