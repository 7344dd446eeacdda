package errors

var (
	ErrBuyerNotFound = &DomainError{
		Code:    "BUYER_NOT_FOUND",
		Message: "buyer not found",
	}
	ErrEmailTaken = &DomainError{
		Code:    "EMAIL_TAKEN",
		Message: "email is already registered",
	}
)
