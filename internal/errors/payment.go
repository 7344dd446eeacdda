package errors

var (
	ErrPaymentFailed = &DomainError{
		Code:    "PAYMENT_FAILED",
		Message: "payment was declined or could not be completed",
	}
	ErrPaymentNotFound = &DomainError{
		Code:    "PAYMENT_NOT_FOUND",
		Message: "payment not found",
	}
)
