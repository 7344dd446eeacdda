package errors

var (
	ErrDuplicateFinalKey = &DomainError{
		Code:    "DUPLICATE_FINAL_KEY",
		Message: "a reservation with this final key already exists",
	}
	ErrDatabaseOperation = &DomainError{
		Code:    "DATABASE_OPERATION",
		Message: "database operation failed",
	}
)
