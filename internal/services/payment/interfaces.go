package payment

import "context"

// Gateway processes and cancels charges. ProcessPayment returns false for
// any declined attempt, including malformed card data: the caller treats
// every false uniformly and every attempt leaves a Payment row behind.
type Gateway interface {
	ProcessPayment(ctx context.Context, amount float64, cardNumber, expiry, cvv, reservationRef string) (bool, error)
	// CancelPayment refunds a completed payment. It returns false, without
	// an error, when the transaction is unknown or not in COMPLETED state.
	CancelPayment(ctx context.Context, transactionID string) (bool, error)
	// GenerateTransactionID returns a globally unique opaque id, derived
	// from nothing else in the system.
	GenerateTransactionID() string
}

// AuditSink receives one line per notable gateway event.
type AuditSink interface {
	Append(level, message string)
}
