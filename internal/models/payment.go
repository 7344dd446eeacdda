package models

import "gorm.io/gorm"

const (
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// Payment is one payment attempt, recorded whether it succeeded or not.
// Rows are append-only; cancellation flips Status to REFUNDED, it never
// deletes or replaces the row. Only the last four card digits are retained.
type Payment struct {
	gorm.Model
	TransactionID  string  `gorm:"not null;uniqueIndex" json:"transaction_id"`
	Amount         float64 `gorm:"not null" json:"amount"`
	Status         string  `gorm:"not null" json:"status"`
	CardLastDigits string  `gorm:"not null" json:"card_last_digits"`
	PaymentMethod  string  `gorm:"not null;default:'CREDIT_CARD'" json:"payment_method"`
	// ReservationRef is the reservation nonce the attempt was made for. The
	// reservation row itself is only persisted after a successful charge, so
	// the audit trail references the nonce rather than a row id.
	ReservationRef string `gorm:"index" json:"reservation_ref"`
}
