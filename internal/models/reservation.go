package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReservationStatusPending   = "PENDING"
	ReservationStatusConfirmed = "CONFIRMED"
	ReservationStatusCancelled = "CANCELLED"
)

// Reservation is a buyer's claim on N tickets of an offer, carrying the
// credential (final key + QR payload) a gate scanner later redeems.
//
// Invariants: FinalKey is unique across all reservations, Used is a one-way
// transition, and only CONFIRMED reservations are visible to verification.
type Reservation struct {
	gorm.Model
	BuyerID          uint       `gorm:"not null;index" json:"buyer_id"`
	OfferID          uint       `gorm:"not null;index" json:"offer_id"`
	Quantity         int        `gorm:"not null" json:"quantity"`
	ReservationNonce string     `gorm:"not null;uniqueIndex" json:"-"`
	FinalKey         string     `gorm:"not null;uniqueIndex" json:"final_key"`
	QRPayload        string     `gorm:"not null" json:"qr_payload"`
	Status           string     `gorm:"not null;default:'PENDING'" json:"status"`
	Used             bool       `gorm:"not null;default:false" json:"used"`
	UsedAt           *time.Time `json:"used_at,omitempty"`
}
