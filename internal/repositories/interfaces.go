package repositories

import (
	"context"
	"time"

	"gatepass/internal/models"
)

// ReservationRepository is the persistence contract for reservations.
// FindByFinalKey only surfaces CONFIRMED rows: a reservation whose payment
// never completed has no valid credential and must stay invisible to
// verification. TryMarkUsed is the atomic used-flag transition the verifier
// relies on under concurrent redemption.
type ReservationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
	FindByFinalKey(ctx context.Context, finalKey string) (*models.Reservation, error)
	NonceExists(ctx context.Context, nonce string) (bool, error)
	Create(ctx context.Context, r *models.Reservation) error
	Delete(ctx context.Context, r *models.Reservation) error
	TryMarkUsed(ctx context.Context, id uint, at time.Time) (bool, error)
}

// PaymentRepository records payment attempts. Rows are append-only; the only
// legal update is the COMPLETED -> REFUNDED status change.
type PaymentRepository interface {
	Create(ctx context.Context, p *models.Payment) error
	FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error)
	UpdateStatus(ctx context.Context, transactionID, status string) error
}

// OfferRepository is the read side of the offer catalog.
type OfferRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Offer, error)
	ListAvailable(ctx context.Context) ([]models.Offer, error)
	Create(ctx context.Context, o *models.Offer) error
}

// BuyerRepository stores buyer identities and their hashed proofs.
type BuyerRepository interface {
	Create(ctx context.Context, b *models.Buyer) error
	FindByID(ctx context.Context, id uint) (*models.Buyer, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	ProofFingerprintExists(ctx context.Context, fingerprint string) (bool, error)
}
