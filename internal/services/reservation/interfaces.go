package reservation

import (
	"context"

	"gatepass/internal/models"
)

// IdentityService validates that the caller owns the buyer account.
type IdentityService interface {
	ValidateBuyerProof(ctx context.Context, buyerID uint, proof string) (bool, error)
}

// OfferCatalog looks up the offer being reserved.
type OfferCatalog interface {
	GetOffer(ctx context.Context, id uint) (*models.Offer, error)
}

// AuditSink receives one line per notable reservation event.
type AuditSink interface {
	Append(level, message string)
}
