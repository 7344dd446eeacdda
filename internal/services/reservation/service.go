// Package reservation orchestrates ticket issuance: proof validation, input
// checks, offer lookup, credential derivation, payment, then persistence.
//
// The atomicity policy is persist-after-success: no reservation row exists
// until the gateway has confirmed the charge, so a failed or timed-out
// payment leaves nothing behind except the gateway's own audit row. The
// gateway call is therefore never inside a database transaction.
package reservation

import (
	"context"
	"fmt"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/models"
	"gatepass/internal/repositories"
	"gatepass/internal/services/keygen"
	"gatepass/internal/services/payment"
	"gatepass/internal/validation"
)

// Service creates ticket reservations.
type Service interface {
	// CreateTicketReservation reserves quantity tickets of an offer for the
	// buyer, charges the card described by paymentInfo
	// ("cardNumber|MM/YY|CVV") and returns the confirmed reservation with
	// its final key and QR payload.
	CreateTicketReservation(ctx context.Context, buyerID, offerID uint, quantity int, buyerProof, paymentInfo string) (*models.Reservation, error)
	FindByID(ctx context.Context, id uint) (*models.Reservation, error)
}

type service struct {
	reservations repositories.ReservationRepository
	identity     IdentityService
	offers       OfferCatalog
	keys         keygen.Service
	gateway      payment.Gateway
	audit        AuditSink
}

// NewService wires the reservation manager to its collaborators.
func NewService(
	reservations repositories.ReservationRepository,
	identitySvc IdentityService,
	offers OfferCatalog,
	keys keygen.Service,
	gateway payment.Gateway,
	audit AuditSink,
) Service {
	if reservations == nil {
		panic("reservation repository is required")
	}
	if identitySvc == nil {
		panic("identity service is required")
	}
	if offers == nil {
		panic("offer catalog is required")
	}
	if keys == nil {
		panic("key generation service is required")
	}
	if gateway == nil {
		panic("payment gateway is required")
	}
	return &service{
		reservations: reservations,
		identity:     identitySvc,
		offers:       offers,
		keys:         keys,
		gateway:      gateway,
		audit:        audit,
	}
}

func (s *service) CreateTicketReservation(ctx context.Context, buyerID, offerID uint, quantity int, buyerProof, paymentInfo string) (*models.Reservation, error) {
	// Authorization first: a bad proof must cause no lookups, no charge and
	// no writes.
	ok, err := s.identity.ValidateBuyerProof(ctx, buyerID, buyerProof)
	if err != nil {
		return nil, fmt.Errorf("validate buyer proof: %w", err)
	}
	if !ok {
		return nil, domainErrors.ErrInvalidBuyerProof
	}

	if err := validation.ValidateQuantity(quantity); err != nil {
		return nil, err
	}
	card, err := validation.ParsePaymentInfo(paymentInfo)
	if err != nil {
		return nil, err
	}

	offer, err := s.offers.GetOffer(ctx, offerID)
	if err != nil {
		return nil, fmt.Errorf("fetch offer %d: %w", offerID, err)
	}
	if offer == nil {
		return nil, domainErrors.ErrOfferNotFound
	}
	// Fail before the gateway sees the card: never charge for an offer that
	// cannot be fulfilled.
	if !offer.Available {
		return nil, domainErrors.ErrOfferUnavailable
	}

	totalAmount := offer.Price * float64(quantity)

	nonce, err := s.keys.NewNonce(ctx)
	if err != nil {
		return nil, err
	}
	finalKey, err := s.keys.DeriveFinalKey(buyerProof, nonce, quantity)
	if err != nil {
		return nil, err
	}
	qrPayload := s.keys.BuildQRPayload(nonce, buyerProof, quantity)

	paid, err := s.gateway.ProcessPayment(ctx, totalAmount, card.Number, card.Expiry, card.CVV, nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domainErrors.ErrPaymentFailed, err)
	}
	if !paid {
		s.log("WARN", "reservation aborted for buyer %d offer %d: payment declined", buyerID, offerID)
		return nil, domainErrors.ErrPaymentFailed
	}

	res := &models.Reservation{
		BuyerID:          buyerID,
		OfferID:          offerID,
		Quantity:         quantity,
		ReservationNonce: nonce,
		FinalKey:         finalKey,
		QRPayload:        qrPayload,
		Status:           models.ReservationStatusConfirmed,
	}
	if err := s.reservations.Create(ctx, res); err != nil {
		// The charge went through but the row did not stick. No credential
		// was issued, so nothing is redeemable; the FAILED-to-reconcile
		// charge stays visible in the payment audit trail.
		s.log("ERROR", "persist failed after payment for buyer %d offer %d: %v", buyerID, offerID, err)
		return nil, fmt.Errorf("persist reservation: %w", err)
	}

	s.log("INFO", "reservation %d confirmed: buyer %d offer %d quantity %d total %.2f",
		res.ID, buyerID, offerID, quantity, totalAmount)
	return res, nil
}

func (s *service) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	return s.reservations.FindByID(ctx, id)
}

func (s *service) log(level, format string, args ...interface{}) {
	if s.audit != nil {
		s.audit.Append(level, fmt.Sprintf(format, args...))
	}
}
