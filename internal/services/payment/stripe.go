package payment

import (
	"context"
	"fmt"
	"log"
	"math"

	"gatepass/internal/models"
	"gatepass/internal/repositories"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v72"
	"github.com/stripe/stripe-go/v72/charge"
	"github.com/stripe/stripe-go/v72/refund"
)

// stripeTestTokens maps well-known test card numbers to Stripe test tokens.
// Raw PANs cannot be sent to the charges API directly; anything outside this
// map is declined, the same policy the tokenizer applies to production
// cards (real deployments tokenize client-side).
var stripeTestTokens = map[string]string{
	"4242424242424242": "tok_visa",
	"4111111111111111": "tok_visa",
	"4000056655665556": "tok_visa_debit",
	"5555555555554444": "tok_mastercard",
	"2223003122003222": "tok_mastercard",
	"6011111111111117": "tok_discover",
}

// StripeConfig configures the Stripe-backed gateway.
type StripeConfig struct {
	APIKey   string
	Currency string
}

type stripeGateway struct {
	payments repositories.PaymentRepository
	audit    AuditSink
	currency string
}

// NewStripeGateway creates a gateway charging through the Stripe API.
func NewStripeGateway(payments repositories.PaymentRepository, audit AuditSink, cfg StripeConfig) Gateway {
	if payments == nil {
		panic("payment repository is required")
	}
	stripe.Key = cfg.APIKey
	currency := cfg.Currency
	if currency == "" {
		currency = string(stripe.CurrencyEUR)
	}
	return &stripeGateway{
		payments: payments,
		audit:    audit,
		currency: currency,
	}
}

func (g *stripeGateway) ProcessPayment(ctx context.Context, amount float64, cardNumber, expiry, cvv, reservationRef string) (bool, error) {
	if err := validateCardShape(cardNumber, expiry, cvv); err != nil {
		g.record(ctx, amount, cardNumber, reservationRef, models.PaymentStatusFailed, "")
		g.log("WARN", "payment declined for %s: %v", reservationRef, err)
		return false, nil
	}

	token, ok := stripeTestTokens[cardNumber]
	if !ok {
		g.record(ctx, amount, cardNumber, reservationRef, models.PaymentStatusFailed, "")
		g.log("WARN", "payment declined for %s: card cannot be tokenized server-side", reservationRef)
		return false, nil
	}

	params := &stripe.ChargeParams{
		Params:      stripe.Params{Context: ctx},
		Amount:      stripe.Int64(int64(math.Round(amount * 100))),
		Currency:    stripe.String(g.currency),
		Description: stripe.String("ticket reservation " + reservationRef),
	}
	if err := params.SetSource(token); err != nil {
		return false, fmt.Errorf("set charge source: %w", err)
	}

	ch, err := charge.New(params)
	if err != nil {
		// Declines and timeouts land here; both leave only a FAILED row.
		g.record(context.WithoutCancel(ctx), amount, cardNumber, reservationRef, models.PaymentStatusFailed, "")
		g.log("WARN", "stripe charge failed for %s: %v", reservationRef, err)
		return false, nil
	}

	g.record(ctx, amount, cardNumber, reservationRef, models.PaymentStatusCompleted, ch.ID)
	g.log("INFO", "stripe charge completed for %s: amount %.2f charge %s", reservationRef, amount, ch.ID)
	return true, nil
}

func (g *stripeGateway) CancelPayment(ctx context.Context, transactionID string) (bool, error) {
	p, err := g.payments.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return false, err
	}
	if p == nil || p.Status != models.PaymentStatusCompleted {
		return false, nil
	}

	if _, err := refund.New(&stripe.RefundParams{
		Params: stripe.Params{Context: ctx},
		Charge: stripe.String(transactionID),
	}); err != nil {
		return false, fmt.Errorf("stripe refund %s: %w", transactionID, err)
	}

	if err := g.payments.UpdateStatus(ctx, transactionID, models.PaymentStatusRefunded); err != nil {
		return false, err
	}
	g.log("INFO", "stripe charge refunded: %s", transactionID)
	return true, nil
}

func (g *stripeGateway) GenerateTransactionID() string {
	return uuid.NewString()
}

// record stores the attempt. Completed charges keep the Stripe charge id as
// transaction id so CancelPayment can refund through the API; failures get
// a locally generated id.
func (g *stripeGateway) record(ctx context.Context, amount float64, cardNumber, reservationRef, status, chargeID string) {
	txID := chargeID
	if txID == "" {
		txID = g.GenerateTransactionID()
	}
	p := &models.Payment{
		TransactionID:  txID,
		Amount:         amount,
		Status:         status,
		CardLastDigits: lastFour(cardNumber),
		ReservationRef: reservationRef,
	}
	if err := g.payments.Create(ctx, p); err != nil {
		log.Printf("failed to record %s payment for %s: %v", status, reservationRef, err)
	}
}

func (g *stripeGateway) log(level, format string, args ...interface{}) {
	if g.audit != nil {
		g.audit.Append(level, fmt.Sprintf(format, args...))
	}
}
