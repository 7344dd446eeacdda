// Package payment implements the payment gateway boundary: a mock gateway
// for development and tests, and a Stripe-backed gateway for deployments
// with a Stripe account.
package payment

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"gatepass/internal/models"
	"gatepass/internal/repositories"

	"github.com/google/uuid"
)

// MockConfig tunes the simulated gateway.
type MockConfig struct {
	// SuccessRate is the percentage of shape-valid charges that succeed.
	SuccessRate int
	// Seed makes the simulation deterministic when non-zero.
	Seed int64
}

type mockGateway struct {
	payments repositories.PaymentRepository
	audit    AuditSink
	rate     int

	mu  sync.Mutex // guards rng
	rng *rand.Rand
}

// NewMockGateway creates a simulated gateway that records every attempt and
// approves SuccessRate percent of well-formed charges.
func NewMockGateway(payments repositories.PaymentRepository, audit AuditSink, cfg MockConfig) Gateway {
	if payments == nil {
		panic("payment repository is required")
	}
	rate := cfg.SuccessRate
	if rate <= 0 || rate > 100 {
		rate = 95
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	return &mockGateway{
		payments: payments,
		audit:    audit,
		rate:     rate,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (g *mockGateway) ProcessPayment(ctx context.Context, amount float64, cardNumber, expiry, cvv, reservationRef string) (bool, error) {
	if err := validateCardShape(cardNumber, expiry, cvv); err != nil {
		g.record(ctx, amount, cardNumber, reservationRef, models.PaymentStatusFailed)
		g.log("WARN", "payment declined for %s: %v", reservationRef, err)
		return false, nil
	}

	// A cancelled or timed-out request has an unknown outcome upstream;
	// the caller must treat it as a failure, so record it as one.
	if ctx.Err() != nil {
		g.record(context.WithoutCancel(ctx), amount, cardNumber, reservationRef, models.PaymentStatusFailed)
		g.log("WARN", "payment aborted for %s: %v", reservationRef, ctx.Err())
		return false, nil
	}

	g.mu.Lock()
	declined := g.rng.Intn(100) >= g.rate
	g.mu.Unlock()
	if declined {
		g.record(ctx, amount, cardNumber, reservationRef, models.PaymentStatusFailed)
		g.log("WARN", "payment declined for %s: amount %.2f", reservationRef, amount)
		return false, nil
	}

	txID := g.record(ctx, amount, cardNumber, reservationRef, models.PaymentStatusCompleted)
	g.log("INFO", "payment completed for %s: amount %.2f transaction %s", reservationRef, amount, txID)
	return true, nil
}

func (g *mockGateway) CancelPayment(ctx context.Context, transactionID string) (bool, error) {
	p, err := g.payments.FindByTransactionID(ctx, transactionID)
	if err != nil {
		return false, err
	}
	if p == nil || p.Status != models.PaymentStatusCompleted {
		g.log("WARN", "cancel refused for transaction %s", transactionID)
		return false, nil
	}
	if err := g.payments.UpdateStatus(ctx, transactionID, models.PaymentStatusRefunded); err != nil {
		return false, err
	}
	g.log("INFO", "payment refunded: transaction %s amount %.2f", transactionID, p.Amount)
	return true, nil
}

func (g *mockGateway) GenerateTransactionID() string {
	return uuid.NewString()
}

// record appends a Payment row for the attempt and returns its transaction
// id. Recording failures is deliberate: the audit trail keeps declined
// attempts even though no reservation survives them.
func (g *mockGateway) record(ctx context.Context, amount float64, cardNumber, reservationRef, status string) string {
	p := &models.Payment{
		TransactionID:  g.GenerateTransactionID(),
		Amount:         amount,
		Status:         status,
		CardLastDigits: lastFour(cardNumber),
		ReservationRef: reservationRef,
	}
	if err := g.payments.Create(ctx, p); err != nil {
		log.Printf("failed to record %s payment for %s: %v", status, reservationRef, err)
	}
	return p.TransactionID
}

func (g *mockGateway) log(level, format string, args ...interface{}) {
	if g.audit != nil {
		g.audit.Append(level, fmt.Sprintf(format, args...))
	}
}
