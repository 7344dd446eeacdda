// Package verification is the redemption state machine. A credential has a
// single legal transition, unused -> used, executed as a store-level
// compare-and-set so concurrent gate scanners cannot both redeem it.
package verification

import (
	"context"
	"fmt"
	"time"

	"gatepass/internal/models"
)

// Outcome classifies a verification attempt. Not-found and already-used are
// business outcomes, not errors: callers must be able to tell them apart
// from each other and from infrastructure failures.
type Outcome string

const (
	// OutcomeRedeemed: this call consumed the ticket.
	OutcomeRedeemed Outcome = "redeemed"
	// OutcomeValid: read-only check, ticket exists and is unused.
	OutcomeValid Outcome = "valid"
	// OutcomeAlreadyUsed: ticket exists but was consumed earlier (or by a
	// concurrent scanner that won the race).
	OutcomeAlreadyUsed Outcome = "already_used"
	// OutcomeNotFound: no confirmed reservation carries this key.
	OutcomeNotFound Outcome = "not_found"
)

// Result is the outcome of a verification together with the reservation,
// when one exists.
type Result struct {
	Outcome     Outcome
	Reservation *models.Reservation
}

// Store is the slice of the reservation store the verifier needs.
type Store interface {
	FindByFinalKey(ctx context.Context, finalKey string) (*models.Reservation, error)
	TryMarkUsed(ctx context.Context, id uint, at time.Time) (bool, error)
}

// AuditSink receives one line per redemption event.
type AuditSink interface {
	Append(level, message string)
}

// Service verifies and consumes ticket credentials.
type Service interface {
	// VerifyTicket redeems the credential: at most one call per key ever
	// returns OutcomeRedeemed.
	VerifyTicket(ctx context.Context, finalKey string) (*Result, error)
	// CheckTicketValidity inspects the credential without consuming it.
	CheckTicketValidity(ctx context.Context, finalKey string) (*Result, error)
}

type service struct {
	store Store
	audit AuditSink
	now   func() time.Time
}

// NewService creates a ticket verifier over the given store.
func NewService(store Store, audit AuditSink) Service {
	if store == nil {
		panic("reservation store is required")
	}
	return &service{
		store: store,
		audit: audit,
		now:   time.Now,
	}
}

func (s *service) VerifyTicket(ctx context.Context, finalKey string) (*Result, error) {
	res, err := s.store.FindByFinalKey(ctx, finalKey)
	if err != nil {
		return nil, fmt.Errorf("lookup credential: %w", err)
	}
	if res == nil {
		s.log("WARN", "redemption refused: unknown credential")
		return &Result{Outcome: OutcomeNotFound}, nil
	}
	if res.Used {
		s.log("WARN", "redemption refused: reservation %d already used", res.ID)
		return &Result{Outcome: OutcomeAlreadyUsed, Reservation: res}, nil
	}

	// The compare-and-set decides the race. Reading used=false above is
	// only a fast path; a concurrent scanner may still get here first, in
	// which case zero rows match and this call reports already-used.
	usedAt := s.now()
	won, err := s.store.TryMarkUsed(ctx, res.ID, usedAt)
	if err != nil {
		return nil, fmt.Errorf("mark credential used: %w", err)
	}
	if !won {
		s.log("WARN", "redemption lost race: reservation %d", res.ID)
		return &Result{Outcome: OutcomeAlreadyUsed, Reservation: res}, nil
	}

	res.Used = true
	res.UsedAt = &usedAt
	s.log("INFO", "reservation %d redeemed: %d tickets", res.ID, res.Quantity)
	return &Result{Outcome: OutcomeRedeemed, Reservation: res}, nil
}

func (s *service) CheckTicketValidity(ctx context.Context, finalKey string) (*Result, error) {
	res, err := s.store.FindByFinalKey(ctx, finalKey)
	if err != nil {
		return nil, fmt.Errorf("lookup credential: %w", err)
	}
	if res == nil {
		return &Result{Outcome: OutcomeNotFound}, nil
	}
	if res.Used {
		return &Result{Outcome: OutcomeAlreadyUsed, Reservation: res}, nil
	}
	return &Result{Outcome: OutcomeValid, Reservation: res}, nil
}

func (s *service) log(level, format string, args ...interface{}) {
	if s.audit != nil {
		s.audit.Append(level, fmt.Sprintf(format, args...))
	}
}
