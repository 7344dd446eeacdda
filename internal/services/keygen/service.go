// Package keygen derives the tamper-evident ticket credential: the final
// key is a SHA-256 digest binding buyer proof, reservation nonce and
// quantity together, so editing any one of them in a printed payload
// invalidates the key.
package keygen

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	domainErrors "gatepass/internal/errors"
)

const (
	MinQuantity = 1
	MaxQuantity = 10000

	// Separator joins derivation inputs and QR payload fields. It never
	// appears in a nonce (base64url) and a proof containing it would shift
	// field boundaries, which the digest check catches anyway.
	Separator = "|"

	nonceBytes       = 12
	maxNonceAttempts = 5
)

// NonceStore answers whether a candidate nonce is already taken.
type NonceStore interface {
	NonceExists(ctx context.Context, nonce string) (bool, error)
}

// Service generates reservation nonces and derives final keys.
type Service interface {
	NewNonce(ctx context.Context) (string, error)
	DeriveFinalKey(buyerProof, nonce string, quantity int) (string, error)
	BuildQRPayload(nonce, buyerProof string, quantity int) string
}

type service struct {
	store NonceStore
}

// NewService creates a key generation service backed by the given store.
func NewService(store NonceStore) Service {
	if store == nil {
		panic("nonce store is required")
	}
	return &service{store: store}
}

// NewNonce returns a fresh random nonce that does not collide with any
// stored reservation. Generation is bounded: after maxNonceAttempts taken
// candidates it fails instead of looping.
func (s *service) NewNonce(ctx context.Context) (string, error) {
	for attempt := 0; attempt < maxNonceAttempts; attempt++ {
		b := make([]byte, nonceBytes)
		if _, err := rand.Read(b); err != nil {
			return "", fmt.Errorf("generate nonce: %w", err)
		}
		nonce := base64.RawURLEncoding.EncodeToString(b)

		taken, err := s.store.NonceExists(ctx, nonce)
		if err != nil {
			return "", fmt.Errorf("check nonce uniqueness: %w", err)
		}
		if !taken {
			return nonce, nil
		}
	}
	return "", domainErrors.ErrKeyspaceExhausted
}

// DeriveFinalKey computes the hex-encoded SHA-256 of
// buyerProof|nonce|quantity. Deterministic: the same inputs always produce
// the same key.
func (s *service) DeriveFinalKey(buyerProof, nonce string, quantity int) (string, error) {
	if strings.TrimSpace(buyerProof) == "" {
		return "", fmt.Errorf("buyer proof must not be empty")
	}
	if strings.TrimSpace(nonce) == "" {
		return "", fmt.Errorf("nonce must not be empty")
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return "", domainErrors.ErrInvalidQuantity
	}

	combined := buyerProof + Separator + nonce + Separator + strconv.Itoa(quantity)
	digest := sha256.Sum256([]byte(combined))
	return hex.EncodeToString(digest[:]), nil
}

// BuildQRPayload renders the scanner-facing payload: nonce|buyerProof|quantity.
func (s *service) BuildQRPayload(nonce, buyerProof string, quantity int) string {
	return nonce + Separator + buyerProof + Separator + strconv.Itoa(quantity)
}
