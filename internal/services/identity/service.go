// Package identity manages buyers and their proofs. A proof is a random
// secret handed to the buyer exactly once at registration; the service keeps
// a bcrypt hash for validation and a SHA-256 fingerprint for the uniqueness
// check during generation.
package identity

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/models"
	"gatepass/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

const (
	proofBytes       = 32
	maxProofAttempts = 5
)

// Service registers buyers and validates buyer proofs.
type Service interface {
	// RegisterBuyer creates a buyer and returns the cleartext proof. The
	// proof is not recoverable afterwards.
	RegisterBuyer(ctx context.Context, email, name string) (*models.Buyer, string, error)
	ValidateBuyerProof(ctx context.Context, buyerID uint, proof string) (bool, error)
}

type service struct {
	buyers repositories.BuyerRepository
}

// NewService creates an identity service backed by the buyer repository.
func NewService(buyers repositories.BuyerRepository) Service {
	if buyers == nil {
		panic("buyer repository is required")
	}
	return &service{buyers: buyers}
}

func (s *service) RegisterBuyer(ctx context.Context, email, name string) (*models.Buyer, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("invalid email %q", email)
	}

	taken, err := s.buyers.EmailExists(ctx, email)
	if err != nil {
		return nil, "", fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, "", domainErrors.ErrEmailTaken
	}

	proof, fingerprint, err := s.generateUniqueProof(ctx)
	if err != nil {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(proof), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash proof: %w", err)
	}

	buyer := &models.Buyer{
		Email:            email,
		Name:             strings.TrimSpace(name),
		ProofHash:        string(hash),
		ProofFingerprint: fingerprint,
	}
	if err := s.buyers.Create(ctx, buyer); err != nil {
		return nil, "", err
	}
	return buyer, proof, nil
}

func (s *service) ValidateBuyerProof(ctx context.Context, buyerID uint, proof string) (bool, error) {
	if proof == "" {
		return false, nil
	}
	buyer, err := s.buyers.FindByID(ctx, buyerID)
	if err != nil {
		return false, err
	}
	if buyer == nil {
		return false, domainErrors.ErrBuyerNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(buyer.ProofHash), []byte(proof)); err != nil {
		return false, nil
	}
	return true, nil
}

// generateUniqueProof draws random proofs until the fingerprint is unused,
// giving up after a bounded number of attempts.
func (s *service) generateUniqueProof(ctx context.Context) (proof, fingerprint string, err error) {
	for attempt := 0; attempt < maxProofAttempts; attempt++ {
		b := make([]byte, proofBytes)
		if _, err := rand.Read(b); err != nil {
			return "", "", fmt.Errorf("generate proof: %w", err)
		}
		candidate := base64.RawURLEncoding.EncodeToString(b)
		fp := Fingerprint(candidate)

		taken, err := s.buyers.ProofFingerprintExists(ctx, fp)
		if err != nil {
			return "", "", fmt.Errorf("check proof uniqueness: %w", err)
		}
		if !taken {
			return candidate, fp, nil
		}
	}
	return "", "", domainErrors.ErrKeyspaceExhausted
}

// Fingerprint is the deterministic lookup hash of a proof. It exists only
// for the uniqueness check; validation always goes through bcrypt.
func Fingerprint(proof string) string {
	sum := sha256.Sum256([]byte(proof))
	return hex.EncodeToString(sum[:])
}
