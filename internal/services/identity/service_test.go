package identity

import (
	"context"
	"testing"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBuyerRepo is an in-memory BuyerRepository.
type fakeBuyerRepo struct {
	buyers      map[uint]*models.Buyer
	nextID      uint
	alwaysTaken bool
}

func newFakeBuyerRepo() *fakeBuyerRepo {
	return &fakeBuyerRepo{buyers: make(map[uint]*models.Buyer)}
}

func (f *fakeBuyerRepo) Create(ctx context.Context, b *models.Buyer) error {
	f.nextID++
	b.ID = f.nextID
	f.buyers[b.ID] = b
	return nil
}

func (f *fakeBuyerRepo) FindByID(ctx context.Context, id uint) (*models.Buyer, error) {
	b, ok := f.buyers[id]
	if !ok {
		return nil, nil
	}
	return b, nil
}

func (f *fakeBuyerRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	for _, b := range f.buyers {
		if b.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBuyerRepo) ProofFingerprintExists(ctx context.Context, fingerprint string) (bool, error) {
	if f.alwaysTaken {
		return true, nil
	}
	for _, b := range f.buyers {
		if b.ProofFingerprint == fingerprint {
			return true, nil
		}
	}
	return false, nil
}

func TestRegisterBuyer(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a validatable proof exactly once", func(t *testing.T) {
		repo := newFakeBuyerRepo()
		svc := NewService(repo)

		buyer, proof, err := svc.RegisterBuyer(ctx, "alice@example.com", "Alice")
		require.NoError(t, err)
		require.NotZero(t, buyer.ID)
		require.NotEmpty(t, proof)

		// The cleartext proof is never stored.
		assert.NotEqual(t, proof, buyer.ProofHash)
		assert.Equal(t, Fingerprint(proof), buyer.ProofFingerprint)

		ok, err := svc.ValidateBuyerProof(ctx, buyer.ID, proof)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("normalizes the email", func(t *testing.T) {
		repo := newFakeBuyerRepo()
		svc := NewService(repo)

		buyer, _, err := svc.RegisterBuyer(ctx, "  Bob@Example.COM ", "Bob")
		require.NoError(t, err)
		assert.Equal(t, "bob@example.com", buyer.Email)
	})

	t.Run("rejects a duplicate email", func(t *testing.T) {
		repo := newFakeBuyerRepo()
		svc := NewService(repo)

		_, _, err := svc.RegisterBuyer(ctx, "alice@example.com", "Alice")
		require.NoError(t, err)

		_, _, err = svc.RegisterBuyer(ctx, "alice@example.com", "Imposter")
		assert.ErrorIs(t, err, domainErrors.ErrEmailTaken)
	})

	t.Run("rejects an invalid email", func(t *testing.T) {
		svc := NewService(newFakeBuyerRepo())

		_, _, err := svc.RegisterBuyer(ctx, "not-an-email", "Nobody")
		assert.Error(t, err)
	})

	t.Run("bounded retries when every proof collides", func(t *testing.T) {
		repo := newFakeBuyerRepo()
		repo.alwaysTaken = true
		svc := NewService(repo)

		_, _, err := svc.RegisterBuyer(ctx, "carol@example.com", "Carol")
		assert.ErrorIs(t, err, domainErrors.ErrKeyspaceExhausted)
	})
}

func TestValidateBuyerProof(t *testing.T) {
	ctx := context.Background()
	repo := newFakeBuyerRepo()
	svc := NewService(repo)

	buyer, proof, err := svc.RegisterBuyer(ctx, "alice@example.com", "Alice")
	require.NoError(t, err)

	t.Run("wrong proof", func(t *testing.T) {
		ok, err := svc.ValidateBuyerProof(ctx, buyer.ID, proof+"x")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty proof", func(t *testing.T) {
		ok, err := svc.ValidateBuyerProof(ctx, buyer.ID, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown buyer", func(t *testing.T) {
		_, err := svc.ValidateBuyerProof(ctx, 999, proof)
		assert.ErrorIs(t, err, domainErrors.ErrBuyerNotFound)
	})
}
