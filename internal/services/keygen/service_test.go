package keygen

import (
	"context"
	"testing"

	domainErrors "gatepass/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubNonceStore struct {
	exists bool
	err    error
	calls  int
}

func (s *stubNonceStore) NonceExists(ctx context.Context, nonce string) (bool, error) {
	s.calls++
	return s.exists, s.err
}

func TestDeriveFinalKey(t *testing.T) {
	svc := NewService(&stubNonceStore{})

	t.Run("deterministic", func(t *testing.T) {
		first, err := svc.DeriveFinalKey("U1", "R1", 2)
		require.NoError(t, err)
		second, err := svc.DeriveFinalKey("U1", "R1", 2)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Len(t, first, 64) // hex-encoded SHA-256
	})

	t.Run("quantity is bound into the key", func(t *testing.T) {
		two, err := svc.DeriveFinalKey("U1", "R1", 2)
		require.NoError(t, err)
		three, err := svc.DeriveFinalKey("U1", "R1", 3)
		require.NoError(t, err)

		assert.NotEqual(t, two, three)
	})

	t.Run("every input changes the key", func(t *testing.T) {
		base, err := svc.DeriveFinalKey("U1", "R1", 2)
		require.NoError(t, err)

		otherProof, err := svc.DeriveFinalKey("U2", "R1", 2)
		require.NoError(t, err)
		otherNonce, err := svc.DeriveFinalKey("U1", "R2", 2)
		require.NoError(t, err)

		assert.NotEqual(t, base, otherProof)
		assert.NotEqual(t, base, otherNonce)
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := svc.DeriveFinalKey("", "R1", 2)
		assert.Error(t, err)

		_, err = svc.DeriveFinalKey("U1", "", 2)
		assert.Error(t, err)

		_, err = svc.DeriveFinalKey("U1", "R1", 0)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidQuantity)

		_, err = svc.DeriveFinalKey("U1", "R1", 10001)
		assert.ErrorIs(t, err, domainErrors.ErrInvalidQuantity)
	})
}

func TestNewNonce(t *testing.T) {
	t.Run("returns a fresh nonce", func(t *testing.T) {
		store := &stubNonceStore{exists: false}
		svc := NewService(store)

		nonce, err := svc.NewNonce(context.Background())
		require.NoError(t, err)

		assert.Len(t, nonce, 16) // 12 bytes, base64url without padding
		assert.Equal(t, 1, store.calls)

		second, err := svc.NewNonce(context.Background())
		require.NoError(t, err)
		assert.NotEqual(t, nonce, second)
	})

	t.Run("bounded retries on collisions", func(t *testing.T) {
		store := &stubNonceStore{exists: true}
		svc := NewService(store)

		_, err := svc.NewNonce(context.Background())
		assert.ErrorIs(t, err, domainErrors.ErrKeyspaceExhausted)
		assert.Equal(t, maxNonceAttempts, store.calls)
	})
}

func TestBuildQRPayload(t *testing.T) {
	svc := NewService(&stubNonceStore{})

	assert.Equal(t, "R1|U1|3", svc.BuildQRPayload("R1", "U1", 3))
}
