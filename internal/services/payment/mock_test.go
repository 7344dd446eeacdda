package payment

import (
	"context"
	"testing"

	"gatepass/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, p *models.Payment) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockPaymentRepo) FindByTransactionID(ctx context.Context, transactionID string) (*models.Payment, error) {
	args := m.Called(transactionID)
	if p, ok := args.Get(0).(*models.Payment); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, transactionID, status string) error {
	args := m.Called(transactionID, status)
	return args.Error(0)
}

func failedRow(repo *MockPaymentRepo) *mock.Call {
	return repo.On("Create", mock.MatchedBy(func(p *models.Payment) bool {
		return p.Status == models.PaymentStatusFailed
	})).Return(nil)
}

func TestMockGateway_ProcessPayment(t *testing.T) {
	tests := []struct {
		name       string
		cardNumber string
		expiry     string
		cvv        string
	}{
		{"short card number", "41111111", "12/29", "123"},
		{"failed luhn check", "4111111111111112", "12/29", "123"},
		{"bad expiry month", "4111111111111111", "13/29", "123"},
		{"bad cvv", "4111111111111111", "12/29", "12"},
	}
	for _, tt := range tests {
		t.Run(tt.name+" records a failed attempt", func(t *testing.T) {
			repo := new(MockPaymentRepo)
			failedRow(repo)
			gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

			ok, err := gw.ProcessPayment(context.Background(), 60.0, tt.cardNumber, tt.expiry, tt.cvv, "nonce-1")

			require.NoError(t, err)
			assert.False(t, ok)
			repo.AssertExpectations(t)
		})
	}

	t.Run("valid card succeeds and records a completed attempt", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		repo.On("Create", mock.MatchedBy(func(p *models.Payment) bool {
			return p.Status == models.PaymentStatusCompleted &&
				p.Amount == 60.0 &&
				p.CardLastDigits == "1111" &&
				p.ReservationRef == "nonce-1" &&
				p.TransactionID != ""
		})).Return(nil)
		gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

		ok, err := gw.ProcessPayment(context.Background(), 60.0, "4111111111111111", "12/29", "123", "nonce-1")

		require.NoError(t, err)
		assert.True(t, ok)
		repo.AssertExpectations(t)
	})

	t.Run("cancelled context is a payment failure", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		failedRow(repo)
		gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		ok, err := gw.ProcessPayment(ctx, 60.0, "4111111111111111", "12/29", "123", "nonce-1")

		require.NoError(t, err)
		assert.False(t, ok)
		repo.AssertExpectations(t)
	})
}

func TestMockGateway_CancelPayment(t *testing.T) {
	t.Run("refunds a completed payment", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		repo.On("FindByTransactionID", "tx-1").
			Return(&models.Payment{TransactionID: "tx-1", Status: models.PaymentStatusCompleted}, nil)
		repo.On("UpdateStatus", "tx-1", models.PaymentStatusRefunded).Return(nil)
		gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

		ok, err := gw.CancelPayment(context.Background(), "tx-1")

		require.NoError(t, err)
		assert.True(t, ok)
		repo.AssertExpectations(t)
	})

	t.Run("refuses non-completed payments", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		repo.On("FindByTransactionID", "tx-2").
			Return(&models.Payment{TransactionID: "tx-2", Status: models.PaymentStatusFailed}, nil)
		gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

		ok, err := gw.CancelPayment(context.Background(), "tx-2")

		require.NoError(t, err)
		assert.False(t, ok)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})

	t.Run("refuses unknown transactions", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		repo.On("FindByTransactionID", "tx-3").Return(nil, nil)
		gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

		ok, err := gw.CancelPayment(context.Background(), "tx-3")

		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("refund is idempotent", func(t *testing.T) {
		repo := new(MockPaymentRepo)
		repo.On("FindByTransactionID", "tx-4").
			Return(&models.Payment{TransactionID: "tx-4", Status: models.PaymentStatusRefunded}, nil)
		gw := NewMockGateway(repo, nil, MockConfig{SuccessRate: 100})

		ok, err := gw.CancelPayment(context.Background(), "tx-4")

		require.NoError(t, err)
		assert.False(t, ok)
		repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything)
	})
}

func TestMockGateway_GenerateTransactionID(t *testing.T) {
	gw := NewMockGateway(new(MockPaymentRepo), nil, MockConfig{})

	first := gw.GenerateTransactionID()
	second := gw.GenerateTransactionID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}
