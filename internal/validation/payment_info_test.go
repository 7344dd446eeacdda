package validation

import (
	"testing"

	domainErrors "gatepass/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePaymentInfo(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		card, err := ParsePaymentInfo("4111111111111111|12/29|123")
		require.NoError(t, err)

		assert.Equal(t, "4111111111111111", card.Number)
		assert.Equal(t, "12/29", card.Expiry)
		assert.Equal(t, "123", card.CVV)
	})

	t.Run("four digit cvv", func(t *testing.T) {
		_, err := ParsePaymentInfo("4111111111111111|12/29|1234")
		assert.NoError(t, err)
	})

	tests := []struct {
		name string
		info string
	}{
		{"empty", ""},
		{"missing fields", "4111111111111111|12/29"},
		{"short card number", "411111111111111|12/29|123"},
		{"long card number", "41111111111111112|12/29|123"},
		{"letters in card number", "411111111111111x|12/29|123"},
		{"bad expiry separator", "4111111111111111|12-29|123"},
		{"two digit cvv", "4111111111111111|12/29|12"},
		{"five digit cvv", "4111111111111111|12/29|12345"},
		{"trailing garbage", "4111111111111111|12/29|123|extra"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePaymentInfo(tt.info)
			assert.ErrorIs(t, err, domainErrors.ErrInvalidPaymentInfo)
		})
	}
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, ValidateQuantity(1))
	assert.NoError(t, ValidateQuantity(10000))
	assert.ErrorIs(t, ValidateQuantity(0), domainErrors.ErrInvalidQuantity)
	assert.ErrorIs(t, ValidateQuantity(-1), domainErrors.ErrInvalidQuantity)
	assert.ErrorIs(t, ValidateQuantity(10001), domainErrors.ErrInvalidQuantity)
}
