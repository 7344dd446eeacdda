package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLuhnValid(t *testing.T) {
	valid := []string{
		"4111111111111111",
		"4242424242424242",
		"5555555555554444",
		"6011111111111117",
	}
	for _, number := range valid {
		assert.True(t, luhnValid(number), number)
	}

	invalid := []string{
		"4111111111111112",
		"4242424242424241",
	}
	for _, number := range invalid {
		assert.False(t, luhnValid(number), number)
	}
}

func TestValidateCardShape(t *testing.T) {
	assert.NoError(t, validateCardShape("4111111111111111", "12/29", "123"))
	assert.NoError(t, validateCardShape("4111111111111111", "01/30", "1234"))

	assert.Error(t, validateCardShape("4111", "12/29", "123"))
	assert.Error(t, validateCardShape("4111111111111111", "00/29", "123"))
	assert.Error(t, validateCardShape("4111111111111111", "12/2029", "123"))
	assert.Error(t, validateCardShape("4111111111111111", "12/29", "12"))
}

func TestLastFour(t *testing.T) {
	assert.Equal(t, "1111", lastFour("4111111111111111"))
	assert.Equal(t, "123", lastFour("123"))
}
