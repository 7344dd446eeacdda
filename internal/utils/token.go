package utils

import (
	"fmt"
	"time"

	"gatepass/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateGateToken signs a scanner token for the given gate. Gate tokens
// are provisioned out of band (see cmd/seed); there is no login flow for
// scanners.
func GenerateGateToken(gateID, secret string, ttl time.Duration) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("gate token secret not configured")
	}

	now := time.Now()
	claims := models.GateClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "gatepass-api",
			Subject:   gateID,
		},
		GateID: gateID,
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
