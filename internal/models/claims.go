package models

import "github.com/golang-jwt/jwt/v5"

// GateClaims are the JWT claims carried by a gate scanner token.
type GateClaims struct {
	jwt.RegisteredClaims
	GateID string `json:"gate_id"`
}
