package models

import "gorm.io/gorm"

// Buyer holds the identity side of a reservation. The buyer proof is handed
// out once at registration; only a bcrypt hash is stored for validation,
// plus a deterministic fingerprint used for the uniqueness check at
// generation time.
type Buyer struct {
	gorm.Model
	Email            string `gorm:"not null;uniqueIndex" json:"email"`
	Name             string `gorm:"not null" json:"name"`
	ProofHash        string `gorm:"not null" json:"-"`
	ProofFingerprint string `gorm:"not null;uniqueIndex" json:"-"`
}
