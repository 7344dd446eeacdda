package models

import "gorm.io/gorm"

// Offer is a purchasable event product. The core treats offers as read-only:
// they are seeded by the catalog side and only looked up here.
type Offer struct {
	gorm.Model
	Name      string  `gorm:"not null" json:"name"`
	Price     float64 `gorm:"not null" json:"price"`
	Available bool    `gorm:"not null;default:true" json:"available"`
}
