package repositories

import (
	"context"
	"errors"
	"fmt"

	"gatepass/internal/models"

	"gorm.io/gorm"
)

type offerRepository struct {
	db *gorm.DB
}

// NewOfferRepository creates a GORM-backed OfferRepository.
func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) FindByID(ctx context.Context, id uint) (*models.Offer, error) {
	var offer models.Offer
	if err := r.db.WithContext(ctx).First(&offer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find offer %d: %w", id, err)
	}
	return &offer, nil
}

func (r *offerRepository) ListAvailable(ctx context.Context) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.WithContext(ctx).Where("available = ?", true).Order("id").Find(&offers).Error
	if err != nil {
		return nil, fmt.Errorf("list available offers: %w", err)
	}
	return offers, nil
}

func (r *offerRepository) Create(ctx context.Context, o *models.Offer) error {
	if err := r.db.WithContext(ctx).Create(o).Error; err != nil {
		return fmt.Errorf("create offer: %w", err)
	}
	return nil
}
