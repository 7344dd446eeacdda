package repositories

import (
	"context"
	"errors"
	"fmt"

	"gatepass/internal/models"

	"gorm.io/gorm"
)

type buyerRepository struct {
	db *gorm.DB
}

// NewBuyerRepository creates a GORM-backed BuyerRepository.
func NewBuyerRepository(db *gorm.DB) BuyerRepository {
	return &buyerRepository{db: db}
}

func (r *buyerRepository) Create(ctx context.Context, b *models.Buyer) error {
	if err := r.db.WithContext(ctx).Create(b).Error; err != nil {
		return fmt.Errorf("create buyer: %w", err)
	}
	return nil
}

func (r *buyerRepository) FindByID(ctx context.Context, id uint) (*models.Buyer, error) {
	var buyer models.Buyer
	if err := r.db.WithContext(ctx).First(&buyer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find buyer %d: %w", id, err)
	}
	return &buyer, nil
}

func (r *buyerRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Buyer{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check email: %w", err)
	}
	return count > 0, nil
}

func (r *buyerRepository) ProofFingerprintExists(ctx context.Context, fingerprint string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Buyer{}).
		Where("proof_fingerprint = ?", fingerprint).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check proof fingerprint: %w", err)
	}
	return count > 0, nil
}
