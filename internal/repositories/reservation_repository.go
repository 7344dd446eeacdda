package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const pqUniqueViolation = "23505"

type reservationRepository struct {
	db *gorm.DB
}

// NewReservationRepository creates a GORM-backed ReservationRepository.
func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) FindByID(ctx context.Context, id uint) (*models.Reservation, error) {
	var res models.Reservation
	if err := r.db.WithContext(ctx).First(&res, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find reservation %d: %w", id, err)
	}
	return &res, nil
}

// FindByFinalKey returns the CONFIRMED reservation carrying the given final
// key, or nil when no such credential exists. Non-confirmed rows are
// filtered in the query: they never had a valid credential.
func (r *reservationRepository) FindByFinalKey(ctx context.Context, finalKey string) (*models.Reservation, error) {
	var res models.Reservation
	err := r.db.WithContext(ctx).
		Where("final_key = ? AND status = ?", finalKey, models.ReservationStatusConfirmed).
		First(&res).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("find reservation by final key: %w", err)
	}
	return &res, nil
}

func (r *reservationRepository) NonceExists(ctx context.Context, nonce string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("reservation_nonce = ?", nonce).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check nonce: %w", err)
	}
	return count > 0, nil
}

func (r *reservationRepository) Create(ctx context.Context, res *models.Reservation) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqUniqueViolation {
			return domainErrors.ErrDuplicateFinalKey
		}
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *reservationRepository) Delete(ctx context.Context, res *models.Reservation) error {
	if err := r.db.WithContext(ctx).Delete(res).Error; err != nil {
		return fmt.Errorf("delete reservation %d: %w", res.ID, err)
	}
	return nil
}

// TryMarkUsed performs the one-way used transition as a compare-and-set:
// the WHERE clause only matches while used is still false, so of any number
// of concurrent callers exactly one sees an affected row. A plain
// read-modify-write is not equivalent and must not be substituted here.
func (r *reservationRepository) TryMarkUsed(ctx context.Context, id uint, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND used = ?", id, false).
		Updates(map[string]interface{}{"used": true, "used_at": at})
	if result.Error != nil {
		return false, fmt.Errorf("mark reservation %d used: %w", id, result.Error)
	}
	return result.RowsAffected == 1, nil
}
