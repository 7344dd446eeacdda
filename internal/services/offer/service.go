// Package offer is the read side of the offer catalog.
package offer

import (
	"context"
	"log"

	"gatepass/internal/models"
	"gatepass/internal/repositories"
	"gatepass/internal/repositories/cache"
)

// Service looks up offers, serving repeated reads from the cache. Offers are
// immutable during a reservation so a cached copy is always safe to use.
type Service interface {
	GetOffer(ctx context.Context, id uint) (*models.Offer, error)
	ListAvailable(ctx context.Context) ([]models.Offer, error)
}

type service struct {
	offers repositories.OfferRepository
	cache  *cache.CacheService
}

// NewService creates an offer catalog service. The cache may be nil, in
// which case every read goes to the database.
func NewService(offers repositories.OfferRepository, cacheSvc *cache.CacheService) Service {
	if offers == nil {
		panic("offer repository is required")
	}
	return &service{offers: offers, cache: cacheSvc}
}

func (s *service) GetOffer(ctx context.Context, id uint) (*models.Offer, error) {
	if s.cache != nil {
		if offer, err := s.cache.GetOffer(ctx, id); err == nil {
			return offer, nil
		}
	}

	offer, err := s.offers.FindByID(ctx, id)
	if err != nil || offer == nil {
		return offer, err
	}

	if s.cache != nil {
		if err := s.cache.SetOffer(ctx, offer); err != nil {
			log.Printf("failed to cache offer %d: %v", id, err)
		}
	}
	return offer, nil
}

func (s *service) ListAvailable(ctx context.Context) ([]models.Offer, error) {
	return s.offers.ListAvailable(ctx)
}
