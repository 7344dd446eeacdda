package handlers

import (
	"gatepass/internal/services/offer"
	"gatepass/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type OfferHandler struct {
	offerService offer.Service
}

func NewOfferHandler(offerSvc offer.Service) *OfferHandler {
	return &OfferHandler{offerService: offerSvc}
}

// ListOffers returns all currently available offers.
func (h *OfferHandler) ListOffers(c *fiber.Ctx) error {
	offers, err := h.offerService.ListAvailable(c.Context())
	if err != nil {
		return response.ServerError(c, "Failed to list offers")
	}
	return response.Success(c, "Offers", offers)
}

// GetOffer returns a single offer by id.
func (h *OfferHandler) GetOffer(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid offer id")
	}

	o, err := h.offerService.GetOffer(c.Context(), uint(id))
	if err != nil {
		return response.ServerError(c, "Failed to load offer")
	}
	if o == nil {
		return response.NotFound(c, "Offer not found")
	}
	return response.Success(c, "Offer", o)
}
