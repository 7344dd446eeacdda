package handlers

import (
	"errors"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/services/identity"
	"gatepass/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type BuyerHandler struct {
	identityService identity.Service
}

func NewBuyerHandler(identitySvc identity.Service) *BuyerHandler {
	return &BuyerHandler{identityService: identitySvc}
}

// RegisterBuyer creates a buyer and returns the buyer proof. The proof is
// shown exactly once; only its hash is stored.
func (h *BuyerHandler) RegisterBuyer(c *fiber.Ctx) error {
	var input struct {
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	buyer, proof, err := h.identityService.RegisterBuyer(c.Context(), input.Email, input.Name)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmailTaken) {
			return response.Conflict(c, err.Error())
		}
		return response.BadRequest(c, err.Error())
	}

	return response.Created(c, "Buyer registered", fiber.Map{
		"buyer_id":    buyer.ID,
		"email":       buyer.Email,
		"buyer_proof": proof,
	})
}
