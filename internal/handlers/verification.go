package handlers

import (
	"gatepass/internal/models"
	"gatepass/internal/services/verification"
	"gatepass/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type VerificationHandler struct {
	verificationService verification.Service
}

func NewVerificationHandler(verificationSvc verification.Service) *VerificationHandler {
	return &VerificationHandler{verificationService: verificationSvc}
}

// VerifyTicket consumes a ticket credential. Gate-token protected: only
// provisioned scanners may redeem.
func (h *VerificationHandler) VerifyTicket(c *fiber.Ctx) error {
	finalKey := c.Params("key")
	if finalKey == "" {
		return response.BadRequest(c, "Missing final key")
	}

	result, err := h.verificationService.VerifyTicket(c.Context(), finalKey)
	if err != nil {
		return response.ServerError(c, "Verification failed")
	}

	switch result.Outcome {
	case verification.OutcomeRedeemed:
		return response.Success(c, "Ticket redeemed", reservationSummary(result.Reservation))
	case verification.OutcomeAlreadyUsed:
		return response.Conflict(c, "Ticket already used")
	default:
		return response.NotFound(c, "Ticket not found")
	}
}

// CheckTicket is the read-only pre-flight check; it never consumes the
// ticket.
func (h *VerificationHandler) CheckTicket(c *fiber.Ctx) error {
	finalKey := c.Params("key")
	if finalKey == "" {
		return response.BadRequest(c, "Missing final key")
	}

	result, err := h.verificationService.CheckTicketValidity(c.Context(), finalKey)
	if err != nil {
		return response.ServerError(c, "Check failed")
	}

	switch result.Outcome {
	case verification.OutcomeValid:
		return response.Success(c, "Ticket valid", reservationSummary(result.Reservation))
	case verification.OutcomeAlreadyUsed:
		return response.Conflict(c, "Ticket already used")
	default:
		return response.NotFound(c, "Ticket not found")
	}
}

func reservationSummary(res *models.Reservation) fiber.Map {
	return fiber.Map{
		"reservation_id": res.ID,
		"offer_id":       res.OfferID,
		"quantity":       res.Quantity,
		"used":           res.Used,
		"used_at":        res.UsedAt,
	}
}
