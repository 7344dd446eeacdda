package handlers

import (
	"errors"

	domainErrors "gatepass/internal/errors"
	"gatepass/internal/services/reservation"
	"gatepass/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type ReservationHandler struct {
	reservationService reservation.Service
}

func NewReservationHandler(reservationSvc reservation.Service) *ReservationHandler {
	return &ReservationHandler{reservationService: reservationSvc}
}

// CreateReservation issues a ticket credential: it validates the buyer
// proof, charges the card and returns the final key and QR payload.
func (h *ReservationHandler) CreateReservation(c *fiber.Ctx) error {
	var input struct {
		BuyerID     uint   `json:"buyer_id"`
		OfferID     uint   `json:"offer_id"`
		Quantity    int    `json:"quantity"`
		BuyerProof  string `json:"buyer_proof"`
		PaymentInfo string `json:"payment_info"`
	}
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request format")
	}

	res, err := h.reservationService.CreateTicketReservation(
		c.Context(),
		input.BuyerID,
		input.OfferID,
		input.Quantity,
		input.BuyerProof,
		input.PaymentInfo,
	)
	if err != nil {
		return reservationError(c, err)
	}

	return response.Created(c, "Reservation confirmed", fiber.Map{
		"reservation_id": res.ID,
		"offer_id":       res.OfferID,
		"quantity":       res.Quantity,
		"final_key":      res.FinalKey,
		"qr_payload":     res.QRPayload,
		"status":         res.Status,
	})
}

// GetReservation returns a reservation summary by id.
func (h *ReservationHandler) GetReservation(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return response.BadRequest(c, "Invalid reservation id")
	}

	res, err := h.reservationService.FindByID(c.Context(), uint(id))
	if err != nil {
		return response.ServerError(c, "Failed to load reservation")
	}
	if res == nil {
		return response.NotFound(c, "Reservation not found")
	}
	return response.Success(c, "Reservation", res)
}

// reservationError maps the typed domain errors onto HTTP statuses.
func reservationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domainErrors.ErrInvalidBuyerProof):
		return response.Unauthorized(c)
	case errors.Is(err, domainErrors.ErrInvalidQuantity),
		errors.Is(err, domainErrors.ErrInvalidPaymentInfo):
		return response.BadRequest(c, err.Error())
	case errors.Is(err, domainErrors.ErrOfferNotFound):
		return response.NotFound(c, err.Error())
	case errors.Is(err, domainErrors.ErrOfferUnavailable):
		return response.Conflict(c, err.Error())
	case errors.Is(err, domainErrors.ErrPaymentFailed):
		return response.Error(c, fiber.StatusPaymentRequired, domainErrors.ErrPaymentFailed.Message)
	default:
		return response.ServerError(c, "Failed to create reservation")
	}
}
