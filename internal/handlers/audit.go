package handlers

import (
	"gatepass/internal/services/audit"
	"gatepass/internal/utils/response"

	"github.com/gofiber/fiber/v2"
)

type AuditHandler struct {
	log *audit.Log
}

func NewAuditHandler(auditLog *audit.Log) *AuditHandler {
	return &AuditHandler{log: auditLog}
}

// RecentEvents returns up to n recent audit entries, most recent first.
func (h *AuditHandler) RecentEvents(c *fiber.Ctx) error {
	n := c.QueryInt("n", audit.MaxEntries)
	return response.Success(c, "Audit trail", h.log.Tail(n))
}
