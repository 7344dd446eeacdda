// Package routes wires services, repositories and handlers onto the fiber
// app.
package routes

import (
	"gatepass/internal/config"
	"gatepass/internal/handlers"
	"gatepass/internal/middleware"
	"gatepass/internal/repositories"
	"gatepass/internal/services/audit"
	"gatepass/internal/services/identity"
	"gatepass/internal/services/keygen"
	"gatepass/internal/services/offer"
	"gatepass/internal/services/payment"
	"gatepass/internal/services/reservation"
	"gatepass/internal/services/verification"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes builds the service graph and registers all routes.
func SetupRoutes(app *fiber.App, db *gorm.DB, auditLog *audit.Log) {
	reservationRepo := repositories.NewReservationRepository(db)
	paymentRepo := repositories.NewPaymentRepository(db)
	offerRepo := repositories.NewOfferRepository(db)
	buyerRepo := repositories.NewBuyerRepository(db)

	identityService := identity.NewService(buyerRepo)
	offerService := offer.NewService(offerRepo, repositories.CacheService)
	keyService := keygen.NewService(reservationRepo)

	gateway := newGateway(paymentRepo, auditLog)

	reservationService := reservation.NewService(
		reservationRepo,
		identityService,
		offerService,
		keyService,
		gateway,
		auditLog,
	)
	verificationService := verification.NewService(reservationRepo, auditLog)

	buyerHandler := handlers.NewBuyerHandler(identityService)
	offerHandler := handlers.NewOfferHandler(offerService)
	reservationHandler := handlers.NewReservationHandler(reservationService)
	verificationHandler := handlers.NewVerificationHandler(verificationService)
	auditHandler := handlers.NewAuditHandler(auditLog)

	gateAuth := middleware.NewGateAuth(config.GetEnv("GATE_JWT_SECRET", "gatepass"))

	api := app.Group("/api")
	api.Get("/health", handlers.HealthCheck)

	api.Post("/buyers", buyerHandler.RegisterBuyer)

	api.Get("/offers", offerHandler.ListOffers)
	api.Get("/offers/:id", offerHandler.GetOffer)

	api.Post("/reservations", reservationHandler.CreateReservation)
	api.Get("/reservations/:id", reservationHandler.GetReservation)

	// Pre-flight check is public; consuming redemption requires a gate
	// token, as does the audit trail.
	api.Get("/tickets/:key", verificationHandler.CheckTicket)
	api.Post("/tickets/:key/verify", gateAuth.Handler, verificationHandler.VerifyTicket)
	api.Get("/audit", gateAuth.Handler, auditHandler.RecentEvents)
}

// newGateway picks the payment gateway implementation from configuration.
func newGateway(paymentRepo repositories.PaymentRepository, auditLog *audit.Log) payment.Gateway {
	if config.GetEnv("PAYMENT_PROVIDER", "mock") == "stripe" {
		return payment.NewStripeGateway(paymentRepo, auditLog, payment.StripeConfig{
			APIKey:   config.GetEnv("STRIPE_API_KEY", ""),
			Currency: config.GetEnv("PAYMENT_CURRENCY", "eur"),
		})
	}
	return payment.NewMockGateway(paymentRepo, auditLog, payment.MockConfig{
		SuccessRate: config.GetIntEnv("MOCK_PAYMENT_SUCCESS_RATE", 95),
	})
}
