// Package main seeds a development database: a handful of offers, a demo
// buyer, and a gate scanner token for exercising the verification routes.
package main

import (
	"context"
	"log"
	"time"

	"gatepass/internal/config"
	"gatepass/internal/models"
	"gatepass/internal/repositories"
	"gatepass/internal/services/identity"
	"gatepass/internal/utils"
)

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	ctx := context.Background()
	offerRepo := repositories.NewOfferRepository(repositories.DB)
	buyerRepo := repositories.NewBuyerRepository(repositories.DB)

	offers := []models.Offer{
		{Name: "Solo pass", Price: 20.00, Available: true},
		{Name: "Duo pass", Price: 38.00, Available: true},
		{Name: "Family pass", Price: 70.00, Available: true},
		{Name: "Opening ceremony", Price: 150.00, Available: false},
	}
	for i := range offers {
		if err := offerRepo.Create(ctx, &offers[i]); err != nil {
			log.Fatalf("failed to seed offer %q: %v", offers[i].Name, err)
		}
		log.Printf("offer %d: %s (%.2f, available=%t)", offers[i].ID, offers[i].Name, offers[i].Price, offers[i].Available)
	}

	identityService := identity.NewService(buyerRepo)
	buyer, proof, err := identityService.RegisterBuyer(ctx, "demo@example.com", "Demo Buyer")
	if err != nil {
		log.Fatalf("failed to seed buyer: %v", err)
	}
	log.Printf("buyer %d registered, proof (shown once): %s", buyer.ID, proof)

	gateToken, err := utils.GenerateGateToken("gate-1", config.GetEnv("GATE_JWT_SECRET", "gatepass"), 24*time.Hour)
	if err != nil {
		log.Fatalf("failed to generate gate token: %v", err)
	}
	log.Printf("gate token (24h): %s", gateToken)
}
