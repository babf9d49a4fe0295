// handlers/offer_routes.go
package handlers

import (
	"merchant-offers-service/services"

	"github.com/gofiber/fiber/v2"
)

func SetupOfferRoutes(app *fiber.App, offerService *services.OfferService) {
	// 🔓 Public within the gateway — anonymous visitors resolve offers too
	app.Get("/offers", offerService.GetOffers)
	app.Get("/health", offerService.HealthCheck)
}
