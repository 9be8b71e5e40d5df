package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-service/controller"
)

func RegisterTransactionRoutes(app *fiber.App, db *gorm.DB, authMiddleware fiber.Handler) {
	tc := controller.NewTransactionController(db)

	api := app.Group("/api")
	t := api.Group("/transactions", authMiddleware)

	// transactions are immutable: no PUT or DELETE here
	t.Get("/", tc.List)
	t.Post("/", tc.Create)
	t.Get("/summary", tc.Summary)
	t.Get("/:id", tc.Get)
	t.Get("/:id/receipt", tc.Receipt)
}
