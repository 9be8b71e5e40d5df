package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-service/controller"
)

func RegisterCustomerRoutes(app *fiber.App, db *gorm.DB, authMiddleware fiber.Handler) {
	cc := controller.NewCustomerController(db)

	api := app.Group("/api")
	cust := api.Group("/customers", authMiddleware)

	cust.Get("/", cc.List)
	cust.Post("/", cc.Create)
	cust.Get("/:id", cc.Get)
	cust.Put("/:id", cc.Update)
	cust.Delete("/:id", cc.Delete)
}
