package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-service/controller"
	"pos-service/middleware"
)

func RegisterSettingRoutes(app *fiber.App, db *gorm.DB, authMiddleware fiber.Handler) {
	sc := controller.NewSettingController(db)

	api := app.Group("/api")
	s := api.Group("/settings", authMiddleware)

	s.Get("/", sc.Get)
	s.Put("/", middleware.RoleRequired("admin"), sc.Update)
}
