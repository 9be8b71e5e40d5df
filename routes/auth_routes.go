package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-service/controller"
)

func RegisterAuthRoutes(app *fiber.App, db *gorm.DB, jwtSecret string) {
	ac := controller.NewAuthController(db, jwtSecret)

	auth := app.Group("/api/auth")
	auth.Post("/register", ac.Register)
	auth.Post("/login", ac.Login)
}
