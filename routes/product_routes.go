package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-service/controller"
	"pos-service/middleware"
)

func RegisterProductRoutes(app *fiber.App, db *gorm.DB, authMiddleware fiber.Handler) {
	pc := controller.NewProductController(db)

	api := app.Group("/api")
	p := api.Group("/products", authMiddleware)

	//categories
	category := p.Group("/category")
	category.Get("/", pc.ListCategories)
	category.Post("/", middleware.RoleRequired("admin"), pc.CreateCategory)
	category.Put("/:id", middleware.RoleRequired("admin"), pc.UpdateCategory)
	category.Delete("/:id", middleware.RoleRequired("admin"), pc.DeleteCategory)

	//products
	p.Get("/", pc.ListProducts)
	p.Post("/", middleware.RoleRequired("admin"), pc.CreateProduct)
	p.Get("/:id", pc.GetProduct)
	p.Put("/:id", middleware.RoleRequired("admin"), pc.UpdateProduct)
	p.Delete("/:id", middleware.RoleRequired("admin"), pc.DeleteProduct)
}
