package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos-service/model"
)

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

func (pc *ProductController) ListProducts(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	q := pc.DB.Where("owner_id = ?", ownerID)
	if name := c.Query("q"); name != "" {
		q = q.Where("name ILIKE ?", "%"+name+"%")
	}
	if categoryID := c.Query("category_id"); categoryID != "" {
		q = q.Where("category_id = ?", categoryID)
	}

	var products []model.Product
	if err := q.Order("name").Find(&products).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch products"})
	}

	return c.JSON(products)
}

func (pc *ProductController) GetProduct(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var product model.Product
	if err := pc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&product).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}

	return c.JSON(product)
}

func (pc *ProductController) CreateProduct(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var in model.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	if in.Price < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "price must not be negative"})
	}
	if err := in.Discount.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	in.ID = uuid.NewString()
	in.OwnerID = ownerID
	in.CreatedAt = time.Now()

	if err := pc.DB.Create(&in).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create product"})
	}

	return c.Status(201).JSON(in)
}

func (pc *ProductController) UpdateProduct(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var product model.Product
	if err := pc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&product).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}

	var in model.Product
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}
	if in.Price < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "price must not be negative"})
	}
	if err := in.Discount.Validate(); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	product.Name = in.Name
	product.Price = in.Price
	product.Stock = in.Stock
	product.CategoryID = in.CategoryID
	product.ImageURL = in.ImageURL
	product.Discount = in.Discount

	if err := pc.DB.Save(&product).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update product"})
	}

	return c.JSON(product)
}

func (pc *ProductController) DeleteProduct(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var product model.Product
	if err := pc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&product).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "product not found"})
	}

	if err := pc.DB.Delete(&product).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete product"})
	}

	return c.SendStatus(204)
}

// ===== categories =====

func (pc *ProductController) ListCategories(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var categories []model.Category
	if err := pc.DB.Where("owner_id = ?", ownerID).Order("name").Find(&categories).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch categories"})
	}

	return c.JSON(categories)
}

func (pc *ProductController) CreateCategory(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var in model.Category
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	in.ID = uuid.NewString()
	in.OwnerID = ownerID
	in.CreatedAt = time.Now()

	if err := pc.DB.Create(&in).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create category"})
	}

	return c.Status(201).JSON(in)
}

func (pc *ProductController) UpdateCategory(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var category model.Category
	if err := pc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&category).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "category not found"})
	}

	var in model.Category
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	category.Name = in.Name
	if err := pc.DB.Save(&category).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update category"})
	}

	return c.JSON(category)
}

func (pc *ProductController) DeleteCategory(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var category model.Category
	if err := pc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&category).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "category not found"})
	}

	if err := pc.DB.Delete(&category).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete category"})
	}

	return c.SendStatus(204)
}
