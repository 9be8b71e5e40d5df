package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos-service/model"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

func (cc *CustomerController) List(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var customers []model.Customer
	if err := cc.DB.Where("owner_id = ?", ownerID).Order("name").Find(&customers).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch customers"})
	}

	return c.JSON(customers)
}

func (cc *CustomerController) Get(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var customer model.Customer
	if err := cc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&customer).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "customer not found"})
	}

	return c.JSON(customer)
}

func (cc *CustomerController) Create(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var in model.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	in.ID = uuid.NewString()
	in.OwnerID = ownerID
	in.CreatedAt = time.Now()

	if err := cc.DB.Create(&in).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to create customer"})
	}

	return c.Status(201).JSON(in)
}

func (cc *CustomerController) Update(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var customer model.Customer
	if err := cc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&customer).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "customer not found"})
	}

	var in model.Customer
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}
	if in.Name == "" {
		return c.Status(400).JSON(fiber.Map{"error": "name is required"})
	}

	customer.Name = in.Name
	customer.Phone = in.Phone

	if err := cc.DB.Save(&customer).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to update customer"})
	}

	return c.JSON(customer)
}

// Delete removes the customer record. Historical transactions keep their
// customer id; reads tolerate the dangling reference.
func (cc *CustomerController) Delete(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var customer model.Customer
	if err := cc.DB.Where("id = ? AND owner_id = ?", c.Params("id"), ownerID).First(&customer).Error; err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "customer not found"})
	}

	if err := cc.DB.Delete(&customer).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to delete customer"})
	}

	return c.SendStatus(204)
}
