package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos-service/model"
)

type SettingController struct {
	DB *gorm.DB
}

func NewSettingController(db *gorm.DB) *SettingController {
	return &SettingController{DB: db}
}

// Get returns the store settings, or an empty default when nothing was
// saved yet.
func (sc *SettingController) Get(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var setting model.StoreSetting
	err := sc.DB.Where("owner_id = ?", ownerID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(model.StoreSetting{OwnerID: ownerID})
	}
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch settings"})
	}

	return c.JSON(setting)
}

// Update upserts the single settings row for this store.
func (sc *SettingController) Update(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var in model.StoreSetting
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	var setting model.StoreSetting
	err := sc.DB.Where("owner_id = ?", ownerID).First(&setting).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		setting = model.StoreSetting{ID: uuid.NewString(), OwnerID: ownerID}
	} else if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch settings"})
	}

	setting.StoreName = in.StoreName
	setting.Address = in.Address
	setting.Phone = in.Phone
	setting.LogoURL = in.LogoURL
	setting.Footer = in.Footer
	setting.Theme = in.Theme
	setting.Receipt = in.Receipt
	setting.UpdatedAt = time.Now()

	if err := sc.DB.Save(&setting).Error; err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to save settings"})
	}

	return c.JSON(setting)
}
