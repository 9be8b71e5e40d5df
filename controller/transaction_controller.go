package controller

import (
	"encoding/json"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pos-service/cache"
	"pos-service/kafka"
	"pos-service/model"
	"pos-service/pricing"
	"pos-service/receipt"
	"pos-service/store"
)

const idempotencyTTL = 24 * time.Hour

type TransactionController struct {
	DB *gorm.DB
}

func NewTransactionController(db *gorm.DB) *TransactionController {
	return &TransactionController{DB: db}
}

// Create commits a checkout. The body is the settled TransactionRequest; the
// totals are recomputed here from the item lines and must reconcile with the
// ones the client sent, so a tampered or stale payload never reaches the
// database. On any failure the client keeps its cart and may retry.
func (tc *TransactionController) Create(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	var req model.TransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid payload"})
	}

	if len(req.Items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "cart is empty"})
	}
	if req.PaymentMethod != model.PaymentCash && req.PaymentMethod != model.PaymentTransfer {
		return c.Status(400).JSON(fiber.Map{"error": "unknown payment method"})
	}

	var total, totalDiscount int64
	for _, it := range req.Items {
		if it.Quantity < 1 {
			return c.Status(400).JSON(fiber.Map{"error": "item quantity must be at least 1"})
		}
		if it.Price < 0 {
			return c.Status(400).JSON(fiber.Map{"error": "item price must not be negative"})
		}
		if err := it.Discount.Validate(); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		discounted, cut := pricing.Apply(it.Price, it.Discount)
		total += discounted * int64(it.Quantity)
		totalDiscount += cut * int64(it.Quantity)
	}
	if total != req.Total || totalDiscount != req.TotalDiscount {
		return c.Status(400).JSON(fiber.Map{"error": "totals do not reconcile with items"})
	}

	change := req.AmountPaid - total
	if req.PaymentMethod == model.PaymentCash && change < 0 {
		return c.Status(400).JSON(fiber.Map{"error": "amount paid is less than total"})
	}
	req.Change = change

	idemKey := c.Get("Idempotency-Key")
	if idemKey != "" {
		if !cache.ReserveIdempotencyKey(ownerID, idemKey, idempotencyTTL) {
			return tc.replay(c, ownerID, idemKey)
		}
	}

	trx, err := store.CommitTransaction(c.Context(), tc.DB, ownerID, &req, idemKey)
	if err != nil {
		if idemKey != "" && errors.Is(err, store.ErrCommitConflict) {
			return tc.replay(c, ownerID, idemKey)
		}
		if idemKey != "" {
			cache.ReleaseIdempotencyKey(ownerID, idemKey)
		}
		if errors.Is(err, store.ErrProductNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, store.ErrCommitConflict) {
			return c.Status(409).JSON(fiber.Map{"error": "transaction commit conflict"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to commit transaction"})
	}

	cache.InvalidateTransactions(ownerID)
	kafka.PublishSaleCompletedEvent(trx)

	return c.Status(201).JSON(trx)
}

// replay answers a duplicate checkout submission with the transaction the
// first submission committed, instead of charging stock twice.
func (tc *TransactionController) replay(c *fiber.Ctx, ownerID, idemKey string) error {
	existing, err := store.FindByIdempotencyKey(c.Context(), tc.DB, ownerID, idemKey)
	if err != nil {
		// reserved but not committed yet (or commit failed mid-flight)
		return c.Status(409).JSON(fiber.Map{"error": "checkout with this idempotency key is already in progress"})
	}
	return c.Status(409).JSON(fiber.Map{
		"error":       "duplicate checkout",
		"transaction": existing,
	})
}

func (tc *TransactionController) Get(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	trx, err := store.FindTransaction(c.Context(), tc.DB, ownerID, c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch transaction"})
	}

	return c.JSON(trx)
}

func (tc *TransactionController) List(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	if cached := cache.GetTransactions(ownerID); cached != "" {
		c.Set("Content-Type", "application/json")
		return c.SendString(cached)
	}

	list, err := store.ListTransactions(c.Context(), tc.DB, ownerID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch transactions"})
	}
	if list == nil {
		list = []model.Transaction{}
	}

	if payload, err := json.Marshal(list); err == nil {
		cache.SetTransactions(ownerID, string(payload))
	}

	return c.JSON(list)
}

func (tc *TransactionController) Receipt(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	trx, err := store.FindTransaction(c.Context(), tc.DB, ownerID, c.Params("id"))
	if err != nil {
		if errors.Is(err, store.ErrTransactionNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "transaction not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch transaction"})
	}

	return c.JSON(receipt.Project(trx))
}

func (tc *TransactionController) Summary(c *fiber.Ctx) error {
	ownerID := c.Locals("user_id").(string)

	summary, err := store.DailySummary(c.Context(), tc.DB, ownerID, time.Now())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "failed to fetch summary"})
	}

	return c.JSON(summary)
}
