// Package store is the persistence layer for committed sales. Everything
// that writes stock goes through CommitTransaction; no other code path in
// the service touches the stock column.
package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pos-service/model"
)

var (
	// ErrCommitConflict is a storage-layer rejection of the atomic batch,
	// typically a duplicate idempotency key. The cashier can retry; the
	// client keeps its cart.
	ErrCommitConflict = errors.New("transaction commit conflict")

	// ErrProductNotFound means a line referenced a product that does not
	// exist for this owner. The whole commit rolls back.
	ErrProductNotFound = errors.New("product not found")

	ErrTransactionNotFound = errors.New("transaction not found")
)

// CommitTransaction persists the request as an immutable transaction:
// one header insert, one insert per item and one stock decrement per item,
// all inside a single database transaction. If any statement fails nothing
// is kept: no orphan header, no orphan stock decrement.
//
// Stock has no floor: a sale that drives stock negative is committed and
// left for inventory to reconcile, because at the till it already happened.
func CommitTransaction(ctx context.Context, db *gorm.DB, ownerID string, req *model.TransactionRequest, idempotencyKey string) (*model.Transaction, error) {
	createdAt := req.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	trx := model.Transaction{
		ID:            uuid.NewString(),
		OwnerID:       ownerID,
		CustomerID:    req.CustomerID,
		Total:         req.Total,
		TotalDiscount: req.TotalDiscount,
		AmountPaid:    req.AmountPaid,
		Change:        req.Change,
		PaymentMethod: req.PaymentMethod,
		CreatedAt:     createdAt,
	}
	if idempotencyKey != "" {
		trx.IdempotencyKey = &idempotencyKey
	}

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&trx).Error; err != nil {
			return err
		}
		for i, it := range req.Items {
			item := model.TransactionItem{
				ID:            uuid.NewString(),
				TransactionID: trx.ID,
				Seq:           i,
				ProductID:     it.ProductID,
				Name:          it.Name,
				Price:         it.Price,
				Quantity:      it.Quantity,
				Discount:      it.Discount,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}

			res := tx.Model(&model.Product{}).
				Where("id = ? AND owner_id = ?", it.ProductID, ownerID).
				UpdateColumn("stock", gorm.Expr("stock - ?", it.Quantity))
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 0 {
				return fmt.Errorf("%w: %s", ErrProductNotFound, it.ProductID)
			}
		}
		return nil
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, fmt.Errorf("%w: %v", ErrCommitConflict, err)
		}
		return nil, err
	}

	return FindTransaction(ctx, db, ownerID, trx.ID)
}

// FindTransaction loads one transaction with its items in cart order and the
// customer's display fields joined. A customer deleted after the sale just
// renders as no customer.
func FindTransaction(ctx context.Context, db *gorm.DB, ownerID, id string) (*model.Transaction, error) {
	var trx model.Transaction
	err := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("id = ? AND owner_id = ?", id, ownerID).
		First(&trx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	attachCustomer(ctx, db, &trx)
	return &trx, nil
}

// FindByIdempotencyKey returns the transaction a previous commit recorded
// under the given key, if any.
func FindByIdempotencyKey(ctx context.Context, db *gorm.DB, ownerID, key string) (*model.Transaction, error) {
	var trx model.Transaction
	err := db.WithContext(ctx).
		Where("idempotency_key = ? AND owner_id = ?", key, ownerID).
		First(&trx).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}
	return FindTransaction(ctx, db, ownerID, trx.ID)
}

// ListTransactions returns the owner's transactions, newest first, with
// items and customer fields joined.
func ListTransactions(ctx context.Context, db *gorm.DB, ownerID string) ([]model.Transaction, error) {
	var list []model.Transaction
	err := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("seq") }).
		Where("owner_id = ?", ownerID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, err
	}
	for i := range list {
		attachCustomer(ctx, db, &list[i])
	}
	return list, nil
}

// Summary aggregates sales for reporting (data only, no rendering).
type Summary struct {
	Count         int64 `json:"count"`
	Total         int64 `json:"total"`
	TotalDiscount int64 `json:"total_discount"`
}

// DailySummary reports today's sales for the owner, from local midnight.
func DailySummary(ctx context.Context, db *gorm.DB, ownerID string, now time.Time) (*Summary, error) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var s Summary
	err := db.WithContext(ctx).Model(&model.Transaction{}).
		Select("COUNT(*) AS count, COALESCE(SUM(total), 0) AS total, COALESCE(SUM(total_discount), 0) AS total_discount").
		Where("owner_id = ? AND created_at >= ?", ownerID, start).
		Scan(&s).Error
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func attachCustomer(ctx context.Context, db *gorm.DB, trx *model.Transaction) {
	if trx.CustomerID == "" {
		return
	}
	var cust model.Customer
	if err := db.WithContext(ctx).Where("id = ?", trx.CustomerID).First(&cust).Error; err != nil {
		return // dangling reference, render without customer
	}
	trx.CustomerName = cust.Name
	trx.CustomerPhone = cust.Phone
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
