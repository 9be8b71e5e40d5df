package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pos-service/model"
)

const owner = "owner-1"

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&model.Product{},
		&model.Customer{},
		&model.Transaction{},
		&model.TransactionItem{},
	))
	return db
}

func seedProducts(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&model.Product{
		ID: "p-kopi", OwnerID: owner, Name: "Kopi Susu", Price: 10000, Stock: 10,
		Discount: &model.Discount{Type: model.DiscountPercentage, Amount: 10},
	}).Error)
	require.NoError(t, db.Create(&model.Product{
		ID: "p-roti", OwnerID: owner, Name: "Roti Bakar", Price: 5000, Stock: 5,
	}).Error)
}

func checkoutRequest() *model.TransactionRequest {
	return &model.TransactionRequest{
		Items: []model.TransactionRequestItem{
			{ProductID: "p-kopi", Name: "Kopi Susu", Price: 10000, Quantity: 2,
				Discount: &model.Discount{Type: model.DiscountPercentage, Amount: 10}},
			{ProductID: "p-roti", Name: "Roti Bakar", Price: 5000, Quantity: 1},
		},
		Total:         23000,
		TotalDiscount: 2000,
		AmountPaid:    25000,
		Change:        2000,
		PaymentMethod: model.PaymentCash,
		CreatedAt:     time.Now(),
	}
}

func stockOf(t *testing.T, db *gorm.DB, id string) int {
	t.Helper()
	var p model.Product
	require.NoError(t, db.Where("id = ?", id).First(&p).Error)
	return p.Stock
}

func TestCommitTransaction(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	trx, err := CommitTransaction(context.Background(), db, owner, checkoutRequest(), "")
	require.NoError(t, err)

	assert.NotEmpty(t, trx.ID)
	assert.Equal(t, int64(23000), trx.Total)
	assert.Equal(t, int64(2000), trx.TotalDiscount)
	assert.Equal(t, int64(2000), trx.Change)
	assert.Equal(t, model.PaymentCash, trx.PaymentMethod)

	// items come back in cart order with frozen pricing facts
	require.Len(t, trx.Items, 2)
	assert.Equal(t, "p-kopi", trx.Items[0].ProductID)
	assert.Equal(t, int64(10000), trx.Items[0].Price)
	require.NotNil(t, trx.Items[0].Discount)
	assert.Equal(t, model.DiscountPercentage, trx.Items[0].Discount.Type)
	assert.Equal(t, "p-roti", trx.Items[1].ProductID)

	// stock decremented per line
	assert.Equal(t, 8, stockOf(t, db, "p-kopi"))
	assert.Equal(t, 4, stockOf(t, db, "p-roti"))
}

// A failure on any line must leave no trace: no orphan header, no orphan
// item rows, no stock decrement from the lines that came before the failure.
func TestCommitAtomicity(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	req := checkoutRequest()
	req.Items[1].ProductID = "p-missing"

	_, err := CommitTransaction(context.Background(), db, owner, req, "")
	require.ErrorIs(t, err, ErrProductNotFound)

	var headers, items int64
	require.NoError(t, db.Model(&model.Transaction{}).Count(&headers).Error)
	require.NoError(t, db.Model(&model.TransactionItem{}).Count(&items).Error)
	assert.Equal(t, int64(0), headers)
	assert.Equal(t, int64(0), items)
	assert.Equal(t, 10, stockOf(t, db, "p-kopi"))
}

func TestCommitRejectsForeignOwnersProduct(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	_, err := CommitTransaction(context.Background(), db, "someone-else", checkoutRequest(), "")
	require.ErrorIs(t, err, ErrProductNotFound)
	assert.Equal(t, 10, stockOf(t, db, "p-kopi"))
}

// A replayed idempotency key must not charge stock twice.
func TestCommitIdempotencyKeyConflict(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	first, err := CommitTransaction(context.Background(), db, owner, checkoutRequest(), "idem-1")
	require.NoError(t, err)

	_, err = CommitTransaction(context.Background(), db, owner, checkoutRequest(), "idem-1")
	require.ErrorIs(t, err, ErrCommitConflict)

	assert.Equal(t, 8, stockOf(t, db, "p-kopi"))
	assert.Equal(t, 4, stockOf(t, db, "p-roti"))

	existing, err := FindByIdempotencyKey(context.Background(), db, owner, "idem-1")
	require.NoError(t, err)
	assert.Equal(t, first.ID, existing.ID)
}

func TestCommitsWithoutKeyAreIndependent(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	_, err := CommitTransaction(context.Background(), db, owner, checkoutRequest(), "")
	require.NoError(t, err)
	_, err = CommitTransaction(context.Background(), db, owner, checkoutRequest(), "")
	require.NoError(t, err)

	assert.Equal(t, 6, stockOf(t, db, "p-kopi"))
}

// Stock has no floor; the sale already happened at the till.
func TestCommitAllowsNegativeStock(t *testing.T) {
	db := setupDB(t)
	require.NoError(t, db.Create(&model.Product{
		ID: "p-low", OwnerID: owner, Name: "Es Teh", Price: 3000, Stock: 1,
	}).Error)

	req := &model.TransactionRequest{
		Items:         []model.TransactionRequestItem{{ProductID: "p-low", Name: "Es Teh", Price: 3000, Quantity: 5}},
		Total:         15000,
		AmountPaid:    15000,
		PaymentMethod: model.PaymentCash,
	}
	_, err := CommitTransaction(context.Background(), db, owner, req, "")
	require.NoError(t, err)
	assert.Equal(t, -4, stockOf(t, db, "p-low"))
}

func TestFindTransactionJoinsCustomer(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)
	require.NoError(t, db.Create(&model.Customer{
		ID: "cust-1", OwnerID: owner, Name: "Budi", Phone: "0812",
	}).Error)

	req := checkoutRequest()
	req.CustomerID = "cust-1"

	trx, err := CommitTransaction(context.Background(), db, owner, req, "")
	require.NoError(t, err)
	assert.Equal(t, "Budi", trx.CustomerName)
	assert.Equal(t, "0812", trx.CustomerPhone)
}

// A customer deleted after the sale renders as no customer, not an error.
func TestFindTransactionToleratesDanglingCustomer(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)
	require.NoError(t, db.Create(&model.Customer{ID: "cust-1", OwnerID: owner, Name: "Budi"}).Error)

	req := checkoutRequest()
	req.CustomerID = "cust-1"
	trx, err := CommitTransaction(context.Background(), db, owner, req, "")
	require.NoError(t, err)

	require.NoError(t, db.Delete(&model.Customer{}, "id = ?", "cust-1").Error)

	got, err := FindTransaction(context.Background(), db, owner, trx.ID)
	require.NoError(t, err)
	assert.Equal(t, "cust-1", got.CustomerID)
	assert.Empty(t, got.CustomerName)
}

func TestListTransactionsNewestFirst(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	older := checkoutRequest()
	older.CreatedAt = time.Now().Add(-time.Hour)
	first, err := CommitTransaction(context.Background(), db, owner, older, "")
	require.NoError(t, err)
	second, err := CommitTransaction(context.Background(), db, owner, checkoutRequest(), "")
	require.NoError(t, err)

	list, err := ListTransactions(context.Background(), db, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	require.Len(t, list[0].Items, 2)
}

func TestDailySummary(t *testing.T) {
	db := setupDB(t)
	seedProducts(t, db)

	_, err := CommitTransaction(context.Background(), db, owner, checkoutRequest(), "")
	require.NoError(t, err)

	yesterday := checkoutRequest()
	yesterday.CreatedAt = time.Now().Add(-48 * time.Hour)
	_, err = CommitTransaction(context.Background(), db, owner, yesterday, "")
	require.NoError(t, err)

	s, err := DailySummary(context.Background(), db, owner, time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.Count)
	assert.Equal(t, int64(23000), s.Total)
	assert.Equal(t, int64(2000), s.TotalDiscount)
}
