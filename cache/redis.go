package cache

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

var Ctx = context.Background()
var Redis *redis.Client

const transactionsTTL = 5 * time.Minute

func ConnectRedis(addr string) {
	Redis = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "",
		DB:       0,
	})

	if _, err := Redis.Ping(Ctx).Result(); err != nil {
		log.Fatalf("Failed to connect Redis: %v", err)
	}

	log.Println("Redis connected (pos-service)")
}

func TransactionsKey(ownerID string) string {
	return fmt.Sprintf("transactions:%s", ownerID)
}

// GetTransactions returns the cached list payload, or "" on miss / no redis.
func GetTransactions(ownerID string) string {
	if Redis == nil {
		return ""
	}
	val, err := Redis.Get(Ctx, TransactionsKey(ownerID)).Result()
	if err != nil {
		return ""
	}
	return val
}

func SetTransactions(ownerID, payload string) {
	if Redis == nil {
		return
	}
	if err := Redis.Set(Ctx, TransactionsKey(ownerID), payload, transactionsTTL).Err(); err != nil {
		log.Printf("failed to cache transactions for %s: %v", ownerID, err)
	}
}

// InvalidateTransactions clears the owner's list cache after a write.
func InvalidateTransactions(ownerID string) {
	if Redis == nil {
		return
	}
	Redis.Del(Ctx, TransactionsKey(ownerID))
}

// ReserveIdempotencyKey claims the checkout key with SETNX. Returns false if
// another commit already holds it. With redis down the reservation is
// skipped; the unique index on the transaction row still catches replays.
func ReserveIdempotencyKey(ownerID, key string, ttl time.Duration) bool {
	if Redis == nil {
		return true
	}
	ok, err := Redis.SetNX(Ctx, fmt.Sprintf("idem:%s:%s", ownerID, key), "1", ttl).Result()
	if err != nil {
		log.Printf("idempotency reserve failed: %v", err)
		return true
	}
	return ok
}

// ReleaseIdempotencyKey frees a reservation after a failed commit so the
// cashier can retry with the same key.
func ReleaseIdempotencyKey(ownerID, key string) {
	if Redis == nil {
		return
	}
	Redis.Del(Ctx, fmt.Sprintf("idem:%s:%s", ownerID, key))
}
