package main

import (
	"log"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pos-service/cache"
	"pos-service/kafka"
	"pos-service/middleware"
	"pos-service/model"
	"pos-service/routes"
)

var DB *gorm.DB

// ======================
// INIT DATABASE
// ======================
func initDB() {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "postgres")
	pass := getEnv("DB_PASS", "postgres")
	name := getEnv("DB_NAME", "posdb")

	dsn := "host=" + host +
		" user=" + user +
		" password=" + pass +
		" dbname=" + name +
		" port=" + port +
		" sslmode=disable TimeZone=UTC"

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal("failed to connect pos db:", err)
	}

	// AutoMigrate models
	if err := DB.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Product{},
		&model.Customer{},
		&model.StoreSetting{},
		&model.Transaction{},
		&model.TransactionItem{},
	); err != nil {
		log.Fatal(err)
	}
}

func main() {
	initDB()

	cache.ConnectRedis(getEnv("REDIS_ADDR", "localhost:6379"))
	kafka.InitProducer(os.Getenv("KAFKA_BROKER"))

	jwtSecret := getEnv("JWT_SECRET", "dev-secret")

	app := fiber.New()
	app.Use(logger.New())

	authMiddleware := middleware.AuthRequired(jwtSecret)

	routes.RegisterAuthRoutes(app, DB, jwtSecret)
	routes.RegisterProductRoutes(app, DB, authMiddleware)
	routes.RegisterCustomerRoutes(app, DB, authMiddleware)
	routes.RegisterTransactionRoutes(app, DB, authMiddleware)
	routes.RegisterSettingRoutes(app, DB, authMiddleware)

	port := getEnv("PORT", "3000")
	log.Println("HTTP pos server running on port " + port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatal("fiber error:", err)
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
