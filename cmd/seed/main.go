package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
)

// init loads environment variables
func init() {
	_ = godotenv.Load()
}

// main migrates the local orders database and optionally seeds demo rows
// Usage: go run cmd/seed/main.go [-demo] [-user <id>]
// This is a standalone CLI tool, not part of the main application
func main() {
	demo := flag.Bool("demo", false, "insert demo orders after migrating")
	demoUser := flag.String("user", "demo-user", "user ID to attach demo orders to")
	flag.Parse()

	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("SHOPPULSE STOREFRONT - Orders DB Seeder")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println()

	// Initialize database connections
	config.InitDB()
	defer config.CloseDB()
	log.Println("✓ Connected to databases")

	if err := config.OrdersGorm.AutoMigrate(&models.OrderRecord{}); err != nil {
		log.Fatalf("Failed to migrate orders table: %v", err)
	}
	log.Println("✓ Orders table migrated")

	if !*demo {
		fmt.Println()
		fmt.Println("✅ Migration complete (run with -demo to insert sample orders)")
		return
	}

	orders := demoOrders(*demoUser)
	for i := range orders {
		if err := config.OrdersGorm.Create(&orders[i]).Error; err != nil {
			log.Fatalf("Failed to insert demo order %d: %v", i+1, err)
		}
	}

	fmt.Println()
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Println("✅ Demo Orders Created Successfully!")
	fmt.Println("════════════════════════════════════════════════════════════")
	fmt.Printf("User:   %s\n", *demoUser)
	fmt.Printf("Orders: %d\n", len(orders))
	fmt.Println()
	fmt.Println("Next steps:")
	fmt.Println("1. Start the server: go run main.go")
	fmt.Println("2. Fetch history at GET /api/v1/user/orders")
}

func demoOrders(userID string) []models.OrderRecord {
	address := mustJSON(models.Address{
		UserID:  userID,
		Contact: "Demo Customer",
		Phone1:  "+351 900 000 000",
		Address: "14 Harbour Lane",
		City:    "Lisbon",
	})

	beans := models.Item{ID: "itm-1", Name: "Espresso Beans 1kg", UnitPrice: 15.00}
	mug := models.Item{ID: "itm-2", Name: "Ceramic Mug", UnitPrice: 12.50}
	coldBrew := models.Item{ID: "itm-3", Name: "Cold Brew Bottle", UnitPrice: 18.90}

	now := time.Now()
	return []models.OrderRecord{
		{
			ID:              uuid.Must(uuid.NewV7()),
			UserID:          userID,
			CompanyID:       "demo-company",
			BasketID:        "demo-basket-1",
			PaymentMode:     "cash",
			Total:           42.50,
			Status:          "paid",
			ItemCount:       2,
			AddressSnapshot: address,
			LinesSnapshot: mustJSON([]models.CartLine{
				{Item: beans, Quantity: 2},
				{Item: mug, Quantity: 1},
			}),
			CreatedAt: now.AddDate(0, -1, -3),
		},
		{
			ID:              uuid.Must(uuid.NewV7()),
			UserID:          userID,
			CompanyID:       "demo-company",
			BasketID:        "demo-basket-2",
			PaymentMode:     "wallet",
			Total:           18.90,
			Status:          "paid",
			ItemCount:       1,
			AddressSnapshot: address,
			LinesSnapshot: mustJSON([]models.CartLine{
				{Item: coldBrew, Quantity: 1},
			}),
			CreatedAt: now.AddDate(0, 0, -2),
		},
	}
}

func mustJSON(v any) datatypes.JSON {
	b, err := json.Marshal(v)
	if err != nil {
		log.Fatalf("Failed to marshal demo data: %v", err)
	}
	return datatypes.JSON(b)
}
