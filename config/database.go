package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// OrdersDB is the raw pgx pool used by aggregate queries.
	OrdersDB *pgxpool.Pool

	// OrdersGorm is the ORM handle used by the order history layer.
	OrdersGorm *gorm.DB
)

func InitDB() {
	initPgx()
	initGORM()
}

func initPgx() {
	ordersURL := os.Getenv("ORDERS_DB_URL")
	if ordersURL == "" {
		ordersURL = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/shoppulse_orders?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ ORDERS_DB_URL not set, using local default")
	}

	var err error
	OrdersDB, err = pgxpool.New(context.Background(), ordersURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to orders database: %v", err)
	}

	if err = OrdersDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Orders database ping failed: %v", err)
	}

	log.Println("✅ Orders database connected (pgx)")
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var ordersDSN string
	if os.Getenv("ORDERS_DB_URL") != "" {
		ordersDSN = os.Getenv("ORDERS_DB_URL")
	} else {
		ordersDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=shoppulse_orders port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("⚠️ ORDERS_DB_URL not set, using local GORM default")
	}

	var err error
	OrdersGorm, err = gorm.Open(postgres.Open(ordersDSN), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to orders database with GORM: %v", err)
	}
	if sqlDB, err := OrdersGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Orders database connected (GORM)")
}

func CloseDB() {
	if OrdersDB != nil {
		OrdersDB.Close()
		log.Println("✅ Orders database connection closed (pgx)")
	}

	if OrdersGorm != nil {
		sqlDB, _ := OrdersGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Orders database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout (bumped from 5s for Neon cold starts)
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
