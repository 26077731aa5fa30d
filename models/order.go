package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// OrderRecord is the local history row written after the commerce API
// accepts a basket. Address and lines are stored as JSON snapshots so the
// record stays readable even if the upstream data changes later.
type OrderRecord struct {
	ID              uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	UserID          string         `json:"user_id" gorm:"type:varchar(64);not null;index"`
	CompanyID       string         `json:"company_id" gorm:"type:varchar(64);not null"`
	BasketID        string         `json:"basket_id" gorm:"type:varchar(64);not null"`
	ShippingID      string         `json:"shipping_id" gorm:"type:varchar(64)"`
	PaymentMode     string         `json:"payment_mode" gorm:"type:varchar(50)"`
	Total           float64        `json:"total"`
	Status          string         `json:"status" gorm:"type:varchar(20);default:'pending'"`
	ItemCount       int            `json:"item_count"`
	AddressSnapshot datatypes.JSON `json:"address_snapshot,omitempty"`
	LinesSnapshot   datatypes.JSON `json:"lines_snapshot,omitempty"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
}

func (o *OrderRecord) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.Must(uuid.NewV7())
	}
	return nil
}

func (OrderRecord) TableName() string {
	return "orders"
}

// OrderHistoryRow is the list-view projection of an OrderRecord.
type OrderHistoryRow struct {
	ID          string    `json:"id"`
	BasketID    string    `json:"basket_id"`
	PaymentMode string    `json:"payment_mode"`
	Total       float64   `json:"total"`
	Status      string    `json:"status"`
	ItemCount   int       `json:"item_count"`
	CreatedAt   time.Time `json:"created_at"`
}

// OrderStatsResponse summarises locally recorded orders.
type OrderStatsResponse struct {
	TotalOrders       int     `json:"total_orders"`
	CurrentMonthTotal int     `json:"current_month_total"`
	LastMonthTotal    int     `json:"last_month_total"`
	TotalRevenue      float64 `json:"total_revenue"`
	AverageOrderValue float64 `json:"average_order_value"`
}
