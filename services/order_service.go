package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"gorm.io/datatypes"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/checkout"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

// OrderService records confirmed checkouts locally and serves the history
// and stats views from those records.
type OrderService struct{}

func NewOrderService() *OrderService {
	return &OrderService{}
}

// RecordOrder writes one history row for a confirmed checkout. Snapshots
// keep the record self-contained.
func (s *OrderService) RecordOrder(ctx context.Context, user models.UserProfile, summary *checkout.Summary) (*models.OrderRecord, error) {
	addressJSON := datatypes.JSON([]byte(`{}`))
	if summary.Body.Header.DeliveryAddress != "" {
		addressJSON = datatypes.JSON([]byte(summary.Body.Header.DeliveryAddress))
	}

	linesJSON, err := json.Marshal(summary.Lines)
	if err != nil {
		return nil, err
	}

	record := &models.OrderRecord{
		UserID:          user.ID,
		CompanyID:       summary.Body.Header.CompanyID,
		BasketID:        summary.BasketID,
		ShippingID:      summary.Body.Header.ShippingID,
		PaymentMode:     summary.PaymentMode,
		Total:           summary.Total,
		Status:          "paid",
		ItemCount:       len(summary.Lines),
		AddressSnapshot: addressJSON,
		LinesSnapshot:   datatypes.JSON(linesJSON),
	}

	if err := config.OrdersGorm.WithContext(ctx).Create(record).Error; err != nil {
		log.Printf("[order.record] failed to record order for basket %s: %v", summary.BasketID, err)
		return nil, err
	}

	log.Printf("[order.record] ✅ recorded order %s (basket %s) for user %s", record.ID, summary.BasketID, user.ID)
	return record, nil
}

// GetOrders returns one page of a user's order history, newest first.
func (s *OrderService) GetOrders(ctx context.Context, userID string, page, limit int) ([]models.OrderHistoryRow, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := config.OrdersGorm.WithContext(ctx).
		Model(&models.OrderRecord{}).
		Where("user_id = ?", userID).
		Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.OrderRecord
	if err := config.OrdersGorm.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&records).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]models.OrderHistoryRow, len(records))
	for i, r := range records {
		rows[i] = models.OrderHistoryRow{
			ID:          r.ID.String(),
			BasketID:    r.BasketID,
			PaymentMode: r.PaymentMode,
			Total:       r.Total,
			Status:      r.Status,
			ItemCount:   r.ItemCount,
			CreatedAt:   r.CreatedAt,
		}
	}
	return rows, total, nil
}

// GetOrder loads one order record, scoped to its owner.
func (s *OrderService) GetOrder(ctx context.Context, userID, orderID string) (*models.OrderRecord, error) {
	var record models.OrderRecord
	if err := config.OrdersGorm.WithContext(ctx).
		Where("id = ? AND user_id = ?", orderID, userID).
		First(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// GetOrderStats aggregates a user's history with one raw query on the pgx
// pool.
func (s *OrderService) GetOrderStats(ctx context.Context, userID string) (*models.OrderStatsResponse, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	lastMonthStart := monthStart.AddDate(0, -1, 0)

	const query = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $2),
			COUNT(*) FILTER (WHERE created_at >= $3 AND created_at < $2),
			COALESCE(SUM(total), 0),
			COALESCE(AVG(total), 0)
		FROM orders
		WHERE user_id = $1`

	var stats models.OrderStatsResponse
	if err := config.OrdersDB.QueryRow(ctx, query, userID, monthStart, lastMonthStart).Scan(
		&stats.TotalOrders,
		&stats.CurrentMonthTotal,
		&stats.LastMonthTotal,
		&stats.TotalRevenue,
		&stats.AverageOrderValue,
	); err != nil {
		log.Printf("[order.stats] query failed for user %s: %v", userID, err)
		return nil, err
	}
	return &stats, nil
}

// Global instance
var orderService *OrderService

func GetOrderService() *OrderService {
	if orderService == nil {
		orderService = NewOrderService()
	}
	return orderService
}
