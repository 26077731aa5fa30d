package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/config"
	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
)

const (
	prefsKeyPrefix = "shoppulse:prefs:"
	prefsTTL       = 90 * 24 * time.Hour
)

// PrefsService persists small per-device settings (theme, last store) in
// Redis, keyed by device id.
type PrefsService struct {
	client *redis.Client
}

func NewPrefsService(client *redis.Client) *PrefsService {
	return &PrefsService{client: client}
}

// Get returns the stored preferences, or defaults when nothing is stored.
func (s *PrefsService) Get(ctx context.Context, deviceID string) (models.DevicePrefs, error) {
	raw, err := s.client.Get(ctx, prefsKeyPrefix+deviceID).Result()
	if err == redis.Nil {
		return models.DevicePrefs{Theme: "light"}, nil
	}
	if err != nil {
		return models.DevicePrefs{}, err
	}
	var prefs models.DevicePrefs
	if err := json.Unmarshal([]byte(raw), &prefs); err != nil {
		return models.DevicePrefs{Theme: "light"}, nil
	}
	return prefs, nil
}

// Set stores the preferences with a sliding expiry.
func (s *PrefsService) Set(ctx context.Context, deviceID string, prefs models.DevicePrefs) error {
	raw, err := json.Marshal(prefs)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, prefsKeyPrefix+deviceID, raw, prefsTTL).Err()
}

// Global instance
var prefsService *PrefsService

func GetPrefsService() *PrefsService {
	if prefsService == nil {
		prefsService = NewPrefsService(config.RedisClient)
	}
	return prefsService
}
