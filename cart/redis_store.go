package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ShopPulse-Commerce/shoppulse-storefront-backend/models"
	"github.com/redis/go-redis/v9"
)

// cartKeyPrefix mirrors the mobile app's "@ShopPulse:cart" storage key.
const cartKeyPrefix = "shoppulse:cart:"

// RedisStore keeps each user's cart as a single JSON document in Redis.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, userID string) ([]models.CartLine, error) {
	raw, err := s.client.Get(ctx, cartKeyPrefix+userID).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart for %s: %w", userID, err)
	}
	var lines []models.CartLine
	if err := json.Unmarshal(raw, &lines); err != nil {
		return nil, fmt.Errorf("decode stored cart for %s: %w", userID, err)
	}
	return lines, nil
}

func (s *RedisStore) Save(ctx context.Context, userID string, lines []models.CartLine) error {
	raw, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("encode cart for %s: %w", userID, err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+userID, raw, 0).Err(); err != nil {
		return fmt.Errorf("save cart for %s: %w", userID, err)
	}
	return nil
}

func (s *RedisStore) Erase(ctx context.Context, userID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+userID).Err(); err != nil {
		return fmt.Errorf("erase cart for %s: %w", userID, err)
	}
	return nil
}
