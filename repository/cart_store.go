package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sportsstore-service/models"

	"github.com/redis/go-redis/v9"
)

// RedisCartStore keeps one JSON-encoded cart per session with a sliding TTL.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCartStore(client *redis.Client, ttl time.Duration) *RedisCartStore {
	return &RedisCartStore{client: client, ttl: ttl}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*models.Cart, error) {
	data, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.NewCart(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}

	cart := models.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, fmt.Errorf("decode cart: %w", err)
	}
	if cart.Lines == nil {
		cart.Lines = []models.CartLine{}
	}
	return cart, nil
}

func (s *RedisCartStore) Save(ctx context.Context, sessionID string, cart *models.Cart) error {
	cart.UpdatedAt = time.Now()
	data, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
