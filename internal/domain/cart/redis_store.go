// internal/domain/cart/redis_store.go
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/your-org/storefront-backend/internal/domain/catalog"
	"github.com/your-org/storefront-backend/internal/pkg/apperrors"
)

// RedisStore keeps each shopper's cart as a JSON blob with a session TTL.
// The blob carries the id counter alongside the lines so ids stay unique for
// the life of the session even across removals.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

type redisCart struct {
	Items  Snapshot `json:"items"`
	NextID uint     `json:"next_id"`
}

// NewRedisStore creates a Redis-backed cart store.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func cartKey(memberID uint) string {
	return fmt.Sprintf("cart:member:%d", memberID)
}

func (s *RedisStore) load(ctx context.Context, memberID uint) (*redisCart, error) {
	data, err := s.client.Get(ctx, cartKey(memberID)).Result()
	if err == redis.Nil {
		return &redisCart{NextID: 1}, nil
	}
	if err != nil {
		return nil, apperrors.ServerError("failed to load cart", err)
	}

	var c redisCart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, apperrors.ServerError("failed to decode cart", err)
	}
	return &c, nil
}

func (s *RedisStore) save(ctx context.Context, memberID uint, c *redisCart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return apperrors.ServerError("failed to encode cart", err)
	}
	if err := s.client.Set(ctx, cartKey(memberID), data, s.ttl).Err(); err != nil {
		return apperrors.ServerError("failed to save cart", err)
	}
	return nil
}

// List returns the shopper's current snapshot.
func (s *RedisStore) List(ctx context.Context, memberID uint) (Snapshot, error) {
	c, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if c.Items == nil {
		return Snapshot{}, nil
	}
	return c.Items, nil
}

// Append adds a new line for the product with quantity 1.
func (s *RedisStore) Append(ctx context.Context, memberID uint, product catalog.Product) (Item, error) {
	c, err := s.load(ctx, memberID)
	if err != nil {
		return Item{}, err
	}

	item := Item{ID: c.NextID, Quantity: 1, Product: product}
	c.NextID++
	c.Items = append(c.Items, item)

	if err := s.save(ctx, memberID, c); err != nil {
		return Item{}, err
	}
	return item, nil
}

// UpdateQuantity sets the quantity of one line.
func (s *RedisStore) UpdateQuantity(ctx context.Context, memberID uint, itemID uint, quantity int) (Snapshot, error) {
	c, err := s.load(ctx, memberID)
	if err != nil {
		return nil, err
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items[i].Quantity = quantity
			if err := s.save(ctx, memberID, c); err != nil {
				return nil, err
			}
			return c.Items, nil
		}
	}
	return nil, apperrors.NotFound("cart item %d not found", itemID)
}

// Remove deletes one line.
func (s *RedisStore) Remove(ctx context.Context, memberID uint, itemID uint) error {
	c, err := s.load(ctx, memberID)
	if err != nil {
		return err
	}
	if len(c.Items) == 0 {
		return apperrors.NotFound("cart is empty")
	}

	for i := range c.Items {
		if c.Items[i].ID == itemID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return s.save(ctx, memberID, c)
		}
	}
	return apperrors.NotFound("cart item %d not found", itemID)
}
