package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/muhammadheryan/warehouse/model"
	"github.com/redis/go-redis/v9"
)

// CartRepository keeps staged carts in Redis, one key per customer.
type CartRepository interface {
	Get(ctx context.Context, customerID uint64) (*model.Cart, error)
	Save(ctx context.Context, cart *model.Cart) error
	Delete(ctx context.Context, customerID uint64) error
}

type redisCart struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCartRepository(client *redis.Client, ttl time.Duration) CartRepository {
	return &redisCart{client: client, ttl: ttl}
}

func key(customerID uint64) string {
	return fmt.Sprintf("cart:customer:%d", customerID)
}

// Get returns an empty cart when nothing is staged.
func (r *redisCart) Get(ctx context.Context, customerID uint64) (*model.Cart, error) {
	data, err := r.client.Get(ctx, key(customerID)).Bytes()
	if err == redis.Nil {
		return &model.Cart{CustomerID: customerID, Items: []model.CartItem{}}, nil
	}
	if err != nil {
		return nil, err
	}

	var c model.Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *redisCart) Save(ctx context.Context, c *model.Cart) error {
	c.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(c)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key(c.CustomerID), data, r.ttl).Err()
}

func (r *redisCart) Delete(ctx context.Context, customerID uint64) error {
	return r.client.Del(ctx, key(customerID)).Err()
}
