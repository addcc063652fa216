package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	productsKey = "products:all"
	productsTTL = 5 * time.Minute
)

// Cache is an optional Redis read-through cache for the public product
// list. A nil *Cache is valid and disables caching entirely.
type Cache struct {
	rdb *redis.Client
}

func Connect(addr string) (*Cache, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	log.Info().Str("addr", addr).Msg("Redis connected")
	return &Cache{rdb: rdb}, nil
}

// GetProducts returns the cached product-list body, if any. Cache errors
// are treated as misses so Redis outages never fail a read.
func (c *Cache) GetProducts(ctx context.Context) ([]byte, bool) {
	if c == nil {
		return nil, false
	}
	body, err := c.rdb.Get(ctx, productsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Msg("redis get failed")
		}
		return nil, false
	}
	return body, true
}

func (c *Cache) SetProducts(ctx context.Context, body []byte) {
	if c == nil {
		return
	}
	if err := c.rdb.Set(ctx, productsKey, body, productsTTL).Err(); err != nil {
		log.Warn().Err(err).Msg("redis set failed")
	}
}

// InvalidateProducts drops the cached list after any product mutation.
func (c *Cache) InvalidateProducts(ctx context.Context) {
	if c == nil {
		return
	}
	if err := c.rdb.Del(ctx, productsKey).Err(); err != nil {
		log.Warn().Err(err).Msg("redis del failed")
	}
}
