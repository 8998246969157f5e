package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var ErrCacheMiss error = errors.New("cache miss")

const (
	lockPrefix  = "moonpump:lock:"
	pricePrefix = "moonpump:price:"
)

// releaseScript deletes the lock only while it still holds this process' owner id,
// so a lock that expired and was taken over by another replica is left alone.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisClient struct {
	logs   *zap.SugaredLogger
	client *redis.Client
	owner  string
}

func NewRedisClient(logger *zap.SugaredLogger, url string) (*RedisClient, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	return &RedisClient{
		logs:   logger,
		client: client,
		owner:  uuid.NewString(),
	}, nil
}

// AcquireLock reports whether this process now holds key for ttl.
func (r *RedisClient) AcquireLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := r.client.SetNX(ctx, lockPrefix+key, r.owner, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("acquire lock %q: %w", key, err)
	}
	if !ok {
		r.logs.Debugw("lock held by another instance", "key", key)
	}
	return ok, nil
}

func (r *RedisClient) ReleaseLock(ctx context.Context, key string) error {
	err := releaseScript.Run(ctx, r.client, []string{lockPrefix + key}, r.owner).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("release lock %q: %w", key, err)
	}
	return nil
}

func (r *RedisClient) GetPrice(ctx context.Context, key string) (decimal.Decimal, error) {
	raw, err := r.client.Get(ctx, pricePrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return decimal.Zero, ErrCacheMiss
		}
		return decimal.Zero, fmt.Errorf("get price %q: %w", key, err)
	}

	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse cached price %q: %w", key, err)
	}
	return price, nil
}

func (r *RedisClient) SetPrice(ctx context.Context, key string, price decimal.Decimal, ttl time.Duration) error {
	if err := r.client.Set(ctx, pricePrefix+key, price.String(), ttl).Err(); err != nil {
		return fmt.Errorf("set price %q: %w", key, err)
	}
	return nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}
