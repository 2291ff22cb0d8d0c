package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	appordertech "github.com/restopos/backend/internal/application/ordertech"
)

// RedisIdempotencyStore maps remote order ids to local order ids using Redis.
// This is suitable for distributed deployments where multiple instances need
// to share idempotency state.
type RedisIdempotencyStore struct {
	client    *redis.Client
	keyPrefix string
	ttl       time.Duration
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisIdempotencyStore creates a new Redis-based idempotency store
func NewRedisIdempotencyStore(cfg RedisConfig, ttl time.Duration) (*RedisIdempotencyStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisIdempotencyStoreWithClient(client, "", ttl), nil
}

// NewRedisIdempotencyStoreWithClient creates a store with an existing Redis client
// This is useful for testing or when sharing a client across components
func NewRedisIdempotencyStoreWithClient(client *redis.Client, keyPrefix string, ttl time.Duration) *RedisIdempotencyStore {
	if keyPrefix == "" {
		keyPrefix = "ordertech:order:"
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisIdempotencyStore{
		client:    client,
		keyPrefix: keyPrefix,
		ttl:       ttl,
	}
}

// Get returns the cached local order id for a remote order id. A Redis error
// reads as a cache miss; the database lookup behind the cache still answers.
func (s *RedisIdempotencyStore) Get(ctx context.Context, remoteOrderID string) (int64, bool) {
	val, err := s.client.Get(ctx, s.keyPrefix+remoteOrderID).Result()
	if err != nil {
		return 0, false
	}
	orderID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, false
	}
	return orderID, true
}

// Set remembers the local order id for a remote order id
func (s *RedisIdempotencyStore) Set(ctx context.Context, remoteOrderID string, orderID int64) {
	s.client.Set(ctx, s.keyPrefix+remoteOrderID, strconv.FormatInt(orderID, 10), s.ttl)
}

// Close closes the Redis client
func (s *RedisIdempotencyStore) Close() error {
	return s.client.Close()
}

// GetClient returns the underlying Redis client (for testing/monitoring)
func (s *RedisIdempotencyStore) GetClient() *redis.Client {
	return s.client
}

// Ensure RedisIdempotencyStore implements OrderIdempotencyStore
var _ appordertech.OrderIdempotencyStore = (*RedisIdempotencyStore)(nil)
