package session

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/tailoring-webclient/internal/config"
	"github.com/spec-kit/tailoring-webclient/internal/domain"
)

const keyPrefix = "webclient:session:"

// RedisStore keeps sessions in Redis with a sliding TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore connects to Redis using the provided configuration.
func NewRedisStore(cfg config.RedisConfig, ttl time.Duration, logger *zap.Logger) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		logger.Warn("unable to reach redis", zap.Error(err))
	} else {
		logger.Info("connected to redis")
	}

	return &RedisStore{client: client, ttl: ttl}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, sid string) (*domain.Session, error) {
	raw, err := s.client.Get(ctx, keyPrefix+sid).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess domain.Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		// Unreadable entries are treated as absent so the guard forces
		// re-authentication instead of failing the request.
		_ = s.client.Del(ctx, keyPrefix+sid).Err()
		return nil, ErrNotFound
	}

	// Sliding expiry: an active browser keeps its session alive.
	_ = s.client.Expire(ctx, keyPrefix+sid, s.ttl).Err()
	return &sess, nil
}

// Put implements Store.
func (s *RedisStore) Put(ctx context.Context, sid string, sess domain.Session) error {
	raw, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+sid, raw, s.ttl).Err()
}

// Clear implements Store.
func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}

// Ping verifies Redis connectivity for readiness probes.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the underlying client.
func (s *RedisStore) Close() {
	if s != nil && s.client != nil {
		_ = s.client.Close()
	}
}
