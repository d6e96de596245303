// Package session provides server-side session state storage.
// Sessions map an opaque ID to a user ID; the cookie carries only the ID.
package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/hauqxngo/NomNom/internal/infrastructure/config"
	"github.com/hauqxngo/NomNom/internal/ports/outbound"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisStore implements the session repository backed by Redis. TTL handling
// is delegated to Redis key expiry.
type RedisStore struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRedisStore creates a Redis-backed session store and verifies the
// connection.
func NewRedisStore(cfg *config.Config, logger *zap.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.Database,
		PoolSize: cfg.Redis.PoolSize,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	logger.Info("Connected to Redis session store", zap.String("addr", cfg.RedisAddr()))

	return &RedisStore{
		client: client,
		logger: logger.Named("session-redis"),
	}, nil
}

func sessionKey(sessionID string) string {
	return "session:" + sessionID
}

// Save stores a session with the given TTL
func (s *RedisStore) Save(ctx context.Context, sessionID string, userID uint, ttl time.Duration) error {
	return s.client.Set(ctx, sessionKey(sessionID), strconv.FormatUint(uint64(userID), 10), ttl).Err()
}

// Lookup resolves a session ID to a user ID. An unknown or expired session
// returns (0, false, nil).
func (s *RedisStore) Lookup(ctx context.Context, sessionID string) (uint, bool, error) {
	val, err := s.client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	userID, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		s.logger.Warn("Corrupt session value", zap.String("session_id", sessionID))
		return 0, false, nil
	}

	return uint(userID), true, nil
}

// Delete removes a session. Deleting a missing session is a no-op.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKey(sessionID)).Err()
}

// Ping checks Redis connectivity for health reporting
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close releases the underlying Redis connection pool
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ outbound.SessionRepository = (*RedisStore)(nil)
