package healthcheck

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// DatabaseChecker probes the relational database connection
type DatabaseChecker struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewDatabaseChecker creates a database health probe
func NewDatabaseChecker(db *gorm.DB) *DatabaseChecker {
	return &DatabaseChecker{db: db, timeout: 2 * time.Second}
}

// Check pings the database
func (c *DatabaseChecker) Check(ctx context.Context) Check {
	start := time.Now()
	check := Check{LastChecked: start}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	sqlDB, err := c.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}

	check.Duration = time.Since(start) / time.Millisecond
	if err != nil {
		check.Status = StatusUnhealthy
		check.Message = err.Error()
		return check
	}

	check.Status = StatusHealthy
	return check
}

// RedisChecker probes the Redis connection
type RedisChecker struct {
	client  *redis.Client
	timeout time.Duration
}

// NewRedisChecker creates a Redis health probe
func NewRedisChecker(client *redis.Client) *RedisChecker {
	return &RedisChecker{client: client, timeout: 2 * time.Second}
}

// Check pings Redis
func (c *RedisChecker) Check(ctx context.Context) Check {
	start := time.Now()
	check := Check{LastChecked: start}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	err := c.client.Ping(ctx).Err()

	check.Duration = time.Since(start) / time.Millisecond
	if err != nil {
		check.Status = StatusUnhealthy
		check.Message = err.Error()
		return check
	}

	check.Status = StatusHealthy
	return check
}
