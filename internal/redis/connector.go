package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MrSnakeDoc/tubenotes/internal/logger"
)

// ConnectOptions defines how the Redis client is built.
type ConnectOptions struct {
	Addr     string        // Redis address (ex: "localhost:6379")
	User     string        // Optional username
	Password string        // Optional password
	RedisDB  int           // Redis DB number
	Timeout  time.Duration // dial, read, write and ping timeout (ex: 10s)
	PoolSize int           // Redis connection pool size (0 => driver default)
}

// validateOptions ensures all required configuration values are valid.
func validateOptions(opts ConnectOptions, log logger.Logger) error {
	if opts.Addr == "" {
		log.Error("invalid Addr", logger.String("value", opts.Addr))
		return fmt.Errorf("Addr must not be empty")
	}
	if opts.Timeout <= 0 {
		log.Error("invalid Timeout", logger.Duration("value", opts.Timeout))
		return fmt.Errorf("Timeout must be > 0, got %v", opts.Timeout)
	}
	if opts.RedisDB < 0 {
		log.Error("invalid RedisDB", logger.Int("value", opts.RedisDB))
		return fmt.Errorf("RedisDB must be >= 0, got %d", opts.RedisDB)
	}
	return nil
}

// New creates a Redis client and checks it with a single ping bounded by
// opts.Timeout. On failure the client is closed and an error returned;
// there is no retry.
func New(ctx context.Context, opts ConnectOptions, log logger.Logger) (*redis.Client, error) {
	if err := validateOptions(opts, log); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Username:     opts.User,
		Password:     opts.Password,
		DB:           opts.RedisDB,
		DialTimeout:  opts.Timeout,
		ReadTimeout:  opts.Timeout,
		WriteTimeout: opts.Timeout,
		PoolSize:     opts.PoolSize,
	})

	log.Info("connecting to redis",
		logger.String("addr", opts.Addr),
		logger.Duration("timeout", opts.Timeout))

	start := time.Now()
	pingCtx, cancel := context.WithTimeout(ctx, opts.Timeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis unavailable at %s (timeout: %v): %w", opts.Addr, opts.Timeout, err)
	}

	log.Info("connected to redis",
		logger.String("addr", opts.Addr),
		logger.Duration("elapsed", time.Since(start)))
	return client, nil
}
