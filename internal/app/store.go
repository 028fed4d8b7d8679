package app

import (
	"context"

	"github.com/MrSnakeDoc/tubenotes/internal/config"
	"github.com/MrSnakeDoc/tubenotes/internal/logger"
	"github.com/MrSnakeDoc/tubenotes/internal/redis"
	"github.com/MrSnakeDoc/tubenotes/internal/store"
	"github.com/MrSnakeDoc/tubenotes/internal/store/memory"
	mongostore "github.com/MrSnakeDoc/tubenotes/internal/store/mongo"
	redisstore "github.com/MrSnakeDoc/tubenotes/internal/store/redis"
)

// openStore connects to the configured backend once. If that fails the
// process keeps running on the in-memory store for its whole lifetime.
func openStore(ctx context.Context, cfg *config.Config, log logger.Logger) store.Store {
	switch cfg.Store {
	case config.StoreMemory:
		log.Warn("using in-memory store, nothing will be persisted")
		return memory.New()

	case config.StoreRedis:
		client, err := redis.New(ctx, redis.ConnectOptions{
			Addr:     cfg.RedisAddr,
			User:     cfg.RedisUser,
			Password: cfg.RedisPassword,
			RedisDB:  cfg.RedisDB,
			Timeout:  cfg.StoreConnectTimeout,
		}, log)
		if err != nil {
			return fallback(cfg.Store, err, log)
		}
		return redisstore.NewStore(client)

	default:
		st, err := mongostore.Connect(ctx, mongostore.ConnectOptions{
			URI:      cfg.MongoURI,
			Database: cfg.MongoDatabase,
			Timeout:  cfg.StoreConnectTimeout,
		}, log)
		if err != nil {
			return fallback(cfg.Store, err, log)
		}
		return st
	}
}

func fallback(backend string, err error, log logger.Logger) store.Store {
	log.Error("store unavailable, falling back to in-memory store",
		logger.String("backend", backend),
		logger.ErrorClass(err),
		logger.Error(err))
	return memory.New()
}
