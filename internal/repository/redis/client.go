package redis

import (
	"context"
	"log"
	"strings"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client
var redisEnabled bool

// InitRedis connects to Redis. An empty url leaves Redis disabled, and so
// does a failed ping: the bot works without its cache.
func InitRedis(url, password string, db int) error {
	if url == "" {
		log.Println("[REDIS] REDIS_URL not set, move cache disabled")
		redisEnabled = false
		return nil
	}

	opts, err := newOptions(url, password, db)
	if err != nil {
		return err
	}
	RedisClient = redis.NewClient(opts)

	// Test connection
	ctx := context.Background()
	if err := RedisClient.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Move cache disabled.", err)
		redisEnabled = false
		return nil
	}

	redisEnabled = true
	log.Println("[REDIS] Connected successfully")
	return nil
}

// newOptions accepts either a redis:// URL or a bare host:port address.
func newOptions(url, password string, db int) (*redis.Options, error) {
	if strings.HasPrefix(url, "redis://") || strings.HasPrefix(url, "rediss://") {
		opts, err := redis.ParseURL(url)
		if err != nil {
			return nil, err
		}
		if password != "" {
			opts.Password = password
		}
		return opts, nil
	}

	return &redis.Options{
		Addr:     url,
		Password: password,
		DB:       db,
	}, nil
}

// IsRedisEnabled returns whether Redis is available
func IsRedisEnabled() bool {
	return redisEnabled
}

// CloseRedis closes the Redis connection
func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}
