package services

import (
	"context"
	"fmt"
	"time"
	"yatube/config"

	"github.com/go-redis/redis/v8"
)

var RedisClient *redis.Client

// IndexPageCache - кеш главной ленты, инициализируется вместе с Redis
var IndexPageCache *PageCache

func InitRedis() error {
	if config.AppConfig == nil {
		return fmt.Errorf("AppConfig is not loaded")
	}

	redisConfig := config.AppConfig.Redis
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisConfig.Host, redisConfig.Port),
		Password: redisConfig.Password,
		DB:       redisConfig.DB,
	})

	// Тест соединения
	if _, err := RedisClient.Ping(context.Background()).Result(); err != nil {
		RedisClient = nil
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	IndexPageCache = NewPageCache(time.Duration(config.AppConfig.Cache.FeedTTL) * time.Second)

	return nil
}

func CloseRedis() error {
	if RedisClient != nil {
		return RedisClient.Close()
	}
	return nil
}
