package services

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const INDEX_PAGE_PREFIX = "index_page:" // Префикс ключей кеша главной ленты

// PageCache хранит отрисованный ответ главной ленты как непрозрачный блоб.
// Ключ - номер страницы ленты, а не пользователь: лента одна на всех.
// Пока запись в кеше жива, новые посты на главной не видны - это
// осознанное окно устаревания, снимаемое по TTL или явным Clear.
type PageCache struct {
	ttl time.Duration
}

func NewPageCache(ttl time.Duration) *PageCache {
	return &PageCache{ttl: ttl}
}

func pageKey(pageNumber int) string {
	return fmt.Sprintf("%s%d", INDEX_PAGE_PREFIX, pageNumber)
}

// Get возвращает закешированный ответ страницы, если он есть
func (pc *PageCache) Get(ctx context.Context, pageNumber int) ([]byte, bool) {
	if RedisClient == nil {
		return nil, false
	}
	body, err := RedisClient.Get(ctx, pageKey(pageNumber)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		return nil, false
	}
	return body, true
}

// Set кеширует ответ страницы на время TTL
func (pc *PageCache) Set(ctx context.Context, pageNumber int, body []byte) {
	if RedisClient == nil {
		return
	}
	RedisClient.Set(ctx, pageKey(pageNumber), body, pc.ttl)
}

// Clear сбрасывает все страницы ленты
func (pc *PageCache) Clear(ctx context.Context) error {
	if RedisClient == nil {
		return nil
	}
	keys, err := RedisClient.Keys(ctx, INDEX_PAGE_PREFIX+"*").Result()
	if err != nil {
		return fmt.Errorf("failed to list cache keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return RedisClient.Del(ctx, keys...).Err()
}
