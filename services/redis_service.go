package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// GetFromRedis lấy data từ Redis và parse JSON vào target
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis lưu dữ liệu vào Redis dưới dạng JSON với TTL
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis xóa một hoặc nhiều cache key
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := rdb.Del(ctx, keys...).Err(); err != nil {
		return err
	}
	return nil
}
