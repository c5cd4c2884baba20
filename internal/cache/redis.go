package cache

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/David-iadg/consult-ia/internal/config"

	"github.com/redis/go-redis/v9"
)

const defaultPrefix = "consult"

var (
	rdb    *redis.Client
	prefix = defaultPrefix
)

// InitRedis 按配置创建客户端并探活；未启用时保持禁用
// 探活失败会关闭客户端并返回错误，调用方据此降级为进程内实现
func InitRedis(cfg *config.RedisConfig) error {
	_ = Close()
	if cfg == nil || !cfg.Enabled {
		return nil
	}
	prefix = strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = defaultPrefix
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return err
	}
	rdb = client
	return nil
}

// Enabled Redis 是否可用
func Enabled() bool { return rdb != nil }

// Client 未启用时返回 nil
func Client() *redis.Client { return rdb }

// Prefix 当前 key 前缀
func Prefix() string { return prefix }

// Ping 检查连通性，未启用视为正常
func Ping(ctx context.Context) error {
	if rdb == nil {
		return nil
	}
	return rdb.Ping(ctx).Err()
}

// Close 关闭客户端
func Close() error {
	if rdb == nil {
		return nil
	}
	err := rdb.Close()
	rdb = nil
	return err
}

// getJSON key 不存在时返回 false
func getJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if rdb == nil {
		return false, nil
	}
	raw, err := rdb.Get(ctx, buildKey(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal(raw, dest)
}

func setJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if rdb == nil {
		return nil
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return rdb.Set(ctx, buildKey(key), raw, ttl).Err()
}

func buildKey(key string) string {
	if key = strings.TrimSpace(key); key == "" {
		return prefix
	}
	return prefix + ":" + key
}
